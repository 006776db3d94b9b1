package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixfmt/rgb565/pkg/config"
	"github.com/pixfmt/rgb565/pkg/rgb565/lut"
)

func TestSelectTables(t *testing.T) {
	tests := []struct {
		name    string
		conf    config.Lutgen
		want    int
		wantErr bool
	}{
		{name: "default set skips huge", conf: config.Lutgen{}, want: len(lut.Tables) - 2},
		{name: "huge includes all", conf: config.Lutgen{Huge: true}, want: len(lut.Tables)},
		{name: "named", conf: config.Lutgen{Tables: []string{"l5_to_l8", "s8_to_l6"}}, want: 2},
		{name: "unknown name", conf: config.Lutgen{Tables: []string{"bogus"}}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := selectTables(tc.conf)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v", err)
			}
			if !tc.wantErr && len(got) != tc.want {
				t.Errorf("%d tables, want %d", len(got), tc.want)
			}
		})
	}
}

func TestWriteTable(t *testing.T) {
	dir := t.TempDir()
	tab, ok := lut.Lookup("l6_to_l8")
	if !ok {
		t.Fatal("no l6_to_l8 table")
	}
	if err := writeTable(dir, tab); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(filepath.Join(dir, "l6_to_l8.bin"))
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() != int64(tab.Size()) {
		t.Errorf("size = %d, want %d", fi.Size(), tab.Size())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}
