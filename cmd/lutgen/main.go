// lutgen writes the lookup tables consumed by the lut and lut888 build tags:
// one flat .bin blob per transform, every input of its domain in ascending
// order, little-endian rows, no header. Output is reproducible byte-for-byte
// across runs.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pixfmt/rgb565/pkg/config"
	"github.com/pixfmt/rgb565/pkg/logger"
	"github.com/pixfmt/rgb565/pkg/rgb565/lut"
)

func main() {
	conf, err := config.NewLutgenConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	conf.ParseFlags()

	log := logger.NewConsole(conf.Debug, "lutgen")

	tables, err := selectTables(conf)
	if err != nil {
		log.Fatal().Err(err).Msg("bad table selection")
	}

	if err := os.MkdirAll(conf.Out, 0o755); err != nil {
		log.Fatal().Err(err).Msg("couldn't create the output directory")
	}

	start := time.Now()
	for _, t := range tables {
		ts := time.Now()
		if err := writeTable(conf.Out, t); err != nil {
			log.Fatal().Err(err).Str("table", t.Name).Msg("generation failed")
		}
		log.Info().
			Str("table", t.Name).
			Int("bytes", t.Size()).
			Dur("in", time.Since(ts)).
			Msg("generated")
	}
	log.Info().Int("tables", len(tables)).Dur("in", time.Since(start)).Msg("done")
}

func selectTables(conf config.Lutgen) ([]lut.Table, error) {
	if len(conf.Tables) == 0 {
		var out []lut.Table
		for _, t := range lut.Tables {
			if t.Huge && !conf.Huge {
				continue
			}
			out = append(out, t)
		}
		return out, nil
	}
	var out []lut.Table
	for _, name := range conf.Tables {
		t, ok := lut.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown table %q", name)
		}
		out = append(out, t)
	}
	return out, nil
}

// writeTable generates into a temp file first, so a failed run can't leave
// a truncated blob behind for go:embed to pick up.
func writeTable(dir string, t lut.Table) error {
	f, err := os.CreateTemp(dir, t.Name+".*")
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	if _, err = t.WriteTo(f); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return fmt.Errorf("write: %w", err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("close: %w", err)
	}
	return os.Rename(f.Name(), filepath.Join(dir, t.Name+".bin"))
}
