package lut

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pixfmt/rgb565/pkg/rgb565/transform"
)

// Table describes one generatable lookup table: a transform's full input
// domain serialized in ascending order, Width bytes per entry, multi-byte
// entries little-endian. The blob carries no header or padding, so the row
// for input i always starts at offset i*Width.
type Table struct {
	Name    string
	Entries int
	Width   int
	// Huge marks the two 24-bit-domain tables (32 MiB each) that are
	// excluded from the default generation set.
	Huge bool

	emit func(i int, row []byte)
}

// Size returns the byte size of the generated blob.
func (t Table) Size() int { return t.Entries * t.Width }

// WriteTo streams the blob to w. The output depends only on the transform
// formulas, so repeated runs are byte-identical.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriterSize(w, 64<<10)
	row := make([]byte, t.Width)
	for i := 0; i < t.Entries; i++ {
		t.emit(i, row)
		if _, err := bw.Write(row); err != nil {
			return int64(i) * int64(t.Width), err
		}
	}
	return int64(t.Size()), bw.Flush()
}

func emit8(fn func(uint8) uint8) func(int, []byte) {
	return func(i int, row []byte) { row[0] = fn(uint8(i)) }
}

func emit16(fn func(uint16) uint16) func(int, []byte) {
	return func(i int, row []byte) { binary.LittleEndian.PutUint16(row, fn(uint16(i))) }
}

func emit888(fn func(uint16) [3]uint8) func(int, []byte) {
	return func(i int, row []byte) {
		c := fn(uint16(i))
		copy(row, c[:])
	}
}

func emitPack(fn func([3]uint8) uint16) func(int, []byte) {
	return func(i int, row []byte) {
		v := fn([3]uint8{uint8(i >> 16), uint8(i >> 8), uint8(i)})
		binary.LittleEndian.PutUint16(row, v)
	}
}

// Tables lists every generatable table in the order lutgen processes them.
var Tables = []Table{
	{Name: "swap_components", Entries: 1 << 16, Width: 2, emit: emit16(transform.SwapComponents)},
	{Name: "l5_to_l8", Entries: 32, Width: 1, emit: emit8(transform.L5ToL8)},
	{Name: "l6_to_l8", Entries: 64, Width: 1, emit: emit8(transform.L6ToL8)},
	{Name: "l5_to_s8", Entries: 32, Width: 1, emit: emit8(transform.L5ToS8)},
	{Name: "l6_to_s8", Entries: 64, Width: 1, emit: emit8(transform.L6ToS8)},
	{Name: "l565_to_l888", Entries: 1 << 16, Width: 3, emit: emit888(transform.L565ToL888)},
	{Name: "l565_to_s888", Entries: 1 << 16, Width: 3, emit: emit888(transform.L565ToS888)},
	{Name: "l8_to_l5", Entries: 256, Width: 1, emit: emit8(transform.L8ToL5)},
	{Name: "l8_to_l6", Entries: 256, Width: 1, emit: emit8(transform.L8ToL6)},
	{Name: "s8_to_l5", Entries: 256, Width: 1, emit: emit8(transform.S8ToL5)},
	{Name: "s8_to_l6", Entries: 256, Width: 1, emit: emit8(transform.S8ToL6)},
	{Name: "l888_to_l565", Entries: 1 << 24, Width: 2, Huge: true, emit: emitPack(transform.L888ToL565)},
	{Name: "s888_to_l565", Entries: 1 << 24, Width: 2, Huge: true, emit: emitPack(transform.S888ToL565)},
}

// Lookup finds a table descriptor by name.
func Lookup(name string) (Table, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
