// Package lut routes every conversion through a Mapper bound once, at build
// time, to either a precomputed lookup table or the direct formula.
//
// The default build binds everything to formulas, so the repo compiles with
// no generated artifacts around. Building with the lut tag (after
// `go generate ./...` has produced the blobs via cmd/lutgen) embeds the
// small tables instead; the additional lut888 tag also embeds the two
// 32 MiB triple→word tables. A Mapper returns the same result for every
// input either way.
package lut

import "encoding/binary"

//go:generate go run github.com/pixfmt/rgb565/cmd/lutgen --out tables

// Mapper is a transform from A to R that may be backed by a lookup table.
// The zero Mapper is not usable; construct one with Tabled or Direct.
type Mapper[A, R any] struct {
	tab    []byte
	width  int
	index  func(A) int
	decode func([]byte) R
	fn     func(A) R
}

// Tabled binds a transform to a blob of fixed-width rows covering its whole
// input domain. index maps an input to its row number and decode turns a row
// back into the output type.
func Tabled[A, R any](tab []byte, width int, index func(A) int, decode func([]byte) R) Mapper[A, R] {
	return Mapper[A, R]{tab: tab, width: width, index: index, decode: decode}
}

// Direct binds a transform to its formula.
func Direct[A, R any](fn func(A) R) Mapper[A, R] { return Mapper[A, R]{fn: fn} }

// Map applies the transform through whichever backing the build selected.
// Table offsets are in bounds by construction: index is defined over the
// transform's full declared domain.
func (m Mapper[A, R]) Map(v A) R {
	if m.tab == nil {
		return m.fn(v)
	}
	off := m.index(v) * m.width
	return m.decode(m.tab[off : off+m.width])
}

func index8(v uint8) int   { return int(v) }
func index16(v uint16) int { return int(v) }

// index888 reads a component triple as a big-endian 24-bit row number.
func index888(c [3]uint8) int { return int(c[0])<<16 | int(c[1])<<8 | int(c[2]) }

func decode8(row []byte) uint8   { return row[0] }
func decode16(row []byte) uint16 { return binary.LittleEndian.Uint16(row) }

func decode888(row []byte) [3]uint8 { return [3]uint8{row[0], row[1], row[2]} }
