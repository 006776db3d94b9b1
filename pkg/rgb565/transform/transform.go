// Package transform holds the arithmetic behind every RGB565 conversion.
//
// The functions here are the single source of truth: the formula-backed
// bindings in pkg/rgb565/lut call them directly and the table generator
// enumerates them to produce the lookup blobs, so both paths stay
// bit-identical for every input.
package transform

const (
	maxL5 = 0b11111
	maxL6 = 0b111111
	maxL8 = 255
)

// Unpack565 splits a packed RGB565 word into r5, g6 and b5 channel values.
// To unpack BGR565 instead, swap r5 and b5.
func Unpack565(packed uint16) (r5, g6, b5 uint8) {
	return uint8(packed >> 11 & maxL5), uint8(packed >> 5 & maxL6), uint8(packed & maxL5)
}

// Pack565 packs r5, g6 and b5 channel values into a single RGB565 word.
// A channel wider than its slot would bleed into the neighbouring channels,
// so Pack565 panics when r5 > 31, g6 > 63 or b5 > 31.
func Pack565(r5, g6, b5 uint8) uint16 {
	if r5 > maxL5 || g6 > maxL6 || b5 > maxL5 {
		panic("rgb565: channel value out of range")
	}
	return uint16(r5)<<11 | uint16(g6)<<5 | uint16(b5)
}

// SwapComponents exchanges the two 5-bit channels of a packed word, turning
// RGB565 into BGR565 and back. Applying it twice returns the original value.
func SwapComponents(packed uint16) uint16 {
	return packed&0b0000011111100000 | packed>>11 | packed<<11
}

// L5ToL8 widens a 5-bit linear channel to 8 bits. The division truncates;
// the generated tables depend on this exact rounding.
func L5ToL8(l5 uint8) uint8 { return uint8(uint16(l5) * maxL8 / maxL5) }

// L6ToL8 widens a 6-bit linear channel to 8 bits, truncating like L5ToL8.
func L6ToL8(l6 uint8) uint8 { return uint8(uint16(l6) * maxL8 / maxL6) }

// L8ToL5 narrows an 8-bit linear channel to 5 bits. The +1 bias counters the
// systematic undershoot of plain truncation. It is not the inverse of L5ToL8:
// the 8→5→8 round trip may be lossy, and that is expected.
func L8ToL5(l8 uint8) uint8 { return uint8((uint16(l8) + 1) * maxL5 / maxL8) }

// L8ToL6 narrows an 8-bit linear channel to 6 bits, biased like L8ToL5.
func L8ToL6(l8 uint8) uint8 { return uint8((uint16(l8) + 1) * maxL6 / maxL8) }

// L565ToL888 expands a packed word into a linear 8-bit component triple.
func L565ToL888(packed uint16) [3]uint8 {
	r5, g6, b5 := Unpack565(packed)
	return [3]uint8{L5ToL8(r5), L6ToL8(g6), L5ToL8(b5)}
}

// L565ToS888 expands a packed word into an sRGB-encoded component triple.
func L565ToS888(packed uint16) [3]uint8 {
	r5, g6, b5 := Unpack565(packed)
	return [3]uint8{L5ToS8(r5), L6ToS8(g6), L5ToS8(b5)}
}

// L888ToL565 packs a linear 8-bit component triple into a packed word.
func L888ToL565(rgb [3]uint8) uint16 {
	return Pack565(L8ToL5(rgb[0]), L8ToL6(rgb[1]), L8ToL5(rgb[2]))
}

// S888ToL565 packs an sRGB-encoded component triple into a packed word.
func S888ToL565(srgb [3]uint8) uint16 {
	return Pack565(S8ToL5(srgb[0]), S8ToL6(srgb[1]), S8ToL5(srgb[2]))
}
