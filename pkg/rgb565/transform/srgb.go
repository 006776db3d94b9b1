//go:build !nofloat

package transform

import "math"

// The transfer pair uses 12.9232102 for the linear slope instead of the
// canonical 12.92 so the segment meets the power curve exactly at the
// cutover. The generated tables bake this constant in, so it must not
// be "corrected".

func srgbTransfer(v float64) float64 {
	if v < 0.0031308 {
		return v * 12.9232102
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func srgbUntransfer(v float64) float64 {
	if v < 0.0404599 {
		return v / 12.9232102
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// L5ToS8 converts a 5-bit linear channel to an 8-bit sRGB-encoded one.
// The float result is truncated toward zero.
func L5ToS8(l5 uint8) uint8 { return uint8(srgbTransfer(float64(l5)/31) * 255) }

// L6ToS8 converts a 6-bit linear channel to an 8-bit sRGB-encoded one.
func L6ToS8(l6 uint8) uint8 { return uint8(srgbTransfer(float64(l6)/63) * 255) }

// S8ToL5 converts an 8-bit sRGB-encoded channel to a 5-bit linear one.
// The 31.999 multiplier widens the top bucket so an input of 255 still
// truncates to 31; a plain 31 under-maps the brightest input by one.
func S8ToL5(s8 uint8) uint8 { return uint8(srgbUntransfer(float64(s8)/255) * 31.999) }

// S8ToL6 converts an 8-bit sRGB-encoded channel to a 6-bit linear one.
func S8ToL6(s8 uint8) uint8 { return uint8(srgbUntransfer(float64(s8)/255) * 63.999) }
