//go:build nofloat

package transform

// The nofloat build carries no gamma math: sRGB conversions are available
// only through precomputed tables (the lut build tag). Calling a direct
// sRGB transform in this configuration is a build mismatch, not a
// recoverable condition.

const errNoFloat = "rgb565: sRGB transform requires floating point (built with nofloat)"

func L5ToS8(uint8) uint8 { panic(errNoFloat) }
func L6ToS8(uint8) uint8 { panic(errNoFloat) }
func S8ToL5(uint8) uint8 { panic(errNoFloat) }
func S8ToL6(uint8) uint8 { panic(errNoFloat) }
