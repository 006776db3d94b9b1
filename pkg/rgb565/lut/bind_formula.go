//go:build !lut

package lut

import "github.com/pixfmt/rgb565/pkg/rgb565/transform"

var (
	SwapComponents = Direct(transform.SwapComponents)
	L5ToL8         = Direct(transform.L5ToL8)
	L6ToL8         = Direct(transform.L6ToL8)
	L5ToS8         = Direct(transform.L5ToS8)
	L6ToS8         = Direct(transform.L6ToS8)
	L565ToL888     = Direct(transform.L565ToL888)
	L565ToS888     = Direct(transform.L565ToS888)
	L8ToL5         = Direct(transform.L8ToL5)
	L8ToL6         = Direct(transform.L8ToL6)
	S8ToL5         = Direct(transform.S8ToL5)
	S8ToL6         = Direct(transform.S8ToL6)
)
