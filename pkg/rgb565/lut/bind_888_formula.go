//go:build !lut888

package lut

import "github.com/pixfmt/rgb565/pkg/rgb565/transform"

var (
	L888ToL565 = Direct(transform.L888ToL565)
	S888ToL565 = Direct(transform.S888ToL565)
)
