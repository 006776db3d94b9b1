//go:build lut888

package lut

import _ "embed"

// The two 24-bit-domain tables cover all of true color at 2 bytes per entry,
// 32 MiB each, which is why they sit behind their own tag. Generate them
// with `lutgen --huge` (or --tables l888_to_l565,s888_to_l565) first.

//go:embed tables/l888_to_l565.bin
var l888ToL565Tab []byte

//go:embed tables/s888_to_l565.bin
var s888ToL565Tab []byte

var (
	L888ToL565 = Tabled(l888ToL565Tab, 2, index888, decode16)
	S888ToL565 = Tabled(s888ToL565Tab, 2, index888, decode16)
)
