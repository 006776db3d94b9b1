//go:build lut

package lut

import _ "embed"

// These blobs are produced by cmd/lutgen (see the go:generate directive in
// lut.go); building with the lut tag before generating them fails at the
// embed step.

//go:embed tables/swap_components.bin
var swapComponentsTab []byte

//go:embed tables/l5_to_l8.bin
var l5ToL8Tab []byte

//go:embed tables/l6_to_l8.bin
var l6ToL8Tab []byte

//go:embed tables/l5_to_s8.bin
var l5ToS8Tab []byte

//go:embed tables/l6_to_s8.bin
var l6ToS8Tab []byte

//go:embed tables/l565_to_l888.bin
var l565ToL888Tab []byte

//go:embed tables/l565_to_s888.bin
var l565ToS888Tab []byte

//go:embed tables/l8_to_l5.bin
var l8ToL5Tab []byte

//go:embed tables/l8_to_l6.bin
var l8ToL6Tab []byte

//go:embed tables/s8_to_l5.bin
var s8ToL5Tab []byte

//go:embed tables/s8_to_l6.bin
var s8ToL6Tab []byte

var (
	SwapComponents = Tabled(swapComponentsTab, 2, index16, decode16)
	L5ToL8         = Tabled(l5ToL8Tab, 1, index8, decode8)
	L6ToL8         = Tabled(l6ToL8Tab, 1, index8, decode8)
	L5ToS8         = Tabled(l5ToS8Tab, 1, index8, decode8)
	L6ToS8         = Tabled(l6ToS8Tab, 1, index8, decode8)
	L565ToL888     = Tabled(l565ToL888Tab, 3, index16, decode888)
	L565ToS888     = Tabled(l565ToS888Tab, 3, index16, decode888)
	L8ToL5         = Tabled(l8ToL5Tab, 1, index8, decode8)
	L8ToL6         = Tabled(l8ToL6Tab, 1, index8, decode8)
	S8ToL5         = Tabled(s8ToL5Tab, 1, index8, decode8)
	S8ToL6         = Tabled(s8ToL6Tab, 1, index8, decode8)
)
