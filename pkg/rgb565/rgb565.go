// Package rgb565 converts pixel colors between the 16-bit RGB565/BGR565
// packed formats and 8-bit per-channel RGB, in both linear and sRGB color
// spaces. The format is common on embedded displays and microcontrollers
// with a low degree of color reproduction.
//
// A packed word stores red in bits 15-11, green in bits 10-5 and blue in
// bits 4-0; BGR565 uses the identical layout with the two 5-bit channels
// swapped. All conversions route through pkg/rgb565/lut, so a build can
// trade program size for table-backed speed (see the lut and lut888 build
// tags there) without changing any observable result. Table sizes, for
// reference:
//
//	swap_components   128 KiB     l565_to_l888   192 KiB
//	l565_to_s888      192 KiB     per-channel    32 B - 256 B
//	l888_to_l565       32 MiB     s888_to_l565    32 MiB
package rgb565

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/pixfmt/rgb565/pkg/rgb565/lut"
	"github.com/pixfmt/rgb565/pkg/rgb565/transform"
)

// Color is a color value packed as rrrrrggggggbbbbb.
type Color uint16

// FromRGB565 wraps a word packed as rrrrrggggggbbbbb.
func FromRGB565(packed uint16) Color { return Color(packed) }

// FromBGR565 wraps a word packed as bbbbbggggggrrrrr.
func FromBGR565(packed uint16) Color { return Color(lut.SwapComponents.Map(packed)) }

// RGB565 returns the word packed as rrrrrggggggbbbbb.
func (c Color) RGB565() uint16 { return uint16(c) }

// BGR565 returns the word packed as bbbbbggggggrrrrr.
func (c Color) BGR565() uint16 { return lut.SwapComponents.Map(uint16(c)) }

// FromRGB565LE reads a word stored as [gggbbbbb, rrrrrggg].
func FromRGB565LE(b [2]byte) Color { return FromRGB565(binary.LittleEndian.Uint16(b[:])) }

// FromRGB565BE reads a word stored as [rrrrrggg, gggbbbbb].
func FromRGB565BE(b [2]byte) Color { return FromRGB565(binary.BigEndian.Uint16(b[:])) }

// FromBGR565LE reads a word stored as [gggrrrrr, bbbbbggg].
func FromBGR565LE(b [2]byte) Color { return FromBGR565(binary.LittleEndian.Uint16(b[:])) }

// FromBGR565BE reads a word stored as [bbbbbggg, gggrrrrr].
func FromBGR565BE(b [2]byte) Color { return FromBGR565(binary.BigEndian.Uint16(b[:])) }

// RGB565LE returns the word stored as [gggbbbbb, rrrrrggg].
func (c Color) RGB565LE() (b [2]byte) {
	binary.LittleEndian.PutUint16(b[:], c.RGB565())
	return
}

// RGB565BE returns the word stored as [rrrrrggg, gggbbbbb].
func (c Color) RGB565BE() (b [2]byte) {
	binary.BigEndian.PutUint16(b[:], c.RGB565())
	return
}

// BGR565LE returns the word stored as [gggrrrrr, bbbbbggg].
func (c Color) BGR565LE() (b [2]byte) {
	binary.LittleEndian.PutUint16(b[:], c.BGR565())
	return
}

// BGR565BE returns the word stored as [bbbbbggg, gggrrrrr].
func (c Color) BGR565BE() (b [2]byte) {
	binary.BigEndian.PutUint16(b[:], c.BGR565())
	return
}

// FromComponents565 packs raw channel values, r5 and b5 up to 31 and g6 up
// to 63. It panics when a value exceeds its channel width.
func FromComponents565(r5, g6, b5 uint8) Color {
	return Color(transform.Pack565(r5, g6, b5))
}

// Components565 unpacks the raw channel values.
func (c Color) Components565() (r5, g6, b5 uint8) { return transform.Unpack565(uint16(c)) }

// FromRGB888 converts linear 8-bit components to a packed color.
func FromRGB888(r, g, b uint8) Color { return Color(lut.L888ToL565.Map([3]uint8{r, g, b})) }

// FromSRGB888 converts sRGB-encoded 8-bit components to a packed color.
func FromSRGB888(r, g, b uint8) Color { return Color(lut.S888ToL565.Map([3]uint8{r, g, b})) }

// RGB888 expands the color to linear 8-bit components.
func (c Color) RGB888() [3]uint8 { return lut.L565ToL888.Map(uint16(c)) }

// SRGB888 expands the color to sRGB-encoded 8-bit components, which is what
// a modern computer monitor expects.
func (c Color) SRGB888() [3]uint8 { return lut.L565ToS888.Map(uint16(c)) }

// RGBA implements color.Color over the linear 888 expansion.
func (c Color) RGBA() (r, g, b, a uint32) {
	c888 := c.RGB888()
	return uint32(c888[0]) * 0x101, uint32(c888[1]) * 0x101, uint32(c888[2]) * 0x101, 0xffff
}

// Model converts arbitrary colors to RGB565 through the linear 888 path.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return FromRGB888(uint8(r>>8), uint8(g>>8), uint8(b>>8))
})

// Image is an in-memory image whose At method returns Color values.
type Image struct {
	// Pix holds the image's pixels as little-endian RGB565 words. The pixel
	// at (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*2].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewImage allocates an Image with the given bounds.
func NewImage(r image.Rectangle) *Image {
	return &Image{Pix: make([]uint8, r.Dx()*r.Dy()<<1), Stride: r.Dx() << 1, Rect: r}
}

func (p *Image) Bounds() image.Rectangle { return p.Rect }
func (p *Image) ColorModel() color.Model { return Model }
func (p *Image) PixOffset(x, y int) int  { return (x-p.Rect.Min.X)<<1 + (y-p.Rect.Min.Y)*p.Stride }

func (p *Image) At(x, y int) color.Color {
	i := p.PixOffset(x, y)
	return FromRGB565LE([2]byte{p.Pix[i], p.Pix[i+1]})
}

func (p *Image) Set(x, y int, c color.Color) {
	i := p.PixOffset(x, y)
	b := Model.Convert(c).(Color).RGB565LE()
	p.Pix[i], p.Pix[i+1] = b[0], b[1]
}
