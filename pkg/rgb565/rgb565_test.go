package rgb565

import (
	"image"
	"image/color"
	"testing"
)

var (
	redLE   = [2]byte{0b00000000, 0b11111000}
	greenLE = [2]byte{0b11100000, 0b00000111}
	blueLE  = [2]byte{0b00011111, 0b00000000}
)

func TestPrimariesRGB(t *testing.T) {
	tests := []struct {
		name string
		le   [2]byte
		rgb  [3]uint8
	}{
		{name: "red", le: redLE, rgb: [3]uint8{255, 0, 0}},
		{name: "green", le: greenLE, rgb: [3]uint8{0, 255, 0}},
		{name: "blue", le: blueLE, rgb: [3]uint8{0, 0, 255}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromRGB565LE(tc.le).RGB888(); got != tc.rgb {
				t.Errorf("FromRGB565LE(%v).RGB888() = %v, want %v", tc.le, got, tc.rgb)
			}
			if got := FromRGB888(tc.rgb[0], tc.rgb[1], tc.rgb[2]).RGB565LE(); got != tc.le {
				t.Errorf("FromRGB888(%v).RGB565LE() = %v, want %v", tc.rgb, got, tc.le)
			}
			be := [2]byte{tc.le[1], tc.le[0]}
			if got := FromRGB565BE(be).RGB888(); got != tc.rgb {
				t.Errorf("FromRGB565BE(%v).RGB888() = %v, want %v", be, got, tc.rgb)
			}
			if got := FromRGB888(tc.rgb[0], tc.rgb[1], tc.rgb[2]).RGB565BE(); got != be {
				t.Errorf("FromRGB888(%v).RGB565BE() = %v, want %v", tc.rgb, got, be)
			}
		})
	}
}

// The BGR entry points swap the 5-bit channels: the blue bit pattern read
// as BGR565 is red, and vice versa.
func TestPrimariesBGR(t *testing.T) {
	tests := []struct {
		name string
		le   [2]byte
		rgb  [3]uint8
	}{
		{name: "red pattern is blue", le: redLE, rgb: [3]uint8{0, 0, 255}},
		{name: "green stays green", le: greenLE, rgb: [3]uint8{0, 255, 0}},
		{name: "blue pattern is red", le: blueLE, rgb: [3]uint8{255, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromBGR565LE(tc.le).RGB888(); got != tc.rgb {
				t.Errorf("FromBGR565LE(%v).RGB888() = %v, want %v", tc.le, got, tc.rgb)
			}
			if got := FromRGB888(tc.rgb[0], tc.rgb[1], tc.rgb[2]).BGR565LE(); got != tc.le {
				t.Errorf("FromRGB888(%v).BGR565LE() = %v, want %v", tc.rgb, got, tc.le)
			}
			be := [2]byte{tc.le[1], tc.le[0]}
			if got := FromBGR565BE(be).RGB888(); got != tc.rgb {
				t.Errorf("FromBGR565BE(%v).RGB888() = %v, want %v", be, got, tc.rgb)
			}
		})
	}
}

func TestByteOrderRoundTrip(t *testing.T) {
	for p := 0; p < 1<<16; p++ {
		c := FromRGB565(uint16(p))
		if got := FromRGB565LE(c.RGB565LE()); got != c {
			t.Fatalf("le round trip of %#04x = %#04x", p, got.RGB565())
		}
		if got := FromRGB565BE(c.RGB565BE()); got != c {
			t.Fatalf("be round trip of %#04x = %#04x", p, got.RGB565())
		}
		if got := FromBGR565(c.BGR565()); got != c {
			t.Fatalf("bgr round trip of %#04x = %#04x", p, got.RGB565())
		}
	}
}

func TestLinearRoundTrip(t *testing.T) {
	for p := 0; p < 1<<16; p++ {
		c := FromRGB565(uint16(p))
		rgb := c.RGB888()
		if got := FromRGB888(rgb[0], rgb[1], rgb[2]); got != c {
			t.Fatalf("%#04x → %v → %#04x", p, rgb, got.RGB565())
		}
	}
}

func TestComponents(t *testing.T) {
	c := FromComponents565(0b10101, 0b110011, 0b01010)
	if got := c.RGB565(); got != 0b10101_110011_01010 {
		t.Errorf("packed = %016b", got)
	}
	r5, g6, b5 := c.Components565()
	if r5 != 0b10101 || g6 != 0b110011 || b5 != 0b01010 {
		t.Errorf("components = %05b %06b %05b", r5, g6, b5)
	}
}

func TestComponentsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FromComponents565(32, 0, 0) didn't panic")
		}
	}()
	FromComponents565(32, 0, 0)
}

func TestColorModel(t *testing.T) {
	got := Model.Convert(color.RGBA{R: 255, A: 255})
	if got != FromRGB565LE(redLE) {
		t.Errorf("Convert(red) = %v", got)
	}
	// converting a Color is the identity
	c := FromRGB565(0x1234)
	if got := Model.Convert(c); got != c {
		t.Errorf("Convert(%v) = %v", c, got)
	}
}

func TestRGBA(t *testing.T) {
	r, g, b, a := FromRGB565LE(greenLE).RGBA()
	if r != 0 || g != 0xffff || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %v %v %v %v", r, g, b, a)
	}
}

func TestImageSetAt(t *testing.T) {
	p := NewImage(image.Rect(1, 1, 3, 3))
	p.Set(2, 1, color.RGBA{B: 255, A: 255})
	if got := p.At(2, 1); got != FromRGB565LE(blueLE) {
		t.Errorf("At(2, 1) = %v", got)
	}
	if got := p.At(1, 1); got != FromRGB565(0) {
		t.Errorf("At(1, 1) = %v, want black", got)
	}
	if got, want := p.PixOffset(2, 2), 1*p.Stride+2; got != want {
		t.Errorf("PixOffset(2, 2) = %d, want %d", got, want)
	}
}
