package gfx

import "image/color"

// Color is the constraint on device pixel color types. Any comparable value
// works: color.RGBA for 24-bit panels, RGB565 for 16-bit SPI panels, a bool
// or uint8 for monochrome ones.
type Color interface{ comparable }

// RGB565 is a 16-bit color packed as 5 bits red, 6 bits green, 5 bits blue,
// the native framebuffer format of most small SPI/parallel LCD controllers.
type RGB565 uint16

// NewRGB565 packs 8-bit channels into RGB565, truncating the low bits.
func NewRGB565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// RGB565Model converts any color.Color to RGB565.
func RGB565Model(c color.Color) RGB565 {
	r, g, b, _ := c.RGBA()
	return NewRGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGBA expands the packed channels back to 8 bits, replicating the high bits
// into the low ones so that full intensity maps to 0xFF.
func (c RGB565) RGBA() color.RGBA {
	r := uint8(c >> 11)
	g := uint8(c >> 5 & 0x3F)
	b := uint8(c & 0x1F)
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xFF,
	}
}

var (
	Black565 = NewRGB565(0, 0, 0)
	White565 = NewRGB565(255, 255, 255)
	Red565   = NewRGB565(255, 0, 0)
	Green565 = NewRGB565(0, 255, 0)
	Blue565  = NewRGB565(0, 0, 255)
	Cyan565  = NewRGB565(0, 255, 255)
	Gray565  = NewRGB565(128, 128, 128)
)
