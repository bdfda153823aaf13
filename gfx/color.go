package gfx

import "image/color"

// Color is a packed 24-bit RGB color: 0xRRGGBB.
type Color uint32

const (
	Black Color = 0x000000
	White Color = 0xFFFFFF

	// OrbitGray is used for orbit paths; it is distinct from every body color.
	OrbitGray Color = 0x444444
)

func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// RGBA converts to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}

// FromRGBA drops the alpha channel.
func FromRGBA(c color.RGBA) Color { return RGB(c.R, c.G, c.B) }

// Luma returns an integer approximation of perceived brightness (0..255).
func (c Color) Luma() uint8 {
	return uint8((299*uint32(c.R()) + 587*uint32(c.G()) + 114*uint32(c.B())) / 1000)
}
