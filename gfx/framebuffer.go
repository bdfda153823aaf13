package gfx

import (
	"image/color"
	"math"
)

// Framebuffer is a flat width×height buffer of packed colors.
//
// Point writes the ambient current color; PointColor takes the color
// explicitly. Writes outside the buffer are skipped. When depth testing is
// enabled a parallel depth buffer is kept in lockstep with the pixels.
type Framebuffer struct {
	width  int
	height int
	pix    []uint32

	background Color
	current    Color

	depth    bool
	depthBuf []float32
}

// NewFramebuffer allocates a framebuffer cleared to black.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		width:      width,
		height:     height,
		pix:        make([]uint32, width*height),
		background: Black,
		current:    White,
	}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Pixels returns the backing buffer, row-major, one 0xRRGGBB value per pixel.
func (f *Framebuffer) Pixels() []uint32 { return f.pix }

func (f *Framebuffer) SetBackground(c Color) { f.background = c }
func (f *Framebuffer) Background() Color     { return f.background }

func (f *Framebuffer) SetCurrentColor(c Color) { f.current = c }
func (f *Framebuffer) CurrentColor() Color     { return f.current }

// EnableDepth turns per-pixel depth testing on or off.
//
// With depth testing off (the default) the last write at a coordinate wins.
func (f *Framebuffer) EnableDepth(on bool) {
	f.depth = on
	if !on {
		f.depthBuf = nil
		return
	}
	if cap(f.depthBuf) < len(f.pix) {
		f.depthBuf = make([]float32, len(f.pix))
	} else {
		f.depthBuf = f.depthBuf[:len(f.pix)]
	}
	f.clearDepth()
}

func (f *Framebuffer) DepthEnabled() bool { return f.depth }

// Clear resets every pixel to the background color.
func (f *Framebuffer) Clear() {
	bg := uint32(f.background)
	for i := range f.pix {
		f.pix[i] = bg
	}
	if f.depth {
		f.clearDepth()
	}
}

func (f *Framebuffer) clearDepth() {
	inf := float32(math.Inf(1))
	for i := range f.depthBuf {
		f.depthBuf[i] = inf
	}
}

// Point writes the current color at (x, y).
func (f *Framebuffer) Point(x, y int, depth float32) {
	f.PointColor(x, y, depth, f.current)
}

// PointColor writes c at (x, y) and reports whether the pixel was written.
func (f *Framebuffer) PointColor(x, y int, depth float32, c Color) bool {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return false
	}
	idx := y*f.width + x
	if f.depth {
		if depth >= f.depthBuf[idx] {
			return false
		}
		f.depthBuf[idx] = depth
	}
	f.pix[idx] = uint32(c)
	return true
}

// At returns the color at (x, y), or the background when out of range.
func (f *Framebuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return f.background
	}
	return Color(f.pix[y*f.width+x])
}

// DepthAt returns the stored depth at (x, y). It is +Inf when nothing has
// been written or depth testing is off.
func (f *Framebuffer) DepthAt(x, y int) float32 {
	if !f.depth || x < 0 || y < 0 || x >= f.width || y >= f.height {
		return float32(math.Inf(1))
	}
	return f.depthBuf[y*f.width+x]
}

// Size, SetPixel and Display implement drivers.Displayer so text can be drawn
// with tinyfont. Overlay pixels bypass depth testing.
func (f *Framebuffer) Size() (x, y int16) {
	return int16(f.width), int16(f.height)
}

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= f.width || iy >= f.height {
		return
	}
	f.pix[iy*f.width+ix] = uint32(FromRGBA(c))
}

func (f *Framebuffer) Display() error { return nil }
