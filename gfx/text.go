package gfx

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var _ drivers.Displayer = (*Framebuffer)(nil)

// TextWriter draws single lines of text into a framebuffer.
type TextWriter struct {
	font       tinyfont.Fonter
	lineHeight int16
	charWidth  int16
}

// NewTextWriter returns a writer using the built-in 8pt proggy font.
func NewTextWriter() *TextWriter {
	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	return &TextWriter{
		font:       font,
		lineHeight: int16(font.GetYAdvance()),
		charWidth:  int16(outboxWidth),
	}
}

func (t *TextWriter) LineHeight() int { return int(t.lineHeight) }
func (t *TextWriter) CharWidth() int  { return int(t.charWidth) }

// Width returns the rendered width of s in pixels.
func (t *TextWriter) Width(s string) int {
	_, w := tinyfont.LineWidth(t.font, s)
	return int(w)
}

// WriteLine draws s with its top-left corner at (x, y).
func (t *TextWriter) WriteLine(f *Framebuffer, x, y int, s string, c Color) {
	if f == nil || s == "" {
		return
	}
	tinyfont.WriteLine(f, t.font, int16(x), int16(y)+t.lineHeight, s, c.RGBA())
}
