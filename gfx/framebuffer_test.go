package gfx

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramebufferClear(t *testing.T) {
	f := NewFramebuffer(4, 3)
	require.Len(t, f.Pixels(), 12)

	f.SetBackground(0x101010)
	f.Clear()
	for _, p := range f.Pixels() {
		assert.Equal(t, uint32(0x101010), p)
	}
}

func TestFramebufferPointUsesCurrentColor(t *testing.T) {
	f := NewFramebuffer(4, 4)
	f.SetCurrentColor(0xFF0000)
	f.Point(1, 2, 5)
	assert.Equal(t, Color(0xFF0000), f.At(1, 2))

	f.SetCurrentColor(0x00FF00)
	f.Point(1, 2, 99)
	assert.Equal(t, Color(0x00FF00), f.At(1, 2), "last write wins without depth testing")
}

func TestFramebufferSkipsOutOfRange(t *testing.T) {
	f := NewFramebuffer(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		assert.False(t, f.PointColor(p[0], p[1], 0, White))
	}
	for _, p := range f.Pixels() {
		assert.Equal(t, uint32(Black), p)
	}
}

func TestFramebufferDepthTest(t *testing.T) {
	f := NewFramebuffer(2, 2)
	f.EnableDepth(true)
	require.True(t, f.DepthEnabled())

	assert.True(t, f.PointColor(0, 0, 10, 0xFF0000))
	assert.False(t, f.PointColor(0, 0, 20, 0x00FF00), "farther write rejected")
	assert.Equal(t, Color(0xFF0000), f.At(0, 0))
	assert.True(t, f.PointColor(0, 0, 5, 0x0000FF))
	assert.Equal(t, Color(0x0000FF), f.At(0, 0))
	assert.Equal(t, float32(5), f.DepthAt(0, 0))

	f.Clear()
	assert.True(t, f.PointColor(0, 0, 50, 0x00FF00), "clear resets depth")

	f.EnableDepth(false)
	assert.True(t, f.PointColor(0, 0, 100, 0xFFFFFF))
}

func TestFramebufferDisplayer(t *testing.T) {
	f := NewFramebuffer(3, 2)
	w, h := f.Size()
	assert.Equal(t, int16(3), w)
	assert.Equal(t, int16(2), h)

	f.SetPixel(2, 1, color.RGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF})
	f.SetPixel(3, 1, color.RGBA{R: 0xFF, A: 0xFF})
	assert.Equal(t, Color(0xAABBCC), f.At(2, 1))
	assert.NoError(t, f.Display())
}

func TestTextWriterDrawsPixels(t *testing.T) {
	f := NewFramebuffer(64, 16)
	tw := NewTextWriter()
	require.Greater(t, tw.LineHeight(), 0)
	require.Greater(t, tw.Width("HUD"), 0)

	tw.WriteLine(f, 0, 0, "HUD", White)
	lit := 0
	for _, p := range f.Pixels() {
		if p == uint32(White) {
			lit++
		}
	}
	assert.Greater(t, lit, 0)
}
