package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orrery/gfx"
)

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	assert.Equal(t, "hé", p)
	assert.Equal(t, "llo", r)

	p, r = takeRunes("ab", 5)
	assert.Equal(t, "ab", p)
	assert.Empty(t, r)

	p, r = takeRunes("ab", 0)
	assert.Empty(t, p)
	assert.Equal(t, "ab", r)
}

func TestDrawPanicScreenStopsAtBottom(t *testing.T) {
	f := gfx.NewFramebuffer(64, 40)
	f.EnableDepth(true)

	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "overflowing panic line"
	}
	drawPanicScreen(f, gfx.NewTextWriter(), lines)

	assert.False(t, f.DepthEnabled())
	assert.Equal(t, gfx.White, f.Background())
	assert.Positive(t, countColor(f.Pixels(), 0x000000))
	assert.Positive(t, countColor(f.Pixels(), 0xFFFFFF))
}
