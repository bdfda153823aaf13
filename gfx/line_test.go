package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func litPoints(f *Framebuffer) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.At(x, y) != f.Background() {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestDrawLineHorizontal(t *testing.T) {
	f := NewFramebuffer(10, 10)
	DrawLine(f, 0, 0, 5, 0, 0, White)

	got := litPoints(f)
	assert.Len(t, got, 6)
	for x := 0; x <= 5; x++ {
		assert.True(t, got[[2]int{x, 0}], "missing (%d,0)", x)
	}
}

func TestDrawLineSymmetric(t *testing.T) {
	cases := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"steep", 1, 1, 3, 8},
		{"shallow", 0, 2, 9, 5},
		{"diagonal", 0, 0, 7, 7},
		{"anti-diagonal", 7, 0, 0, 7},
		{"vertical", 4, 0, 4, 9},
		{"single", 3, 3, 3, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fwd := NewFramebuffer(10, 10)
			DrawLine(fwd, tc.x0, tc.y0, tc.x1, tc.y1, 0, White)
			rev := NewFramebuffer(10, 10)
			DrawLine(rev, tc.x1, tc.y1, tc.x0, tc.y0, 0, White)

			a, b := litPoints(fwd), litPoints(rev)
			assert.True(t, a[[2]int{tc.x0, tc.y0}])
			assert.True(t, a[[2]int{tc.x1, tc.y1}])

			dx, dy := absInt(tc.x1-tc.x0), absInt(tc.y1-tc.y0)
			assert.Len(t, a, max(dx, dy)+1)
			assert.Len(t, b, max(dx, dy)+1)
		})
	}
}

func TestDrawLineClipsSamples(t *testing.T) {
	f := NewFramebuffer(4, 4)
	DrawLine(f, -3, 1, 6, 1, 0, White)

	got := litPoints(f)
	assert.Len(t, got, 4)
	for x := 0; x < 4; x++ {
		assert.True(t, got[[2]int{x, 1}])
	}
}
