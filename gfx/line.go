package gfx

// DrawLine plots every pixel on the 8-connected Bresenham path from
// (x0, y0) to (x1, y1), endpoints included. Samples outside the framebuffer
// are skipped; the walk itself is never clipped.
func DrawLine(f *Framebuffer, x0, y0, x1, y1 int, depth float32, c Color) {
	if f == nil {
		return
	}
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		f.PointColor(x0, y0, depth, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
