package hal

import (
	"fmt"
	"sync"
)

// hostDisplay keeps the most recently presented frame for a backend to draw.
type hostDisplay struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []uint32
	frames uint64
}

func newHostDisplay(width, height int) *hostDisplay {
	return &hostDisplay{
		width:  width,
		height: height,
		buf:    make([]uint32, width*height),
	}
}

func (d *hostDisplay) Size() (w, h int) { return d.width, d.height }

func (d *hostDisplay) Present(pix []uint32) error {
	if len(pix) != len(d.buf) {
		return fmt.Errorf("present %d pixels to %dx%d display: %w", len(pix), d.width, d.height, ErrBufferSize)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(d.buf, pix)
	d.frames++
	return nil
}

// snapshot copies the last presented frame into dst and returns the number
// of frames presented so far.
func (d *hostDisplay) snapshot(dst []uint32) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(dst, d.buf)
	return d.frames
}
