package app

import (
	"strings"

	"orrery/hal"
)

type fakeLogger struct {
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *fakeLogger) contains(sub string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

type fakeDisplay struct {
	w, h   int
	frames [][]uint32
	err    error
}

func (d *fakeDisplay) Size() (int, int) { return d.w, d.h }

func (d *fakeDisplay) Present(pix []uint32) error {
	if d.err != nil {
		return d.err
	}
	if len(pix) != d.w*d.h {
		return hal.ErrBufferSize
	}
	d.frames = append(d.frames, append([]uint32(nil), pix...))
	return nil
}

type fakeInput struct {
	keys *hal.KeySet
}

func (i *fakeInput) Pressed() *hal.KeySet { return i.keys }

type fakeClock struct {
	dt    float32
	panic string
}

func (c *fakeClock) Delta() float32 {
	if c.panic != "" {
		panic(c.panic)
	}
	return c.dt
}

type fakeHAL struct {
	log   *fakeLogger
	disp  *fakeDisplay
	in    *fakeInput
	clock *fakeClock
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		log:   &fakeLogger{},
		disp:  &fakeDisplay{w: w, h: h},
		in:    &fakeInput{keys: hal.NewKeySet()},
		clock: &fakeClock{dt: 1.0 / 60},
	}
}

func (f *fakeHAL) Logger() hal.Logger   { return f.log }
func (f *fakeHAL) Display() hal.Display { return f.disp }
func (f *fakeHAL) Input() hal.Input     { return f.in }
func (f *fakeHAL) Clock() hal.Clock     { return f.clock }

func countColor(pix []uint32, c uint32) int {
	n := 0
	for _, p := range pix {
		if p == c {
			n++
		}
	}
	return n
}
