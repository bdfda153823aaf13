package hal

import (
	"errors"
	"fmt"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Logf formats a line and writes it to l. A nil logger discards.
func Logf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrQuit is returned by a frame step to stop the runner cleanly.
	ErrQuit = errors.New("quit requested")

	// ErrBufferSize is returned by Present for a buffer that is not w×h.
	ErrBufferSize = errors.New("pixel buffer size mismatch")
)

// Display accepts one full frame of packed 0xRRGGBB pixels at a time.
type Display interface {
	Size() (w, h int)
	Present(pix []uint32) error
}

// Input reports the logical keys held down right now.
type Input interface {
	Pressed() *KeySet
}

// Clock measures real time between frames.
type Clock interface {
	// Delta returns the seconds elapsed since the previous call. The first
	// call returns 0.
	Delta() float32
}

// HAL provides the only contact point between the simulation and the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Clock() Clock
}

// StepFunc runs one frame. Returning ErrQuit ends the run without error.
type StepFunc func() error
