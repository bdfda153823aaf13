package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"orrery/gfx"
	"orrery/hal"
)

// ErrPanic wraps a panic recovered from a frame step.
var ErrPanic = errors.New("frame panicked")

// recoverFrame turns a panic in the frame step into an error. The panic and
// its stack are logged and painted onto the last frame before it is
// presented.
func (l *loop) recoverFrame(err *error) {
	r := recover()
	if r == nil {
		return
	}

	lines := []string{
		"Orrery panic:",
		fmt.Sprintf("frame: %d", l.frame),
		fmt.Sprintf("panic: %v", r),
	}
	if stack := debug.Stack(); len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if log := l.h.Logger(); log != nil {
		for _, line := range lines {
			log.WriteLineString(line)
		}
	}

	drawPanicScreen(l.sc.Frame, gfx.NewTextWriter(), lines)
	if perr := l.h.Display().Present(l.sc.Frame.Pixels()); perr != nil {
		hal.Logf(l.h.Logger(), "orrery: present panic screen: %v", perr)
	}

	*err = fmt.Errorf("%w: %v", ErrPanic, r)
}

// drawPanicScreen paints lines black on white, wrapping at the screen width
// and stopping at the bottom edge.
func drawPanicScreen(f *gfx.Framebuffer, text *gfx.TextWriter, lines []string) {
	f.SetBackground(gfx.White)
	f.EnableDepth(false)
	f.Clear()

	fontWidth, fontHeight := text.CharWidth(), text.LineHeight()
	if fontWidth <= 0 || fontHeight <= 0 {
		return
	}
	cols := f.Width() / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > f.Height() {
				return
			}
			chunk, rest := takeRunes(line, cols)
			text.WriteLine(f, 0, y, chunk, gfx.Black)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
