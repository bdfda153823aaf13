package hal

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"orrery/internal/buildinfo"
)

// ErrNoTTY is returned by RunTerminal when stdout is not a terminal.
var ErrNoTTY = errors.New("terminal mode requires a TTY on stdout")

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Width  int
	Height int
	FPS    int

	// Log receives log lines; nil discards them so they cannot tear the
	// alternate screen.
	Log io.Writer
}

// RunTerminal renders presented frames into the terminal with half-block
// characters, two pixel rows per text row. It blocks until the step returns
// ErrQuit or the program exits.
func RunTerminal(cfg TerminalConfig, newApp func(HAL) StepFunc) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTTY
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	if cfg.Log == nil {
		cfg.Log = io.Discard
	}

	h := newHost(cfg.Width, cfg.Height, cfg.Log)
	m := newTermModel(h, newApp(h), time.Second/time.Duration(cfg.FPS))

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(termModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

var termKeys = map[string]Key{
	"w":      KeyForward,
	"s":      KeyBackward,
	"a":      KeyStrafeLeft,
	"d":      KeyStrafeRight,
	"r":      KeyUp,
	"f":      KeyDown,
	"left":   KeyRotateLeft,
	"right":  KeyRotateRight,
	"up":     KeyRotateUp,
	"down":   KeyRotateDown,
	"q":      KeyZoomIn,
	"e":      KeyZoomOut,
	"esc":    KeyQuit,
	"ctrl+c": KeyQuit,
}

var (
	termStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	termTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
)

const termHelp = "w/s/a/d move · r/f up/down · arrows look · q/e zoom · esc quit"

type termTickMsg time.Time

type termModel struct {
	h        *hostHAL
	step     StepFunc
	interval time.Duration

	cols int
	rows int

	// Terminals only report presses, so a key counts as held for the frame
	// after each press or auto-repeat.
	pending []Key
	frame   []uint32
	err     error
}

func newTermModel(h *hostHAL, step StepFunc, interval time.Duration) termModel {
	return termModel{
		h:        h,
		step:     step,
		interval: interval,
		cols:     80,
		rows:     24,
		frame:    make([]uint32, h.disp.width*h.disp.height),
	}
}

func (m termModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return termTickMsg(t) })
}

func (m termModel) Init() tea.Cmd { return m.tick() }

func (m termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
	case tea.KeyMsg:
		if k, ok := termKeys[msg.String()]; ok {
			m.pending = append(m.pending, k)
		}
	case termTickMsg:
		m.h.kbd.set(m.pending...)
		m.pending = m.pending[:0]
		if m.step != nil {
			if err := m.step(); err != nil {
				if !errors.Is(err, ErrQuit) {
					m.err = err
				}
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m termModel) View() string {
	m.h.disp.snapshot(m.frame)
	rows := m.rows - 1
	if rows < 1 {
		rows = 1
	}

	var b strings.Builder
	grid := downsample(m.frame, m.h.disp.width, m.h.disp.height, m.cols, rows*2)
	for r := 0; r+1 < len(grid); r += 2 {
		top, bottom := grid[r], grid[r+1]
		for c := range top {
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top[c]))).
				Background(lipgloss.Color(hexColor(bottom[c]))).
				Render("▀"))
		}
		b.WriteByte('\n')
	}
	b.WriteString(termTitleStyle.Render(buildinfo.Title()))
	b.WriteString("  ")
	b.WriteString(termStatusStyle.Render(termHelp))
	return b.String()
}

// downsample reduces a w×h frame to cols×rows cells. Each cell takes the
// brightest pixel of its block so one-pixel lines survive the reduction.
func downsample(pix []uint32, w, h, cols, rows int) [][]uint32 {
	if w <= 0 || h <= 0 || cols <= 0 || rows <= 0 || len(pix) < w*h {
		return nil
	}
	out := make([][]uint32, rows)
	for r := 0; r < rows; r++ {
		y0 := r * h / rows
		y1 := max((r+1)*h/rows, y0+1)
		out[r] = make([]uint32, cols)
		for c := 0; c < cols; c++ {
			x0 := c * w / cols
			x1 := max((c+1)*w/cols, x0+1)

			best := pix[min(y0, h-1)*w+min(x0, w-1)]
			for y := y0; y < y1 && y < h; y++ {
				row := pix[y*w : y*w+w]
				for x := x0; x < x1 && x < w; x++ {
					if luma(row[x]) > luma(best) {
						best = row[x]
					}
				}
			}
			out[r][c] = best
		}
	}
	return out
}
