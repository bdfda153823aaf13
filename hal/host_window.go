//go:build cgo

package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"orrery/internal/buildinfo"
)

// RunWindow opens a desktop window that displays the presented frames and
// forwards keyboard input. It blocks until the window closes or the step
// returns ErrQuit.
func RunWindow(cfg WindowConfig, newApp func(HAL) StepFunc) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	h := New(cfg.Width, cfg.Height).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(buildinfo.Title())
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	Logf(h.logger, "window: %dx%d scale=%d tps=%d", cfg.Width, cfg.Height, cfg.Scale, cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	pix     []byte
	fbImg   *ebiten.Image
	scratch []uint32
	step    StepFunc
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step == nil {
		return nil
	}
	if err := g.step(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	d := g.h.disp
	if g.fbImg == nil {
		g.scratch = make([]uint32, d.width*d.height)
		g.pix = make([]byte, d.width*d.height*4)
		g.fbImg = ebiten.NewImage(d.width, d.height)
	}

	d.snapshot(g.scratch)
	expandRGBA(g.pix, g.scratch)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.disp.width, g.h.disp.height
}
