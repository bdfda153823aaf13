package app

import (
	"fmt"

	"orrery/hal"
	"orrery/internal/buildinfo"
)

// New builds the scene for cfg and returns the per-frame step for a host
// runner. A bad config or a display of the wrong size makes every step fail
// with the same error.
func New(h hal.HAL, cfg Config) hal.StepFunc {
	log := h.Logger()

	sc, err := NewScene(cfg)
	if err != nil {
		hal.Logf(log, "orrery: %v", err)
		return func() error { return err }
	}
	if w, ht := h.Display().Size(); w != cfg.Width || ht != cfg.Height {
		err := fmt.Errorf("%w: display is %dx%d, config wants %dx%d", ErrInvalidConfig, w, ht, cfg.Width, cfg.Height)
		hal.Logf(log, "orrery: %v", err)
		return func() error { return err }
	}

	hal.Logf(log, "%s", buildinfo.Banner())
	hal.Logf(log, "orrery: %dx%d bodies=%d depth=%t hud=%t",
		cfg.Width, cfg.Height, len(sc.System.Bodies())+1, cfg.Depth, cfg.HUD)

	l := &loop{h: h, sc: sc}
	return l.step
}

type loop struct {
	h  hal.HAL
	sc *Scene

	frame     uint64
	statsAcc  float32
	statsSeen uint64
}

func (l *loop) step() (err error) {
	defer l.recoverFrame(&err)

	dt := l.h.Clock().Delta()
	if l.sc.Step(l.h.Input().Pressed(), dt) {
		hal.Logf(l.h.Logger(), "orrery: quit after %d frames", l.frame)
		return hal.ErrQuit
	}

	l.sc.Render()
	if err := l.h.Display().Present(l.sc.Frame.Pixels()); err != nil {
		return err
	}
	l.frame++
	l.stats(dt)
	return nil
}

func (l *loop) stats(dt float32) {
	every := l.sc.cfg.StatsEvery
	if every <= 0 {
		return
	}
	l.statsAcc += dt
	if l.statsAcc < every {
		return
	}
	n := l.frame - l.statsSeen
	cam := l.sc.Camera
	hal.Logf(l.h.Logger(), "orrery: frame=%d fps=%.1f zoom=%.2f yaw=%.2f pitch=%.2f",
		l.frame, float32(n)/l.statsAcc, cam.ZoomFactor, cam.Yaw, cam.Pitch)
	l.statsAcc = 0
	l.statsSeen = l.frame
}
