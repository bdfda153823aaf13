package app

import (
	"math"

	"orrery/gfx"
	"orrery/hal"
	"orrery/solar"
)

// Scene owns everything one frame touches: camera, system, framebuffer and
// overlay. It has no host dependencies, so tools can drive it directly.
type Scene struct {
	cfg Config

	Camera *gfx.Camera
	System *solar.System
	Frame  *gfx.Framebuffer

	hud *hud
}

func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fb := gfx.NewFramebuffer(cfg.Width, cfg.Height)
	fb.SetBackground(cfg.Background)
	fb.EnableDepth(cfg.Depth)

	s := &Scene{
		cfg:    cfg,
		Camera: NewCameraFromConfig(cfg),
		System: NewSystemFromConfig(cfg),
		Frame:  fb,
	}
	if cfg.HUD {
		s.hud = newHUD()
	}
	return s, nil
}

func (s *Scene) Config() Config { return s.cfg }

// Step applies the held keys to the camera and advances the simulation by
// dt seconds. It returns true, without advancing, when quit is held.
func (s *Scene) Step(keys *hal.KeySet, dt float32) (quit bool) {
	if applyControls(s.Camera, keys, dt, s.cfg) {
		return true
	}
	s.System.Update(dt)
	if s.hud != nil {
		s.hud.tick(dt)
	}
	return false
}

// Render redraws the frame from scratch.
func (s *Scene) Render() {
	s.Frame.Clear()
	s.System.Draw(s.Frame, s.Camera)
	if s.hud != nil {
		s.hud.track(s.Camera)
		s.hud.draw(s.Frame, s.Camera, s.System, s.cfg.Labels)
	}
}

// Advance runs the simulation forward by total seconds in steps of at most
// dt with no keys held. The last step is shortened to land on total.
func (s *Scene) Advance(total, dt float32) {
	n, dt, last := splitSteps(total, dt)
	if n == 0 {
		return
	}
	for i := 0; i < n-1; i++ {
		s.Step(nil, dt)
	}
	s.Step(nil, last)
}

// splitSteps divides total into n steps of dt followed by a final step of
// last seconds, counted in float64 so large totals still terminate.
func splitSteps(total, dt float32) (n int, step, last float32) {
	if total <= 0 {
		return 0, 0, 0
	}
	if dt <= 0 || dt > total {
		dt = total
	}
	n = int(math.Ceil(float64(total) / float64(dt)))
	last = float32(float64(total) - float64(n-1)*float64(dt))
	return n, dt, last
}
