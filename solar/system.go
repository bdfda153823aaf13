package solar

import "orrery/gfx"

// System is a central body and the bodies orbiting it.
//
// Draw order is fixed: every orbit path, then the central body, then each
// orbiting body in insertion order. Later draws overwrite earlier ones unless
// the framebuffer has depth testing enabled.
type System struct {
	central *Body
	bodies  []*Body
}

// NewSystem creates a system whose central body never moves.
func NewSystem(centralRadius float32, centralColor gfx.Color) *System {
	return &System{central: NewBody(0, centralRadius, 0, 0, centralColor)}
}

// AddBody appends b to the draw order.
func (s *System) AddBody(b *Body) {
	if b == nil {
		return
	}
	s.bodies = append(s.bodies, b)
}

func (s *System) Central() *Body  { return s.central }
func (s *System) Bodies() []*Body { return s.bodies }

// Update advances every orbiting body by dt seconds.
func (s *System) Update(dt float32) {
	for _, b := range s.bodies {
		b.Update(dt)
	}
}

// Draw renders the whole system into f as seen from cam.
func (s *System) Draw(f *gfx.Framebuffer, cam *gfx.Camera) {
	w := float32(f.Width())
	h := float32(f.Height())

	for _, b := range s.bodies {
		b.DrawOrbit(f, cam, w, h)
	}

	s.central.Draw(f, cam, w, h)
	for _, b := range s.bodies {
		b.Draw(f, cam, w, h)
	}
}
