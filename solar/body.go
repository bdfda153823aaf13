package solar

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"orrery/gfx"
)

const (
	twoPi = 2 * math.Pi

	bodySteps  = 32
	orbitSteps = 64

	// maxWalk bounds projected segment endpoints so a point just in front of
	// the camera cannot turn one segment into a multi-million pixel walk.
	maxWalk = 1 << 14
)

// Body is a sphere on a circular orbit around the origin in the XZ plane.
//
// Position is recomputed from the orbital phase on every update, never
// integrated, so there is no accumulated error.
type Body struct {
	Name string

	Position      mgl32.Vec3
	Radius        float32
	OrbitRadius   float32
	OrbitSpeed    float32 // rad/s around the origin
	RotationSpeed float32 // rad/s spin; tracked but not drawn

	CurrentAngle  float32
	RotationAngle float32

	Color gfx.Color
}

// NewBody returns a body at orbital phase 0, i.e. at (orbitRadius, 0, 0).
func NewBody(orbitRadius, radius, orbitSpeed, rotationSpeed float32, color gfx.Color) *Body {
	return &Body{
		Position:      mgl32.Vec3{orbitRadius, 0, 0},
		Radius:        radius,
		OrbitRadius:   orbitRadius,
		OrbitSpeed:    orbitSpeed,
		RotationSpeed: rotationSpeed,
		Color:         color,
	}
}

// Update advances both phases by dt seconds. Negative dt runs backwards.
func (b *Body) Update(dt float32) {
	b.CurrentAngle = wrapAngle(b.CurrentAngle + b.OrbitSpeed*dt)
	b.RotationAngle = wrapAngle(b.RotationAngle + b.RotationSpeed*dt)

	s, c := math.Sincos(float64(b.CurrentAngle))
	b.Position = mgl32.Vec3{
		b.OrbitRadius * float32(c),
		0,
		b.OrbitRadius * float32(s),
	}
}

// wrapAngle maps a into [0, 2π).
func wrapAngle(a float32) float32 {
	w := float32(math.Mod(float64(a), twoPi))
	if w < 0 {
		w += twoPi
	}
	if w >= twoPi {
		w = 0
	}
	return w
}

// Draw plots a ring of sample points around the projected center.
//
// Nothing is drawn unless the center itself is on screen. The ring radius
// is Radius scaled by the camera zoom, not by distance, and large rings show
// gaps between the samples.
func (b *Body) Draw(f *gfx.Framebuffer, cam *gfx.Camera, width, height float32) {
	s := cam.WorldToScreen(b.Position, width, height)
	if !gfx.OnScreen(s, width, height) {
		return
	}

	r := float64(b.Radius * cam.ZoomFactor)
	for i := 0; i < bodySteps; i++ {
		angle := float64(i) / bodySteps * twoPi
		sn, cs := math.Sincos(angle)
		x := s.X() + float32(r*cs)
		y := s.Y() + float32(r*sn)
		if x >= 0 && x < width && y >= 0 && y < height {
			f.PointColor(int(x), int(y), s.Z(), b.Color)
		}
	}
}

// DrawOrbit draws the orbit circle as a closed polyline.
//
// Segments with an endpoint at or behind the camera, or projected absurdly
// far off screen, are skipped.
func (b *Body) DrawOrbit(f *gfx.Framebuffer, cam *gfx.Camera, width, height float32) {
	prev := cam.WorldToScreen(b.orbitPoint(0), width, height)
	for i := 0; i < orbitSteps; i++ {
		next := cam.WorldToScreen(b.orbitPoint(i+1), width, height)
		if walkable(prev) && walkable(next) {
			gfx.DrawLine(f,
				int(prev.X()), int(prev.Y()),
				int(next.X()), int(next.Y()),
				prev.Z(), gfx.OrbitGray)
		}
		prev = next
	}
}

func walkable(s mgl32.Vec3) bool {
	if gfx.Behind(s) {
		return false
	}
	return s.X() > -maxWalk && s.X() < maxWalk && s.Y() > -maxWalk && s.Y() < maxWalk
}

func (b *Body) orbitPoint(i int) mgl32.Vec3 {
	angle := float64(i%orbitSteps) / orbitSteps * twoPi
	s, c := math.Sincos(angle)
	return mgl32.Vec3{b.OrbitRadius * float32(c), 0, b.OrbitRadius * float32(s)}
}
