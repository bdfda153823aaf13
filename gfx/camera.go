package gfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinZoom = 0.1
	MaxZoom = 10.0

	// PitchLimit keeps the view direction away from the poles.
	PitchLimit = math.Pi/2 - 0.1
)

// WorldUp is the fixed up axis used to rebuild the camera basis.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Camera is a free-flying yaw/pitch camera with a zoom factor.
//
// Front, Right and Up are always rebuilt from Yaw and Pitch after a
// rotation, so the basis stays orthonormal however many small rotations
// are applied.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3

	Yaw   float32
	Pitch float32

	ZoomFactor float32

	changed   bool
	observers []func(*Camera)
}

// NewCamera builds a camera at position looking at target.
//
// Pitch is stored so that rebuilding the basis from (Yaw, Pitch) reproduces
// the initial view direction. A view steeper than PitchLimit is pulled back
// to the limit.
func NewCamera(position, target, up mgl32.Vec3) *Camera {
	front := target.Sub(position).Normalize()
	right := front.Cross(up).Normalize()
	up = right.Cross(front).Normalize()

	c := &Camera{
		Position:   position,
		Front:      front,
		Up:         up,
		Right:      right,
		Yaw:        float32(math.Atan2(float64(front.Z()), float64(front.X()))),
		Pitch:      float32(math.Asin(float64(mgl32.Clamp(front.Y(), -1, 1)))),
		ZoomFactor: 1.0,
		changed:    true,
	}
	c.clampInitialPitch()
	return c
}

// clampInitialPitch brings a near-vertical starting view inside
// ±PitchLimit and rebuilds the basis to match.
func (c *Camera) clampInitialPitch() {
	if p := mgl32.Clamp(c.Pitch, -PitchLimit, PitchLimit); p != c.Pitch {
		c.Pitch = p
		c.updateVectors()
	}
}

// OnChange registers fn to be called after every mutation.
func (c *Camera) OnChange(fn func(*Camera)) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

func (c *Camera) markChanged() {
	c.changed = true
	for _, fn := range c.observers {
		fn(c)
	}
}

// CheckIfChanged reports whether the camera changed since the last call.
func (c *Camera) CheckIfChanged() bool {
	if !c.changed {
		return false
	}
	c.changed = false
	return true
}

func (c *Camera) MoveForward(delta float32) {
	c.Position = c.Position.Add(c.Front.Mul(delta))
	c.markChanged()
}

func (c *Camera) MoveRight(delta float32) {
	c.Position = c.Position.Add(c.Right.Mul(delta))
	c.markChanged()
}

// MoveUp translates along world +Y regardless of orientation.
func (c *Camera) MoveUp(delta float32) {
	c.Position = c.Position.Add(mgl32.Vec3{0, delta, 0})
	c.markChanged()
}

func (c *Camera) Rotate(yawDelta, pitchDelta float32) {
	c.Yaw += yawDelta
	c.Pitch = mgl32.Clamp(c.Pitch+pitchDelta, -PitchLimit, PitchLimit)
	c.updateVectors()
	c.markChanged()
}

func (c *Camera) updateVectors() {
	sy, cy := math.Sincos(float64(c.Yaw))
	sp, cp := math.Sincos(float64(c.Pitch))
	c.Front = mgl32.Vec3{
		float32(cy * cp),
		float32(sp),
		float32(sy * cp),
	}.Normalize()
	c.Right = c.Front.Cross(WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// Zoom scales the zoom factor by factor, clamped to [MinZoom, MaxZoom].
func (c *Camera) Zoom(factor float32) {
	c.ZoomFactor = mgl32.Clamp(c.ZoomFactor*factor, MinZoom, MaxZoom)
	c.markChanged()
}

// WorldToScreen projects p onto a width×height screen.
//
// The result holds the pixel coordinates in X and Y and the forward
// projection (distance along the view axis) in Z. Points at or behind the
// camera return (-1, -1, forward); check with Behind before plotting.
func (c *Camera) WorldToScreen(p mgl32.Vec3, width, height float32) mgl32.Vec3 {
	rel := p.Sub(c.Position)

	rightProj := rel.Dot(c.Right.Normalize())
	upProj := rel.Dot(c.Up.Normalize())
	forwardProj := rel.Dot(c.Front.Normalize())

	if forwardProj <= 0 {
		return mgl32.Vec3{-1, -1, forwardProj}
	}

	scale := c.ZoomFactor / forwardProj
	return mgl32.Vec3{
		width/2 + rightProj*scale*width/2,
		height/2 - upProj*scale*height/2,
		forwardProj,
	}
}

// Behind reports whether s is the off-screen result WorldToScreen returns
// for points at or behind the camera.
func Behind(s mgl32.Vec3) bool {
	return s.Z() <= 0
}

// OnScreen reports whether the projected point s lies inside a width×height
// screen.
func OnScreen(s mgl32.Vec3, width, height float32) bool {
	return !Behind(s) && s.X() >= 0 && s.X() < width && s.Y() >= 0 && s.Y() < height
}
