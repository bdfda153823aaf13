package app

import (
	"orrery/gfx"
	"orrery/hal"
)

// applyControls mutates cam for the keys held this frame and reports whether
// quit was requested. Movement scales with dt so speed is frame-rate
// independent.
func applyControls(cam *gfx.Camera, keys *hal.KeySet, dt float32, cfg Config) (quit bool) {
	if keys.Has(hal.KeyQuit) {
		return true
	}

	move := cfg.MoveSpeed * dt
	turn := cfg.RotateSpeed * dt

	if keys.Has(hal.KeyForward) {
		cam.MoveForward(move)
	}
	if keys.Has(hal.KeyBackward) {
		cam.MoveForward(-move)
	}
	if keys.Has(hal.KeyStrafeLeft) {
		cam.MoveRight(-move)
	}
	if keys.Has(hal.KeyStrafeRight) {
		cam.MoveRight(move)
	}
	if keys.Has(hal.KeyUp) {
		cam.MoveUp(move)
	}
	if keys.Has(hal.KeyDown) {
		cam.MoveUp(-move)
	}

	if keys.Has(hal.KeyRotateLeft) {
		cam.Rotate(-turn, 0)
	}
	if keys.Has(hal.KeyRotateRight) {
		cam.Rotate(turn, 0)
	}
	if keys.Has(hal.KeyRotateUp) {
		cam.Rotate(0, turn)
	}
	if keys.Has(hal.KeyRotateDown) {
		cam.Rotate(0, -turn)
	}

	if keys.Has(hal.KeyZoomIn) {
		cam.Zoom(1 + dt)
	}
	if keys.Has(hal.KeyZoomOut) {
		cam.Zoom(1 - dt)
	}
	return false
}
