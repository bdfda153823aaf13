package app

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"orrery/gfx"
	"orrery/hal"
)

func lookDownZ() *gfx.Camera {
	return gfx.NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

func TestApplyControlsMovement(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		key  hal.Key
		want mgl32.Vec3
	}{
		{hal.KeyForward, mgl32.Vec3{0, 0, -40}},
		{hal.KeyBackward, mgl32.Vec3{0, 0, 60}},
		{hal.KeyStrafeLeft, mgl32.Vec3{-50, 0, 10}},
		{hal.KeyStrafeRight, mgl32.Vec3{50, 0, 10}},
		{hal.KeyUp, mgl32.Vec3{0, 50, 10}},
		{hal.KeyDown, mgl32.Vec3{0, -50, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			cam := lookDownZ()
			quit := applyControls(cam, hal.NewKeySet(tt.key), 0.5, cfg)
			assert.False(t, quit)
			assert.True(t, cam.Position.ApproxEqualThreshold(tt.want, 1e-3), "got %v", cam.Position)
		})
	}
}

func TestApplyControlsRotation(t *testing.T) {
	cfg := DefaultConfig()

	cam := lookDownZ()
	yaw := cam.Yaw
	applyControls(cam, hal.NewKeySet(hal.KeyRotateLeft), 0.1, cfg)
	assert.InDelta(t, yaw-0.15, cam.Yaw, 1e-5)

	cam = lookDownZ()
	applyControls(cam, hal.NewKeySet(hal.KeyRotateRight), 0.1, cfg)
	assert.InDelta(t, yaw+0.15, cam.Yaw, 1e-5)

	cam = lookDownZ()
	applyControls(cam, hal.NewKeySet(hal.KeyRotateUp), 0.1, cfg)
	assert.InDelta(t, 0.15, cam.Pitch, 1e-5)
	assert.Greater(t, cam.Front.Y(), float32(0))

	cam = lookDownZ()
	applyControls(cam, hal.NewKeySet(hal.KeyRotateDown), 0.1, cfg)
	assert.InDelta(t, -0.15, cam.Pitch, 1e-5)
}

func TestApplyControlsZoom(t *testing.T) {
	cfg := DefaultConfig()

	cam := lookDownZ()
	applyControls(cam, hal.NewKeySet(hal.KeyZoomIn), 0.25, cfg)
	assert.InDelta(t, 1.25, cam.ZoomFactor, 1e-6)

	cam = lookDownZ()
	applyControls(cam, hal.NewKeySet(hal.KeyZoomOut), 0.25, cfg)
	assert.InDelta(t, 0.75, cam.ZoomFactor, 1e-6)

	cam = lookDownZ()
	applyControls(cam, hal.NewKeySet(hal.KeyZoomOut), 2, cfg)
	assert.Equal(t, float32(gfx.MinZoom), cam.ZoomFactor)
}

func TestApplyControlsQuitLeavesCameraAlone(t *testing.T) {
	cam := lookDownZ()
	cam.CheckIfChanged()

	quit := applyControls(cam, hal.NewKeySet(hal.KeyQuit, hal.KeyForward), 1, DefaultConfig())
	assert.True(t, quit)
	assert.Equal(t, mgl32.Vec3{0, 0, 10}, cam.Position)
	assert.False(t, cam.CheckIfChanged())
}

func TestApplyControlsNoKeys(t *testing.T) {
	cam := lookDownZ()
	cam.CheckIfChanged()
	assert.False(t, applyControls(cam, nil, 1, DefaultConfig()))
	assert.False(t, cam.CheckIfChanged())
}
