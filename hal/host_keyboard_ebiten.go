//go:build cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

var ebitenKeys = []struct {
	phys ebiten.Key
	key  Key
}{
	{ebiten.KeyW, KeyForward},
	{ebiten.KeyS, KeyBackward},
	{ebiten.KeyA, KeyStrafeLeft},
	{ebiten.KeyD, KeyStrafeRight},
	{ebiten.KeySpace, KeyUp},
	{ebiten.KeyShiftLeft, KeyDown},
	{ebiten.KeyArrowLeft, KeyRotateLeft},
	{ebiten.KeyArrowRight, KeyRotateRight},
	{ebiten.KeyArrowUp, KeyRotateUp},
	{ebiten.KeyArrowDown, KeyRotateDown},
	{ebiten.KeyQ, KeyZoomIn},
	{ebiten.KeyE, KeyZoomOut},
}

func (k *hostKeyboard) poll() {
	keys := make([]Key, 0, len(ebitenKeys)+1)
	for _, m := range ebitenKeys {
		if ebiten.IsKeyPressed(m.phys) {
			keys = append(keys, m.key)
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		keys = append(keys, KeyQuit)
	}
	k.set(keys...)
}
