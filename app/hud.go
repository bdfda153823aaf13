package app

import (
	"fmt"

	"orrery/gfx"
	"orrery/internal/buildinfo"
	"orrery/solar"
)

const (
	hudMargin   = 4
	hudFPSEvery = 0.5 // seconds
)

var hudColor = gfx.RGB(0xC0, 0xC0, 0xC0)

// hud is the text overlay: build id, frame rate, zoom, camera position and
// optional body labels.
type hud struct {
	text *gfx.TextWriter

	title   string
	fpsLine string
	camLine string

	// camReformats counts how often camLine was rebuilt.
	camReformats int

	acc    float32
	frames int
	fps    float32
}

func newHUD() *hud {
	return &hud{
		text:    gfx.NewTextWriter(),
		title:   buildinfo.Title(),
		fpsLine: "fps --",
	}
}

// tick accumulates frame timing. The fps figure is refreshed twice a second.
func (h *hud) tick(dt float32) {
	h.acc += dt
	h.frames++
	if h.acc >= hudFPSEvery {
		h.fps = float32(h.frames) / h.acc
		h.fpsLine = fmt.Sprintf("fps %.0f", h.fps)
		h.acc = 0
		h.frames = 0
	}
}

// track rebuilds the camera line only when the camera reports a change.
func (h *hud) track(cam *gfx.Camera) {
	if !cam.CheckIfChanged() && h.camLine != "" {
		return
	}
	p := cam.Position
	h.camLine = fmt.Sprintf("cam %.0f %.0f %.0f  zoom %.2f", p.X(), p.Y(), p.Z(), cam.ZoomFactor)
	h.camReformats++
}

func (h *hud) draw(f *gfx.Framebuffer, cam *gfx.Camera, sys *solar.System, labels bool) {
	if labels {
		h.drawLabels(f, cam, sys)
	}

	lh := h.text.LineHeight()
	y := hudMargin
	for _, line := range []string{h.title, h.fpsLine, h.camLine} {
		h.text.WriteLine(f, hudMargin, y, line, hudColor)
		y += lh
	}
}

func (h *hud) drawLabels(f *gfx.Framebuffer, cam *gfx.Camera, sys *solar.System) {
	w, ht := float32(f.Width()), float32(f.Height())
	label := func(b *solar.Body) {
		if b.Name == "" {
			return
		}
		s := cam.WorldToScreen(b.Position, w, ht)
		if !gfx.OnScreen(s, w, ht) {
			return
		}
		x := int(s.X() + b.Radius*cam.ZoomFactor + 3)
		y := int(s.Y()) - h.text.LineHeight()/2
		h.text.WriteLine(f, x, y, b.Name, b.Color)
	}
	label(sys.Central())
	for _, b := range sys.Bodies() {
		label(b)
	}
}
