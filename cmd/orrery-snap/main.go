// Command orrery-snap renders one frame of the default system after a given
// amount of simulated time and writes it as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"orrery/app"
)

func main() {
	var (
		seconds = flag.Float64("t", 0, "Simulated seconds before the snapshot.")
		step    = flag.Float64("step", 1.0/60, "Simulation step in seconds.")
		outPath = flag.String("o", "orrery.png", "Output PNG path.")
		depth   = flag.Bool("depth", false, "Depth-test pixels instead of painting in draw order.")
		hud     = flag.Bool("hud", false, "Draw the text overlay.")
		labels  = flag.Bool("labels", false, "Label bodies by name (needs -hud).")
	)
	flag.Parse()

	if *seconds < 0 || *step <= 0 {
		fatalf("usage: orrery-snap [-t seconds] [-step seconds] [-o out.png] [-depth] [-hud] [-labels]")
	}

	cfg := app.DefaultConfig()
	cfg.Depth = *depth
	cfg.HUD = *hud
	cfg.Labels = *labels

	if err := snapshot(cfg, float32(*seconds), float32(*step), *outPath); err != nil {
		fatalf("snapshot: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func snapshot(cfg app.Config, seconds, step float32, outPath string) error {
	sc, err := app.NewScene(cfg)
	if err != nil {
		return err
	}
	sc.Advance(seconds, step)
	sc.Render()

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", outPath, err)
	}
	if err := png.Encode(f, sc.Frame.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", outPath, err)
	}
	return nil
}
