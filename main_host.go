package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"orrery/app"
	"orrery/hal"
)

func main() {
	cfg := app.DefaultConfig()

	var (
		headless    hal.HeadlessConfig
		runHeadless bool
		termMode    bool
		scale       int
	)
	flag.BoolVar(&runHeadless, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&termMode, "term", false, "Render into the terminal instead of a window.")
	flag.BoolVar(&cfg.Depth, "depth", false, "Depth-test pixels instead of painting in draw order.")
	flag.BoolVar(&cfg.HUD, "hud", true, "Draw the text overlay.")
	flag.BoolVar(&cfg.Labels, "labels", false, "Label bodies by name (needs -hud).")
	flag.IntVar(&scale, "scale", 1, "Window scale factor.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	newApp := func(h hal.HAL) hal.StepFunc { return app.New(h, cfg) }

	var err error
	switch {
	case runHeadless:
		headless.Width, headless.Height = cfg.Width, cfg.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, headless)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	case termMode:
		err = hal.RunTerminal(hal.TerminalConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			FPS:    headless.Hz,
			Log:    os.Stderr,
		}, newApp)
	default:
		err = hal.RunWindow(hal.WindowConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			Scale:  scale,
			TPS:    headless.Hz,
		}, newApp)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
