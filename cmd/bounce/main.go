package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/render"
	"github.com/lixenwraith/bounce/vmath"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, debug, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "bounce: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "bounce: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags builds a validated Config from command-line arguments
func parseFlags(args []string) (engine.Config, bool, error) {
	cfg := engine.DefaultConfig()
	fs := flag.NewFlagSet("bounce", flag.ContinueOnError)

	var (
		ballColor   = fs.String("ball-color", render.Hex(cfg.BallColor), "ball color (#rrggbb)")
		paddleColor = fs.String("paddle-color", render.Hex(cfg.PaddleColor), "paddle color (#rrggbb)")
		wallColor   = fs.String("wall-color", render.Hex(cfg.WallColor), "wall color (#rrggbb)")
		debug       = fs.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	)
	fs.Float64Var(&cfg.BallSpeed, "speed", cfg.BallSpeed, "ball speed in cells per millisecond")
	fs.Float64Var(&cfg.BallSize, "ball-size", cfg.BallSize, "ball width and height in cells")
	fs.Float64Var(&cfg.PaddleHeight, "paddle-height", cfg.PaddleHeight, "paddle height in cells")
	fs.Float64Var(&cfg.PaddleSpeed, "paddle-speed", cfg.PaddleSpeed, "paddle tracking speed in cells per millisecond")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed for serve directions (0 = time based)")

	if err := fs.Parse(args); err != nil {
		return cfg, false, err
	}

	for _, c := range []struct {
		dst *core.RGB
		src string
	}{
		{&cfg.BallColor, *ballColor},
		{&cfg.PaddleColor, *paddleColor},
		{&cfg.WallColor, *wallColor},
	} {
		rgb, err := render.ParseColor(c.src)
		if err != nil {
			return cfg, false, err
		}
		*c.dst = rgb
	}

	if err := cfg.Validate(); err != nil {
		return cfg, false, err
	}
	return cfg, *debug, nil
}

func run(cfg engine.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[CONFIG] seed %d speed %.3f fps %d ball %s", seed, cfg.BallSpeed, cfg.FPS, render.Hex(cfg.BallColor))

	w, h := screen.Size()
	driver := engine.NewDriver(cfg, float64(w), float64(h), vmath.NewFastRand(seed))
	loop := engine.NewLoop(screen, driver, engine.NewMonotonicTimeProvider(), cfg.FPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
