package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"runtime"

	"ropepen/internal/config"
	"ropepen/internal/game"
	"ropepen/internal/graphics"
	standardInput "ropepen/internal/input"
	"ropepen/internal/rng"
	"ropepen/internal/sim"
	"ropepen/internal/tty"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

// defaultHeadlessTicks is ten seconds of simulated time.
const defaultHeadlessTicks = 10 * sim.TickRate

var (
	mode        = flag.String("mode", "gl", "Front end: gl, tty or headless")
	seed        = flag.Int64("seed", 0, "Random seed (0 = from the clock)")
	animals     = flag.Int("animals", config.Default().Animals, "Number of animals to spawn")
	fpsLimit    = flag.Int("fps", 60, "Frame rate cap for the gl front end (10-240)")
	maxTicks    = flag.Int("max-ticks", 0, "Stop after N ticks in any mode (0 = run until quit; headless defaults to 600)")
	logInterval = flag.Int("log", 0, "Log world state every N ticks (0 = disabled)")
	assetsDir   = flag.String("assets", "assets", "Directory holding shaders/")
)

func init() {
	// GLFW calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	flag.Parse()
	log.SetPrefix("ropepen: ")
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	cfg := config.Default()
	cfg.Animals = *animals
	cfg.Seed = *seed
	config.SetFPSLimit(*fpsLimit)

	src, used := rng.New(cfg.Seed)
	w, err := sim.New(cfg, src)
	if err != nil {
		closer.Fatalln(err)
	}
	log.Printf("seed %d, %d animals, mode %s", used, len(w.Animals), *mode)

	// On a signal closer runs hooks off the main thread and exits once they
	// return, so the hook only cancels the loop and waits for its teardown.
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	closer.Bind(func() {
		cancel()
		<-done
	})

	switch *mode {
	case "gl":
		err = runGL(ctx, w, *maxTicks)
	case "tty":
		err = runTTY(ctx, w, *maxTicks)
	case "headless":
		runHeadless(ctx, w, *maxTicks, *logInterval)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	log.Printf("stopped: %s", w.Summary())
	close(done)
	if err != nil {
		closer.Fatalln(err)
	}
}

func runGL(ctx context.Context, w *sim.World, ticks int) error {
	graphics.ShadersDir = filepath.Join(*assetsDir, "shaders")

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(game.WindowWidth, game.WindowHeight, game.WindowTitle)
	if err != nil {
		return err
	}
	defer window.Destroy()

	app, err := game.NewApp(window, standardInput.NewInputManager(), w)
	if err != nil {
		return err
	}
	defer app.Close()

	app.Run(ctx, ticks)
	return nil
}

func runTTY(ctx context.Context, w *sim.World, ticks int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	tty.New(screen, w).Run(ctx, ticks)
	return nil
}

func runHeadless(ctx context.Context, w *sim.World, ticks, logEvery int) {
	if ticks <= 0 {
		ticks = defaultHeadlessTicks
	}
	stats := sim.RunHeadless(ctx, w, ticks, logEvery, log.Printf)
	log.Printf("ran %d ticks in %v, %d contacts", stats.Frames, stats.Elapsed, stats.Contacts)
}
