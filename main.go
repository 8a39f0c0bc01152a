package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"bundle-launcher/pkg/performance"
	"bundle-launcher/pkg/settings"
	"bundle-launcher/screens/launcher"
	"bundle-launcher/ui"
)

const (
	targetFPS     = 60
	reportWindow  = 120
	reportEvery   = 30 * time.Second
	exitResumeErr = 1
)

func main() {
	// SDL must stay on the thread that initialised it
	runtime.LockOSThread()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := settings.Load()
	if err != nil {
		log.Printf("Warning: env file not loaded, using environment only: %v", err)
	}

	if err := initializeSDL2(); err != nil {
		log.Fatalf("Failed to initialize SDL2: %v", err)
	}

	log.Printf("Starting %s | Resolution: %dx%d | Bundles: %s", cfg.Title, cfg.Width, cfg.Height, cfg.BundlesDir)

	window, err := createWindow(cfg)
	if err != nil {
		sdl.Quit()
		log.Fatalf("Failed to create window: %v", err)
	}

	renderer, err := ui.CreateRenderer(window)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		log.Fatalf("Failed to create renderer: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	screen := launcher.NewLauncherScreen(ctx, window, renderer, cfg)
	runErr := runLoop(ctx, screen)

	// The screen may have replaced the renderer during a launch
	screen.Close()
	screen.DestroyRenderer()
	window.Destroy()
	sdl.Quit()
	stop()

	if runErr != nil {
		log.Printf("Error: %v", runErr)
		os.Exit(exitResumeErr)
	}
	log.Printf("%s shutting down...", cfg.Title)
}

// initializeSDL2 tries the driver named in SDL_VIDEODRIVER first, then lets
// SDL pick
func initializeSDL2() error {
	var drivers []string
	if env := os.Getenv("SDL_VIDEODRIVER"); env != "" {
		log.Printf("Using environment SDL_VIDEODRIVER: %s", env)
		drivers = append(drivers, env)
	}
	drivers = append(drivers, "")

	for _, driver := range drivers {
		if driver != "" {
			sdl.SetHint(sdl.HINT_VIDEODRIVER, driver)
		} else {
			sdl.SetHint(sdl.HINT_VIDEODRIVER, "")
			os.Unsetenv("SDL_VIDEODRIVER")
		}

		if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
			log.Printf("SDL2 initialization failed with driver %q: %v", driver, err)
			sdl.Quit()
			continue
		}

		name, _ := sdl.GetCurrentVideoDriver()
		log.Printf("SDL2 successfully initialized with %s driver", name)
		return nil
	}

	return errors.New("all SDL2 video drivers failed")
}

// createWindow opens a resizable centred window, or a fullscreen one
func createWindow(cfg settings.Config) (*sdl.Window, error) {
	var flags uint32 = sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE
	if cfg.Fullscreen {
		flags = sdl.WINDOW_SHOWN | sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		cfg.Width,
		cfg.Height,
		flags,
	)
	if err != nil {
		return nil, fmt.Errorf("create window %dx%d: %w", cfg.Width, cfg.Height, err)
	}
	return window, nil
}

// runLoop polls events, updates and draws until the screen stops or the
// process is signalled
func runLoop(ctx context.Context, screen *launcher.LauncherScreen) error {
	pacer := performance.NewFramePacer(targetFPS, reportWindow)
	lastReport := time.Now()

	for screen.Running() {
		if ctx.Err() != nil {
			log.Printf("Interrupted, exiting")
			return nil
		}

		frameStart := time.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if !screen.HandleEvent(event) {
				break
			}
		}

		if err := screen.Update(); err != nil {
			return err
		}
		if err := screen.Draw(); err != nil {
			log.Printf("Warning: draw failed: %v", err)
		}

		// A launch blocks inside HandleEvent; do not count that as a slow frame
		if screen.ConsumeLaunched() {
			pacer.Reset()
			lastReport = time.Now()
			continue
		}

		sdl.Delay(uint32(pacer.Record(time.Since(frameStart)).Milliseconds()))

		if time.Since(lastReport) >= reportEvery {
			r := pacer.Report()
			log.Printf("Frame stats | avg=%.2fms | frames=%d | slow=%d", r.AvgFrameMs, r.Frames, r.SlowFrames)
			lastReport = time.Now()
		}
	}

	return screen.Err()
}
