package launcher

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"bundle-launcher/pkg/catalog"
	"bundle-launcher/pkg/input"
	"bundle-launcher/pkg/launch"
	"bundle-launcher/pkg/settings"
	"bundle-launcher/ui"
	"bundle-launcher/widgets/bundlelist"
)

// Background colour behind the list
var backgroundColor = sdl.Color{R: 12, G: 8, B: 16, A: 255}

// NewLauncherScreen creates the screen and runs the first catalog scan
func NewLauncherScreen(ctx context.Context, window *sdl.Window, renderer *sdl.Renderer, cfg settings.Config) *LauncherScreen {
	width, height := window.GetSize()

	ls := &LauncherScreen{
		ctx:        ctx,
		cfg:        cfg,
		window:     window,
		renderer:   renderer,
		list:       bundlelist.NewWidget(width, height),
		keyTracker: input.NewKeyPressTracker(),
	}

	ls.loadFont()

	ls.catalog = catalog.New(catalog.Options{
		BundleExt:      cfg.BundleExt,
		IconEntry:      cfg.IconEntry,
		ManifestSuffix: cfg.ManifestSuffix,
		CacheDir:       cfg.CacheDir,
	}, ui.NewIconLoader(renderer))

	ls.session = launch.NewSession(cfg.LaunchCommand, ls, launch.ExecRunner{})
	ls.session.OnTransition = func(from, to launch.State) {
		log.Printf("Launch state %s -> %s", from, to)
	}

	ls.Rescan()
	return ls
}

// loadFont (re)builds the glyph atlas for the current renderer. A failure
// leaves a font that draws nothing.
func (ls *LauncherScreen) loadFont() {
	font, err := ui.LoadBitmapFont(ls.renderer)
	if err != nil {
		log.Printf("Warning: %v; text will not be drawn", err)
	}
	ls.font = font
}

// Rescan rebuilds the catalog from the bundles directory
func (ls *LauncherScreen) Rescan() {
	entries, err := ls.catalog.Scan(ls.cfg.BundlesDir)
	ls.list.SetEntries(entries)

	switch {
	case errors.Is(err, catalog.ErrDirectoryNotFound):
		log.Printf("Warning: %v", err)
		ls.list.SetMessage(fmt.Sprintf("Bundles directory not found: %s", ls.cfg.BundlesDir))
	case err != nil:
		log.Printf("Warning: scan failed: %v", err)
		ls.list.SetMessage("Could not read the bundles directory")
	case len(entries) == 0:
		ls.list.SetMessage(fmt.Sprintf("No %s files in %s", ls.cfg.BundleExt, ls.cfg.BundlesDir))
	default:
		ls.list.SetMessage("")
	}
}

// HandleEvent applies one SDL event. It returns false once the launcher should exit.
func (ls *LauncherScreen) HandleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		ls.quit = true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			ls.list.Resize(e.Data1, e.Data2)
		case sdl.WINDOWEVENT_LEAVE:
			ls.list.View().ClearHover()
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			ls.keyTracker.Reset()
		}

	case *sdl.MouseWheelEvent:
		delta := e.Y
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			delta = -delta
		}
		ls.list.Scroll(delta)

	case *sdl.MouseMotionEvent:
		ls.list.Hover(e.X, e.Y)

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
			if i, entry, ok := ls.list.Click(e.X, e.Y); ok {
				ls.launchEntry(i, entry)
			}
		}
	}

	return !ls.quit
}

// Keys handled by Update, checked in this order each frame
var navigationKeys = []int{
	int(sdl.SCANCODE_ESCAPE),
	int(sdl.SCANCODE_UP),
	int(sdl.SCANCODE_DOWN),
	int(sdl.SCANCODE_PAGEUP),
	int(sdl.SCANCODE_PAGEDOWN),
	int(sdl.SCANCODE_HOME),
	int(sdl.SCANCODE_END),
	int(sdl.SCANCODE_F5),
	int(sdl.SCANCODE_RETURN),
}

// Update handles polled keyboard input. It returns an error when the UI
// could not be rebuilt after a launch.
func (ls *LauncherScreen) Update() error {
	if ls.resumeErr != nil {
		return ls.resumeErr
	}

	view := ls.list.View()
	for _, code := range ls.keyTracker.Pressed(sdl.GetKeyboardState(), navigationKeys...) {
		switch code {
		case int(sdl.SCANCODE_ESCAPE):
			ls.quit = true
		case int(sdl.SCANCODE_UP):
			view.Scroll(1)
		case int(sdl.SCANCODE_DOWN):
			view.Scroll(-1)
		case int(sdl.SCANCODE_PAGEUP):
			view.Page(1)
		case int(sdl.SCANCODE_PAGEDOWN):
			view.Page(-1)
		case int(sdl.SCANCODE_HOME):
			view.ScrollToRow(0)
		case int(sdl.SCANCODE_END):
			view.ScrollToRow(view.Rows() - 1)
		case int(sdl.SCANCODE_F5):
			ls.Rescan()
		case int(sdl.SCANCODE_RETURN):
			if i, ok := view.Hovered(); ok {
				if entry, ok := ls.catalog.Entry(i); ok {
					ls.launchEntry(i, entry)
				}
			}
		}
		if ls.resumeErr != nil {
			break
		}
	}

	return ls.resumeErr
}

// Running reports whether the loop should continue
func (ls *LauncherScreen) Running() bool {
	return !ls.quit && ls.resumeErr == nil
}

// Draw renders the complete frame
func (ls *LauncherScreen) Draw() error {
	if ls.renderer == nil {
		return nil
	}

	ls.renderer.SetDrawColor(backgroundColor.R, backgroundColor.G, backgroundColor.B, backgroundColor.A)
	ls.renderer.Clear()

	if err := ls.list.Draw(ls.renderer, ls.font); err != nil {
		return err
	}

	ls.renderer.Present()
	return nil
}

// Err returns the error that stopped the screen, if any
func (ls *LauncherScreen) Err() error {
	return ls.resumeErr
}

// ConsumeLaunched reports whether a launch ran since the last call
func (ls *LauncherScreen) ConsumeLaunched() bool {
	launched := ls.launched
	ls.launched = false
	return launched
}

func (ls *LauncherScreen) launchEntry(index int, entry *catalog.Entry) {
	log.Printf("Launch requested | index=%d | bundle=%s", index, entry.FileName)

	ls.launched = true
	err := ls.session.Launch(ls.ctx, entry.Path)
	switch {
	case errors.Is(err, launch.ErrResumeFailed):
		log.Printf("Error: %v", err)
		ls.resumeErr = err
	case err != nil:
		log.Printf("Warning: launch of %s failed: %v", entry.FileName, err)
	}
}

// Close releases every texture the screen owns
func (ls *LauncherScreen) Close() {
	if ls.catalog != nil {
		ls.catalog.Close()
	}
	ls.font.Close()
}

// DestroyRenderer destroys the current renderer, which may differ from the
// one the screen was created with
func (ls *LauncherScreen) DestroyRenderer() {
	if ls.renderer == nil {
		return
	}
	ls.renderer.Destroy()
	ls.renderer = nil
}
