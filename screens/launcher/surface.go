package launcher

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"bundle-launcher/pkg/performance"
	"bundle-launcher/ui"
)

// Suspend tears the render context down before an external program runs.
// Textures die with their renderer, so icons and the font go first.
func (ls *LauncherScreen) Suspend() error {
	ls.catalog.ReleaseIcons()
	ls.font.Close()

	if ls.renderer != nil {
		if err := ls.renderer.Destroy(); err != nil {
			log.Printf("Warning: destroying renderer: %v", err)
		}
		ls.renderer = nil
	}

	ls.window.Hide()
	performance.LogMemorySnapshot("suspended")
	return nil
}

// Resume rebuilds the render context and everything bound to it
func (ls *LauncherScreen) Resume() error {
	ls.window.Show()
	ls.window.Raise()

	renderer, err := ui.CreateRenderer(ls.window)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	ls.renderer = renderer

	ls.loadFont()
	ls.catalog.SetLoader(ui.NewIconLoader(renderer))
	ls.catalog.ReloadIcons()

	// Input that queued up while the bundle ran is stale
	sdl.FlushEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
	ls.keyTracker.Reset()
	ls.list.View().ClearHover()
	performance.LogMemorySnapshot("resumed")
	return nil
}
