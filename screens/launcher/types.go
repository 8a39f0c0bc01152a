package launcher

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"

	"bundle-launcher/pkg/catalog"
	"bundle-launcher/pkg/input"
	"bundle-launcher/pkg/launch"
	"bundle-launcher/pkg/settings"
	"bundle-launcher/ui"
	"bundle-launcher/widgets/bundlelist"
)

// LauncherScreen owns all application state for the single launcher screen.
// It is only touched from the thread running the event loop.
type LauncherScreen struct {
	ctx context.Context
	cfg settings.Config

	// SDL2 rendering; renderer is nil while a bundle is running
	window   *sdl.Window
	renderer *sdl.Renderer

	font    *ui.BitmapFont
	catalog *catalog.Catalog
	list    *bundlelist.Widget
	session *launch.Session

	// resumeErr is set when the UI could not be rebuilt after a launch
	resumeErr error
	quit      bool
	// launched is set when a launch blocked the loop since the last frame
	launched bool

	keyTracker input.KeyPressTracker
}
