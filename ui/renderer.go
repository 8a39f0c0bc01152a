package ui

import (
	"log"

	"github.com/veandco/go-sdl2/sdl"
)

// CreateRenderer creates an accelerated, vsynced renderer for window and
// falls back to the software renderer
func CreateRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	currentDriver, err := sdl.GetCurrentVideoDriver()
	if err != nil {
		currentDriver = "unknown"
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		log.Printf("Hardware acceleration failed for %s driver, trying software: %v", currentDriver, err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, err
		}
	}

	// Alpha blending for the hover underlay and tinted glyphs
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	return renderer, nil
}
