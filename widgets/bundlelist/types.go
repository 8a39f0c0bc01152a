package bundlelist

import "github.com/veandco/go-sdl2/sdl"

// Row layout inside the fixed-height list row
const (
	iconMargin  = 8
	iconSize    = 48
	labelX      = 70
	nameX       = 120
	rightMargin = 16
	textScale   = 2
)

var (
	iconPlaceholderColor = sdl.Color{R: 99, G: 102, B: 241, A: 255}
	hoverStartColor      = sdl.Color{R: 59, G: 130, B: 246, A: 200}
	hoverEndColor        = sdl.Color{R: 30, G: 41, B: 59, A: 0}
	separatorColor       = sdl.Color{R: 30, G: 41, B: 59, A: 255}
	labelColor           = sdl.Color{R: 148, G: 163, B: 184, A: 255}
	nameColor            = sdl.Color{R: 255, G: 255, B: 255, A: 255}
	messageColor         = sdl.Color{R: 148, G: 163, B: 184, A: 255}
)
