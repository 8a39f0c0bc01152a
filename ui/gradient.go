package ui

import "github.com/veandco/go-sdl2/sdl"

// DrawGradientRect fills a rectangle with a left-to-right gradient. Alpha is
// interpolated too, so the underlay can fade into the background.
func DrawGradientRect(renderer *sdl.Renderer, rect sdl.Rect, start, end sdl.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}

	for i := int32(0); i < rect.W; i++ {
		t := 0.0
		if rect.W > 1 {
			t = float64(i) / float64(rect.W-1)
		}

		renderer.SetDrawColor(lerp(start.R, end.R, t), lerp(start.G, end.G, t), lerp(start.B, end.B, t), lerp(start.A, end.A, t))
		renderer.DrawLine(rect.X+i, rect.Y, rect.X+i, rect.Y+rect.H-1)
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}
