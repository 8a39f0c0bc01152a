package ui

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"bundle-launcher/pkg/glyphs"
)

// ErrFontLoadFailed means the glyph atlas could not be turned into a texture
var ErrFontLoadFailed = errors.New("font load failed")

// BitmapFont draws printable ASCII from a single glyph atlas texture.
// A font that failed to load, or was closed, draws nothing.
type BitmapFont struct {
	texture *sdl.Texture
	atlas   glyphs.Atlas
}

// LoadBitmapFont builds the atlas texture for renderer. On failure the
// returned font is still usable as a no-op and the error wraps
// ErrFontLoadFailed.
func LoadBitmapFont(renderer *sdl.Renderer) (*BitmapFont, error) {
	font := &BitmapFont{}

	img, atlas, err := glyphs.BasicAtlasImage()
	if err != nil {
		return font, fmt.Errorf("%w: %v", ErrFontLoadFailed, err)
	}

	// Nearest-neighbour sampling keeps scaled glyphs crisp
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	texture, err := TextureFromImage(renderer, img)
	if err != nil {
		return font, fmt.Errorf("%w: %v", ErrFontLoadFailed, err)
	}

	font.texture = texture
	font.atlas = atlas
	return font, nil
}

// Ready reports whether the font will draw anything
func (f *BitmapFont) Ready() bool {
	return f != nil && f.texture != nil
}

// Atlas returns the glyph metrics
func (f *BitmapFont) Atlas() glyphs.Atlas {
	if f == nil {
		return glyphs.Atlas{}
	}
	return f.atlas
}

// Draw renders text tinted with color. Characters outside printable ASCII
// are drawn as '?'. When opts.Viewport is empty the renderer's output size
// is used for culling.
func (f *BitmapFont) Draw(renderer *sdl.Renderer, text string, opts glyphs.Options, color sdl.Color) {
	if !f.Ready() || renderer == nil {
		return
	}

	if opts.Viewport.Empty() {
		if w, h, err := renderer.GetOutputSize(); err == nil {
			opts.Viewport = glyphs.Rect{W: w, H: h}
		}
	}

	run, err := glyphs.Layout(f.atlas, glyphs.Sanitize(text), opts)
	if err != nil {
		return
	}

	f.texture.SetColorMod(color.R, color.G, color.B)
	f.texture.SetAlphaMod(color.A)
	for _, b := range run.Blits {
		src := sdl.Rect{X: b.Src.X, Y: b.Src.Y, W: b.Src.W, H: b.Src.H}
		dst := sdl.Rect{X: b.Dst.X, Y: b.Dst.Y, W: b.Dst.W, H: b.Dst.H}
		renderer.Copy(f.texture, &src, &dst)
	}
}

// Close destroys the atlas texture; later Draw calls do nothing
func (f *BitmapFont) Close() {
	if f == nil || f.texture == nil {
		return
	}
	f.texture.Destroy()
	f.texture = nil
}
