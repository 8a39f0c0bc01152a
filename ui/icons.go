package ui

import (
	"github.com/veandco/go-sdl2/sdl"

	"bundle-launcher/pkg/bundleFs"
	"bundle-launcher/pkg/catalog"
)

// IconTexture is a bundle icon uploaded to a renderer
type IconTexture struct {
	texture *sdl.Texture
	W, H    int32
}

// Texture returns the SDL texture, nil after Release
func (i *IconTexture) Texture() *sdl.Texture {
	if i == nil {
		return nil
	}
	return i.texture
}

// Release destroys the texture
func (i *IconTexture) Release() {
	if i == nil || i.texture == nil {
		return
	}
	i.texture.Destroy()
	i.texture = nil
}

// IconLoader loads cached icon files as textures bound to one renderer
type IconLoader struct {
	renderer *sdl.Renderer
}

// NewIconLoader creates a loader for renderer
func NewIconLoader(renderer *sdl.Renderer) *IconLoader {
	return &IconLoader{renderer: renderer}
}

// LoadIcon decodes the PNG at path and uploads it
func (l *IconLoader) LoadIcon(path string) (catalog.Icon, error) {
	img, err := bundleFs.DecodeCachedIcon(path)
	if err != nil {
		return nil, err
	}

	texture, err := TextureFromImage(l.renderer, img)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &IconTexture{texture: texture, W: int32(bounds.Dx()), H: int32(bounds.Dy())}, nil
}
