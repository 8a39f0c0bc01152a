package ui

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/veandco/go-sdl2/sdl"
)

// TextureFromImage uploads img as a blended RGBA texture
func TextureFromImage(renderer *sdl.Renderer, img image.Image) (*sdl.Texture, error) {
	if renderer == nil {
		return nil, fmt.Errorf("no renderer")
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty image %dx%d", width, height)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Rect, img, bounds.Min, draw.Src)
	}

	// RGBA32 is R,G,B,A in memory on either byte order, matching image.NRGBA
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(width), int32(height), 32, uint32(sdl.PIXELFORMAT_RGBA32))
	if err != nil {
		return nil, fmt.Errorf("failed to create SDL surface: %w", err)
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock SDL surface: %w", err)
	}
	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	rowBytes := width * 4
	for y := 0; y < height; y++ {
		copy(pixels[y*pitch:y*pitch+rowBytes], nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+rowBytes])
	}
	surface.Unlock()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
