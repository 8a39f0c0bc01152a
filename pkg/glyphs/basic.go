package glyphs

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BasicAtlasImage renders the embedded 7x13 fixed font into a single-row
// atlas: white glyphs on a transparent background, printable ASCII from
// space to tilde.
func BasicAtlasImage() (*image.NRGBA, Atlas, error) {
	face := basicfont.Face7x13
	cellWidth := face.Advance
	img := image.NewNRGBA(image.Rect(0, 0, cellWidth*CellCount, face.Height))

	for r := rune(FirstRune); r <= LastRune; r++ {
		cell := int(r - FirstRune)
		dot := fixed.P(cell*cellWidth, face.Ascent)
		dr, mask, maskp, _, ok := face.Glyph(dot, r)
		if !ok {
			return nil, Atlas{}, fmt.Errorf("basic font has no glyph for %q", r)
		}
		draw.DrawMask(img, dr, image.White, image.Point{}, mask, maskp, draw.Over)
	}

	atlas, err := NewAtlas(int32(img.Rect.Dx()), int32(img.Rect.Dy()))
	if err != nil {
		return nil, Atlas{}, err
	}
	return img, atlas, nil
}
