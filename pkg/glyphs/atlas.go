package glyphs

import (
	"errors"
	"fmt"
)

const (
	// FirstRune is the code point stored in the leftmost atlas cell
	FirstRune = 0x20
	// LastRune is the code point stored in the rightmost atlas cell
	LastRune = 0x7E
	// CellCount is the number of glyph cells in an atlas
	CellCount = LastRune - FirstRune + 1

	// DefaultGlyph replaces characters the atlas cannot draw
	DefaultGlyph = '?'
)

// ErrInvalidAtlas is returned when atlas dimensions do not describe 95 equal cells
var ErrInvalidAtlas = errors.New("invalid glyph atlas dimensions")

// Rect mirrors sdl.Rect so layout can be computed without SDL
type Rect struct {
	X, Y, W, H int32
}

// Empty reports whether the rectangle covers no pixels
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Atlas describes a single-row bitmap holding the printable ASCII glyphs
// left-to-right starting at space.
type Atlas struct {
	GlyphWidth  int32
	GlyphHeight int32
}

// NewAtlas validates the pixel dimensions of an atlas image
func NewAtlas(width, height int32) (Atlas, error) {
	if width <= 0 || height <= 0 {
		return Atlas{}, fmt.Errorf("%w: %dx%d", ErrInvalidAtlas, width, height)
	}
	if width%CellCount != 0 {
		return Atlas{}, fmt.Errorf("%w: width %d is not a multiple of %d", ErrInvalidAtlas, width, CellCount)
	}
	return Atlas{GlyphWidth: width / CellCount, GlyphHeight: height}, nil
}

// Width returns the full atlas width in pixels
func (a Atlas) Width() int32 {
	return a.GlyphWidth * CellCount
}

// Source returns the atlas cell for r. ok is false when r has no cell.
func (a Atlas) Source(r rune) (Rect, bool) {
	if !Printable(r) {
		return Rect{}, false
	}
	return Rect{
		X: int32(r-FirstRune) * a.GlyphWidth,
		Y: 0,
		W: a.GlyphWidth,
		H: a.GlyphHeight,
	}, true
}

// Printable reports whether r is in the atlas range
func Printable(r rune) bool {
	return r >= FirstRune && r <= LastRune
}
