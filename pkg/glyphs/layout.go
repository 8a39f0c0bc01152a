package glyphs

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Align selects where the text sits relative to Options.X
type Align int

const (
	// AlignStart begins the text at X
	AlignStart Align = iota
	// AlignCenter centers the text horizontally on X
	AlignCenter
	// AlignEnd ends the text at X
	AlignEnd
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ErrInvalidCharacter is matched by every *InvalidCharacterError
var ErrInvalidCharacter = errors.New("invalid character")

// InvalidCharacterError reports the first rune the atlas cannot draw
type InvalidCharacterError struct {
	// Index counts characters from the start of the text. Everything before
	// the first invalid rune is single-byte ASCII, so it is also the byte offset.
	Index int
	Rune  rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %U at index %d: only printable ASCII is supported", e.Rune, e.Index)
}

// Is lets errors.Is(err, ErrInvalidCharacter) match
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// Options holds the per-draw layout parameters
type Options struct {
	X, Y     int32
	Scale    int32 // values below 1 are treated as 1
	Align    Align
	MaxWidth int32 // 0 or negative means unbounded
	// Viewport is the visible area used for culling; a zero size disables culling.
	Viewport Rect
}

// Blit is one glyph copy from the atlas to the render target
type Blit struct {
	Rune rune
	Src  Rect
	Dst  Rect
}

// Run is the result of laying out a string
type Run struct {
	Blits      []Blit
	CharWidth  int32 // effective per-character width
	CharHeight int32
	Width      int32 // total horizontal span of the text
	Origin     int32 // left edge of the span
	Culled     int   // glyphs skipped because they were out of view
}

// Measure returns the effective character width and the total span for count
// characters. Height scaling is never affected by maxWidth.
func Measure(atlas Atlas, count int, scale, maxWidth int32) (charWidth, total int32) {
	if scale < 1 {
		scale = 1
	}
	if count <= 0 {
		return atlas.GlyphWidth * scale, 0
	}
	n := int32(count)
	charWidth = atlas.GlyphWidth * scale
	if maxWidth > 0 && maxWidth < n*charWidth {
		charWidth = maxWidth / n
	}
	return charWidth, n * charWidth
}

// Layout computes the glyph copies needed to draw text. Characters outside
// printable ASCII fail with *InvalidCharacterError; use Sanitize first to
// substitute them instead.
func Layout(atlas Atlas, text string, opts Options) (Run, error) {
	count := 0
	for i, r := range text {
		if !Printable(r) {
			return Run{}, &InvalidCharacterError{Index: i, Rune: r}
		}
		count++
	}

	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	charWidth, total := Measure(atlas, count, scale, opts.MaxWidth)
	charHeight := atlas.GlyphHeight * scale

	var alignOffset int32
	switch opts.Align {
	case AlignCenter:
		alignOffset = -(total / 2)
	case AlignEnd:
		alignOffset = -total
	}

	run := Run{
		CharWidth:  charWidth,
		CharHeight: charHeight,
		Width:      total,
		Origin:     opts.X + alignOffset,
		Blits:      make([]Blit, 0, count),
	}

	i := int32(0)
	for _, r := range text {
		src, _ := atlas.Source(r)
		dst := Rect{
			X: opts.X + i*charWidth + alignOffset,
			Y: opts.Y,
			W: charWidth,
			H: charHeight,
		}
		i++

		if dst.Empty() || outside(dst, opts.Viewport) {
			run.Culled++
			continue
		}
		run.Blits = append(run.Blits, Blit{Rune: r, Src: src, Dst: dst})
	}

	return run, nil
}

// outside is a coarse visibility test, not pixel exact
func outside(dst, view Rect) bool {
	if view.Empty() {
		return false
	}
	return dst.X > view.X+view.W || dst.X < view.X-dst.W ||
		dst.Y > view.Y+view.H || dst.Y < view.Y-dst.H
}

// Sanitize replaces every rune the atlas cannot draw with DefaultGlyph
func Sanitize(text string) string {
	clean := true
	for _, r := range text {
		if !Printable(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	b.Grow(utf8.RuneCountInString(text))
	for _, r := range text {
		if Printable(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(DefaultGlyph)
		}
	}
	return b.String()
}
