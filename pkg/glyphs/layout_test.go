package glyphs

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAtlas(t *testing.T) Atlas {
	t.Helper()
	atlas, err := NewAtlas(7*CellCount, 13)
	require.NoError(t, err)
	return atlas
}

func TestNewAtlas(t *testing.T) {
	tests := []struct {
		name          string
		width, height int32
		wantErr       bool
		glyphWidth    int32
	}{
		{"7x13 font", 665, 13, false, 7},
		{"8x8 font", 760, 8, false, 8},
		{"width not a multiple of 95", 666, 13, true, 0},
		{"zero height", 665, 0, true, 0},
		{"zero width", 0, 13, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atlas, err := NewAtlas(tt.width, tt.height)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAtlas)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.glyphWidth, atlas.GlyphWidth)
			assert.Equal(t, tt.height, atlas.GlyphHeight)
			assert.Equal(t, tt.width, atlas.Width())
		})
	}
}

func TestAtlasSource(t *testing.T) {
	atlas := testAtlas(t)

	src, ok := atlas.Source(' ')
	require.True(t, ok)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 7, H: 13}, src)

	src, ok = atlas.Source('A')
	require.True(t, ok)
	assert.Equal(t, int32(('A'-32)*7), src.X)

	src, ok = atlas.Source('~')
	require.True(t, ok)
	assert.Equal(t, atlas.Width()-7, src.X)

	_, ok = atlas.Source('\n')
	assert.False(t, ok)
	_, ok = atlas.Source('é')
	assert.False(t, ok)
}

func TestLayoutUnboundedWidth(t *testing.T) {
	atlas := testAtlas(t)

	for _, text := range []string{"a", "hello world!", "~!@#$%^&*()_+{}|:\"<>?", strings.Repeat("x", 40)} {
		for scale := int32(1); scale <= 4; scale++ {
			run, err := Layout(atlas, text, Options{X: 10, Y: 20, Scale: scale})
			require.NoError(t, err)

			assert.Equal(t, atlas.GlyphWidth*scale, run.CharWidth)
			assert.Equal(t, atlas.GlyphHeight*scale, run.CharHeight)
			assert.Equal(t, int32(len(text))*atlas.GlyphWidth*scale, run.Width)
			require.Len(t, run.Blits, len(text))
			for i, b := range run.Blits {
				assert.Equal(t, atlas.GlyphWidth*scale, b.Dst.W)
				assert.Equal(t, atlas.GlyphHeight*scale, b.Dst.H)
				assert.Equal(t, int32(10)+int32(i)*run.CharWidth, b.Dst.X)
				assert.Equal(t, int32(20), b.Dst.Y)
				assert.Equal(t, atlas.GlyphWidth, b.Src.W)
				assert.Equal(t, int32(rune(text[i])-FirstRune)*atlas.GlyphWidth, b.Src.X)
			}
		}
	}
}

func TestLayoutMaxWidthShrinksCharacters(t *testing.T) {
	atlas := testAtlas(t)

	tests := []struct {
		name     string
		text     string
		scale    int32
		maxWidth int32
		want     int32
	}{
		{"halved", "abcdefghij", 1, 35, 3},
		{"scaled down", "abcdefghij", 2, 100, 10},
		{"uneven division", "abc", 2, 40, 13},
		{"wider than needed keeps natural width", "abc", 2, 1000, 14},
		{"exactly natural width", "abc", 2, 42, 14},
		{"negative is unbounded", "abc", 1, -5, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, err := Layout(atlas, tt.text, Options{Scale: tt.scale, MaxWidth: tt.maxWidth})
			require.NoError(t, err)

			assert.Equal(t, tt.want, run.CharWidth)
			assert.Equal(t, atlas.GlyphHeight*tt.scale, run.CharHeight, "height scaling is not affected")
			if tt.maxWidth > 0 {
				assert.LessOrEqual(t, run.Width, tt.maxWidth)
			}
			for _, b := range run.Blits {
				assert.Equal(t, tt.want, b.Dst.W)
			}
		})
	}
}

func TestLayoutMaxWidthSmallerThanCount(t *testing.T) {
	atlas := testAtlas(t)

	run, err := Layout(atlas, "abcdef", Options{Scale: 1, MaxWidth: 4})
	require.NoError(t, err)

	assert.Equal(t, int32(0), run.CharWidth)
	assert.Equal(t, int32(0), run.Width)
	assert.Empty(t, run.Blits)
	assert.Equal(t, 6, run.Culled)
}

func TestLayoutAlignment(t *testing.T) {
	atlas := testAtlas(t)
	text := "centered"

	start, err := Layout(atlas, text, Options{X: 400, Scale: 2, Align: AlignStart})
	require.NoError(t, err)
	assert.Equal(t, int32(400), start.Origin)
	assert.Equal(t, int32(400), start.Blits[0].Dst.X)

	center, err := Layout(atlas, text, Options{X: 400, Scale: 2, Align: AlignCenter})
	require.NoError(t, err)
	assert.Equal(t, int32(400)-center.Width/2, center.Origin)
	first := center.Blits[0].Dst
	last := center.Blits[len(center.Blits)-1].Dst
	assert.Equal(t, int32(400)-first.X, last.X+last.W-int32(400), "span is symmetric about x")

	end, err := Layout(atlas, text, Options{X: 400, Scale: 2, Align: AlignEnd})
	require.NoError(t, err)
	last = end.Blits[len(end.Blits)-1].Dst
	assert.Equal(t, int32(400), last.X+last.W, "last glyph ends at x")
	assert.Equal(t, int32(400)-end.Width, end.Origin)
}

func TestLayoutCenterOddWidth(t *testing.T) {
	atlas := testAtlas(t)

	run, err := Layout(atlas, "abc", Options{X: 100, Scale: 1, Align: AlignCenter})
	require.NoError(t, err)

	// 21 px wide: offset is -(21/2) with integer division
	assert.Equal(t, int32(100-10), run.Blits[0].Dst.X)
}

func TestLayoutCullsOutOfView(t *testing.T) {
	atlas := testAtlas(t)
	view := Rect{W: 854, H: 480}

	tests := []struct {
		name  string
		opts  Options
		blits int
	}{
		{"fully visible", Options{X: 0, Y: 0}, 5},
		{"below viewport", Options{X: 0, Y: 481}, 0},
		{"above viewport", Options{X: 0, Y: -14}, 0},
		{"partly above still drawn", Options{X: 0, Y: -12}, 5},
		{"right of viewport", Options{X: 855}, 0},
		{"straddles right edge", Options{X: 840}, 3},
		{"straddles left edge", Options{X: -14}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Scale = 1
			opts.Viewport = view
			run, err := Layout(atlas, "hello", opts)
			require.NoError(t, err)
			assert.Len(t, run.Blits, tt.blits)
			assert.Equal(t, 5-tt.blits, run.Culled)
			assert.Equal(t, int32(35), run.Width, "culling does not change the span")
		})
	}
}

func TestLayoutRejectsInvalidCharacters(t *testing.T) {
	atlas := testAtlas(t)

	for _, text := range []string{"tab\there", "new\nline", "café", "\x7f", "nul\x00"} {
		_, err := Layout(atlas, text, Options{})
		require.Error(t, err, text)
		assert.ErrorIs(t, err, ErrInvalidCharacter)

		var charErr *InvalidCharacterError
		require.True(t, errors.As(err, &charErr))
		assert.False(t, Printable(charErr.Rune))
	}
}

func TestInvalidCharacterIndex(t *testing.T) {
	atlas := testAtlas(t)

	tests := []struct {
		text  string
		index int
		r     rune
	}{
		{"new\nline", 3, '\n'},
		{"caf\u00e9\n", 3, '\u00e9'},
		{"\u00e9", 0, '\u00e9'},
		{"ok\x7f", 2, '\x7f'},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := Layout(atlas, tt.text, Options{})

			var charErr *InvalidCharacterError
			require.True(t, errors.As(err, &charErr))
			assert.Equal(t, tt.index, charErr.Index)
			assert.Equal(t, tt.r, charErr.Rune)
		})
	}
}

func TestLayoutScaleBelowOne(t *testing.T) {
	atlas := testAtlas(t)

	run, err := Layout(atlas, "ab", Options{Scale: 0})
	require.NoError(t, err)
	assert.Equal(t, atlas.GlyphWidth, run.CharWidth)
	assert.Equal(t, atlas.GlyphHeight, run.CharHeight)
}

func TestLayoutEmptyString(t *testing.T) {
	atlas := testAtlas(t)

	run, err := Layout(atlas, "", Options{X: 5, Align: AlignEnd})
	require.NoError(t, err)
	assert.Empty(t, run.Blits)
	assert.Equal(t, int32(0), run.Width)
	assert.Equal(t, int32(5), run.Origin)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain ascii", "plain ascii"},
		{"café.bundle", "caf?.bundle"},
		{"a\tb", "a?b"},
		{"日本", "??"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Sanitize(tt.in)
			assert.Equal(t, tt.want, got)

			_, err := Layout(testAtlas(t), got, Options{})
			assert.NoError(t, err)
		})
	}
}

func TestAlignString(t *testing.T) {
	assert.Equal(t, "start", AlignStart.String())
	assert.Equal(t, "center", AlignCenter.String())
	assert.Equal(t, "end", AlignEnd.String())
	assert.Equal(t, "unknown", Align(9).String())
}
