package bundlelist

import (
	"github.com/veandco/go-sdl2/sdl"

	"bundle-launcher/pkg/catalog"
	"bundle-launcher/pkg/glyphs"
	"bundle-launcher/pkg/listview"
	"bundle-launcher/ui"
)

// Widget manages the scrolling bundle list
type Widget struct {
	view    *listview.View
	entries []*catalog.Entry
	message string
}

// NewWidget creates a list for a viewport of the given size
func NewWidget(width, height int32) *Widget {
	return &Widget{
		view: listview.New(width, height),
	}
}

// SetEntries replaces the rows
func (w *Widget) SetEntries(entries []*catalog.Entry) {
	w.entries = entries
	w.view.SetRows(len(entries))
}

// SetMessage sets the text shown when there are no rows
func (w *Widget) SetMessage(message string) {
	w.message = message
}

// View exposes the scroll and hit-test state
func (w *Widget) View() *listview.View {
	return w.view
}

// Resize adapts to a new window size and resets the scroll
func (w *Widget) Resize(width, height int32) {
	w.view.Resize(width, height)
}

// Scroll applies a mouse wheel delta
func (w *Widget) Scroll(delta int32) {
	w.view.Scroll(int(delta))
}

// Hover tracks the pointer for the highlight
func (w *Widget) Hover(x, y int32) {
	w.view.Hover(x, y)
}

// Click returns the entry under a left click, if any
func (w *Widget) Click(x, y int32) (int, *catalog.Entry, bool) {
	i, ok := w.view.Click(x, y)
	if !ok || i >= len(w.entries) {
		return -1, nil, false
	}
	return i, w.entries[i], true
}

// Draw renders the visible rows, or the message when the list is empty
func (w *Widget) Draw(renderer *sdl.Renderer, font *ui.BitmapFont) error {
	width, height := w.view.Size()

	if len(w.entries) == 0 {
		if w.message != "" {
			font.Draw(renderer, w.message, glyphs.Options{
				X:        width / 2,
				Y:        height/2 - font.Atlas().GlyphHeight,
				Scale:    textScale,
				Align:    glyphs.AlignCenter,
				MaxWidth: width - 2*rightMargin,
			}, messageColor)
		}
		return nil
	}

	hovered, hovering := w.view.Hovered()
	first, last := w.view.VisibleRange()
	for i := first; i < last; i++ {
		DrawRow(renderer, font, w.entries[i], i, w.view.RowTop(i), width, hovering && i == hovered)
	}
	return nil
}
