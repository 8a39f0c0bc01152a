package bundlelist

import (
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"bundle-launcher/pkg/catalog"
	"bundle-launcher/pkg/glyphs"
	"bundle-launcher/pkg/listview"
	"bundle-launcher/ui"
)

type texturedIcon interface {
	Texture() *sdl.Texture
}

// DrawRow renders one catalog entry in the row starting at y
func DrawRow(renderer *sdl.Renderer, font *ui.BitmapFont, entry *catalog.Entry, index int, y, width int32, hovered bool) {
	rowRect := sdl.Rect{X: 0, Y: y, W: width, H: listview.RowHeight}

	if hovered {
		ui.DrawGradientRect(renderer, rowRect, hoverStartColor, hoverEndColor)
	}

	renderer.SetDrawColor(separatorColor.R, separatorColor.G, separatorColor.B, separatorColor.A)
	renderer.DrawLine(0, y+listview.RowHeight-1, width, y+listview.RowHeight-1)

	// Placeholder box first; the icon is drawn over it when one loaded
	iconRect := sdl.Rect{X: iconMargin, Y: y + iconMargin, W: iconSize, H: iconSize}
	renderer.SetDrawColor(iconPlaceholderColor.R, iconPlaceholderColor.G, iconPlaceholderColor.B, iconPlaceholderColor.A)
	renderer.FillRect(&iconRect)
	if icon, ok := entry.Icon.(texturedIcon); ok && icon.Texture() != nil {
		renderer.Copy(icon.Texture(), nil, &iconRect)
	}

	textY := y + (listview.RowHeight-font.Atlas().GlyphHeight*textScale)/2
	font.Draw(renderer, strconv.Itoa(index), glyphs.Options{
		X:        labelX,
		Y:        textY,
		Scale:    textScale,
		MaxWidth: nameX - labelX - 8,
	}, labelColor)

	font.Draw(renderer, entry.FileName, glyphs.Options{
		X:        nameX,
		Y:        textY,
		Scale:    textScale,
		MaxWidth: width - nameX - rightMargin,
	}, nameColor)
}
