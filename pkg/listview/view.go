package listview

// RowHeight is the fixed pixel height of one list row
const RowHeight = 64

// View holds the scroll, hover and viewport state of a vertical row list.
// Offset is measured in rows and is never positive: row i is drawn at
// (i + offset) * RowHeight.
type View struct {
	rows   int
	width  int32
	height int32
	offset int

	// Pointer position in viewport coordinates; the hovered row is derived
	// from it and the current offset
	hoverX, hoverY int32
	hovering       bool
}

// New returns a view for a viewport of the given size
func New(width, height int32) *View {
	return &View{width: width, height: height}
}

// SetRows updates the number of rows and re-clamps the offset
func (v *View) SetRows(n int) {
	if n < 0 {
		n = 0
	}
	v.rows = n
	v.offset = v.clamp(v.offset)
}

// Rows returns the number of rows
func (v *View) Rows() int {
	return v.rows
}

// Resize changes the viewport and resets the scroll to the top
func (v *View) Resize(width, height int32) {
	v.width = width
	v.height = height
	v.offset = 0
	v.hovering = false
}

// Size returns the viewport dimensions
func (v *View) Size() (int32, int32) {
	return v.width, v.height
}

// VisibleRows is how many whole rows fit in the viewport
func (v *View) VisibleRows() int {
	if v.height <= 0 {
		return 0
	}
	return int(v.height / RowHeight)
}

// MinOffset is the lowest allowed offset, which shows the last row flush
// with the bottom of the viewport
func (v *View) MinOffset() int {
	overflow := v.rows - v.VisibleRows()
	if overflow < 0 {
		return 0
	}
	return -overflow
}

// Offset returns the scroll offset in rows
func (v *View) Offset() int {
	return v.offset
}

// Scroll applies a wheel delta. Positive deltas move toward the first row.
func (v *View) Scroll(delta int) {
	v.offset = v.clamp(v.offset + delta)
}

// Page scrolls by whole viewports; positive pages move toward the first row
func (v *View) Page(pages int) {
	step := v.VisibleRows()
	if step < 1 {
		step = 1
	}
	v.Scroll(pages * step)
}

// ScrollToRow adjusts the offset the least amount needed to show row i
func (v *View) ScrollToRow(i int) {
	if i < 0 || i >= v.rows {
		return
	}
	top := -v.offset
	visible := v.VisibleRows()
	switch {
	case i < top:
		v.offset = v.clamp(-i)
	case visible > 0 && i >= top+visible:
		v.offset = v.clamp(-(i - visible + 1))
	}
}

func (v *View) clamp(offset int) int {
	if offset > 0 {
		return 0
	}
	if lowest := v.MinOffset(); offset < lowest {
		return lowest
	}
	return offset
}

// RowAt maps a viewport y coordinate to a row index. The index may be out
// of range; callers must check it.
func (v *View) RowAt(y int32) int {
	row := int(y / RowHeight)
	if y < 0 {
		row = int((y - RowHeight + 1) / RowHeight)
	}
	return row - v.offset
}

// Click resolves a left click to the row it selects. ok is false when the
// click lands outside the list.
func (v *View) Click(x, y int32) (int, bool) {
	if x < 0 || y < 0 || (v.width > 0 && x >= v.width) {
		return -1, false
	}
	i := v.RowAt(y)
	if i < 0 || i >= v.rows {
		return -1, false
	}
	return i, true
}

// Hover records the pointer position for the hover highlight
func (v *View) Hover(x, y int32) {
	v.hoverX = x
	v.hoverY = y
	v.hovering = true
}

// ClearHover drops the hover highlight, e.g. when the pointer leaves the window
func (v *View) ClearHover() {
	v.hovering = false
}

// Hovered returns the row currently under the pointer. It follows scrolling
// and row changes without the pointer moving.
func (v *View) Hovered() (int, bool) {
	if !v.hovering {
		return -1, false
	}
	return v.Click(v.hoverX, v.hoverY)
}

// RowTop returns the viewport y coordinate of row i
func (v *View) RowTop(i int) int32 {
	return int32(i+v.offset) * RowHeight
}

// VisibleRange returns the half-open range of rows that intersect the viewport
func (v *View) VisibleRange() (first, last int) {
	first = -v.offset
	if first > v.rows {
		first = v.rows
	}
	last = first + v.VisibleRows() + 1
	if last > v.rows {
		last = v.rows
	}
	return first, last
}
