// Package viewport tracks which rectangle of the buffer is on screen.
package viewport

// Viewport holds the scroll offsets and size of the visible text area.
// RowOffset is the first visible buffer line; ColOffset is the first
// visible display column (post tab expansion).
type Viewport struct {
	rowOffset int
	colOffset int
	width     int
	height    int
}

// New creates a viewport of the given size in cells.
func New(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize updates the viewport size. Dimensions below zero are clamped.
func (v *Viewport) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	v.width = width
	v.height = height
}

// Width returns the viewport width in cells.
func (v *Viewport) Width() int { return v.width }

// Height returns the viewport height in rows.
func (v *Viewport) Height() int { return v.height }

// RowOffset returns the first visible buffer line.
func (v *Viewport) RowOffset() int { return v.rowOffset }

// ColOffset returns the first visible display column.
func (v *Viewport) ColOffset() int { return v.colOffset }

// Reset scrolls back to the origin.
func (v *Viewport) Reset() {
	v.rowOffset = 0
	v.colOffset = 0
}

// EnsureVisible scrolls by the minimum amount needed to bring the cursor
// into view. line is the cursor's buffer line; displayCol is its display
// column after tab expansion, not its character column.
func (v *Viewport) EnsureVisible(line, displayCol int) {
	if v.height == 0 {
		v.rowOffset = line
	} else if line < v.rowOffset {
		v.rowOffset = line
	} else if line >= v.rowOffset+v.height {
		v.rowOffset = line + 1 - v.height
	}

	if v.width == 0 {
		v.colOffset = displayCol
	} else if displayCol < v.colOffset {
		v.colOffset = displayCol
	} else if displayCol >= v.colOffset+v.width {
		v.colOffset = displayCol + 1 - v.width
	}
}

// Contains reports whether the given line is currently visible.
func (v *Viewport) Contains(line int) bool {
	return line >= v.rowOffset && line < v.rowOffset+v.height
}
