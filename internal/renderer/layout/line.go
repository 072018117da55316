package layout

// Cell is one visible terminal cell produced by expanding a buffer line.
type Cell struct {
	// Rune is the character to draw. Tabs expand to spaces.
	Rune rune

	// X is the screen column relative to the left edge of the viewport.
	X int

	// ByteOff is the byte offset within the buffer line of the rune this
	// cell came from. Token spans are matched against it.
	ByteOff int
}

// VisibleCells expands line for display and returns the cells falling in
// the display-column window [colOffset, colOffset+width).
//
// A tab expands to spaces up to the next tab stop. If that expansion would
// cross the right edge of the window the line is truncated there: a tab is
// rendered whole or not at all. Wide runes straddling either window edge
// are likewise dropped rather than drawn partially.
func VisibleCells(line string, colOffset, width, tabWidth int) []Cell {
	if width <= 0 {
		return nil
	}
	right := colOffset + width

	cells := make([]Cell, 0, width)
	col := 0
	for off, r := range line {
		if col >= right {
			break
		}

		if r == '\t' {
			end := NextTabStop(col, tabWidth)
			if end > right {
				break
			}
			for c := col; c < end; c++ {
				if c >= colOffset {
					cells = append(cells, Cell{Rune: ' ', X: c - colOffset, ByteOff: off})
				}
			}
			col = end
			continue
		}

		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= colOffset && col+w <= right {
			cells = append(cells, Cell{Rune: r, X: col - colOffset, ByteOff: off})
		}
		col += w
	}

	return cells
}
