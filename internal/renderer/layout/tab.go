// Package layout maps buffer text to display columns: Unicode widths and
// tab expansion. Everything here is pure; the viewport and renderer build
// on these primitives.
package layout

import "github.com/rivo/uniseg"

// DefaultTabWidth is used when configuration supplies no tab width.
const DefaultTabWidth = 4

// NextTabStop returns the display column of the tab stop following col.
func NextTabStop(col, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	return col + tabWidth - col%tabWidth
}

// RuneWidth returns the number of terminal cells a rune occupies: 0 for
// control and combining characters, 2 for wide East Asian characters,
// otherwise 1. Tabs are not handled here; they depend on the column.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return uniseg.StringWidth(string(r))
}

// DisplayWidth returns the total display width of text with tabs expanded
// from column 0.
func DisplayWidth(text string, tabWidth int) int {
	col := 0
	for _, r := range text {
		if r == '\t' {
			col = NextTabStop(col, tabWidth)
			continue
		}
		col += RuneWidth(r)
	}
	return col
}

// DisplayCol returns the display column at which the rune with character
// index runeCol begins, expanding tabs from column 0. A runeCol past the
// end of the line yields the line's full display width.
func DisplayCol(line string, runeCol, tabWidth int) int {
	col := 0
	i := 0
	for _, r := range line {
		if i == runeCol {
			return col
		}
		if r == '\t' {
			col = NextTabStop(col, tabWidth)
		} else {
			col += RuneWidth(r)
		}
		i++
	}
	return col
}
