// Package renderer paints the editor state onto a tcell screen: the text
// area with syntax highlighting, tilde rows past the end of the buffer,
// the status bar, and the message line.
package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/emed-editor/emed/internal/editor"
	"github.com/emed-editor/emed/internal/renderer/highlight"
	"github.com/emed-editor/emed/internal/renderer/layout"
)

// TextRows returns the number of screen rows available to the text area.
// Two rows at the bottom are reserved for status and message lines.
func TextRows(height int) int {
	if height < 2 {
		return 0
	}
	return height - 2
}

// Draw renders a complete frame. It is a full redraw every time; tcell
// diffs against its back buffer on Show.
func Draw(screen tcell.Screen, ed *editor.Editor, theme highlight.Theme) {
	width, height := screen.Size()
	base := tcell.StyleDefault.Foreground(theme.Fg).Background(theme.Bg)
	screen.Fill(' ', base)

	doc := ed.Document()
	vp := ed.Viewport()
	textRows := TextRows(height)

	// Lines are resolved top to bottom so each line's comment-carry state
	// comes from an already-tokenized predecessor.
	for y := 0; y < textRows; y++ {
		line := vp.RowOffset() + y
		if line >= doc.LineCount() {
			screen.SetContent(0, y, '~', nil, base.Foreground(theme.TildeFg))
			continue
		}

		tokens := ed.TokensForLine(line)
		cells := layout.VisibleCells(doc.Line(line), vp.ColOffset(), width, ed.TabWidth())
		for _, cell := range cells {
			kind := highlight.KindAt(tokens, cell.ByteOff)
			screen.SetContent(cell.X, y, cell.Rune, nil, base.Foreground(theme.TokenColor(kind)))
		}
	}

	drawStatus(screen, ed, theme, width, height)

	pos := ed.Cursor()
	displayCol := layout.DisplayCol(doc.Line(pos.Line), pos.Col, ed.TabWidth())
	screen.ShowCursor(displayCol-vp.ColOffset(), pos.Line-vp.RowOffset())
	screen.Show()
}

func drawStatus(screen tcell.Screen, ed *editor.Editor, theme highlight.Theme, width, height int) {
	if height < 2 {
		return
	}

	statusStyle := tcell.StyleDefault.
		Foreground(theme.StatusFg).
		Background(theme.StatusBg).
		Bold(true)
	putLine(screen, height-2, StatusLine(ed), width, statusStyle)

	msgStyle := tcell.StyleDefault.Foreground(theme.Fg).Background(theme.Bg)
	putLine(screen, height-1, MessageLine(ed), width, msgStyle)
}

// putLine writes text on row y, padded or truncated to width.
func putLine(screen tcell.Screen, y int, text string, width int, style tcell.Style) {
	x := 0
	for _, r := range text {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x += layout.RuneWidth(r)
	}
	for ; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
