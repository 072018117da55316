package renderer

import (
	"fmt"

	"github.com/emed-editor/emed/internal/editor"
)

// StatusLine builds the status bar text: file type, buffer size, dirty
// marker, pending quit confirmation, and the cursor position (1-based
// for display).
func StatusLine(ed *editor.Editor) string {
	doc := ed.Document()

	left := fmt.Sprintf("%s: %d lines, %d chars", ed.FileType(), doc.LineCount(), doc.RuneCount())
	if doc.IsDirty() {
		left += " (modified)"
	}
	if n := ed.QuitRemaining(); n > 0 {
		left += fmt.Sprintf(" (%d more quit(s) to discard)", n)
	}

	pos := ed.Cursor()
	right := fmt.Sprintf("(col: %d, row: %d)", pos.Col+1, pos.Line+1)
	return left + "    " + right
}

// MessageLine builds the bottom line: the prompt when one is active, a
// transient message if set, otherwise the keybinding help.
func MessageLine(ed *editor.Editor) string {
	if p := ed.Prompt(); p != nil {
		return p.Label + " " + p.Input()
	}
	if m := ed.Message(); m != "" {
		return m
	}
	return editor.HelpMessage
}
