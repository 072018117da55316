// Package buffer provides the editable document sitting on top of the rope.
// It translates line/column positions into byte offsets and implements the
// editing operations the editor exposes: rune insertion, line splitting,
// and the two delete directions with their line-join behavior.
package buffer

import (
	"unicode/utf8"

	"github.com/emed-editor/emed/internal/engine/rope"
)

// Document is an editable text buffer. A document always has at least one
// line; an empty document is a single empty line.
//
// Positions passed to mutating operations must be addressable: callers
// clamp cursor state before calling, so out-of-range lines here indicate a
// caller bug, not user input.
type Document struct {
	rope     *rope.Rope
	dirty    bool
	revision Revision
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{rope: rope.New()}
}

// FromString creates a document with the given content.
func FromString(text string) *Document {
	return &Document{rope: rope.FromString(text)}
}

// Reset replaces the entire content, clearing the dirty flag.
// Used on file load; ordinary editing never replaces the rope wholesale.
func (d *Document) Reset(text string) {
	d.rope = rope.FromString(text)
	d.dirty = false
	d.revision++
}

// LineCount returns the number of lines. Always at least 1.
func (d *Document) LineCount() int {
	return d.rope.LineCount()
}

// Line returns the text of line i without its newline.
func (d *Document) Line(i int) string {
	return d.rope.LineText(i)
}

// LineRuneLen returns the rune length of line i, not counting the newline.
func (d *Document) LineRuneLen(i int) int {
	return utf8.RuneCountInString(d.rope.LineText(i))
}

// RuneCount returns the total number of runes in the document.
func (d *Document) RuneCount() int {
	return utf8.RuneCountInString(d.rope.String())
}

// Contents returns the full document text, for saving.
func (d *Document) Contents() string {
	return d.rope.String()
}

// IsDirty reports whether the document has unsaved modifications.
func (d *Document) IsDirty() bool {
	return d.dirty
}

// ClearDirty marks the document as saved.
func (d *Document) ClearDirty() {
	d.dirty = false
}

// Revision returns the current revision. It changes on every mutation.
func (d *Document) Revision() Revision {
	return d.revision
}

// InsertRune inserts r at pos. The cursor's new position is pos shifted one
// column right; the caller owns that adjustment.
func (d *Document) InsertRune(pos Position, r rune) {
	d.rope.Insert(d.byteOffset(pos), string(r))
	d.touch()
}

// InsertNewline splits the line at pos into two lines.
func (d *Document) InsertNewline(pos Position) {
	d.rope.Insert(d.byteOffset(pos), "\n")
	d.touch()
}

// DeleteForward removes the rune at pos. At end-of-line on a non-last line
// it removes the newline, joining the next line onto this one. At the end
// of the last line it is a no-op. Returns whether anything was deleted.
func (d *Document) DeleteForward(pos Position) bool {
	if pos.Col >= d.LineRuneLen(pos.Line) && pos.Line >= d.LineCount()-1 {
		return false
	}

	start := d.byteOffset(pos)
	if start >= d.rope.Len() {
		return false
	}
	_, size := utf8.DecodeRuneInString(d.rope.Slice(start, start+utf8.UTFMax))
	d.rope.Delete(start, start+size)
	d.touch()
	return true
}

// DeleteBackward removes the rune before pos and returns the resulting
// cursor position. At column 0 of a non-first line it joins the current
// line onto the previous one, placing the cursor at the junction. At (0,0)
// it is a no-op and reports no change.
func (d *Document) DeleteBackward(pos Position) (Position, bool) {
	if pos.Col > 0 {
		target := Position{Line: pos.Line, Col: pos.Col - 1}
		d.DeleteForward(target)
		return target, true
	}
	if pos.Line == 0 {
		return pos, false
	}

	// Deleting the newline at the end of the previous line joins the lines.
	prev := pos.Line - 1
	target := Position{Line: prev, Col: d.LineRuneLen(prev)}
	d.DeleteForward(target)
	return target, true
}

// byteOffset converts a line/column position to a rope byte offset.
func (d *Document) byteOffset(pos Position) int {
	start := d.rope.LineStartOffset(pos.Line)
	line := d.rope.LineText(pos.Line)

	col := 0
	for i := range line {
		if col == pos.Col {
			return start + i
		}
		col++
	}
	return start + len(line)
}

func (d *Document) touch() {
	d.dirty = true
	d.revision++
}
