package buffer

import "fmt"

// Position is a cursor-addressable place in a document: a 0-indexed line
// and a 0-indexed column counted in runes, not bytes or display cells.
// Column may equal the line's rune length (the slot after the last rune).
type Position struct {
	Line int
	Col  int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Col)
}

// Revision identifies a document state. Every mutation produces a new
// revision, letting callers detect staleness without diffing text.
type Revision uint64
