// Package cursor implements cursor motion over a document.
//
// Motion follows conventional text-editor semantics: left/right wrap
// across line boundaries, up/down clamp the column to the target line's
// length, and home/end jump within the current line. The cursor never
// addresses a position outside the document.
package cursor

import "github.com/emed-editor/emed/internal/engine/buffer"

// Lines is the view of a document the cursor needs for motion.
// *buffer.Document satisfies it.
type Lines interface {
	LineCount() int
	LineRuneLen(i int) int
}

// Cursor is a position within a document plus the motion rules that keep
// it addressable.
type Cursor struct {
	pos buffer.Position
}

// New creates a cursor at the origin.
func New() *Cursor {
	return &Cursor{}
}

// Pos returns the current position.
func (c *Cursor) Pos() buffer.Position {
	return c.pos
}

// Set places the cursor at pos, clamping it into the document.
func (c *Cursor) Set(pos buffer.Position, doc Lines) {
	c.pos = pos
	c.Clamp(doc)
}

// Reset places the cursor at the origin.
func (c *Cursor) Reset() {
	c.pos = buffer.Position{}
}

// Clamp pulls the cursor back inside the document after the buffer shrank
// underneath it.
func (c *Cursor) Clamp(doc Lines) {
	if c.pos.Line < 0 {
		c.pos.Line = 0
	}
	if last := doc.LineCount() - 1; c.pos.Line > last {
		c.pos.Line = last
	}
	if c.pos.Col < 0 {
		c.pos.Col = 0
	}
	if max := doc.LineRuneLen(c.pos.Line); c.pos.Col > max {
		c.pos.Col = max
	}
}

// MoveLeft moves one column left, wrapping to the end of the previous line
// at column 0. At the start of the buffer it stays put.
func (c *Cursor) MoveLeft(doc Lines) {
	switch {
	case c.pos.Col > 0:
		c.pos.Col--
	case c.pos.Line > 0:
		c.pos.Line--
		c.pos.Col = doc.LineRuneLen(c.pos.Line)
	}
}

// MoveRight moves one column right, wrapping to the start of the next line
// at end-of-line. At the end of the buffer it stays put.
func (c *Cursor) MoveRight(doc Lines) {
	switch {
	case c.pos.Col < doc.LineRuneLen(c.pos.Line):
		c.pos.Col++
	case c.pos.Line < doc.LineCount()-1:
		c.pos.Line++
		c.pos.Col = 0
	}
}

// MoveUp moves one line up, clamping the column to the target line.
func (c *Cursor) MoveUp(doc Lines) {
	if c.pos.Line == 0 {
		return
	}
	c.pos.Line--
	c.clampCol(doc)
}

// MoveDown moves one line down, clamping the column to the target line.
func (c *Cursor) MoveDown(doc Lines) {
	if c.pos.Line >= doc.LineCount()-1 {
		return
	}
	c.pos.Line++
	c.clampCol(doc)
}

// MoveHome moves to column 0 of the current line.
func (c *Cursor) MoveHome() {
	c.pos.Col = 0
}

// MoveEnd moves past the last rune of the current line.
func (c *Cursor) MoveEnd(doc Lines) {
	c.pos.Col = doc.LineRuneLen(c.pos.Line)
}

func (c *Cursor) clampCol(doc Lines) {
	if max := doc.LineRuneLen(c.pos.Line); c.pos.Col > max {
		c.pos.Col = max
	}
}
