package cursor

import (
	"testing"

	"github.com/emed-editor/emed/internal/engine/buffer"
)

func doc(text string) *buffer.Document {
	return buffer.FromString(text)
}

func TestMoveRightWrapsToNextLine(t *testing.T) {
	d := doc("ab\ncd")
	c := New()
	c.Set(buffer.Position{Line: 0, Col: 2}, d)

	c.MoveRight(d)

	if c.Pos() != (buffer.Position{Line: 1, Col: 0}) {
		t.Errorf("got %v, want (1,0)", c.Pos())
	}
}

func TestMoveRightAtBufferEndStays(t *testing.T) {
	d := doc("ab")
	c := New()
	c.Set(buffer.Position{Line: 0, Col: 2}, d)

	c.MoveRight(d)

	if c.Pos() != (buffer.Position{Line: 0, Col: 2}) {
		t.Errorf("got %v, want (0,2)", c.Pos())
	}
}

func TestMoveLeftWrapsToPreviousLineEnd(t *testing.T) {
	d := doc("abc\nde")
	c := New()
	c.Set(buffer.Position{Line: 1, Col: 0}, d)

	c.MoveLeft(d)

	if c.Pos() != (buffer.Position{Line: 0, Col: 3}) {
		t.Errorf("got %v, want (0,3)", c.Pos())
	}
}

func TestMoveLeftAtOriginStays(t *testing.T) {
	d := doc("abc")
	c := New()

	c.MoveLeft(d)

	if c.Pos() != (buffer.Position{}) {
		t.Errorf("got %v, want (0,0)", c.Pos())
	}
}

func TestVerticalMotionClampsColumn(t *testing.T) {
	d := doc("longline\nshrt\nlongline\n")
	c := New()
	c.Set(buffer.Position{Line: 0, Col: 7}, d)

	c.MoveDown(d)
	if c.Pos() != (buffer.Position{Line: 1, Col: 4}) {
		t.Errorf("after first down: %v, want (1,4)", c.Pos())
	}

	// Column stays clamped; there is no sticky-column memory.
	c.MoveDown(d)
	if c.Pos() != (buffer.Position{Line: 2, Col: 4}) {
		t.Errorf("after second down: %v, want (2,4)", c.Pos())
	}
}

func TestVerticalMotionPreservesColumnWhenLineIsLongEnough(t *testing.T) {
	d := doc("short\nlonger line")
	c := New()
	c.Set(buffer.Position{Line: 0, Col: 5}, d)

	c.MoveDown(d)
	if c.Pos() != (buffer.Position{Line: 1, Col: 5}) {
		t.Errorf("got %v, want (1,5)", c.Pos())
	}

	c.MoveUp(d)
	if c.Pos() != (buffer.Position{Line: 0, Col: 5}) {
		t.Errorf("got %v, want (0,5)", c.Pos())
	}
}

func TestMoveUpAtTopStays(t *testing.T) {
	d := doc("ab\ncd")
	c := New()
	c.Set(buffer.Position{Line: 0, Col: 1}, d)

	c.MoveUp(d)

	if c.Pos() != (buffer.Position{Line: 0, Col: 1}) {
		t.Errorf("got %v", c.Pos())
	}
}

func TestMoveDownAtBottomStays(t *testing.T) {
	d := doc("ab\ncd")
	c := New()
	c.Set(buffer.Position{Line: 1, Col: 1}, d)

	c.MoveDown(d)

	if c.Pos() != (buffer.Position{Line: 1, Col: 1}) {
		t.Errorf("got %v", c.Pos())
	}
}

func TestHomeAndEnd(t *testing.T) {
	d := doc("hello world")
	c := New()
	c.Set(buffer.Position{Line: 0, Col: 4}, d)

	c.MoveEnd(d)
	if c.Pos().Col != 11 {
		t.Errorf("end: col = %d, want 11", c.Pos().Col)
	}

	c.MoveHome()
	if c.Pos().Col != 0 {
		t.Errorf("home: col = %d, want 0", c.Pos().Col)
	}
}

func TestSetClampsOutOfRange(t *testing.T) {
	d := doc("ab\ncd")
	c := New()

	c.Set(buffer.Position{Line: 99, Col: 99}, d)

	if c.Pos() != (buffer.Position{Line: 1, Col: 2}) {
		t.Errorf("got %v, want clamped (1,2)", c.Pos())
	}
}
