package renderer

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/emed-editor/emed/internal/editor"
	"github.com/emed-editor/emed/internal/renderer/highlight"
)

func newTestEditor(t *testing.T, filename, text string) *editor.Editor {
	t.Helper()
	ed := editor.New(nil)
	ed.Load(filename, text)
	return ed
}

func typeString(ed *editor.Editor, s string) {
	for _, r := range s {
		ed.Apply(editor.Insert(r))
	}
}

func TestStatusLine(t *testing.T) {
	ed := newTestEditor(t, "main.rs", "fn main() {}\nlet x = 1;\n")
	got := StatusLine(ed)

	if !strings.HasPrefix(got, "Rust file: 3 lines, ") {
		t.Errorf("status = %q", got)
	}
	if strings.Contains(got, "(modified)") {
		t.Errorf("clean buffer shows modified: %q", got)
	}
	if !strings.HasSuffix(got, "(col: 1, row: 1)") {
		t.Errorf("status = %q, want 1-based cursor at end", got)
	}
}

func TestStatusLineDirtyAndQuit(t *testing.T) {
	ed := newTestEditor(t, "-", "")
	typeString(ed, "x")
	ed.Apply(editor.Command{Kind: editor.CmdQuit})

	got := StatusLine(ed)
	if !strings.Contains(got, "(modified)") {
		t.Errorf("dirty buffer status = %q", got)
	}
	if !strings.Contains(got, "(2 more quit(s) to discard)") {
		t.Errorf("pending quit status = %q", got)
	}
}

func TestMessageLine(t *testing.T) {
	ed := newTestEditor(t, "-", "")
	if got := MessageLine(ed); got != editor.HelpMessage {
		t.Errorf("default message = %q", got)
	}

	typeString(ed, "x")
	ed.Apply(editor.Command{Kind: editor.CmdSaveFile})
	typeString(ed, "out")
	if got := MessageLine(ed); got != "Save as: out" {
		t.Errorf("prompt message = %q", got)
	}

	ed.Apply(editor.Command{Kind: editor.CmdCancelPrompt})
	if got := MessageLine(ed); got != "Save cancelled" {
		t.Errorf("cancel message = %q", got)
	}
}

func drawOnSim(t *testing.T, ed *editor.Editor, width, height int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	sim.SetSize(width, height)
	ed.Resize(width, TextRows(height))
	Draw(sim, ed, highlight.ByName("pink"))
	return sim
}

func rowText(sim tcell.SimulationScreen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestDrawTextAndTildes(t *testing.T) {
	ed := newTestEditor(t, "notes.txt", "hello\nworld\n")
	sim := drawOnSim(t, ed, 20, 8)
	defer sim.Fini()

	if got := strings.TrimRight(rowText(sim, 0, 20), " "); got != "hello" {
		t.Errorf("row 0 = %q", got)
	}
	if got := strings.TrimRight(rowText(sim, 1, 20), " "); got != "world" {
		t.Errorf("row 1 = %q", got)
	}
	// Row 3 is past the end of the buffer.
	if got := strings.TrimRight(rowText(sim, 3, 20), " "); got != "~" {
		t.Errorf("row 3 = %q, want tilde", got)
	}
	// Status row carries the status text.
	if got := rowText(sim, 6, 20); !strings.HasPrefix(got, "text: 3 lines") {
		t.Errorf("status row = %q", got)
	}
}

func TestDrawHighlightsNumbers(t *testing.T) {
	ed := newTestEditor(t, "notes.txt", "x 42\n")
	sim := drawOnSim(t, ed, 20, 8)
	defer sim.Fini()

	theme := highlight.ByName("pink")
	_, _, styleX, _ := sim.GetContent(0, 0)
	fgX, _, _ := styleX.Decompose()
	if fgX != theme.Fg {
		t.Errorf("normal fg = %v, want %v", fgX, theme.Fg)
	}
	_, _, styleNum, _ := sim.GetContent(2, 0)
	fgNum, _, _ := styleNum.Decompose()
	if fgNum != theme.TokenColor(highlight.KindNumber) {
		t.Errorf("number fg = %v, want %v", fgNum, theme.TokenColor(highlight.KindNumber))
	}
}

func TestDrawCursorPosition(t *testing.T) {
	ed := newTestEditor(t, "-", "")
	typeString(ed, "ab")
	sim := drawOnSim(t, ed, 20, 8)
	defer sim.Fini()

	x, y, visible := sim.GetCursor()
	if !visible || x != 2 || y != 0 {
		t.Errorf("cursor = (%d, %d, %v), want (2, 0, visible)", x, y, visible)
	}
}
