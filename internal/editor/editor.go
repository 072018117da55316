package editor

import (
	"fmt"

	"github.com/emed-editor/emed/internal/engine/buffer"
	"github.com/emed-editor/emed/internal/engine/cursor"
	"github.com/emed-editor/emed/internal/renderer/highlight"
	"github.com/emed-editor/emed/internal/renderer/layout"
	"github.com/emed-editor/emed/internal/renderer/viewport"
)

// QuitConfirmCount is how many quit presses discard a dirty buffer.
const QuitConfirmCount = 3

// HelpMessage is the default text on the message line.
const HelpMessage = "HELP: C-x C-s to Save, C-x C-c to Quit"

// SaveFunc writes a document to stable storage. File I/O stays outside
// the editor core; the app injects an implementation.
type SaveFunc func(filename string, data []byte) error

// Editor aggregates the document, cursor, viewport and highlight cache.
// Apply is the only entry point that mutates this state.
type Editor struct {
	doc   *buffer.Document
	cur   *cursor.Cursor
	view  *viewport.Viewport
	lexer highlight.Lexer
	cache *highlight.LineCache

	filename string
	ftype    FileType
	prompt   *Prompt
	message  string

	tabWidth    int
	quitPresses int
	save        SaveFunc
}

// New creates an editor with an empty unnamed document.
func New(save SaveFunc) *Editor {
	e := &Editor{
		cur:      cursor.New(),
		view:     viewport.New(80, 24),
		tabWidth: layout.DefaultTabWidth,
		save:     save,
	}
	e.Load("-", "")
	return e
}

// Load replaces the document with the given content. Cursor, scroll,
// dirty state and the quit counter reset; the lexer is reselected from
// the filename and stays fixed until the next Load.
func (e *Editor) Load(filename, text string) {
	if filename == "" {
		filename = "-"
	}
	e.filename = filename
	e.ftype = DetectFileType(filename)
	if e.doc == nil {
		e.doc = buffer.FromString(text)
	} else {
		e.doc.Reset(text)
	}
	e.cur.Reset()
	e.view.Reset()
	e.lexer = highlight.DefaultRegistry().ForFilename(filename)
	e.cache = highlight.NewLineCache(e.lexer, e.doc.LineCount(), e.doc.Line)
	e.prompt = nil
	e.message = ""
	e.quitPresses = 0
}

// Apply executes a command and reports whether the screen needs a redraw
// or the editor should quit. While a prompt is active only the prompt
// command subset is interpreted.
func (e *Editor) Apply(cmd Command) ApplyResult {
	if cmd.Kind != CmdQuit && e.quitPresses > 0 {
		e.quitPresses = 0
		e.message = ""
	}

	if e.InPrompt() {
		return e.applyPrompt(cmd)
	}

	switch cmd.Kind {
	case CmdNoOp:
		return ResultNoChange

	case CmdMoveLeft:
		e.cur.MoveLeft(e.doc)
	case CmdMoveRight:
		e.cur.MoveRight(e.doc)
	case CmdMoveUp:
		e.cur.MoveUp(e.doc)
	case CmdMoveDown:
		e.cur.MoveDown(e.doc)
	case CmdMoveHome:
		e.cur.MoveHome()
	case CmdMoveEnd:
		e.cur.MoveEnd(e.doc)

	case CmdInsertRune:
		pos := e.cur.Pos()
		e.doc.InsertRune(pos, cmd.Rune)
		e.cur.Set(buffer.Position{Line: pos.Line, Col: pos.Col + 1}, e.doc)
		e.afterEdit()

	case CmdInsertNewline:
		pos := e.cur.Pos()
		e.doc.InsertNewline(pos)
		e.cur.Set(buffer.Position{Line: pos.Line + 1, Col: 0}, e.doc)
		e.afterEdit()

	case CmdDeleteForward:
		if !e.doc.DeleteForward(e.cur.Pos()) {
			return ResultNoChange
		}
		e.afterEdit()

	case CmdDeleteBackward:
		pos, ok := e.doc.DeleteBackward(e.cur.Pos())
		if !ok {
			return ResultNoChange
		}
		e.cur.Set(pos, e.doc)
		e.afterEdit()

	case CmdSaveFile:
		if e.filename == "-" {
			e.openSavePrompt()
			return ResultChanged
		}
		return e.doSave()

	case CmdSaveFileAs:
		e.openSavePrompt()
		return ResultChanged

	case CmdQuit:
		if !e.doc.IsDirty() {
			return ResultQuit
		}
		e.quitPresses++
		if e.quitPresses >= QuitConfirmCount {
			return ResultQuit
		}
		e.message = "Unsaved changes!"
		return ResultChanged

	default:
		return ResultNoChange
	}

	e.ensureVisible()
	return ResultChanged
}

func (e *Editor) applyPrompt(cmd Command) ApplyResult {
	switch cmd.Kind {
	case CmdInsertRune:
		e.prompt.Append(cmd.Rune)
	case CmdDeleteBackward:
		e.prompt.DeleteLast()
	case CmdCancelPrompt:
		e.prompt = nil
		e.message = "Save cancelled"
	case CmdConfirmPrompt:
		name := e.prompt.Input()
		e.prompt = nil
		if name == "" {
			e.message = "Save cancelled"
			return ResultChanged
		}
		e.filename = name
		e.ftype = DetectFileType(name)
		return e.doSave()
	default:
		return ResultNoChange
	}
	return ResultChanged
}

func (e *Editor) openSavePrompt() {
	e.prompt = &Prompt{Label: "Save as:", Action: PromptSaveAs}
}

func (e *Editor) doSave() ApplyResult {
	data := []byte(e.doc.Contents())
	if e.save == nil {
		e.message = "Save failed: no save backend"
		return ResultChanged
	}
	if err := e.save(e.filename, data); err != nil {
		e.message = fmt.Sprintf("Save failed: %v", err)
		return ResultChanged
	}
	e.doc.ClearDirty()
	e.quitPresses = 0
	e.message = fmt.Sprintf("Saved %s (%d bytes)", e.filename, len(data))
	return ResultChanged
}

// afterEdit runs the edit side effects: the highlight cache is discarded
// wholesale and the viewport follows the cursor.
func (e *Editor) afterEdit() {
	e.cache.Invalidate(e.doc.LineCount())
	e.ensureVisible()
}

func (e *Editor) ensureVisible() {
	pos := e.cur.Pos()
	displayCol := layout.DisplayCol(e.doc.Line(pos.Line), pos.Col, e.tabWidth)
	e.view.EnsureVisible(pos.Line, displayCol)
}

// Resize updates the viewport dimensions and keeps the cursor visible.
func (e *Editor) Resize(width, height int) {
	e.view.Resize(width, height)
	e.ensureVisible()
}

// SetTabWidth changes the tab width used for display-column math.
func (e *Editor) SetTabWidth(width int) {
	if width < 1 {
		width = 1
	}
	e.tabWidth = width
	e.ensureVisible()
}

// Document exposes the buffer for rendering.
func (e *Editor) Document() *buffer.Document {
	return e.doc
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() buffer.Position {
	return e.cur.Pos()
}

// Viewport exposes the scroll state for rendering.
func (e *Editor) Viewport() *viewport.Viewport {
	return e.view
}

// TokensForLine returns the highlight tokens for a buffer line.
func (e *Editor) TokensForLine(line int) []highlight.Token {
	return e.cache.TokensForLine(line)
}

// CacheLen reports how many lines the highlight cache tracks.
func (e *Editor) CacheLen() int {
	return e.cache.Len()
}

// InPrompt reports whether a prompt is active. The read loop uses this to
// route key events to prompt translation.
func (e *Editor) InPrompt() bool {
	return e.prompt != nil
}

// Prompt returns the active prompt, or nil.
func (e *Editor) Prompt() *Prompt {
	return e.prompt
}

// Filename returns the current filename, "-" for an unnamed buffer.
func (e *Editor) Filename() string {
	return e.filename
}

// FileType returns the detected file type.
func (e *Editor) FileType() FileType {
	return e.ftype
}

// Message returns the transient message line text, empty when the default
// help text should show.
func (e *Editor) Message() string {
	return e.message
}

// TabWidth returns the configured tab width.
func (e *Editor) TabWidth() int {
	return e.tabWidth
}

// QuitRemaining reports how many more quit presses discard the buffer.
// Zero when no quit is pending.
func (e *Editor) QuitRemaining() int {
	if e.quitPresses == 0 {
		return 0
	}
	return QuitConfirmCount - e.quitPresses
}
