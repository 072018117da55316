// Package editor holds the editing state machine: the document, cursor,
// viewport and highlight cache behind a single Apply entry point that
// interprets the editor's command vocabulary.
package editor

import "fmt"

// CommandKind enumerates the editor's command vocabulary.
type CommandKind uint8

const (
	CmdNoOp CommandKind = iota
	CmdMoveLeft
	CmdMoveRight
	CmdMoveUp
	CmdMoveDown
	CmdMoveHome
	CmdMoveEnd
	CmdInsertRune
	CmdInsertNewline
	CmdDeleteForward
	CmdDeleteBackward
	CmdSaveFile
	CmdSaveFileAs
	CmdQuit
	CmdCancelPrompt
	CmdConfirmPrompt
)

// String returns the command name for logs and tests.
func (k CommandKind) String() string {
	switch k {
	case CmdNoOp:
		return "NoOp"
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdMoveUp:
		return "MoveUp"
	case CmdMoveDown:
		return "MoveDown"
	case CmdMoveHome:
		return "MoveHome"
	case CmdMoveEnd:
		return "MoveEnd"
	case CmdInsertRune:
		return "InsertRune"
	case CmdInsertNewline:
		return "InsertNewline"
	case CmdDeleteForward:
		return "DeleteForward"
	case CmdDeleteBackward:
		return "DeleteBackward"
	case CmdSaveFile:
		return "SaveFile"
	case CmdSaveFileAs:
		return "SaveFileAs"
	case CmdQuit:
		return "Quit"
	case CmdCancelPrompt:
		return "CancelPrompt"
	case CmdConfirmPrompt:
		return "ConfirmPrompt"
	default:
		return fmt.Sprintf("Command(%d)", k)
	}
}

// Command is a single editor operation. Rune is set for CmdInsertRune.
type Command struct {
	Kind CommandKind
	Rune rune
}

// NoOp is the command that does nothing.
var NoOp = Command{Kind: CmdNoOp}

// Insert returns an InsertRune command for r.
func Insert(r rune) Command {
	return Command{Kind: CmdInsertRune, Rune: r}
}

// ApplyResult tells the caller what a command did.
type ApplyResult uint8

const (
	// ResultNoChange means nothing visible changed; no redraw needed.
	ResultNoChange ApplyResult = iota

	// ResultChanged means editor state changed; the caller should redraw.
	ResultChanged

	// ResultQuit means the editor should terminate.
	ResultQuit
)

// String returns the result name.
func (r ApplyResult) String() string {
	switch r {
	case ResultNoChange:
		return "NoChange"
	case ResultChanged:
		return "Changed"
	case ResultQuit:
		return "Quit"
	default:
		return fmt.Sprintf("ApplyResult(%d)", r)
	}
}
