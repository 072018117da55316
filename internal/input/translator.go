// Package input translates backend-agnostic key events into editor
// commands, including the Ctrl+X chord prefix and prompt-mode key
// handling.
package input

import (
	"github.com/emed-editor/emed/internal/editor"
	"github.com/emed-editor/emed/internal/input/key"
)

type chordState uint8

const (
	stateIdle chordState = iota
	stateCtrlXArmed
)

// Translator maps key events to editor commands. It carries the chord
// state across events: Ctrl+X arms a prefix, and the next key either
// completes the chord or silently cancels it.
type Translator struct {
	state chordState
}

// NewTranslator creates a translator in the idle state.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate converts a key event into a command in normal mode.
func (t *Translator) Translate(ev key.Event) editor.Command {
	// Ctrl+Q quits regardless of chord state.
	if ev.IsCtrl('q') {
		t.state = stateIdle
		return editor.Command{Kind: editor.CmdQuit}
	}

	if ev.IsCtrl('x') {
		t.state = stateCtrlXArmed
		return editor.NoOp
	}

	if t.state == stateCtrlXArmed {
		t.state = stateIdle
		switch {
		case ev.IsCtrl('c'):
			return editor.Command{Kind: editor.CmdQuit}
		case ev.IsCtrl('s'):
			return editor.Command{Kind: editor.CmdSaveFile}
		default:
			// The cancelling key is consumed, not reinterpreted.
			return editor.NoOp
		}
	}

	switch ev.Key {
	case key.KeyLeft:
		return editor.Command{Kind: editor.CmdMoveLeft}
	case key.KeyRight:
		return editor.Command{Kind: editor.CmdMoveRight}
	case key.KeyUp:
		return editor.Command{Kind: editor.CmdMoveUp}
	case key.KeyDown:
		return editor.Command{Kind: editor.CmdMoveDown}
	case key.KeyHome:
		return editor.Command{Kind: editor.CmdMoveHome}
	case key.KeyEnd:
		return editor.Command{Kind: editor.CmdMoveEnd}
	case key.KeyEnter:
		return editor.Command{Kind: editor.CmdInsertNewline}
	case key.KeyBackspace:
		return editor.Command{Kind: editor.CmdDeleteBackward}
	case key.KeyDelete:
		return editor.Command{Kind: editor.CmdDeleteForward}
	case key.KeyTab:
		return editor.Insert('\t')
	}

	if ev.IsChar() {
		return editor.Insert(ev.Rune)
	}
	return editor.NoOp
}

// TranslatePrompt converts a key event into a command while a prompt is
// active. Prompt handling bypasses the chord machine entirely.
func TranslatePrompt(ev key.Event) editor.Command {
	switch {
	case ev.Key == key.KeyEnter:
		return editor.Command{Kind: editor.CmdConfirmPrompt}
	case ev.Key == key.KeyBackspace:
		return editor.Command{Kind: editor.CmdDeleteBackward}
	case ev.Key == key.KeyEscape, ev.IsCtrl('g'):
		return editor.Command{Kind: editor.CmdCancelPrompt}
	case ev.IsChar():
		return editor.Insert(ev.Rune)
	}
	return editor.NoOp
}
