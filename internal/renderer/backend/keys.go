package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/emed-editor/emed/internal/input/key"
)

// convertKey translates a tcell key event into the editor's key model.
// tcell folds Ctrl+letter chords into dedicated key codes in the C0
// range; those come back as Ctrl+rune events.
func convertKey(ev *tcell.EventKey) key.Event {
	mods := convertMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return key.Event{Key: key.KeyRune, Rune: ev.Rune(), Modifiers: mods}
	case tcell.KeyEnter:
		return key.Event{Key: key.KeyEnter, Modifiers: mods}
	case tcell.KeyTab:
		return key.Event{Key: key.KeyTab, Modifiers: mods}
	case tcell.KeyEscape:
		return key.Event{Key: key.KeyEscape, Modifiers: mods}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Event{Key: key.KeyBackspace, Modifiers: mods}
	case tcell.KeyDelete:
		return key.Event{Key: key.KeyDelete, Modifiers: mods}
	case tcell.KeyHome:
		return key.Event{Key: key.KeyHome, Modifiers: mods}
	case tcell.KeyEnd:
		return key.Event{Key: key.KeyEnd, Modifiers: mods}
	case tcell.KeyPgUp:
		return key.Event{Key: key.KeyPageUp, Modifiers: mods}
	case tcell.KeyPgDn:
		return key.Event{Key: key.KeyPageDown, Modifiers: mods}
	case tcell.KeyUp:
		return key.Event{Key: key.KeyUp, Modifiers: mods}
	case tcell.KeyDown:
		return key.Event{Key: key.KeyDown, Modifiers: mods}
	case tcell.KeyLeft:
		return key.Event{Key: key.KeyLeft, Modifiers: mods}
	case tcell.KeyRight:
		return key.Event{Key: key.KeyRight, Modifiers: mods}
	}

	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.Ctrl(rune('a' + k - tcell.KeyCtrlA))
	}
	return key.Event{Key: key.KeyNone, Modifiers: mods}
}

func convertMods(mods tcell.ModMask) key.Modifier {
	var out key.Modifier
	if mods&tcell.ModCtrl != 0 {
		out |= key.ModCtrl
	}
	if mods&tcell.ModAlt != 0 {
		out |= key.ModAlt
	}
	if mods&tcell.ModShift != 0 {
		out |= key.ModShift
	}
	return out
}
