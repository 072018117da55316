package key

import "unicode"

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// RuneEvent creates an event for a plain character key.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// Special creates an event for a non-character key.
func Special(k Key) Event {
	return Event{Key: k}
}

// Ctrl creates an event for a control chord like Ctrl+S.
func Ctrl(r rune) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: ModCtrl}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character with no Ctrl or
// Alt held. Shift alone is part of the character itself.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) &&
		e.Modifiers&(ModCtrl|ModAlt) == 0
}

// IsCtrl returns true if this is Ctrl plus the given character.
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Modifiers.HasCtrl() && lowerEq(e.Rune, r)
}

func lowerEq(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}

// String returns a representation like "a", "Ctrl+s" or "Enter".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}
