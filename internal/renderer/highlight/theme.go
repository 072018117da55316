package highlight

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme holds the screen colors for a rendering pass.
type Theme struct {
	Name     string
	Fg       tcell.Color
	Bg       tcell.Color
	StatusFg tcell.Color
	StatusBg tcell.Color
	TildeFg  tcell.Color
	Tokens   map[Kind]tcell.Color
}

// ByName returns a built-in theme. Unknown names fall back to pink.
func ByName(name string) Theme {
	switch name {
	case "ocean":
		return Theme{
			Name:     "ocean",
			Fg:       tcell.ColorWhite,
			Bg:       tcell.ColorBlack,
			StatusFg: tcell.ColorBlack,
			StatusBg: tcell.ColorTeal,
			TildeFg:  tcell.ColorTeal,
			Tokens: map[Kind]tcell.Color{
				KindKeyword:  tcell.ColorTeal,
				KindType:     tcell.ColorAqua,
				KindString:   tcell.ColorGreen,
				KindNumber:   tcell.ColorYellow,
				KindComment:  tcell.ColorGray,
				KindOperator: tcell.ColorWhite,
			},
		}
	default:
		return Theme{
			Name:     "pink",
			Fg:       tcell.ColorWhite,
			Bg:       tcell.ColorBlack,
			StatusFg: tcell.ColorBlack,
			StatusBg: tcell.ColorFuchsia,
			TildeFg:  tcell.ColorFuchsia,
			Tokens: map[Kind]tcell.Color{
				KindKeyword:  tcell.ColorFuchsia,
				KindType:     tcell.ColorAqua,
				KindString:   tcell.ColorGreen,
				KindNumber:   tcell.ColorYellow,
				KindComment:  tcell.ColorGray,
				KindOperator: tcell.ColorWhite,
			},
		}
	}
}

// TokenColor returns the color for a token kind, defaulting to the
// foreground color.
func (t Theme) TokenColor(kind Kind) tcell.Color {
	if c, ok := t.Tokens[kind]; ok {
		return c
	}
	return t.Fg
}

var overrideKinds = map[string]Kind{
	"keyword":  KindKeyword,
	"type":     KindType,
	"string":   KindString,
	"number":   KindNumber,
	"comment":  KindComment,
	"operator": KindOperator,
}

// ApplyColorOverrides replaces theme colors with user-supplied hex values.
// Recognized keys are the token kind names plus "fg", "bg", "status_fg"
// and "status_bg". Unparseable values are skipped.
func (t *Theme) ApplyColorOverrides(colors map[string]string) {
	for key, hex := range colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		r, g, b := c.RGB255()
		col := tcell.NewRGBColor(int32(r), int32(g), int32(b))
		switch key {
		case "fg":
			t.Fg = col
		case "bg":
			t.Bg = col
		case "status_fg":
			t.StatusFg = col
		case "status_bg":
			t.StatusBg = col
		case "tilde":
			t.TildeFg = col
		default:
			if kind, ok := overrideKinds[key]; ok {
				t.Tokens[kind] = col
			}
		}
	}
}
