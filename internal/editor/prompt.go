package editor

// PromptAction tags what a confirmed prompt input is for.
type PromptAction uint8

const (
	// PromptSaveAs asks for a filename to save the buffer to.
	PromptSaveAs PromptAction = iota
)

// Prompt is the interactive input state shown on the message line, e.g.
// when saving a buffer that has no filename yet.
type Prompt struct {
	Label  string
	Action PromptAction
	input  []rune
}

// Append adds a character to the prompt input.
func (p *Prompt) Append(r rune) {
	p.input = append(p.input, r)
}

// DeleteLast removes the last input character, if any.
func (p *Prompt) DeleteLast() {
	if len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
}

// Input returns the accumulated input text.
func (p *Prompt) Input() string {
	return string(p.input)
}
