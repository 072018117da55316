// Package highlight provides the per-line syntax highlighting pipeline:
// lexers that turn a line of text into token spans, and a cache that holds
// one token list per buffer line.
package highlight

// Kind is the semantic category of a token. The set is closed; lexers for
// new languages map into these same kinds so the theme layer stays
// decoupled from any particular language.
type Kind uint8

const (
	// KindNormal is ordinary text drawn in the default foreground.
	KindNormal Kind = iota

	// KindKeyword is a language keyword (func, let, if, return, ...).
	KindKeyword

	// KindType is a built-in or well-known type name (i32, string, ...).
	KindType

	// KindString is a string literal including its quotes.
	KindString

	// KindNumber is a numeric literal.
	KindNumber

	// KindComment is a line or block comment.
	KindComment

	// KindOperator is punctuation and operator characters.
	KindOperator
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindKeyword:
		return "keyword"
	case KindType:
		return "type"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindComment:
		return "comment"
	case KindOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// Token is one colored span within a line. Spans are byte addressed,
// non-overlapping, ordered by Start, and together cover every byte of the
// line exactly once.
type Token struct {
	// Start is the byte offset of the span within the line.
	Start int

	// Len is the span length in bytes.
	Len int

	// Kind selects the highlight color.
	Kind Kind
}

// End returns the byte offset just past the span.
func (t Token) End() int {
	return t.Start + t.Len
}

// Contains reports whether the byte offset falls inside the span.
func (t Token) Contains(off int) bool {
	return off >= t.Start && off < t.End()
}

// KindAt returns the kind covering the byte offset, or KindNormal when no
// span does.
func KindAt(tokens []Token, off int) Kind {
	for _, t := range tokens {
		if t.Contains(off) {
			return t.Kind
		}
		if t.Start > off {
			break
		}
	}
	return KindNormal
}
