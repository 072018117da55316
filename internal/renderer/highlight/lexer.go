package highlight

import (
	"path/filepath"
	"unicode"
	"unicode/utf8"
)

// Lexer turns a single line of source text into a sequence of tokens.
//
// TokenizeLine is a pure function of its inputs: inComment says whether the
// line starts inside an unterminated block comment, and the returned bool
// says whether the line ends inside one. Implementations must produce a
// total covering of the line's bytes for any input, including empty lines
// and malformed syntax.
type Lexer interface {
	TokenizeLine(line string, inComment bool) ([]Token, bool)
}

// Registry maps file extensions to lexers.
type Registry struct {
	byExtension map[string]Lexer
	fallback    Lexer
}

// NewRegistry creates an empty registry whose fallback is the generic
// lexer.
func NewRegistry() *Registry {
	return &Registry{
		byExtension: make(map[string]Lexer),
		fallback:    &GenericLexer{},
	}
}

// Register associates a lexer with the given extensions (".rs", ".go").
func (r *Registry) Register(l Lexer, extensions ...string) {
	for _, ext := range extensions {
		r.byExtension[ext] = l
	}
}

// ForFilename returns the lexer for the file's extension. An unrecognized
// or absent extension yields the generic lexer.
func (r *Registry) ForFilename(name string) Lexer {
	if l, ok := r.byExtension[filepath.Ext(name)]; ok {
		return l
	}
	return r.fallback
}

// DefaultRegistry returns a registry with the built-in lexers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(RustLexer(), ".rs")
	r.Register(CLexer(), ".c", ".h")
	r.Register(GoLexer(), ".go")
	return r
}

// Shared number-literal rule.
//
// A digit opens a number token only when the preceding character is
// neither a letter nor an underscore, so the 16 in u16 and the 32 in
// my_var32 stay plain. The token then extends over digits, a single
// decimal point, and letters immediately following a digit (admitting
// suffixes like 7u8).

// isNumberStart reports whether a number token may open at byte i.
func isNumberStart(line string, i int) bool {
	if !isDigit(line[i]) {
		return false
	}
	if i == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(line[:i])
	return !unicode.IsLetter(prev) && prev != '_'
}

// numberLen returns the byte length of the number token opening at i.
func numberLen(line string, i int) int {
	j := i + 1
	seenDot := false
	for j < len(line) {
		c := line[j]
		switch {
		case isDigit(c):
			j++
		case c == '.' && !seenDot:
			seenDot = true
			j++
		case isASCIILetter(c) && isDigit(line[j-1]):
			j++
		default:
			return j - i
		}
	}
	return j - i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isWordByte reports whether c can continue an identifier.
func isWordByte(c byte) bool {
	return isASCIILetter(c) || isDigit(c) || c == '_' || c >= utf8.RuneSelf
}

// isWordStart reports whether an identifier can begin at byte i.
func isWordStart(line string, i int) bool {
	c := line[i]
	if isASCIILetter(c) || c == '_' {
		return true
	}
	if c >= utf8.RuneSelf {
		r, _ := utf8.DecodeRuneInString(line[i:])
		return unicode.IsLetter(r)
	}
	return false
}

// GenericLexer applies only the shared number rule, leaving everything
// else normal. It is the lexer for plain text and unknown file types.
type GenericLexer struct{}

// TokenizeLine implements Lexer.
func (GenericLexer) TokenizeLine(line string, _ bool) ([]Token, bool) {
	if len(line) == 0 {
		return nil, false
	}

	var tokens []Token
	i := 0
	for i < len(line) {
		if isNumberStart(line, i) {
			n := numberLen(line, i)
			tokens = append(tokens, Token{Start: i, Len: n, Kind: KindNumber})
			i += n
			continue
		}
		start := i
		for i < len(line) && !isNumberStart(line, i) {
			i++
		}
		tokens = append(tokens, Token{Start: start, Len: i - start, Kind: KindNormal})
	}
	return tokens, false
}
