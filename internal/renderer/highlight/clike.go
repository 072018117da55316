package highlight

import "strings"

// CLikeLexer tokenizes languages from the C family: line comments, block
// comments carried across lines, double-quoted strings with backslash
// escapes, the shared number rule, operator punctuation, and keyword/type
// word sets. Concrete languages are built by the RustLexer, CLexer and
// GoLexer constructors.
type CLikeLexer struct {
	name        string
	lineComment string
	blockStart  string
	blockEnd    string
	words       map[string]Kind
}

// NewCLikeLexer creates a lexer with the standard C comment markers.
func NewCLikeLexer(name string) *CLikeLexer {
	return &CLikeLexer{
		name:        name,
		lineComment: "//",
		blockStart:  "/*",
		blockEnd:    "*/",
		words:       make(map[string]Kind),
	}
}

// AddWords classifies the given identifiers with a kind.
func (l *CLikeLexer) AddWords(kind Kind, words ...string) *CLikeLexer {
	for _, w := range words {
		l.words[w] = kind
	}
	return l
}

// Name returns the language name.
func (l *CLikeLexer) Name() string {
	return l.name
}

const operatorBytes = "+-*/%=<>!&|^~?:;,.()[]{}#@"

func isOperatorByte(c byte) bool {
	return strings.IndexByte(operatorBytes, c) >= 0
}

// TokenizeLine implements Lexer.
func (l *CLikeLexer) TokenizeLine(line string, inComment bool) ([]Token, bool) {
	var tokens []Token

	// emit appends a span, merging adjacent spans of the same kind so the
	// output stays one token per run.
	emit := func(kind Kind, start, end int) {
		if end <= start {
			return
		}
		if n := len(tokens); n > 0 && tokens[n-1].Kind == kind && tokens[n-1].End() == start {
			tokens[n-1].Len = end - tokens[n-1].Start
			return
		}
		tokens = append(tokens, Token{Start: start, Len: end - start, Kind: kind})
	}

	i := 0
	if inComment {
		end := strings.Index(line, l.blockEnd)
		if end < 0 {
			emit(KindComment, 0, len(line))
			return tokens, true
		}
		i = end + len(l.blockEnd)
		emit(KindComment, 0, i)
	}

	for i < len(line) {
		rest := line[i:]

		switch {
		case strings.HasPrefix(rest, l.lineComment):
			emit(KindComment, i, len(line))
			return tokens, false

		case strings.HasPrefix(rest, l.blockStart):
			end := strings.Index(line[i+len(l.blockStart):], l.blockEnd)
			if end < 0 {
				emit(KindComment, i, len(line))
				return tokens, true
			}
			close := i + len(l.blockStart) + end + len(l.blockEnd)
			emit(KindComment, i, close)
			i = close

		case line[i] == '"':
			i = l.scanString(line, i, emit)

		case isNumberStart(line, i):
			n := numberLen(line, i)
			emit(KindNumber, i, i+n)
			i += n

		case isWordStart(line, i):
			start := i
			for i < len(line) && isWordByte(line[i]) {
				i++
			}
			kind, ok := l.words[line[start:i]]
			if !ok {
				kind = KindNormal
			}
			emit(kind, start, i)

		case isOperatorByte(line[i]):
			start := i
			for i < len(line) && isOperatorByte(line[i]) {
				i++
			}
			emit(KindOperator, start, i)

		default:
			emit(KindNormal, i, i+1)
			i++
		}
	}

	return tokens, false
}

// scanString consumes a double-quoted string starting at i, honoring
// backslash escapes. An unterminated string runs to end of line.
func (l *CLikeLexer) scanString(line string, i int, emit func(Kind, int, int)) int {
	j := i + 1
	for j < len(line) {
		switch line[j] {
		case '\\':
			j += 2
		case '"':
			j++
			emit(KindString, i, j)
			return j
		default:
			j++
		}
	}
	if j > len(line) {
		j = len(line)
	}
	emit(KindString, i, j)
	return j
}

// RustLexer returns the lexer for Rust source.
func RustLexer() *CLikeLexer {
	l := NewCLikeLexer("rust")
	l.AddWords(KindKeyword,
		"as", "async", "await", "break", "const", "continue", "crate", "dyn",
		"else", "enum", "extern", "fn", "for", "if", "impl", "in", "let",
		"loop", "match", "mod", "move", "mut", "pub", "ref", "return",
		"self", "Self", "static", "struct", "super", "trait", "type",
		"unsafe", "use", "where", "while")
	l.AddWords(KindType,
		"i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64", "bool", "char", "str", "String",
		"Vec", "Box", "Option", "Result")
	l.AddWords(KindKeyword, "true", "false", "None", "Some", "Ok", "Err")
	return l
}

// CLexer returns the lexer for C source and headers.
func CLexer() *CLikeLexer {
	l := NewCLikeLexer("c")
	l.AddWords(KindKeyword,
		"auto", "break", "case", "const", "continue", "default", "do",
		"else", "enum", "extern", "for", "goto", "if", "inline", "register",
		"restrict", "return", "sizeof", "static", "struct", "switch",
		"typedef", "union", "volatile", "while")
	l.AddWords(KindType,
		"void", "char", "short", "int", "long", "float", "double",
		"signed", "unsigned", "size_t", "ssize_t", "int8_t", "int16_t",
		"int32_t", "int64_t", "uint8_t", "uint16_t", "uint32_t", "uint64_t")
	return l
}

// GoLexer returns the lexer for Go source.
func GoLexer() *CLikeLexer {
	l := NewCLikeLexer("go")
	l.AddWords(KindKeyword,
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select",
		"struct", "switch", "type", "var")
	l.AddWords(KindType,
		"bool", "byte", "complex64", "complex128", "error", "float32",
		"float64", "int", "int8", "int16", "int32", "int64", "rune",
		"string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "any")
	l.AddWords(KindKeyword, "true", "false", "nil", "iota")
	return l
}
