package highlight

type cacheEntry struct {
	tokens     []Token
	endComment bool
}

// LineCache memoizes per-line token runs. Lines are resolved lazily: asking
// for line N tokenizes every unresolved line up to N so the block-comment
// carry flag is always derived from a resolved predecessor. Any edit must
// call Invalidate, which drops every entry and resizes to the new line
// count.
type LineCache struct {
	lexer   Lexer
	source  func(line int) string
	entries []*cacheEntry
}

// NewLineCache creates a cache over lineCount lines read through source.
func NewLineCache(lexer Lexer, lineCount int, source func(line int) string) *LineCache {
	return &LineCache{
		lexer:   lexer,
		source:  source,
		entries: make([]*cacheEntry, lineCount),
	}
}

// Len reports the number of lines the cache tracks.
func (c *LineCache) Len() int {
	return len(c.entries)
}

// Invalidate discards all cached tokens and resizes to lineCount.
func (c *LineCache) Invalidate(lineCount int) {
	c.entries = make([]*cacheEntry, lineCount)
}

// TokensForLine returns the token run for a line, tokenizing any
// unresolved lines before it first. Out-of-range lines yield nil.
func (c *LineCache) TokensForLine(line int) []Token {
	if line < 0 || line >= len(c.entries) {
		return nil
	}
	if e := c.entries[line]; e != nil {
		return e.tokens
	}

	// Walk back to the nearest resolved line to pick up its carry state.
	start := line
	carry := false
	for start > 0 {
		if prev := c.entries[start-1]; prev != nil {
			carry = prev.endComment
			break
		}
		start--
	}

	for i := start; i <= line; i++ {
		tokens, end := c.lexer.TokenizeLine(c.source(i), carry)
		c.entries[i] = &cacheEntry{tokens: tokens, endComment: end}
		carry = end
	}
	return c.entries[line].tokens
}
