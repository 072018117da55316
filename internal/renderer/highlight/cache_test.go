package highlight

import "testing"

func TestLineCacheCarryAcrossLines(t *testing.T) {
	lines := []string{
		"int a; /* start",
		"middle",
		"end */ int b;",
		"int c;",
	}
	cache := NewLineCache(CLexer(), len(lines), func(i int) string { return lines[i] })

	// Asking for a late line must resolve everything before it.
	tokens := cache.TokensForLine(2)
	if KindAt(tokens, 0) != KindComment {
		t.Errorf("line 2 start not carried as comment")
	}
	if KindAt(tokens, 7) != KindType {
		t.Errorf("line 2 after close = %v, want type", KindAt(tokens, 7))
	}

	tokens = cache.TokensForLine(1)
	if len(tokens) != 1 || tokens[0].Kind != KindComment {
		t.Errorf("line 1 tokens = %v, want one comment span", tokens)
	}

	tokens = cache.TokensForLine(3)
	if KindAt(tokens, 0) != KindType {
		t.Errorf("line 3 start = %v, want type", KindAt(tokens, 0))
	}
}

func TestLineCacheInvalidate(t *testing.T) {
	lines := []string{"one 1", "two 2"}
	cache := NewLineCache(GenericLexer{}, len(lines), func(i int) string { return lines[i] })

	if cache.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cache.Len())
	}
	if got := cache.TokensForLine(0); len(got) == 0 {
		t.Fatalf("no tokens for line 0")
	}

	lines = []string{"one 1", "inserted", "two 2"}
	cache.Invalidate(len(lines))
	if cache.Len() != 3 {
		t.Errorf("Len after invalidate = %d, want 3", cache.Len())
	}
	tokens := cache.TokensForLine(2)
	if KindAt(tokens, 4) != KindNumber {
		t.Errorf("line 2 after invalidate = %v, want number at col 4", KindAt(tokens, 4))
	}
}

func TestLineCacheOutOfRange(t *testing.T) {
	cache := NewLineCache(GenericLexer{}, 1, func(int) string { return "x" })
	if got := cache.TokensForLine(-1); got != nil {
		t.Errorf("TokensForLine(-1) = %v, want nil", got)
	}
	if got := cache.TokensForLine(1); got != nil {
		t.Errorf("TokensForLine(1) = %v, want nil", got)
	}
}
