package rope

import "strings"

const (
	// maxChunkSize is the largest chunk produced by splitting inserted text.
	maxChunkSize = 4096

	// minChunkSize is the size below which adjacent chunks are merged.
	minChunkSize = 512
)

// chunk is a contiguous run of text with cached metrics.
type chunk struct {
	text     string
	newlines int
}

func newChunk(text string) chunk {
	return chunk{
		text:     text,
		newlines: strings.Count(text, "\n"),
	}
}

func (c chunk) len() int {
	return len(c.text)
}

// splitIntoChunks breaks text into chunks of at most maxChunkSize bytes.
// Split points are byte oriented; chunks may begin mid-rune, which is fine
// because chunk boundaries are invisible to callers.
func splitIntoChunks(text string) []chunk {
	if len(text) == 0 {
		return nil
	}

	chunks := make([]chunk, 0, len(text)/maxChunkSize+1)
	for len(text) > maxChunkSize {
		chunks = append(chunks, newChunk(text[:maxChunkSize]))
		text = text[maxChunkSize:]
	}
	chunks = append(chunks, newChunk(text))
	return chunks
}
