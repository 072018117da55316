package rope

import "strings"

// Rope stores document text as a sequence of metric-carrying chunks.
// The zero value is an empty rope.
type Rope struct {
	chunks   []chunk
	length   int
	newlines int
}

// New creates an empty rope.
func New() *Rope {
	return &Rope{}
}

// FromString creates a rope holding s.
func FromString(s string) *Rope {
	r := New()
	if len(s) > 0 {
		r.chunks = splitIntoChunks(s)
		r.recount()
	}
	return r
}

// Len returns the total byte length.
func (r *Rope) Len() int {
	return r.length
}

// LineCount returns the number of lines (newlines + 1).
func (r *Rope) LineCount() int {
	return r.newlines + 1
}

// String returns the full text. Use sparingly for large ropes.
func (r *Rope) String() string {
	var sb strings.Builder
	sb.Grow(r.length)
	for _, c := range r.chunks {
		sb.WriteString(c.text)
	}
	return sb.String()
}

// Slice returns the text in the byte range [start, end).
// The range is clamped to the rope bounds.
func (r *Rope) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > r.length {
		end = r.length
	}
	if start >= end {
		return ""
	}

	var sb strings.Builder
	sb.Grow(end - start)

	offset := 0
	for _, c := range r.chunks {
		chunkEnd := offset + c.len()
		if chunkEnd <= start {
			offset = chunkEnd
			continue
		}
		if offset >= end {
			break
		}

		from := 0
		if start > offset {
			from = start - offset
		}
		to := c.len()
		if end < chunkEnd {
			to = end - offset
		}
		sb.WriteString(c.text[from:to])
		offset = chunkEnd
	}

	return sb.String()
}

// Insert inserts text at the given byte offset.
// Offsets outside [0, Len()] are clamped.
func (r *Rope) Insert(offset int, text string) {
	if len(text) == 0 {
		return
	}
	if offset < 0 {
		offset = 0
	}
	if offset > r.length {
		offset = r.length
	}

	idx, within := r.locate(offset)

	inserted := splitIntoChunks(text)
	switch {
	case idx == len(r.chunks):
		r.chunks = append(r.chunks, inserted...)
	case within == 0:
		r.chunks = spliceChunks(r.chunks, idx, 0, inserted...)
	default:
		// Split the containing chunk around the insertion point.
		target := r.chunks[idx]
		left := newChunk(target.text[:within])
		right := newChunk(target.text[within:])
		replacement := make([]chunk, 0, len(inserted)+2)
		replacement = append(replacement, left)
		replacement = append(replacement, inserted...)
		replacement = append(replacement, right)
		r.chunks = spliceChunks(r.chunks, idx, 1, replacement...)
	}

	r.recount()
	r.compact(idx)
}

// Delete removes the byte range [start, end).
// The range is clamped to the rope bounds.
func (r *Rope) Delete(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > r.length {
		end = r.length
	}
	if start >= end {
		return
	}

	kept := make([]chunk, 0, len(r.chunks))
	offset := 0
	for _, c := range r.chunks {
		chunkEnd := offset + c.len()
		if chunkEnd <= start || offset >= end {
			kept = append(kept, c)
			offset = chunkEnd
			continue
		}

		// Chunk overlaps the deleted range; keep the surviving edges.
		if start > offset {
			kept = append(kept, newChunk(c.text[:start-offset]))
		}
		if end < chunkEnd {
			kept = append(kept, newChunk(c.text[end-offset:]))
		}
		offset = chunkEnd
	}

	r.chunks = kept
	r.recount()
	r.compact(0)
}

// LineStartOffset returns the byte offset of the start of the given line.
// Lines past the end map to Len().
func (r *Rope) LineStartOffset(line int) int {
	if line <= 0 {
		return 0
	}
	if line >= r.LineCount() {
		return r.length
	}

	// Walk chunk metrics until the chunk containing the target newline,
	// then scan only that chunk.
	remaining := line
	offset := 0
	for _, c := range r.chunks {
		if remaining > c.newlines {
			remaining -= c.newlines
			offset += c.len()
			continue
		}
		pos := 0
		for remaining > 0 {
			nl := strings.IndexByte(c.text[pos:], '\n')
			pos += nl + 1
			remaining--
		}
		return offset + pos
	}
	return r.length
}

// LineEndOffset returns the byte offset just past the last character of the
// given line, not counting its newline.
func (r *Rope) LineEndOffset(line int) int {
	if line < 0 {
		return 0
	}
	if line >= r.newlines {
		return r.length
	}
	// Start of the next line minus its separating newline.
	return r.LineStartOffset(line+1) - 1
}

// LineText returns the text of the given line without its newline.
func (r *Rope) LineText(line int) string {
	return r.Slice(r.LineStartOffset(line), r.LineEndOffset(line))
}

// locate finds the chunk containing the byte offset.
// Returns the chunk index and the offset within that chunk. An offset equal
// to Len() yields (len(chunks), 0).
func (r *Rope) locate(offset int) (int, int) {
	pos := 0
	for i, c := range r.chunks {
		if offset < pos+c.len() {
			return i, offset - pos
		}
		pos += c.len()
	}
	return len(r.chunks), 0
}

// recount recomputes the aggregate metrics from chunk metrics.
func (r *Rope) recount() {
	length, newlines := 0, 0
	for _, c := range r.chunks {
		length += c.len()
		newlines += c.newlines
	}
	r.length = length
	r.newlines = newlines
}

// compact merges undersized neighbors starting near the edited chunk so
// repeated single-rune edits do not accumulate tiny chunks.
func (r *Rope) compact(from int) {
	if from > 0 {
		from--
	}
	for i := from; i+1 < len(r.chunks); {
		a, b := r.chunks[i], r.chunks[i+1]
		if a.len() >= minChunkSize && b.len() >= minChunkSize {
			i++
			continue
		}
		if a.len()+b.len() > maxChunkSize {
			i++
			continue
		}
		r.chunks[i] = chunk{
			text:     a.text + b.text,
			newlines: a.newlines + b.newlines,
		}
		r.chunks = append(r.chunks[:i+1], r.chunks[i+2:]...)
	}
	if len(r.chunks) == 1 && r.chunks[0].len() == 0 {
		r.chunks = nil
	}
}

// spliceChunks replaces chunks[idx:idx+del] with repl.
func spliceChunks(chunks []chunk, idx, del int, repl ...chunk) []chunk {
	out := make([]chunk, 0, len(chunks)-del+len(repl))
	out = append(out, chunks[:idx]...)
	out = append(out, repl...)
	out = append(out, chunks[idx+del:]...)
	return out
}
