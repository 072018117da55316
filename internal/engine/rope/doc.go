// Package rope implements the text storage backing a document.
//
// The rope keeps text as an ordered sequence of small chunks, each of
// which carries its byte length and newline count. Edits split and merge
// chunks rather than reallocating the whole text, and line lookups walk
// chunk metrics instead of scanning bytes.
//
// The rope is byte addressed. Line numbers are 0-indexed and a rope
// always has at least one line: an empty rope is one empty line.
package rope
