package editor

import (
	"path/filepath"
	"strings"
)

// FileType classifies a document by its filename extension. The type is
// fixed when the document is loaded and drives both the status bar label
// and the lexer selection.
type FileType uint8

const (
	FileTypeUnknown FileType = iota
	FileTypeText
	FileTypeRust
	FileTypeC
	FileTypeGo
)

// DetectFileType classifies a filename. The unnamed buffer "-" and
// unrecognized extensions are unknown.
func DetectFileType(filename string) FileType {
	if filename == "" || filename == "-" {
		return FileTypeUnknown
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".rs":
		return FileTypeRust
	case ".c", ".h":
		return FileTypeC
	case ".go":
		return FileTypeGo
	case ".txt":
		return FileTypeText
	default:
		return FileTypeUnknown
	}
}

// String returns the user-facing name shown in the status bar.
func (t FileType) String() string {
	switch t {
	case FileTypeText:
		return "text"
	case FileTypeRust:
		return "Rust file"
	case FileTypeC:
		return "C file"
	case FileTypeGo:
		return "Go file"
	default:
		return "unknown"
	}
}
