// Package mdsrc holds the immutable source view the converter works on:
// the raw document bytes plus a line table for offset-to-position lookups.
package mdsrc

// Source is an immutable view of one input document.
// It holds the raw content and the line metadata used to translate byte
// offsets into 1-based line/column positions.
type Source struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full document bytes. Never mutated after construction.
	Content []byte

	// Lines contains metadata for each line, in document order.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the first byte of the line.
	StartOffset int

	// NewlineStart is the byte index where the line terminator begins.
	// For the last line without a trailing newline this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just past the line terminator
	// (or end of content for the last line).
	EndOffset int
}

// New builds a Source over content, including its line table.
func New(path string, content []byte) *Source {
	return &Source{
		Path:    path,
		Content: content,
		Lines:   buildLines(content),
	}
}

// Len returns the content length in bytes. The offset len(content) is the
// canonical end-of-input offset used by error reporting.
func (s *Source) Len() int {
	return len(s.Content)
}

// LineCount returns the number of lines.
func (s *Source) LineCount() int {
	return len(s.Lines)
}
