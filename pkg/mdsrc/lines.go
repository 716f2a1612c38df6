package mdsrc

import "sort"

// buildLines constructs the line table for content.
// It handles both LF (\n) and CRLF (\r\n) line endings and always records a
// final line, even when the content has no trailing newline.
func buildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char != '\n' {
			continue
		}
		newlineStart := idx
		if idx > 0 && content[idx-1] == '\r' {
			newlineStart = idx - 1
		}
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineAt converts a byte offset to 1-based line and column numbers using a
// binary search over the line table. Column counts bytes, not runes.
//
// Offsets at or past the end of content map to a position on the last line;
// a negative offset returns (0, 0), which callers must treat as an internal
// invariant violation.
func (s *Source) LineAt(offset int) (int, int) {
	if offset < 0 || len(s.Lines) == 0 {
		return 0, 0
	}

	if offset >= len(s.Content) {
		last := s.Lines[len(s.Lines)-1]
		return len(s.Lines), offset - last.StartOffset + 1
	}

	lineIdx := sort.Search(len(s.Lines), func(i int) bool {
		return s.Lines[i].EndOffset > offset
	})
	if lineIdx >= len(s.Lines) {
		lineIdx = len(s.Lines) - 1
	}

	info := s.Lines[lineIdx]
	if offset < info.StartOffset {
		return 0, 0
	}

	return lineIdx + 1, offset - info.StartOffset + 1
}

// LineContent returns the content of a 1-based line number, excluding the
// line terminator. Returns nil if the line number is out of range.
func (s *Source) LineContent(line int) []byte {
	if line < 1 || line > len(s.Lines) {
		return nil
	}
	info := s.Lines[line-1]
	return s.Content[info.StartOffset:info.NewlineStart]
}
