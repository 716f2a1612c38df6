package render

import (
	"fmt"

	"github.com/yaklabco/mdconv/pkg/mdsrc"
)

// ErrorKind classifies a parse error.
type ErrorKind string

// Parse error kinds. Each names the syntactic condition that was violated.
const (
	// Block-level indentation.
	KindMixedIndentation ErrorKind = "mixed-indentation"

	// Inline syntax opened but never closed.
	KindUnterminatedInlineCode ErrorKind = "unterminated-inline-code"
	KindUnterminatedEscape     ErrorKind = "unterminated-escape"
	KindUnclosedBracket        ErrorKind = "unclosed-bracket"

	// Emphasis toggles closed out of nesting order.
	KindMismatchedEmphasis ErrorKind = "mismatched-emphasis"

	// HTML tag nesting violations.
	KindTagMismatch        ErrorKind = "tag-mismatch"
	KindUnexpectedCloseTag ErrorKind = "unexpected-close-tag"
	KindUnclosedTag        ErrorKind = "unclosed-tag"
	KindUnclosedRawTag     ErrorKind = "unclosed-raw-tag"

	// Recursion guard tripped on pathological nesting.
	KindNestingTooDeep ErrorKind = "nesting-too-deep"

	// Internal invariant violation in position lookup. Should never
	// surface to a caller; if it does, it indicates an engine bug.
	KindOutOfRange ErrorKind = "out-of-range"
)

// ParseError is a located parse failure. Line and Column are 1-based and
// derived from the source line table; both are zero when the error has no
// position inside the document (end-of-input conditions).
type ParseError struct {
	Kind    ErrorKind
	Path    string
	Offset  int
	Line    int
	Column  int
	Message string
}

// Error formats the error as path:line:col: message, omitting the parts
// that are not known.
func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Path != "":
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	case e.Path != "":
		return fmt.Sprintf("%s: %s at end of input", e.Path, e.Message)
	default:
		return e.Message + " at end of input"
	}
}

// errorAt builds a ParseError located at the given byte offset.
func errorAt(src *mdsrc.Source, kind ErrorKind, offset int, format string, args ...any) *ParseError {
	line, col := src.LineAt(offset)
	return &ParseError{
		Kind:    kind,
		Path:    src.Path,
		Offset:  offset,
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf(format, args...),
	}
}

// errorAtEOF builds a ParseError for a condition detected at end of input,
// with no position inside the document.
func errorAtEOF(src *mdsrc.Source, kind ErrorKind, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Path:    src.Path,
		Offset:  src.Len(),
		Message: fmt.Sprintf(format, args...),
	}
}
