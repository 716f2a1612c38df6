package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdconv/pkg/render"
)

// sourceContextIndent aligns the quoted source line under the diagnostic.
const sourceContextIndent = "        "

// FormatParseError formats a single parse error for terminal output.
// When showContext is true and sourceLine is non-empty, the offending source
// line is quoted below the message with a caret under the error column.
func (s *Styles) FormatParseError(parseErr *render.ParseError, showContext bool, sourceLine string, width int) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(parseErr.Path),
		parseErr.Line,
		parseErr.Column,
	)
	if parseErr.Path == "" {
		location = fmt.Sprintf("%d:%d", parseErr.Line, parseErr.Column)
	}

	kind := s.ErrorKind.Render("(" + string(parseErr.Kind) + ")")

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(parseErr.Message),
		kind,
	))

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, parseErr.Column, width))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker under the
// given 1-based column. Lines wider than the terminal are truncated so the
// caret always stays visible.
func (s *Styles) FormatSourceContext(line string, column, width int) string {
	var builder strings.Builder

	line, column = clipToWidth(line, column, width-len(sourceContextIndent))

	builder.WriteString(sourceContextIndent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := sourceContextIndent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// clipToWidth trims line so the caret column fits within width columns,
// remapping the column into the trimmed string.
func clipToWidth(line string, column, width int) (string, int) {
	if width <= 3 || len(line) <= width {
		return line, column
	}

	if column <= width-3 {
		return line[:width-3] + "...", column
	}

	// Caret is past the visible window; slide the window to keep it in view.
	start := column - width/2
	if start > len(line)-width+3 {
		start = len(line) - width + 3
	}
	// Very narrow widths can push the window past the end of the line.
	if start > len(line)-3 {
		start = len(line) - 3
	}
	if start < 0 {
		start = 0
	}

	clipped := "..." + line[start+3:]
	if len(clipped) > width {
		clipped = clipped[:width-3] + "..."
	}

	column -= start
	if column > len(clipped) {
		column = len(clipped)
	}
	return clipped, column
}

// FormatFileHeader formats a file header for grouped error output.
func (s *Styles) FormatFileHeader(path string, errorCount int) string {
	header := s.FilePath.Render(path)
	if errorCount > 0 {
		word := "errors"
		if errorCount == 1 {
			word = "error"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", errorCount, word))
	}
	return header
}
