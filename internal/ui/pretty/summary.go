package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdconv/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "converted 3 files (1 unchanged), 2 failed with 5 errors".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesFailed == 0 {
		fileWord := wordFiles
		if stats.FilesConverted == 1 {
			fileWord = wordFile
		}
		msg := s.Success.Render(fmt.Sprintf("converted %d %s", stats.FilesConverted, fileWord))
		if stats.FilesUnchanged > 0 {
			msg += s.Dim.Render(fmt.Sprintf(" (%d unchanged)", stats.FilesUnchanged))
		}
		return msg + "\n"
	}

	var parts []string

	fileWord := wordFiles
	if stats.FilesConverted == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("converted %d %s", stats.FilesConverted, fileWord))

	failedWord := wordFiles
	if stats.FilesFailed == 1 {
		failedWord = wordFile
	}
	errorWord := "errors"
	if stats.ParseErrors == 1 {
		errorWord = "error"
	}
	parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s failed with %d %s",
		stats.FilesFailed, failedWord, stats.ParseErrors, errorWord)))

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files converted:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesConverted)) + "\n")

	if stats.FilesWritten > 0 {
		builder.WriteString("  Files written:     " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}
	if stats.FilesUnchanged > 0 {
		builder.WriteString("  Files unchanged:   " +
			s.Dim.Render(strconv.Itoa(stats.FilesUnchanged)) + "\n")
	}
	if stats.BytesWritten > 0 {
		builder.WriteString("  Bytes written:     " +
			s.SummaryValue.Render(strconv.FormatInt(stats.BytesWritten, 10)) + "\n")
	}

	if stats.FilesFailed > 0 {
		builder.WriteString("\n")
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesFailed)) + "\n")
		builder.WriteString("  Parse errors:      " +
			s.Error.Render(strconv.Itoa(stats.ParseErrors)) + "\n")
	}

	builder.WriteString("\n")

	if stats.FilesFailed > 0 {
		builder.WriteString(s.Failure.Render("Conversion failed"))
	} else {
		builder.WriteString(s.Success.Render("Conversion succeeded"))
	}
	builder.WriteString("\n")

	return builder.String()
}
