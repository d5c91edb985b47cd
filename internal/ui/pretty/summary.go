package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/markview/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}

// FormatOutcome formats one exported file: "source -> artifact" on
// success, the source and its error otherwise.
func (s *Styles) FormatOutcome(outcome runner.FileOutcome) string {
	if outcome.Error != nil {
		return fmt.Sprintf("  %s  %s  %s\n",
			s.FilePath.Render(outcome.Path),
			s.Error.Render("error"),
			outcome.Error.Error())
	}
	return fmt.Sprintf("  %s %s %s\n",
		s.FilePath.Render(outcome.Path),
		s.Arrow.Render("->"),
		s.Output.Render(outcome.Output))
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "Exported 3 files, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Warning.Render("No source files found") + "\n"
	}

	msg := s.Success.Render(fmt.Sprintf("Exported %d %s", stats.FilesExported, plural(stats.FilesExported)))
	if stats.FilesFailed > 0 {
		msg += ", " + s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesFailed))
	}
	return msg + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats, duration string) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files found:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files exported: " +
		s.Success.Render(strconv.Itoa(stats.FilesExported)) + "\n")
	if stats.FilesFailed > 0 {
		builder.WriteString("  Files failed:   " +
			s.Failure.Render(strconv.Itoa(stats.FilesFailed)) + "\n")
	}
	if duration != "" {
		builder.WriteString("  Time:           " + s.Dim.Render(duration) + "\n")
	}

	builder.WriteString("\n")

	if stats.FilesFailed > 0 {
		builder.WriteString(s.Failure.Render("Export failed"))
	} else {
		builder.WriteString(s.Success.Render("Export complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}
