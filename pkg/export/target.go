package export

import (
	"fmt"
	"strings"
)

// Target names an artifact format.
type Target string

const (
	TargetHTML Target = "html"
	TargetPDF  Target = "pdf"
	TargetDOCX Target = "docx"
)

// Targets returns every supported target.
func Targets() []Target {
	return []Target{TargetHTML, TargetPDF, TargetDOCX}
}

// ParseTarget parses a target name, case-insensitively. A leading dot is
// accepted so file extensions parse too.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	switch t {
	case TargetHTML, TargetPDF, TargetDOCX:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q (want html, pdf or docx)", ErrUnknownTarget, s)
	}
}

// Extension returns the file extension written for t, with its dot.
func (t Target) Extension() string {
	return "." + string(t)
}

func (t Target) String() string {
	return string(t)
}

// SourceExtension is appended to saved source documents.
const SourceExtension = ".md"

// EnsureExtension appends ext unless path already ends with it. The check
// is case-sensitive: "REPORT.PDF" becomes "REPORT.PDF.pdf".
func EnsureExtension(path, ext string) string {
	if strings.HasSuffix(path, ext) {
		return path
	}
	return path + ext
}
