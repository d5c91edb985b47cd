// Package langdetect guesses the language of fenced code that carries no
// info-string tag. The guess only feeds captions; it never alters code.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fence tags returned by Guess for the languages recognised by pattern.
const (
	Go         = "go"
	Python     = "python"
	JavaScript = "javascript"
	JSON       = "json"
	YAML       = "yaml"
	HTML       = "html"
	SQL        = "sql"
	Rust       = "rust"
	Dockerfile = "dockerfile"
	Bash       = "bash"
)

// classifierCandidates bounds the enry classifier to languages that
// commonly appear in prose documents.
//
//nolint:gochecknoglobals // Read-only candidate list.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// probe reports a tag when the snippet is unmistakably in its language.
type probe struct {
	tag   string
	match func(s snippet) bool
}

// snippet caches the views of the code the probes need.
type snippet struct {
	raw     []byte
	trimmed []byte
	text    string
	upper   string
}

// Probes run in order; the first match wins.
//
//nolint:gochecknoglobals // Read-only probe table.
var probes = []probe{
	{Go, func(s snippet) bool { return bytes.HasPrefix(s.trimmed, []byte("package ")) }},
	{Python, isPython},
	{HTML, func(s snippet) bool {
		lower := bytes.ToLower(s.trimmed)
		for _, tag := range []string{"<!doctype html", "<html", "<head>", "<body>"} {
			if bytes.Contains(lower, []byte(tag)) {
				return true
			}
		}
		return false
	}},
	{JSON, func(s snippet) bool {
		return (bytes.HasPrefix(s.trimmed, []byte("{")) || bytes.HasPrefix(s.trimmed, []byte("["))) &&
			bytes.Contains(s.trimmed, []byte(`"`))
	}},
	{Dockerfile, func(s snippet) bool {
		return bytes.HasPrefix(s.trimmed, []byte("FROM ")) ||
			(strings.Contains(s.text, "\nFROM ") && strings.Contains(s.text, "\nRUN ")) ||
			(strings.Contains(s.text, "WORKDIR ") && strings.Contains(s.text, "COPY "))
	}},
	{SQL, func(s snippet) bool {
		head := strings.TrimSpace(s.upper)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(head, kw) {
				return true
			}
		}
		return false
	}},
	{Rust, func(s snippet) bool {
		return strings.Contains(s.text, "fn main()") ||
			strings.Contains(s.text, "println!") ||
			strings.Contains(s.text, "let mut ")
	}},
	{JavaScript, func(s snippet) bool {
		for _, marker := range []string{"=>", "const ", "let ", "console.log"} {
			if strings.Contains(s.text, marker) {
				return true
			}
		}
		return false
	}},
	{YAML, isYAML},
}

// Guess returns the fence tag for the given code lines, or "" when no
// language can be determined with confidence.
func Guess(lines []string) string {
	content := []byte(strings.Join(lines, "\n"))
	if len(bytes.TrimSpace(content)) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return tag(lang)
	}

	s := snippet{
		raw:     content,
		trimmed: bytes.TrimSpace(content),
		text:    string(content),
	}
	s.upper = strings.ToUpper(s.text)

	for _, p := range probes {
		if p.match(s) {
			return p.tag
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return tag(lang)
	}
	return ""
}

// Label returns the display name for a fence tag, e.g. "Go" for "go".
// Unknown tags are returned unchanged.
func Label(fenceTag string) string {
	if fenceTag == "" {
		return ""
	}
	if lang, ok := enry.GetLanguageByAlias(fenceTag); ok {
		return lang
	}
	return fenceTag
}

func isPython(s snippet) bool {
	if strings.Contains(s.text, "def ") && strings.Contains(s.text, "):") {
		return true
	}
	if strings.Contains(s.text, "import ") && !strings.Contains(s.text, "import (") &&
		(strings.Contains(s.text, "from ") || bytes.HasPrefix(s.trimmed, []byte("import "))) {
		return true
	}
	return strings.Contains(s.text, "__name__") || strings.Contains(s.text, "__main__")
}

// isYAML needs at least two key/value or root list lines.
func isYAML(s snippet) bool {
	count := 0
	for line := range bytes.SplitSeq(s.raw, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") &&
			line[0] != '"' {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count >= 2
}

func tag(enryName string) string {
	if enryName == "Shell" {
		return Bash
	}
	return strings.ToLower(enryName)
}
