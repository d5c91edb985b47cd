// Package document implements the line-oriented markup interpreter: the
// block classifier, the inline span transformer and the builder that turns
// source text into a flat sequence of renderer-agnostic nodes.
package document

import "strings"

// Source is an immutable snapshot of the text handed to a render pass.
type Source struct {
	lines []string
}

// NewSource captures text as a Source.
// CRLF and lone CR line endings are normalised to LF. A single trailing
// newline terminates the last line and does not produce an extra empty line.
func NewSource(text string) Source {
	if text == "" {
		return Source{}
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return Source{lines: lines}
}

// Lines returns a copy of the source lines.
func (s Source) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of source lines.
func (s Source) Len() int {
	return len(s.lines)
}

// Nodes builds the node sequence for the source.
func (s Source) Nodes() []Node {
	return Build(s.lines)
}
