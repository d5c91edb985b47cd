package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/yaklabco/markview/pkg/document"
)

// Node dump layout.
const (
	lineColumnWidth = 5
	kindColumnWidth = 10
	columnGap       = 2
	minTextWidth    = 20
	ellipsis        = "…"
)

// NodeRecord is the serialisable view of one document node.
// Line numbers are one-based.
type NodeRecord struct {
	Kind     string         `json:"kind" yaml:"kind"`
	Line     int            `json:"line" yaml:"line"`
	EndLine  int            `json:"end_line,omitempty" yaml:"end_line,omitempty"`
	Level    int            `json:"level,omitempty" yaml:"level,omitempty"`
	Ordered  bool           `json:"ordered,omitempty" yaml:"ordered,omitempty"`
	Marker   string         `json:"marker,omitempty" yaml:"marker,omitempty"`
	Indent   int            `json:"indent,omitempty" yaml:"indent,omitempty"`
	TableRow bool           `json:"table_row,omitempty" yaml:"table_row,omitempty"`
	Language string         `json:"language,omitempty" yaml:"language,omitempty"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty"`
	Runs     []document.Run `json:"runs,omitempty" yaml:"runs,omitempty"`
	Lines    []string       `json:"lines,omitempty" yaml:"lines,omitempty"`
	Open     bool           `json:"unterminated,omitempty" yaml:"unterminated,omitempty"`
}

// Records converts nodes to their serialisable form.
func Records(nodes []document.Node) []NodeRecord {
	out := make([]NodeRecord, 0, len(nodes))
	for _, n := range nodes {
		first, last := n.Span()
		rec := NodeRecord{Kind: n.Kind().String(), Line: first + 1}
		if last != first {
			rec.EndLine = last + 1
		}

		switch v := n.(type) {
		case document.Heading:
			rec.Level = v.Level
			rec.Text = v.Raw
			rec.Runs = v.Text
		case document.Paragraph:
			rec.TableRow = v.TableRow
			rec.Text = v.Raw
			rec.Runs = v.Text
		case document.CodeBlock:
			rec.Language = v.Language
			rec.Lines = v.Lines
			rec.Open = v.Unterminated
		case document.ListItem:
			rec.Ordered = v.Ordered
			rec.Marker = v.Marker
			rec.Indent = v.Indent
			rec.Text = v.Raw
			rec.Runs = v.Text
		case document.Rule, document.Blank:
		}
		out = append(out, rec)
	}
	return out
}

// NodeFormatter renders a node dump for the terminal: one row per node
// with its line, kind and text wrapped to the terminal width.
type NodeFormatter struct {
	styles *Styles
	width  int
}

// NewNodeFormatter creates a formatter for the given width.
// A width of 0 or less uses DefaultWidth.
func NewNodeFormatter(styles *Styles, width int) *NodeFormatter {
	if width <= 0 {
		width = DefaultWidth
	}
	return &NodeFormatter{styles: styles, width: width}
}

// Format renders every node.
func (f *NodeFormatter) Format(nodes []document.Node) string {
	var builder strings.Builder
	for _, n := range nodes {
		builder.WriteString(f.FormatNode(n))
	}
	return builder.String()
}

// FormatNode renders one node.
func (f *NodeFormatter) FormatNode(n document.Node) string {
	first, _ := n.Span()

	var (
		kind  = n.Kind().String()
		style lipgloss.Style
		text  string
		body  []string
	)

	switch v := n.(type) {
	case document.Heading:
		style = f.styles.Heading
		kind = fmt.Sprintf("h%d", v.Level)
		text = v.Text.Text()
	case document.Paragraph:
		style = f.styles.Paragraph
		if v.TableRow {
			kind = "table_row"
		}
		text = v.Text.Text()
	case document.ListItem:
		style = f.styles.ListItem
		marker := "•"
		if v.Ordered {
			marker = strings.TrimSpace(v.Marker)
		}
		text = strings.Repeat(" ", v.Indent) + marker + " " + v.Text.Text()
	case document.CodeBlock:
		style = f.styles.Code
		text = "```" + v.Language
		if v.Unterminated {
			text += f.styles.Warning.Render(" (unterminated)")
		}
		body = v.Lines
	case document.Rule:
		style = f.styles.Rule
		text = "---"
	case document.Blank:
		style = f.styles.Blank
	}

	prefixWidth := lineColumnWidth + columnGap + kindColumnWidth + columnGap
	textWidth := max(f.width-prefixWidth, minTextWidth)
	pad := strings.Repeat(" ", prefixWidth)

	var builder strings.Builder
	builder.WriteString(f.styles.LineNumber.Render(fmt.Sprintf("%*d", lineColumnWidth, first+1)))
	builder.WriteString(strings.Repeat(" ", columnGap))
	builder.WriteString(f.styles.Dim.Render(fmt.Sprintf("%-*s", kindColumnWidth, kind)))
	builder.WriteString(strings.Repeat(" ", columnGap))

	for i, line := range strings.Split(wordwrap.String(text, textWidth), "\n") {
		if i > 0 {
			builder.WriteString("\n" + pad)
		}
		builder.WriteString(style.Render(line))
	}
	builder.WriteString("\n")

	// Code keeps its line structure; long lines are cut, not wrapped.
	for _, line := range body {
		builder.WriteString(pad)
		builder.WriteString(style.Render(truncate(line, textWidth)))
		builder.WriteString("\n")
	}

	return builder.String()
}

func truncate(s string, limit int) string {
	if ansi.PrintableRuneWidth(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + ellipsis
}
