package page

import (
	"fmt"
	"html"
	"strings"
)

// Instruction is one page-flow directive. The set is closed: Paragraph,
// Preformatted, Spacer and HorizontalRule.
type Instruction interface {
	instruction()
}

// Span is a styled piece of paragraph text.
type Span struct {
	Text   string
	Font   string
	Size   float64
	Bold   bool
	Italic bool
	Color  Color
	// Background is painted behind the text when Filled is set.
	Background Color
	Filled     bool
	Link       string
}

// Paragraph is a wrapped block of styled spans.
type Paragraph struct {
	Style  ParagraphStyle
	Indent float64
	Spans  []Span
}

// Preformatted is a monospace block laid out line for line.
type Preformatted struct {
	Lines      []string
	Language   string
	Caption    string
	Font       string
	Size       float64
	Background Color
	Border     Color
	Padding    float64
	Indent     float64
}

// Spacer is vertical whitespace.
type Spacer struct {
	Height float64
}

// HorizontalRule is a full- or partial-width line.
type HorizontalRule struct {
	Thickness    float64
	Color        Color
	WidthPercent float64
}

func (Paragraph) instruction()      {}
func (Preformatted) instruction()   {}
func (Spacer) instruction()         {}
func (HorizontalRule) instruction() {}

// Text returns the unstyled paragraph text.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, s := range p.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Markup renders the paragraph as mini-markup: <b>, <i>, <a href> and
// <font name color backColor> tags around escaped text. Spans that match
// the paragraph style emit no tags.
func (p Paragraph) Markup() string {
	var b strings.Builder
	for _, s := range p.Spans {
		text := html.EscapeString(s.Text)

		var open, closing []string
		if s.Font != p.Style.Font || s.Color != p.Style.Color || s.Filled {
			attrs := fmt.Sprintf(`name=%q color=%q`, s.Font, s.Color.Hex())
			if s.Filled {
				attrs += fmt.Sprintf(` backColor=%q`, s.Background.Hex())
			}
			open = append(open, "<font "+attrs+">")
			closing = append(closing, "</font>")
		}
		if s.Link != "" {
			open = append(open, fmt.Sprintf(`<a href=%q>`, html.EscapeString(s.Link)))
			closing = append(closing, "</a>")
		}
		if s.Bold && !p.Style.Bold {
			open = append(open, "<b>")
			closing = append(closing, "</b>")
		}
		if s.Italic {
			open = append(open, "<i>")
			closing = append(closing, "</i>")
		}

		for _, tag := range open {
			b.WriteString(tag)
		}
		b.WriteString(text)
		for i := len(closing) - 1; i >= 0; i-- {
			b.WriteString(closing[i])
		}
	}
	return b.String()
}
