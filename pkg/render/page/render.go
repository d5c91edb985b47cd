// Package page maps document nodes to page-flow instructions for a
// fixed-geometry medium. It decides styles and vertical rhythm only;
// line breaking and pagination belong to the layout writer.
package page

import (
	"github.com/yaklabco/markview/pkg/document"
	"github.com/yaklabco/markview/pkg/langdetect"
)

// listIndentPerSpace is the left indent added per leading space of a list line.
const listIndentPerSpace = 6

// Render converts nodes to instructions using style.
func Render(nodes []document.Node, style Style) []Instruction {
	out := make([]Instruction, 0, len(nodes)*2) //nolint:mnd // most nodes emit a block and a spacer

	for _, n := range nodes {
		switch n := n.(type) {
		case document.Heading:
			ps := style.Heading(n.Level)
			out = append(out,
				Paragraph{Style: ps, Spans: spans(n.Text, ps, style)},
				Spacer{Height: style.HeadingSpacer},
			)

		case document.Paragraph:
			out = append(out,
				Paragraph{Style: style.Body, Spans: spans(n.Text, style.Body, style)},
				Spacer{Height: style.BodySpacer},
			)

		case document.CodeBlock:
			out = append(out,
				codeBlock(n, style),
				Spacer{Height: style.BlockSpacer},
			)

		case document.ListItem:
			prefix := style.Bullet
			if n.Ordered {
				prefix = n.Marker
			}
			items := append(
				[]Span{plainSpan(prefix, style.Body)},
				spans(n.Text, style.Body, style)...,
			)
			out = append(out, Paragraph{
				Style:  style.Body,
				Indent: listIndent(n.Indent, style),
				Spans:  items,
			})

		case document.Rule:
			out = append(out,
				Spacer{Height: style.BlockSpacer},
				HorizontalRule{
					Thickness:    style.RuleThickness,
					Color:        style.RuleColor,
					WidthPercent: style.RuleWidth,
				},
				Spacer{Height: style.BlockSpacer},
			)

		case document.Blank:
			out = append(out, Spacer{Height: style.BlockSpacer})
		}
	}

	return out
}

func codeBlock(n document.CodeBlock, style Style) Preformatted {
	block := Preformatted{
		Lines:      append([]string(nil), n.Lines...),
		Language:   n.Language,
		Font:       style.CodeFont,
		Size:       style.CodeSize,
		Background: style.CodeBackground,
		Border:     style.CodeBorder,
		Padding:    style.CodePadding,
		Indent:     style.CodeIndent,
	}
	if style.CodeCaptions {
		lang := n.Language
		if lang == "" {
			lang = langdetect.Guess(n.Lines)
		}
		block.Caption = langdetect.Label(lang)
	}
	return block
}

func plainSpan(text string, ps ParagraphStyle) Span {
	return Span{Text: text, Font: ps.Font, Size: ps.Size, Bold: ps.Bold, Color: ps.Color}
}

func spans(runs document.InlineRuns, ps ParagraphStyle, style Style) []Span {
	out := make([]Span, 0, len(runs))
	for _, r := range runs {
		s := plainSpan(r.Text, ps)
		s.Bold = s.Bold || r.Bold
		s.Italic = r.Italic
		if r.Code {
			s.Font = style.CodeFont
			s.Color = style.InlineCodeColor
			s.Background = style.InlineCodeBackground
			s.Filled = true
		}
		if r.Link != "" {
			s.Link = r.Link
			s.Color = style.LinkColor
		}
		out = append(out, s)
	}
	return out
}

func listIndent(spaces int, style Style) float64 {
	indent := float64(spaces * listIndentPerSpace)
	if style.MaxListIndent > 0 {
		indent = min(indent, style.MaxListIndent)
	}
	return indent
}
