// Package flow maps document nodes to reflowable word-processor elements.
//
// Text is carried verbatim, markup delimiters included; only the node kind
// decides the element type. Code blocks produce no element at all.
package flow

import "github.com/yaklabco/markview/pkg/document"

// Element is one flow-document element: Heading, Paragraph or ListItem.
type Element interface {
	element()
}

// Heading is a native heading at Level 1..6.
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Paragraph is a plain paragraph. Rules and blanks become empty ones.
type Paragraph struct {
	Text string `json:"text" yaml:"text"`
}

// ListItem is a bulleted or numbered list entry.
type ListItem struct {
	Ordered bool   `json:"ordered" yaml:"ordered"`
	Text    string `json:"text" yaml:"text"`
}

func (Heading) element()   {}
func (Paragraph) element() {}
func (ListItem) element()  {}

// Render converts nodes to flow elements.
func Render(nodes []document.Node) []Element {
	out := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case document.Heading:
			out = append(out, Heading{Level: n.Level, Text: n.Raw})
		case document.Paragraph:
			out = append(out, Paragraph{Text: n.Raw})
		case document.ListItem:
			out = append(out, ListItem{Ordered: n.Ordered, Text: n.Raw})
		case document.Rule, document.Blank:
			out = append(out, Paragraph{})
		case document.CodeBlock:
			// Dropped.
		}
	}
	return out
}
