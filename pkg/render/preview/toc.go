package preview

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// tocMarker is the rendered form of a paragraph containing only "[TOC]".
const tocMarker = "<p>[TOC]</p>"

type tocEntry struct {
	level int
	id    string
	text  string
}

func collectHeadings(doc ast.Node, source []byte) []tocEntry {
	var entries []tocEntry
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		entry := tocEntry{level: heading.Level, text: plainText(heading, source)}
		if id, found := heading.AttributeString("id"); found {
			if b, isBytes := id.([]byte); isBytes {
				entry.id = string(b)
			}
		}
		entries = append(entries, entry)
		return ast.WalkSkipChildren, nil
	})
	return entries
}

func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// expandTOC replaces every [TOC] paragraph in body with a nested list of
// links to the collected headings.
func expandTOC(body []byte, entries []tocEntry) []byte {
	if !bytes.Contains(body, []byte(tocMarker)) {
		return body
	}
	return bytes.ReplaceAll(body, []byte(tocMarker), []byte(renderTOC(entries)))
}

func renderTOC(entries []tocEntry) string {
	var b strings.Builder
	b.WriteString(`<div class="toc">`)
	if len(entries) == 0 {
		b.WriteString("</div>")
		return b.String()
	}

	base := entries[0].level
	for _, e := range entries[1:] {
		base = min(base, e.level)
	}

	depth := 0
	for i, e := range entries {
		level := e.level - base + 1
		switch {
		case level > depth:
			for ; depth < level; depth++ {
				b.WriteString("\n<ul>")
			}
		case i > 0:
			for ; depth > level; depth-- {
				b.WriteString("</li>\n</ul>")
			}
			b.WriteString("</li>")
		}
		b.WriteString("\n<li><a href=\"#")
		b.WriteString(html.EscapeString(e.id))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(e.text))
		b.WriteString("</a>")
	}
	for ; depth > 0; depth-- {
		b.WriteString("</li>\n</ul>")
	}
	b.WriteString("\n</div>")
	return b.String()
}
