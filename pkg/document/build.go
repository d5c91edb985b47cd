package document

// Build runs the classifier over lines and assembles the node sequence.
// Code lines between a fence pair collapse into one CodeBlock; every other
// line becomes exactly one node. A fence left open at end of input is
// closed implicitly.
func Build(lines []string) []Node {
	nodes := make([]Node, 0, len(lines))

	var code *CodeBlock
	for ev := range Classify(lines) {
		switch ev.Kind {
		case EventFenceOpen:
			code = &CodeBlock{
				Language:  ev.Language,
				Lines:     []string{},
				StartLine: ev.Line,
				EndLine:   ev.Line,
			}
		case EventCodeLine:
			code.Lines = append(code.Lines, ev.Text)
			code.EndLine = ev.Line
		case EventFenceClose:
			code.EndLine = ev.Line
			nodes = append(nodes, *code)
			code = nil
		case EventHeading:
			nodes = append(nodes, Heading{
				Level: ev.Level,
				Text:  Substitute(ev.Text),
				Raw:   ev.Text,
				Line:  ev.Line,
			})
		case EventListItem:
			nodes = append(nodes, ListItem{
				Ordered: ev.Ordered,
				Marker:  ev.Marker,
				Indent:  ev.Indent,
				Text:    Substitute(ev.Text),
				Raw:     ev.Text,
				Line:    ev.Line,
			})
		case EventRule:
			nodes = append(nodes, Rule{Line: ev.Line})
		case EventParagraph:
			nodes = append(nodes, Paragraph{
				Text:     Substitute(ev.Text),
				Raw:      ev.Text,
				Line:     ev.Line,
				TableRow: ev.TableRow,
			})
		case EventBlank:
			nodes = append(nodes, Blank{Line: ev.Line})
		}
	}

	if code != nil {
		code.Unterminated = true
		nodes = append(nodes, *code)
	}

	return nodes
}

// BuildText captures text as a Source and builds its nodes.
func BuildText(text string) []Node {
	return NewSource(text).Nodes()
}
