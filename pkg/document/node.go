package document

import "strings"

// NodeKind identifies the variant of a Node.
type NodeKind uint8

// Node kinds, one per block variant.
const (
	KindHeading NodeKind = iota
	KindParagraph
	KindCodeBlock
	KindListItem
	KindRule
	KindBlank
)

// String returns the lowercase kind name.
func (k NodeKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindCodeBlock:
		return "code_block"
	case KindListItem:
		return "list_item"
	case KindRule:
		return "rule"
	case KindBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Node is one parsed block. The set of implementations is closed: only the
// types in this package satisfy it, so renderers can switch exhaustively.
type Node interface {
	Kind() NodeKind
	// Span returns the zero-based, inclusive source line span of the node.
	Span() (first, last int)

	node()
}

// Heading is an ATX-style heading line.
type Heading struct {
	Level int
	Text  InlineRuns
	// Raw is the heading text with markup delimiters intact.
	Raw  string
	Line int
}

// Paragraph is any text line with no more specific classification.
type Paragraph struct {
	Text InlineRuns
	// Raw is the source line verbatim.
	Raw  string
	Line int
	// TableRow is set when the line starts with a pipe. Tables are not
	// modelled; the row is kept as plain paragraph text.
	TableRow bool
}

// CodeBlock is a fenced code region. Lines never include the fences and are
// never inline-substituted.
type CodeBlock struct {
	Language  string
	Lines     []string
	StartLine int
	EndLine   int
	// Unterminated is set when the input ended inside the fence.
	Unterminated bool
}

// ListItem is one list line. Items are independent; nesting is only
// recorded as the leading whitespace width in Indent.
type ListItem struct {
	Ordered bool
	// Marker is the literal prefix including its trailing whitespace,
	// e.g. "- " or "3. ".
	Marker string
	Indent int
	Text   InlineRuns
	// Raw is the item text after the marker, delimiters intact.
	Raw  string
	Line int
}

// Rule is a horizontal separator line.
type Rule struct {
	Line int
}

// Blank is one empty (or whitespace-only) source line.
type Blank struct {
	Line int
}

func (Heading) Kind() NodeKind   { return KindHeading }
func (Paragraph) Kind() NodeKind { return KindParagraph }
func (CodeBlock) Kind() NodeKind { return KindCodeBlock }
func (ListItem) Kind() NodeKind  { return KindListItem }
func (Rule) Kind() NodeKind      { return KindRule }
func (Blank) Kind() NodeKind     { return KindBlank }

func (n Heading) Span() (int, int)   { return n.Line, n.Line }
func (n Paragraph) Span() (int, int) { return n.Line, n.Line }
func (n CodeBlock) Span() (int, int) { return n.StartLine, n.EndLine }
func (n ListItem) Span() (int, int)  { return n.Line, n.Line }
func (n Rule) Span() (int, int)      { return n.Line, n.Line }
func (n Blank) Span() (int, int)     { return n.Line, n.Line }

func (Heading) node()   {}
func (Paragraph) node() {}
func (CodeBlock) node() {}
func (ListItem) node()  {}
func (Rule) node()      {}
func (Blank) node()     {}

// Code returns the interior lines joined with newlines.
func (n CodeBlock) Code() string {
	return strings.Join(n.Lines, "\n")
}
