package document

import (
	"iter"
	"regexp"
	"strings"
)

// EventKind classifies one source line.
type EventKind uint8

// Event kinds emitted by Classify.
const (
	EventBlank EventKind = iota
	EventHeading
	EventListItem
	EventRule
	EventParagraph
	EventFenceOpen
	EventCodeLine
	EventFenceClose
)

// String returns the lowercase event name.
func (k EventKind) String() string {
	switch k {
	case EventBlank:
		return "blank"
	case EventHeading:
		return "heading"
	case EventListItem:
		return "list_item"
	case EventRule:
		return "rule"
	case EventParagraph:
		return "paragraph"
	case EventFenceOpen:
		return "fence_open"
	case EventCodeLine:
		return "code_line"
	case EventFenceClose:
		return "fence_close"
	default:
		return "unknown"
	}
}

// BlockEvent is the classification of a single source line.
type BlockEvent struct {
	Kind EventKind
	// Line is the zero-based source line index.
	Line int
	// Raw is the source line verbatim.
	Raw string
	// Text is the line content with any block prefix removed.
	Text string

	// Heading.
	Level int

	// List item.
	Ordered bool
	Marker  string
	Indent  int

	// Fence open.
	Language string

	// Paragraph.
	TableRow bool
}

const fenceMarker = "```"

// headingPrefixes is ordered longest first so "###### " wins over "# ".
//
//nolint:gochecknoglobals // Read-only lookup table.
var headingPrefixes = []string{"###### ", "##### ", "#### ", "### ", "## ", "# "}

//nolint:gochecknoglobals // Compiled once.
var orderedMarker = regexp.MustCompile(`^\d+\.\s`)

// Classify scans lines in a single forward pass and yields one event per
// line. The only state carried between lines is whether a fence is open.
// An unterminated fence is not reported; the caller sees the input end
// while code lines are still arriving.
func Classify(lines []string) iter.Seq[BlockEvent] {
	return func(yield func(BlockEvent) bool) {
		insideFence := false
		for i, line := range lines {
			ev := classifyLine(i, line, insideFence)
			switch ev.Kind {
			case EventFenceOpen:
				insideFence = true
			case EventFenceClose:
				insideFence = false
			default:
			}
			if !yield(ev) {
				return
			}
		}
	}
}

func classifyLine(index int, line string, insideFence bool) BlockEvent {
	ev := BlockEvent{Line: index, Raw: line}
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, fenceMarker) {
		if insideFence {
			ev.Kind = EventFenceClose
			return ev
		}
		ev.Kind = EventFenceOpen
		ev.Language = strings.TrimSpace(strings.TrimLeft(trimmed, "`"))
		return ev
	}
	if insideFence {
		ev.Kind = EventCodeLine
		ev.Text = line
		return ev
	}

	for _, prefix := range headingPrefixes {
		if strings.HasPrefix(line, prefix) {
			ev.Kind = EventHeading
			ev.Level = len(prefix) - 1
			ev.Text = strings.TrimSpace(line[len(prefix):])
			return ev
		}
	}

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		ev.Kind = EventListItem
		ev.Marker = trimmed[:2]
		ev.Text = trimmed[2:]
		ev.Indent = leadingWhitespace(line)
		return ev
	}
	if loc := orderedMarker.FindStringIndex(trimmed); loc != nil {
		ev.Kind = EventListItem
		ev.Ordered = true
		ev.Marker = trimmed[:loc[1]]
		ev.Text = trimmed[loc[1]:]
		ev.Indent = leadingWhitespace(line)
		return ev
	}

	switch trimmed {
	case "---", "***", "___":
		ev.Kind = EventRule
		return ev
	}

	if trimmed == "" {
		ev.Kind = EventBlank
		return ev
	}

	ev.Kind = EventParagraph
	ev.Text = line
	ev.TableRow = strings.HasPrefix(trimmed, "|")
	return ev
}

func leadingWhitespace(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
