package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/markview/internal/ui/pretty"
	"github.com/yaklabco/markview/pkg/document"
)

func TestRecords(t *testing.T) {
	t.Parallel()

	nodes := document.BuildText("# Title\n\n```go\nx := 1\n```\n1. first\n---")
	records := pretty.Records(nodes)
	require.Len(t, records, 5)

	assert.Equal(t, pretty.NodeRecord{
		Kind:  "heading",
		Line:  1,
		Level: 1,
		Text:  "Title",
		Runs:  []document.Run{{Text: "Title"}},
	}, records[0])

	assert.Equal(t, "blank", records[1].Kind)
	assert.Equal(t, 2, records[1].Line)

	assert.Equal(t, "code_block", records[2].Kind)
	assert.Equal(t, 3, records[2].Line)
	assert.Equal(t, 5, records[2].EndLine)
	assert.Equal(t, "go", records[2].Language)
	assert.Equal(t, []string{"x := 1"}, records[2].Lines)

	assert.Equal(t, "list_item", records[3].Kind)
	assert.True(t, records[3].Ordered)
	assert.Equal(t, "1. ", records[3].Marker)

	assert.Equal(t, "rule", records[4].Kind)
}

func TestNodeFormatter_Format(t *testing.T) {
	t.Parallel()

	f := pretty.NewNodeFormatter(pretty.NewStyles(false), 80)
	out := f.Format(document.BuildText("## Intro\n- item **one**\n```\ncode\n```"))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "    1  h2          Intro", lines[0])
	assert.Equal(t, "    2  list_item   • item one", lines[1])
	assert.Equal(t, "    3  code_block  ```", lines[2])
	assert.Equal(t, "                   code", lines[3])
}

func TestNodeFormatter_WrapsLongText(t *testing.T) {
	t.Parallel()

	f := pretty.NewNodeFormatter(pretty.NewStyles(false), 40)
	text := strings.Repeat("word ", 20)
	out := f.Format(document.BuildText(text))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Greater(t, len(lines), 1)
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", 19)), "continuation %q", line)
	}
}

func TestNodeFormatter_TruncatesCode(t *testing.T) {
	t.Parallel()

	f := pretty.NewNodeFormatter(pretty.NewStyles(false), 40)
	out := f.Format(document.BuildText("```\n" + strings.Repeat("x", 100) + "\n```"))

	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.Repeat("x", 100))
}
