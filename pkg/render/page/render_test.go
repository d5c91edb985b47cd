package page_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/markview/pkg/document"
	"github.com/yaklabco/markview/pkg/render/page"
)

func render(t *testing.T, text string) []page.Instruction {
	t.Helper()
	return page.Render(document.BuildText(text), page.DefaultStyle())
}

func TestRender_OrderedMarkerKeptVerbatim(t *testing.T) {
	t.Parallel()

	out := render(t, "3. Third item")
	require.Len(t, out, 1)

	para, ok := out[0].(page.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "3. Third item", para.Text())
	assert.Equal(t, "3. ", para.Spans[0].Text)
}

func TestRender_UnorderedBullet(t *testing.T) {
	t.Parallel()

	out := render(t, "- item\n  * nested")
	require.Len(t, out, 2)

	first := out[0].(page.Paragraph)
	assert.Equal(t, "• item", first.Text())
	assert.Zero(t, first.Indent)

	second := out[1].(page.Paragraph)
	assert.Equal(t, "• nested", second.Text())
	assert.Positive(t, second.Indent)
}

func TestRender_ListIndentIsCapped(t *testing.T) {
	t.Parallel()

	style := page.DefaultStyle()
	deep := strings.Repeat(" ", 200) + "- deep"

	tests := []struct {
		name string
		max  float64
		want float64
	}{
		{name: "default cap", max: style.MaxListIndent, want: style.MaxListIndent},
		{name: "custom cap", max: 30, want: 30},
		{name: "no cap", max: 0, want: 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := page.DefaultStyle()
			st.MaxListIndent = tt.max
			out := page.Render(document.BuildText(deep), st)
			require.Len(t, out, 1)

			para := out[0].(page.Paragraph)
			assert.InDelta(t, tt.want, para.Indent, 0.001)
			assert.Equal(t, "• deep", para.Text())
		})
	}
}

func TestRender_BlankLinesEachGetSpacer(t *testing.T) {
	t.Parallel()

	style := page.DefaultStyle()
	out := page.Render(document.Build([]string{"", "", ""}), style)

	want := []page.Instruction{
		page.Spacer{Height: style.BlockSpacer},
		page.Spacer{Height: style.BlockSpacer},
		page.Spacer{Height: style.BlockSpacer},
	}
	assert.Equal(t, want, out)
}

func TestRender_Rule(t *testing.T) {
	t.Parallel()

	style := page.DefaultStyle()
	out := page.Render(document.Build([]string{"***"}), style)

	require.Len(t, out, 3)
	assert.Equal(t, page.Spacer{Height: style.BlockSpacer}, out[0])
	assert.IsType(t, page.HorizontalRule{}, out[1])
	assert.Equal(t, page.Spacer{Height: style.BlockSpacer}, out[2])
}

func TestRender_HeadingStyles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		size float64
	}{
		{"# One", 24},
		{"## Two", 18},
		{"### Three", 14},
		{"#### Four", 12},
		{"###### Six", 10},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			out := render(t, tt.line)
			require.Len(t, out, 2)

			para := out[0].(page.Paragraph)
			assert.InDelta(t, tt.size, para.Style.Size, 0.001)
			assert.True(t, para.Style.Bold)
			assert.Equal(t, page.Spacer{Height: 6}, out[1])
		})
	}
}

func TestRender_CodeBlockUsesRawLines(t *testing.T) {
	t.Parallel()

	out := render(t, "```go\n**not bold**\n# not heading\n```")
	require.Len(t, out, 2)

	block, ok := out[0].(page.Preformatted)
	require.True(t, ok)
	assert.Equal(t, []string{"**not bold**", "# not heading"}, block.Lines)
	assert.Equal(t, "go", block.Language)
	assert.Equal(t, page.FontMono, block.Font)
	assert.Empty(t, block.Caption)
	assert.Equal(t, page.Spacer{Height: 12}, out[1])
}

func TestRender_CodeCaption(t *testing.T) {
	t.Parallel()

	style := page.DefaultStyle()
	style.CodeCaptions = true

	out := page.Render(document.BuildText("```\npackage main\n```"), style)
	block := out[0].(page.Preformatted)
	assert.Equal(t, "Go", block.Caption)
}

func TestRender_InlineSpans(t *testing.T) {
	t.Parallel()

	style := page.DefaultStyle()
	out := page.Render(document.BuildText("Use `x` and **y** or [z](http://z)"), style)
	require.Len(t, out, 2)

	para := out[0].(page.Paragraph)
	require.Len(t, para.Spans, 6)

	code := para.Spans[1]
	assert.Equal(t, "x", code.Text)
	assert.Equal(t, page.FontMono, code.Font)
	assert.Equal(t, style.InlineCodeColor, code.Color)
	assert.True(t, code.Filled)
	assert.Equal(t, style.InlineCodeBackground, code.Background)

	assert.True(t, para.Spans[3].Bold)
	assert.Equal(t, "http://z", para.Spans[5].Link)
}

func TestParagraph_Markup(t *testing.T) {
	t.Parallel()

	out := render(t, "a *b* `c<` **d**")
	para := out[0].(page.Paragraph)

	assert.Equal(t,
		`a <i>b</i> <font name="Courier" color="#c7254e" backColor="#f9f2f4">c&lt;</font> <b>d</b>`,
		para.Markup())
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, page.Render(nil, page.DefaultStyle()))
}
