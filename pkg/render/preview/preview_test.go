package preview_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/markview/pkg/render/preview"
)

func TestRender_WrapsInTemplate(t *testing.T) {
	t.Parallel()

	out, err := preview.Render("# Hello\n\nWorld")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<meta charset="UTF-8">`)
	assert.Contains(t, out, "table tr:nth-child(even)")
	assert.Contains(t, out, "border-left: 4px solid #dfe2e5")
	assert.Contains(t, out, `<h1 id="hello">Hello</h1>`)
	assert.Contains(t, out, "<p>World</p>")
	assert.NotContains(t, out, "<title>")
}

func TestRender_Title(t *testing.T) {
	t.Parallel()

	out, err := preview.New(preview.WithTitle("Notes & <Draft>")).Render("x")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Notes &amp; &lt;Draft&gt;</title>")
}

func TestFragment_Tables(t *testing.T) {
	t.Parallel()

	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	gfm, err := preview.New(preview.WithHighlight(false, "")).Fragment([]byte(src))
	require.NoError(t, err)
	assert.Contains(t, string(gfm), "<table>")
	assert.Contains(t, string(gfm), "<td>1</td>")

	plain, err := preview.New(preview.WithFlavor(preview.FlavorCommonMark)).Fragment([]byte(src))
	require.NoError(t, err)
	assert.NotContains(t, string(plain), "<table>")
}

func TestFragment_NestedLists(t *testing.T) {
	t.Parallel()

	src := "- a\n  - b\n- c\n"
	out, err := preview.New().Fragment([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(out), "<ul>"))
}

func TestFragment_HardWraps(t *testing.T) {
	t.Parallel()

	src := []byte("line one\nline two\n")

	wrapped, err := preview.New().Fragment(src)
	require.NoError(t, err)
	assert.Contains(t, string(wrapped), "<br>")

	soft, err := preview.New(preview.WithHardWraps(false)).Fragment(src)
	require.NoError(t, err)
	assert.NotContains(t, string(soft), "<br>")
}

func TestFragment_TOC(t *testing.T) {
	t.Parallel()

	src := "[TOC]\n\n# Intro\n\n## Setup\n\n## Usage\n\n# Appendix\n"
	out, err := preview.New().Fragment([]byte(src))
	require.NoError(t, err)

	html := string(out)
	assert.NotContains(t, html, "[TOC]")
	assert.Contains(t, html, `<div class="toc">`)
	assert.Contains(t, html, `<a href="#intro">Intro</a>`)
	assert.Contains(t, html, `<a href="#setup">Setup</a>`)
	assert.Contains(t, html, `<a href="#appendix">Appendix</a>`)
	assert.Less(t, strings.Index(html, "#setup"), strings.Index(html, "#usage"))
}

func TestFragment_TOCDisabled(t *testing.T) {
	t.Parallel()

	out, err := preview.New(preview.WithTOC(false)).Fragment([]byte("[TOC]\n\n# A\n"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<p>[TOC]</p>")
}

func TestFragment_Highlight(t *testing.T) {
	t.Parallel()

	src := []byte("```go\npackage main\n```\n")

	lit, err := preview.New().Fragment(src)
	require.NoError(t, err)
	assert.Contains(t, string(lit), "style=")

	raw, err := preview.New(preview.WithHighlight(false, "")).Fragment(src)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `<code class="language-go">`)
}

func TestNew_UnknownFlavorFallsBackToGFM(t *testing.T) {
	t.Parallel()

	r := preview.New(preview.WithFlavor("bogus"))
	assert.Equal(t, preview.FlavorGFM, r.Options().Flavor)
}
