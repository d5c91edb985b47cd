// Package preview renders Markdown source to a styled, standalone HTML page.
//
// Unlike the page and flow renderers it does not consume the restricted
// document node model: it runs the full goldmark grammar (tables, nested
// lists, footnotes, definition lists, heading ids) so the preview is as
// faithful as possible.
package preview

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Flavor identifies the Markdown grammar used for the preview.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// Options controls the preview conversion.
type Options struct {
	// Flavor is "gfm" (default) or "commonmark".
	Flavor string

	// HardWraps turns every newline inside a paragraph into a line break.
	HardWraps bool

	// TOC replaces a paragraph consisting of "[TOC]" with a table of contents.
	TOC bool

	// Highlight enables syntax highlighting of fenced code.
	Highlight bool

	// HighlightStyle names the chroma style.
	HighlightStyle string

	// Title is written to the <title> element when non-empty.
	Title string
}

// Option mutates Options.
type Option func(*Options)

// WithFlavor sets the grammar flavor.
func WithFlavor(flavor string) Option {
	return func(o *Options) { o.Flavor = flavor }
}

// WithHardWraps toggles newline-to-break conversion.
func WithHardWraps(enabled bool) Option {
	return func(o *Options) { o.HardWraps = enabled }
}

// WithTOC toggles [TOC] marker expansion.
func WithTOC(enabled bool) Option {
	return func(o *Options) { o.TOC = enabled }
}

// WithHighlight toggles code highlighting and sets its style.
// An empty style keeps the default.
func WithHighlight(enabled bool, style string) Option {
	return func(o *Options) {
		o.Highlight = enabled
		if style != "" {
			o.HighlightStyle = style
		}
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// DefaultOptions mirrors the extension set of the desktop preview:
// GFM, hard wraps, TOC and highlighting all enabled.
func DefaultOptions() Options {
	return Options{
		Flavor:         FlavorGFM,
		HardWraps:      true,
		TOC:            true,
		Highlight:      true,
		HighlightStyle: DefaultHighlightStyle,
	}
}

// Renderer converts Markdown to HTML. It is safe for concurrent use.
type Renderer struct {
	opts Options
	md   goldmark.Markdown
}

// New creates a Renderer starting from DefaultOptions.
func New(opts ...Option) *Renderer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Flavor != FlavorCommonMark {
		o.Flavor = FlavorGFM
	}
	return &Renderer{
		opts: o,
		md:   newGoldmark(o),
	}
}

// Options returns the effective options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render converts source into a complete HTML document.
func (r *Renderer) Render(source string) (string, error) {
	body, err := r.Fragment([]byte(source))
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	data := pageData{
		Title:      r.opts.Title,
		Stylesheet: stylesheetCSS(),
		Body:       trustedHTML(body),
	}
	if err := pageTemplate.Execute(&out, data); err != nil {
		return "", fmt.Errorf("preview: execute template: %w", err)
	}
	return out.String(), nil
}

// Fragment converts source into an HTML fragment without the page wrapper.
func (r *Renderer) Fragment(source []byte) ([]byte, error) {
	doc := r.md.Parser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
		return nil, fmt.Errorf("preview: render markdown: %w", err)
	}

	if !r.opts.TOC {
		return buf.Bytes(), nil
	}
	return expandTOC(buf.Bytes(), collectHeadings(doc, source)), nil
}

// Render converts source with the default options.
func Render(source string) (string, error) {
	return New().Render(source)
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmark(o Options) goldmark.Markdown {
	var exts []goldmark.Extender
	if o.Flavor == FlavorGFM {
		exts = append(exts, extension.GFM, extension.Footnote, extension.DefinitionList)
	}
	if o.Highlight {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(o.HighlightStyle),
			highlighting.WithFormatOptions(chromahtml.WithClasses(false)),
		))
	}

	rendererOpts := []renderer.Option{html.WithUnsafe()}
	if o.HardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}

	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOpts...),
	)
}
