package export

import (
	"fmt"

	"github.com/yaklabco/markview/pkg/config"
	"github.com/yaklabco/markview/pkg/render/page"
	"github.com/yaklabco/markview/pkg/render/pdf"
	"github.com/yaklabco/markview/pkg/render/preview"
)

// PreviewOptions maps preview settings to renderer options.
func PreviewOptions(p config.PreviewConfig) []preview.Option {
	def := preview.DefaultOptions()

	opts := []preview.Option{
		preview.WithHardWraps(config.BoolValue(p.HardWraps, def.HardWraps)),
		preview.WithTOC(config.BoolValue(p.TOC, def.TOC)),
		preview.WithHighlight(config.BoolValue(p.Highlight, def.Highlight), p.HighlightStyle),
		preview.WithTitle(p.Title),
	}
	if p.Flavor != "" {
		opts = append(opts, preview.WithFlavor(string(p.Flavor)))
	}
	return opts
}

// PageStyle applies page settings to the default paginated style. The
// heading colour applies to levels 1-3 only.
func PageStyle(p config.PageConfig) (page.Style, error) {
	style := page.DefaultStyle()

	type colourField struct {
		value string
		dst   []*page.Color
	}
	colours := []colourField{
		{p.CodeBackground, []*page.Color{&style.CodeBackground}},
		{p.InlineCodeColor, []*page.Color{&style.InlineCodeColor}},
		{p.InlineCodeBackground, []*page.Color{&style.InlineCodeBackground}},
		{p.HeadingColor, []*page.Color{
			&style.Headings[0].Color, &style.Headings[1].Color, &style.Headings[2].Color,
		}},
	}

	for _, c := range colours {
		if c.value == "" {
			continue
		}
		parsed, err := page.ParseColor(c.value)
		if err != nil {
			return page.Style{}, fmt.Errorf("page style: %w", err)
		}
		for _, dst := range c.dst {
			*dst = parsed
		}
	}

	if p.BodySize > 0 {
		style.Body.Size = p.BodySize
	}
	if p.CodeSize > 0 {
		style.CodeSize = p.CodeSize
	}
	if p.HeadingSpacer > 0 {
		style.HeadingSpacer = p.HeadingSpacer
	}
	if p.BodySpacer > 0 {
		style.BodySpacer = p.BodySpacer
	}
	if p.BlockSpacer > 0 {
		style.BlockSpacer = p.BlockSpacer
	}
	style.CodeCaptions = config.BoolValue(p.CodeCaptions, style.CodeCaptions)

	return style, nil
}

// PDFConfig maps page settings to the PDF writer configuration.
func PDFConfig(p config.PageConfig) pdf.Config {
	cfg := pdf.DefaultConfig()
	if p.Size != "" {
		cfg.PageSize = p.Size
	}
	m := p.Margins
	if m != (config.MarginsConfig{}) {
		cfg.Margins = pdf.Margins{
			Left:   orDefault(m.Left, cfg.Margins.Left),
			Right:  orDefault(m.Right, cfg.Margins.Right),
			Top:    orDefault(m.Top, cfg.Margins.Top),
			Bottom: orDefault(m.Bottom, cfg.Margins.Bottom),
		}
	}
	return cfg
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
