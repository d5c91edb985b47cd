package config

import "fmt"

// DefaultTemplateHeader is written above generated config files.
const DefaultTemplateHeader = `# markview configuration
# Keys left out fall back to the built-in defaults.`

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every key with its default value. Otherwise a short,
	// commented-out template is produced.
	Full bool
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if !opts.Full {
		return []byte(minimalTemplate), nil
	}

	out, err := NewConfig().ToYAMLWithHeader(DefaultTemplateHeader)
	if err != nil {
		return nil, fmt.Errorf("generate template: %w", err)
	}
	return out, nil
}

const minimalTemplate = DefaultTemplateHeader + `

preview:
  # Markdown grammar for the HTML preview: gfm or commonmark
  flavor: gfm
  # Turn single newlines into line breaks
  # hard_wraps: true
  # Replace a "[TOC]" paragraph with a table of contents
  # toc: true
  # highlight: true
  # highlight_style: github

page:
  # A3, A4, A5, Letter or Legal
  size: A4
  # margins: {left: 72, right: 72, top: 72, bottom: 18}
  # inline_code_color: "#c7254e"
  # inline_code_background: "#f9f2f4"
  # Label code blocks with their (guessed) language
  # code_captions: false

export:
  # Keep the replaced artifact as <file>.bak
  backups: false

# Parallel workers for batch export (0 = auto)
# jobs: 0

# Sources skipped by batch export
# ignore:
#   - "node_modules/**"
#   - "**/CHANGELOG.md"
`
