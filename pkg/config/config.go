// Package config defines the configuration types for markview.
// These are pure data structures; discovery and layering live in
// internal/configloader.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Flavor selects the Markdown grammar used by the HTML preview.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// PreviewConfig controls the HTML preview renderer.
type PreviewConfig struct {
	Flavor         Flavor `yaml:"flavor,omitempty"`
	HardWraps      *bool  `yaml:"hard_wraps,omitempty"`
	TOC            *bool  `yaml:"toc,omitempty"`
	Highlight      *bool  `yaml:"highlight,omitempty"`
	HighlightStyle string `yaml:"highlight_style,omitempty"`
	Title          string `yaml:"title,omitempty"`
}

// MarginsConfig holds page margins in points. Zero means unset.
type MarginsConfig struct {
	Left   float64 `yaml:"left,omitempty"`
	Right  float64 `yaml:"right,omitempty"`
	Top    float64 `yaml:"top,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty"`
}

// PageConfig controls the paginated (PDF) renderer. Colours are "#rrggbb".
type PageConfig struct {
	Size                 string        `yaml:"size,omitempty"`
	Margins              MarginsConfig `yaml:"margins,omitempty"`
	BodySize             float64       `yaml:"body_size,omitempty"`
	CodeSize             float64       `yaml:"code_size,omitempty"`
	HeadingColor         string        `yaml:"heading_color,omitempty"`
	CodeBackground       string        `yaml:"code_background,omitempty"`
	InlineCodeColor      string        `yaml:"inline_code_color,omitempty"`
	InlineCodeBackground string        `yaml:"inline_code_background,omitempty"`
	HeadingSpacer        float64       `yaml:"heading_spacer,omitempty"`
	BodySpacer           float64       `yaml:"body_spacer,omitempty"`
	BlockSpacer          float64       `yaml:"block_spacer,omitempty"`
	CodeCaptions         *bool         `yaml:"code_captions,omitempty"`
}

// ExportConfig controls how artifacts are written.
type ExportConfig struct {
	// Backups keeps the previous artifact as <path>.bak before replacing it.
	Backups *bool `yaml:"backups,omitempty"`

	// FileMode is the octal permission for new artifacts, e.g. "0644".
	FileMode string `yaml:"file_mode,omitempty"`
}

// Mode parses FileMode. An empty value yields 0o644.
func (e ExportConfig) Mode() (os.FileMode, error) {
	if e.FileMode == "" {
		return defaultFileMode, nil
	}
	v, err := strconv.ParseUint(e.FileMode, 8, 32)
	if err != nil || v == 0 || v > 0o777 {
		return 0, fmt.Errorf("invalid file mode %q; expected octal like 0644", e.FileMode)
	}
	return os.FileMode(v), nil
}

const defaultFileMode os.FileMode = 0o644

// Config is the root configuration structure.
type Config struct {
	Preview PreviewConfig `yaml:"preview,omitempty"`
	Page    PageConfig    `yaml:"page,omitempty"`
	Export  ExportConfig  `yaml:"export,omitempty"`

	// Jobs bounds batch export concurrency; 0 means GOMAXPROCS.
	Jobs int `yaml:"jobs,omitempty"`

	// Ignore holds glob patterns of sources skipped by batch export.
	Ignore []string `yaml:"ignore,omitempty"`

	// CLI-level options (not persisted to config files).

	// OutDir redirects batch artifacts into one directory.
	OutDir string `yaml:"-"`

	// NoBackups overrides Export.Backups.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config holding every default explicitly.
func NewConfig() *Config {
	return &Config{
		Preview: PreviewConfig{
			Flavor:         FlavorGFM,
			HardWraps:      Bool(true),
			TOC:            Bool(true),
			Highlight:      Bool(true),
			HighlightStyle: "github",
		},
		Page: PageConfig{
			Size:                 "A4",
			Margins:              MarginsConfig{Left: 72, Right: 72, Top: 72, Bottom: 18},
			BodySize:             10,
			CodeSize:             9,
			HeadingColor:         "#2c3e50",
			CodeBackground:       "#f6f8fa",
			InlineCodeColor:      "#c7254e",
			InlineCodeBackground: "#f9f2f4",
			HeadingSpacer:        6,
			BodySpacer:           6,
			BlockSpacer:          12,
			CodeCaptions:         Bool(false),
		},
		Export: ExportConfig{
			Backups:  Bool(false),
			FileMode: "0644",
		},
	}
}

// BackupsEnabled reports whether artifact backups are on after CLI overrides.
func (c *Config) BackupsEnabled() bool {
	return !c.NoBackups && BoolValue(c.Export.Backups, false)
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

// BoolValue dereferences p, returning def when p is nil.
func BoolValue(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
