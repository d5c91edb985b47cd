package configloader

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gobwas/glob"

	"github.com/yaklabco/markview/pkg/config"
	"github.com/yaklabco/markview/pkg/render/page"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the dotted path to the invalid field, e.g. "page.size".
	Field string

	Value any

	Message string

	// FilePath is the config file containing the error, if known.
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// PageSizes lists the accepted page.size values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var PageSizes = []string{"A3", "A4", "A5", "Letter", "Legal"}

// Validate checks a configuration for errors and warnings. Unset fields
// are always valid so partial files can be checked on their own.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	validatePreview(cfg.Preview, result)
	validatePage(cfg.Page, result)

	if _, err := cfg.Export.Mode(); err != nil {
		result.fail("export.file_mode", cfg.Export.FileMode, "%v", err)
	}

	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	return result
}

func validatePreview(p config.PreviewConfig, result *ValidationResult) {
	switch p.Flavor {
	case "", config.FlavorGFM, config.FlavorCommonMark:
	default:
		result.fail("preview.flavor", p.Flavor, "invalid flavor %q; must be one of: gfm, commonmark", p.Flavor)
	}

	if p.HighlightStyle != "" {
		if _, ok := styles.Registry[p.HighlightStyle]; !ok {
			result.warn("preview.highlight_style", p.HighlightStyle,
				"unknown highlight style %q; the fallback style will be used", p.HighlightStyle)
		}
	}
}

func validatePage(p config.PageConfig, result *ValidationResult) {
	if p.Size != "" && !knownPageSize(p.Size) {
		result.fail("page.size", p.Size, "invalid page size %q; must be one of: %s", p.Size, strings.Join(PageSizes, ", "))
	}

	colours := []struct{ field, value string }{
		{"page.heading_color", p.HeadingColor},
		{"page.code_background", p.CodeBackground},
		{"page.inline_code_color", p.InlineCodeColor},
		{"page.inline_code_background", p.InlineCodeBackground},
	}
	for _, c := range colours {
		if c.value == "" {
			continue
		}
		if _, err := page.ParseColor(c.value); err != nil {
			result.fail(c.field, c.value, "invalid colour %q; expected #rrggbb", c.value)
		}
	}

	lengths := []struct {
		field string
		value float64
	}{
		{"page.margins.left", p.Margins.Left},
		{"page.margins.right", p.Margins.Right},
		{"page.margins.top", p.Margins.Top},
		{"page.margins.bottom", p.Margins.Bottom},
		{"page.body_size", p.BodySize},
		{"page.code_size", p.CodeSize},
		{"page.heading_spacer", p.HeadingSpacer},
		{"page.body_spacer", p.BodySpacer},
		{"page.block_spacer", p.BlockSpacer},
	}
	for _, l := range lengths {
		if l.value < 0 {
			result.fail(l.field, l.value, "must not be negative")
		}
	}
}

func knownPageSize(size string) bool {
	for _, s := range PageSizes {
		if strings.EqualFold(s, size) {
			return true
		}
	}
	return false
}

// ValidateWithFile validates cfg and tags every finding with filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}
