package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/markview/pkg/config"
)

// EnvVarPrefix is the prefix for all markview environment variables.
const EnvVarPrefix = "MARKVIEW_"

// envVar binds one environment variable to a config field.
type envVar struct {
	suffix string
	help   string
	apply  func(cfg *config.Config, value string) error
}

//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{"FLAVOR", "Preview grammar: gfm or commonmark", func(c *config.Config, v string) error {
		c.Preview.Flavor = config.Flavor(v)
		return nil
	}},
	{"HARD_WRAPS", "Preview line breaks on single newlines: true or false", boolField(func(c *config.Config) **bool { return &c.Preview.HardWraps })},
	{"TOC", "Expand [TOC] markers in the preview: true or false", boolField(func(c *config.Config) **bool { return &c.Preview.TOC })},
	{"HIGHLIGHT", "Highlight fenced code in the preview: true or false", boolField(func(c *config.Config) **bool { return &c.Preview.Highlight })},
	{"HIGHLIGHT_STYLE", "Chroma style name for preview highlighting", func(c *config.Config, v string) error {
		c.Preview.HighlightStyle = v
		return nil
	}},
	{"PAGE_SIZE", "PDF page size: A3, A4, A5, Letter or Legal", func(c *config.Config, v string) error {
		c.Page.Size = v
		return nil
	}},
	{"CODE_CAPTIONS", "Label PDF code blocks with their language: true or false", boolField(func(c *config.Config) **bool { return &c.Page.CodeCaptions })},
	{"BACKUPS", "Keep replaced artifacts as .bak files: true or false", boolField(func(c *config.Config) **bool { return &c.Export.Backups })},
	{"JOBS", "Number of parallel export workers (0 = auto)", func(c *config.Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer %q", v)
		}
		c.Jobs = n
		return nil
	}},
	{"IGNORE", "Comma-separated glob patterns skipped by batch export", func(c *config.Config, v string) error {
		c.Ignore = parseSliceValue(v)
		return nil
	}},
}

func boolField(field func(*config.Config) **bool) func(*config.Config, string) error {
	return func(c *config.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", v)
		}
		*field(c) = config.Bool(b)
		return nil
	}
}

// LoadFromEnv applies MARKVIEW_* overrides to cfg. Empty variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, ev := range envVars {
		name := EnvVarPrefix + ev.suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := ev.apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// parseSliceValue splits a comma-separated list, dropping empty entries.
func parseSliceValue(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ListEnvVars returns every supported variable with its description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for _, ev := range envVars {
		out[EnvVarPrefix+ev.suffix] = ev.help
	}
	return out
}

// EnvVarNames returns the supported variable names, sorted.
func EnvVarNames() []string {
	names := make([]string, 0, len(envVars))
	for _, ev := range envVars {
		names = append(names, EnvVarPrefix+ev.suffix)
	}
	sort.Strings(names)
	return names
}
