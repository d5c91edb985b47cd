package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/markview/internal/ui/pretty"
	"github.com/yaklabco/markview/pkg/runner"
)

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name     string
		stats    runner.Stats
		duration string
		contains []string
		excludes []string
	}{
		{
			name:     "all exported",
			stats:    runner.Stats{FilesDiscovered: 3, FilesExported: 3},
			duration: "12ms",
			contains: []string{"Summary", "Files found:    3", "Files exported: 3", "Time:           12ms", "Export complete"},
			excludes: []string{"Files failed:"},
		},
		{
			name:     "with failures",
			stats:    runner.Stats{FilesDiscovered: 4, FilesExported: 3, FilesFailed: 1},
			contains: []string{"Files failed:   1", "Export failed"},
			excludes: []string{"Time:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := styles.FormatSummary(tt.stats, tt.duration)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{name: "nothing found", stats: runner.Stats{}, want: "No source files found\n"},
		{name: "one file", stats: runner.Stats{FilesDiscovered: 1, FilesExported: 1}, want: "Exported 1 file\n"},
		{
			name:  "some failed",
			stats: runner.Stats{FilesDiscovered: 3, FilesExported: 2, FilesFailed: 1},
			want:  "Exported 2 files, 1 failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestFormatOutcome(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	ok := styles.FormatOutcome(runner.FileOutcome{Path: "a.md", Output: "a.pdf"})
	assert.Equal(t, "  a.md -> a.pdf\n", ok)

	failed := styles.FormatOutcome(runner.FileOutcome{Path: "b.md", Error: errors.New("disk full")})
	assert.Equal(t, "  b.md  error  disk full\n", failed)
}
