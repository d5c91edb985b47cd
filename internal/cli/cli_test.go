package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/markview/internal/cli"
	"github.com/yaklabco/markview/internal/configloader"
	"github.com/yaklabco/markview/pkg/export"
	"github.com/yaklabco/markview/pkg/fsutil"
	"github.com/yaklabco/markview/pkg/runner"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	require.NotNil(t, cmd)
	assert.Equal(t, "markview", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"preview", "export", "nodes", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"preview": {"output", "watch", "delay", "flavor", "title", "toc", "hard-wraps", "highlight", "highlight-style"},
		"export":  {"to", "output", "save-source", "out-dir", "jobs", "ignore", "follow-symlinks", "no-backups", "page-size", "code-captions", "quiet"},
		"nodes":   {"format", "width"},
		"init":    {"force", "full", "output"},
	}

	cmd := cli.NewRootCommand(testInfo())
	for name, flags := range tests {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		for _, flag := range flags {
			assert.NotNil(t, sub.Flags().Lookup(flag), "%s --%s", name, flag)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "1.2.3")
	assert.Contains(t, out.String(), "abc123")
}

func TestHelpIsStyledPlain(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"export", "--help"})

	require.NoError(t, cmd.Execute())
	help := out.String()
	assert.Contains(t, help, "Usage:")
	assert.Contains(t, help, "--out-dir")
	assert.Contains(t, help, "Global Flags:")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "batch failures", err: cli.ErrExportFailed, want: cli.ExitExportFailed},
		{name: "config", err: errors.Join(cli.ErrConfig, &configloader.ValidationError{Field: "jobs"}), want: cli.ExitConfigError},
		{name: "usage", err: fmt.Errorf("%w: bad", cli.ErrUsage), want: cli.ExitInvalidUsage},
		{name: "unknown target", err: fmt.Errorf("%w: odt", export.ErrUnknownTarget), want: cli.ExitInvalidUsage},
		{name: "write failure", err: &export.Error{Target: export.TargetPDF, Err: fsutil.ErrNotFound}, want: cli.ExitExportFailed},
		{name: "missing source", err: fmt.Errorf("stat a.md: %w", fsutil.ErrNotFound), want: cli.ExitIOError},
		{name: "other", err: errors.New("boom"), want: cli.ExitExportFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(nil))
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(&runner.Result{}))
	assert.Equal(t, cli.ExitExportFailed, cli.ExitCodeFromResult(&runner.Result{Stats: runner.Stats{FilesFailed: 2}}))
}
