package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/markview/internal/cli"
)

const testDocument = "# Hello\n\nSome **bold** text.\n\n- one\n- two\n\n```go\nfunc main() {}\n```\n"

// execute runs the root command with args, pinning the config to an
// empty file so the developer's own settings do not leak in.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), "markview.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("{}\n"), 0o644))

	cmd := cli.NewRootCommand(testInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgFile, "--color", "never"}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func writeSource(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(testDocument), 0o644))
	return path
}

func TestIntegration_ExportSingle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		output string
		extra  []string
		want   string
		prefix []byte
	}{
		{name: "explicit target appends extension", output: "report", extra: []string{"--to", "docx"}, want: "report.docx", prefix: []byte("PK")},
		{name: "target from output extension", output: "page.html", want: "page.html", prefix: []byte("<!DOCTYPE html>")},
		{name: "default target is pdf", output: "doc", want: "doc.pdf", prefix: []byte("%PDF-")},
		{name: "mismatched case appends", output: "REPORT.PDF", extra: []string{"--to", "pdf"}, want: "REPORT.PDF.pdf", prefix: []byte("%PDF-")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			src := writeSource(t, dir, "doc.md")

			args := append([]string{"export", src, "-o", filepath.Join(dir, tt.output)}, tt.extra...)
			out, err := execute(t, "", args...)
			require.NoError(t, err)
			assert.Contains(t, out, "->")

			data, err := os.ReadFile(filepath.Join(dir, tt.want))
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, tt.prefix))
		})
	}
}

func TestIntegration_ExportStdinWithSavedSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "notes")
	saved := filepath.Join(dir, "notes-source")

	_, err := execute(t, testDocument, "export", "-", "--to", "html", "-o", out, "--save-source", saved)
	require.NoError(t, err)

	assert.FileExists(t, out+".html")

	data, err := os.ReadFile(saved + ".md")
	require.NoError(t, err)
	assert.Equal(t, testDocument, string(data))
}

func TestIntegration_ExportBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, "a.md")
	writeSource(t, dir, "docs/b.markdown")
	writeSource(t, dir, "drafts/c.md")
	outDir := filepath.Join(t.TempDir(), "site")

	out, err := execute(t, "", "export", dir, "--to", "html", "--out-dir", outDir, "--ignore", "**/drafts/**", "--jobs", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Export complete")
	assert.Contains(t, out, "Files exported: 2")
	assert.NoFileExists(t, filepath.Join(dir, "a.html"))

	var artifacts []string
	require.NoError(t, filepath.WalkDir(outDir, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			artifacts = append(artifacts, filepath.Base(path))
		}
		return err
	}))
	assert.ElementsMatch(t, []string{"a.html", "b.html"}, artifacts)
}

func TestIntegration_ExportBatchFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, "a.md")
	writeSource(t, dir, "b.md")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a.html"), 0o755))

	out, err := execute(t, "", "export", dir, "--to", "html", "--quiet")
	require.ErrorIs(t, err, cli.ErrExportFailed)
	assert.Equal(t, cli.ExitExportFailed, cli.ExitCode(err))

	assert.Contains(t, out, "a.md")
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "Exported 1 file, 1 failed")
	assert.NotContains(t, out, "b.md")
	assert.FileExists(t, filepath.Join(dir, "b.html"))
}

func TestIntegration_ExportErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "doc.md")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "unknown target", args: []string{"export", src, "--to", "odt", "-o", filepath.Join(dir, "x")}, code: cli.ExitInvalidUsage},
		{name: "stdin without output", args: []string{"export", "-"}, code: cli.ExitInvalidUsage},
		{name: "output with many sources", args: []string{"export", src, src, "-o", filepath.Join(dir, "x")}, code: cli.ExitInvalidUsage},
		{name: "missing source", args: []string{"export", filepath.Join(dir, "missing.md"), "-o", filepath.Join(dir, "x")}, code: cli.ExitIOError},
		{name: "missing destination dir", args: []string{"export", src, "-o", filepath.Join(dir, "nope", "x")}, code: cli.ExitExportFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCode(err))
		})
	}
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("preview:\n  flavor: textile\n"), 0o644))

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("# x"))
	cmd.SetArgs([]string{"--config", cfgFile, "preview"})

	err := cmd.Execute()
	require.ErrorIs(t, err, cli.ErrConfig)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_Preview(t *testing.T) {
	t.Parallel()

	t.Run("stdout", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, testDocument, "preview", "--title", "Notes")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
		assert.Contains(t, out, "<title>Notes</title>")
		assert.Contains(t, out, "<strong>bold</strong>")
	})

	t.Run("file output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := writeSource(t, dir, "doc.md")

		out, err := execute(t, "", "preview", src, "-o", filepath.Join(dir, "page"))
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(filepath.Join(dir, "page.html"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `<h1 id="hello">Hello</h1>`)
	})

	t.Run("watch needs output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := writeSource(t, dir, "doc.md")

		_, err := execute(t, "", "preview", src, "--watch")
		require.ErrorIs(t, err, cli.ErrUsage)
	})
}

func TestIntegration_Nodes(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, testDocument, "nodes", "--width", "80")
		require.NoError(t, err)
		assert.Contains(t, out, "h1          Hello")
		assert.Contains(t, out, "list_item   • one")
		assert.Contains(t, out, "code_block  ```go")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, testDocument, "nodes", "--format", "json")
		require.NoError(t, err)

		var records []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &records))
		require.Len(t, records, 8)
		assert.Equal(t, "heading", records[0]["kind"])
		assert.Equal(t, "code_block", records[7]["kind"])
		assert.Equal(t, "go", records[7]["language"])
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "---\n", "nodes", "--format", "yaml")
		require.NoError(t, err)

		var records []map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &records))
		require.Len(t, records, 1)
		assert.Equal(t, "rule", records[0]["kind"])
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, testDocument, "nodes", "--format", "xml")
		require.ErrorIs(t, err, cli.ErrUsage)
	})
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".markview.yml")

	_, err := execute(t, "", "init", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# markview configuration")

	_, err = execute(t, "", "init", "--output", path)
	require.ErrorIs(t, err, cli.ErrUsage)

	_, err = execute(t, "", "init", "--output", path, "--force", "--full")
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "highlight_style: github")
}
