package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/markview/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "out.pdf.bak", fsutil.BackupPath("out.pdf"))
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.pdf")

	created, err := fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.False(t, created, "nothing to back up yet")
	assert.NoFileExists(t, fsutil.BackupPath(path))

	require.NoError(t, os.WriteFile(path, []byte("first"), 0o600))
	created, err = fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.True(t, created)

	require.NoError(t, os.WriteFile(path, []byte("second"), 0o600))
	created, err = fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.True(t, created)

	got, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "second", string(got), "backup holds the artifact being replaced")

	st, err := os.Stat(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), st.Mode().Perm())
}

func TestCreateBackup_Directory(t *testing.T) {
	t.Parallel()

	_, err := fsutil.CreateBackup(context.Background(), t.TempDir())
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)
}
