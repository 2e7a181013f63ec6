package scratch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/scratchfs/config"
)

func TestClearDirRemoveSelf(t *testing.T) {
	ops := newTestOps(t, config.ScratchConfig{})
	dir := filepath.Join(t.TempDir(), "victim")
	writeTestFile(t, dir, "a.txt", "a")
	writeTestFile(t, dir, "sub/b.txt", "b")
	writeTestFile(t, dir, "sub/deeper/c.txt", "c")

	ops.ClearDir(dir, true)

	assert.NoDirExists(t, dir)
}

func TestClearDirKeepSelf(t *testing.T) {
	ops := newTestOps(t, config.ScratchConfig{})
	dir := filepath.Join(t.TempDir(), "workdir")
	writeTestFile(t, dir, "a.txt", "a")
	writeTestFile(t, dir, "sub/b.txt", "b")

	ops.ClearDir(dir, false)

	assert.DirExists(t, dir)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClearDirExceptList(t *testing.T) {
	ops := newTestOps(t, config.ScratchConfig{})
	dir := filepath.Join(t.TempDir(), "workdir")
	writeTestFile(t, dir, "keep.txt", "keep")
	writeTestFile(t, dir, "drop.txt", "drop")

	ops.ClearDir(dir, false, "keep.txt")

	assert.DirExists(t, dir)
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "drop.txt"))
}

func TestClearDirExceptCaseInsensitive(t *testing.T) {
	ops := newTestOps(t, config.ScratchConfig{})
	dir := filepath.Join(t.TempDir(), "workdir")
	writeTestFile(t, dir, "Keep.TXT", "keep")

	ops.ClearDir(dir, false, "keep.txt")

	assert.FileExists(t, filepath.Join(dir, "Keep.TXT"))
}

func TestClearDirExceptTopLevelOnly(t *testing.T) {
	ops := newTestOps(t, config.ScratchConfig{})
	dir := filepath.Join(t.TempDir(), "workdir")
	writeTestFile(t, dir, "keep.txt", "keep")
	writeTestFile(t, dir, "sub/keep.txt", "not protected down here")

	ops.ClearDir(dir, false, "keep.txt")

	// The top-level file survives; the identically named nested file
	// is deleted along with its directory.
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
	assert.NoDirExists(t, filepath.Join(dir, "sub"))
}

func TestClearDirReadOnlyFile(t *testing.T) {
	ops := newTestOps(t, config.ScratchConfig{})
	dir := filepath.Join(t.TempDir(), "workdir")
	path := writeTestFile(t, dir, "frozen.txt", "ro")
	require.NoError(t, os.Chmod(path, 0o444))

	ops.ClearDir(dir, false)

	assert.NoFileExists(t, path)
}

func TestClearDirEmptyPath(t *testing.T) {
	ops := newTestOps(t, config.ScratchConfig{})
	ops.ClearDir("", true) // no-op, must not panic
}

func TestClearDirMissingPath(t *testing.T) {
	ops := newTestOps(t, config.ScratchConfig{})
	ops.ClearDir(filepath.Join(t.TempDir(), "never-existed"), true)
}
