package fileutils_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"fjacquet/supply-report/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.txt")))
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nonexistent")))

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestEnsureDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	newDir := filepath.Join(tmpDir, "new", "nested", "dir")
	require.NoError(t, fileutils.EnsureDirectoryExists(newDir, 0750))
	assert.True(t, fileutils.DirectoryExists(newDir))

	assert.NoError(t, fileutils.EnsureDirectoryExists(tmpDir, 0750))
}

func TestOpenFile(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	file, err := fileutils.OpenFile(testFile)
	require.NoError(t, err)
	_ = file.Close()

	_, err = fileutils.OpenFile(filepath.Join(tmpDir, "nonexistent.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = fileutils.OpenFile(tmpDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, fileutils.ErrIsDirectory)
	assert.Equal(t, "open "+tmpDir+": is a directory", err.Error())
}

func TestWriteFileAtomic(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "report.txt")

	require.NoError(t, fileutils.WriteFileAtomic(target, []byte("first"), 0644))
	require.NoError(t, fileutils.WriteFileAtomic(target, []byte("second"), 0644))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	}

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing", "report.txt")

	err := fileutils.WriteFileAtomic(target, []byte("data"), 0644)

	require.Error(t, err)
	assert.False(t, fileutils.FileExists(target))
}

func TestWriteFileAtomic_TargetIsDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "taken")
	require.NoError(t, os.Mkdir(target, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0600))

	err := fileutils.WriteFileAtomic(target, []byte("data"), 0644)

	require.Error(t, err)
	assert.True(t, fileutils.DirectoryExists(target))
	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be removed after a failed rename")
}

func TestListFilesWithExtension(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"b.csv", "a.csv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("test"), 0600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "dir.csv"), 0750))
	nested := filepath.Join(tmpDir, "nested")
	require.NoError(t, os.Mkdir(nested, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "c.csv"), []byte("test"), 0600))

	files, err := fileutils.ListFilesWithExtension(tmpDir, ".csv")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "a.csv"), filepath.Join(tmpDir, "b.csv")}, files)

	files, err = fileutils.ListFilesWithExtension(tmpDir, ".xml")
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = fileutils.ListFilesWithExtension(filepath.Join(tmpDir, "nonexistent"), ".csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory does not exist")
}
