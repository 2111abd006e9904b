package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	files := []GeneratedFile{
		{Path: filepath.Join(dir, "a_easyinit.go"), Content: []byte("package a\n")},
		{Path: filepath.Join(dir, "b_easyinit.go"), Content: []byte("package b\n")},
	}

	require.NoError(t, WriteFiles(files))

	for _, f := range files {
		got, err := os.ReadFile(f.Path)
		require.NoError(t, err)
		assert.Equal(t, f.Content, got)
	}
}

func TestWriteFiles_MissingDir(t *testing.T) {
	err := WriteFiles([]GeneratedFile{
		{Path: filepath.Join(t.TempDir(), "missing", "a_easyinit.go"), Content: []byte("package a\n")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing file")
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()

	fresh := GeneratedFile{Path: filepath.Join(dir, "fresh_easyinit.go"), Content: []byte("package p\n\nvar A = 1\n")}
	stale := GeneratedFile{Path: filepath.Join(dir, "stale_easyinit.go"), Content: []byte("package p\n\nvar B = 2\n")}
	missing := GeneratedFile{Path: filepath.Join(dir, "missing_easyinit.go"), Content: []byte("package p\n")}

	require.NoError(t, os.WriteFile(fresh.Path, fresh.Content, filePerm))
	require.NoError(t, os.WriteFile(stale.Path, []byte("package p\n\nvar B = 1\n"), filePerm))

	got, err := Verify([]GeneratedFile{fresh, stale, missing})
	require.ErrorIs(t, err, ErrStale)
	require.Len(t, got, 2)

	assert.Equal(t, stale.Path, got[0].Path)
	assert.False(t, got[0].Missing)
	assert.Contains(t, got[0].Diff, "-var B = 1")
	assert.Contains(t, got[0].Diff, "+var B = 2")
	assert.Contains(t, got[0].Diff, "+++ "+stale.Path+" (generated)")

	assert.Equal(t, missing.Path, got[1].Path)
	assert.True(t, got[1].Missing)
	assert.Empty(t, got[1].Diff)
}

func TestVerify_UpToDate(t *testing.T) {
	dir := t.TempDir()
	file := GeneratedFile{Path: filepath.Join(dir, "a_easyinit.go"), Content: []byte("package a\n")}
	require.NoError(t, WriteFiles([]GeneratedFile{file}))

	got, err := Verify([]GeneratedFile{file})
	require.NoError(t, err)
	assert.Empty(t, got)
}
