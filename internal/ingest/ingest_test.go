package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestScanDirectory(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.pdf"))
	touch(t, filepath.Join(root, "a.pdf"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "sub", "c.PDF"))
	touch(t, filepath.Join(root, ".hidden", "d.pdf"))
	touch(t, filepath.Join(root, ".skipme.pdf"))

	got, err := ScanDirectory(root, nil)
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "a.pdf"),
		filepath.Join(root, "b.pdf"),
		filepath.Join(root, "sub", "c.PDF"),
	}
	assert.Equal(t, want, got)
}

func TestScanDirectoryCustomExts(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.pdf"))
	touch(t, filepath.Join(root, "b.docx"))

	got, err := ScanDirectory(root, []string{".docx"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "b.docx")}, got)
}

func TestScanDirectoryEmptyRoot(t *testing.T) {
	_, err := ScanDirectory("  ", nil)
	assert.Error(t, err)
}

func TestResolveInputsExplicitPaths(t *testing.T) {
	got, err := ResolveInputs([]string{"a.pdf", "/tmp/b.pdf"}, "", nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.True(t, filepath.IsAbs(p))
	}
	assert.Equal(t, "/tmp/b.pdf", got[1])
}

func TestResolveInputsDirectory(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "z.pdf"))
	touch(t, filepath.Join(root, "a.pdf"))

	got, err := ResolveInputs(nil, root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.pdf"),
		filepath.Join(root, "z.pdf"),
	}, got)
}

func TestResolveInputsCwdFallback(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "only.pdf"))
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	got, err := ResolveInputs(nil, "", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "only.pdf", filepath.Base(got[0]))
}

func TestExtSet(t *testing.T) {
	set := ExtSet(nil)
	_, ok := set["pdf"]
	assert.True(t, ok)

	set = ExtSet([]string{".PDF", " docx ", ""})
	_, ok = set["pdf"]
	assert.True(t, ok)
	_, ok = set["docx"]
	assert.True(t, ok)
	assert.Len(t, set, 2)
}
