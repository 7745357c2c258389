package resultsdir

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
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
}

func TestSamplesSortedAndDirsOnly(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "S2"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "S1"), 0o755))
	touch(t, filepath.Join(root, "notes.txt"))

	got, err := Samples(root)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "S1", got[0].Name)
	assert.Equal(t, filepath.Join(root, "S1"), got[0].Dir)
	assert.Equal(t, "S2", got[1].Name)
}

func TestSamplesMissingRoot(t *testing.T) {
	_, err := Samples(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestFirstIsLexicographic(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "S1")
	touch(t, filepath.Join(dir, "b.params.txt"))
	touch(t, filepath.Join(dir, "a.params.txt"))
	touch(t, filepath.Join(dir, "a.cna.seg"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.params.txt"), 0o755))

	s := Sample{Name: "S1", Dir: dir}
	path, ok, err := s.First(ParamsSuffix)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "a.params.txt"), path)

	all, err := s.All(ParamsSuffix)
	require.NoError(t, err)
	assert.Len(t, all, 2, "directories named like outputs are not files")
}

func TestFirstNoMatch(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := Sample{Name: "x", Dir: dir}.First(SegSuffix)
	require.NoError(t, err)
	assert.False(t, ok)
}
