package fragment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string, data []byte) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o644))
}

func TestRead_FreshEveryCall(t *testing.T) {
	root := t.TempDir()
	const rel = "components/media-player/player/media-player.html"
	writeFile(t, root, rel, []byte("<div>PLAYER</div>"))
	src := New(root, rel)

	got, err := src.Read()
	require.NoError(t, err)
	assert.Equal(t, "<div>PLAYER</div>", got)

	writeFile(t, root, rel, []byte("<div>v2</div>"))
	got, err = src.Read()
	require.NoError(t, err)
	assert.Equal(t, "<div>v2</div>", got)
}

func TestRead_Missing(t *testing.T) {
	src := New(t.TempDir(), "nope.html")
	_, err := src.Read()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRead_InvalidUTF8(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "bad.html", []byte{0xff, 0xfe, 'x'})
	_, err := New(root, "bad.html").Read()
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestStat(t *testing.T) {
	root := t.TempDir()
	src := New(root, "f.html")

	info, err := src.Stat()
	require.NoError(t, err)
	assert.False(t, info.Exists)
	assert.Equal(t, "f.html", info.Path)

	writeFile(t, root, "f.html", []byte("12345"))
	info, err = src.Stat()
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.EqualValues(t, 5, info.Size)
	assert.False(t, info.ModTime.IsZero())
}
