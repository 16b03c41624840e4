package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*PhotoStore, string) {
	t.Helper()
	root := t.TempDir()
	return NewPhotoStore(root, "uploads/staff"), root
}

func TestStoreWritesUnderPhotoDir(t *testing.T) {
	store, root := newTestStore(t)

	path, err := store.Store([]byte("image-bytes"), "avatar.jpg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "uploads/staff/"))
	assert.True(t, strings.HasSuffix(path, "_avatar.jpg"))

	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
	assert.True(t, store.Exists(path))
}

func TestStoreGeneratesUniqueNames(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.Store([]byte("one"), "same.png")
	require.NoError(t, err)
	second, err := store.Store([]byte("two"), "same.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, store.Exists(first))
	assert.True(t, store.Exists(second))
}

func TestStoreSanitizesOriginalName(t *testing.T) {
	store, root := newTestStore(t)

	path, err := store.Store([]byte("x"), "../we ird!name?.jpg")
	require.NoError(t, err)

	base := filepath.Base(filepath.FromSlash(path))
	assert.NotContains(t, base, "/")
	assert.NotContains(t, base, " ")
	assert.NotContains(t, base, "!")
	assert.True(t, strings.HasSuffix(base, ".jpg"))

	entries, err := os.ReadDir(filepath.Join(root, "uploads", "staff"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	path, err := store.Store([]byte("x"), "gone.gif")
	require.NoError(t, err)

	require.NoError(t, store.Delete(path))
	assert.False(t, store.Exists(path))

	require.NoError(t, store.Delete(path))
	require.NoError(t, store.Delete(""))
}

func TestDeleteRefusesPathsOutsidePhotoDir(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Error(t, store.Delete("../../etc/passwd"))
	assert.Error(t, store.Delete("uploads/staff/../../escape.jpg"))
	assert.Error(t, store.Delete("other/place/file.jpg"))
}
