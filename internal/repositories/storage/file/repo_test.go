package filerepo

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *repository {
	t.Helper()

	repo := NewRepository(t.TempDir())
	require.NoError(t, repo.Init())

	return repo
}

func TestStoreAndLoad(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)

	content := []byte("%PDF-1.4 fake diploma")

	key, err := repo.Store("owner1", "diploma.pdf", bytes.NewReader(content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "owner1/"))
	assert.True(t, strings.HasSuffix(key, "_diploma.pdf"))

	f, err := repo.Load(key)
	require.NoError(t, err)
	defer f.Close()

	got, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestReset_WipesStoredFiles(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)

	key, err := repo.Store("owner1", "diploma.pdf", strings.NewReader("content"))
	require.NoError(t, err)

	require.NoError(t, repo.Reset())

	_, err = repo.Load(key)
	assert.ErrorIs(t, err, models.ErrFileNotFound)

	// the root survives a reset and accepts new writes
	_, err = repo.Store("owner1", "diploma.pdf", strings.NewReader("fresh"))
	assert.NoError(t, err)
}

func TestStore_UniqueKeysForSameName(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)

	key1, err := repo.Store("owner1", "diploma.pdf", strings.NewReader("first"))
	require.NoError(t, err)

	key2, err := repo.Store("owner1", "diploma.pdf", strings.NewReader("second"))
	require.NoError(t, err)

	assert.NotEqual(t, key1, key2)

	f, err := repo.Load(key1)
	require.NoError(t, err)
	defer f.Close()

	got, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "first", string(got))
}

func TestStore_RejectsUnsafeNames(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)

	cases := []struct {
		name     string
		ownerID  string
		fileName string
	}{
		{"traversal in name", "owner1", "../../etc/passwd"},
		{"dotdot prefix in name", "owner1", "..diploma.pdf"},
		{"separator in name", "owner1", "nested/diploma.pdf"},
		{"backslash in name", "owner1", `nested\diploma.pdf`},
		{"empty name", "owner1", ""},
		{"nul in name", "owner1", "diploma\x00.pdf"},
		{"traversal in owner", "../owner1", "diploma.pdf"},
		{"empty owner", "", "diploma.pdf"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := repo.Store(tc.ownerID, tc.fileName, strings.NewReader("data"))
			assert.ErrorIs(t, err, models.ErrInvalidFileName)
		})
	}
}

func TestLoad_RejectsTraversalKey(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)

	_, err := repo.Load("../outside")
	assert.ErrorIs(t, err, models.ErrInvalidFileName)

	_, err = repo.Load("owner1/../../outside")
	assert.ErrorIs(t, err, models.ErrInvalidFileName)
}

func TestLoad_NotFound(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)

	_, err := repo.Load("owner1/missing.pdf")
	assert.ErrorIs(t, err, models.ErrFileNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)

	key, err := repo.Store("owner1", "photo.png", strings.NewReader("png bytes"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(key))

	_, err = repo.Load(key)
	assert.ErrorIs(t, err, models.ErrFileNotFound)

	err = repo.Delete(key)
	assert.ErrorIs(t, err, models.ErrFileNotFound)
}

func TestStore_NoPartialFileOnCopyFailure(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)

	_, err := repo.Store("owner1", "diploma.pdf", &failingReader{})
	require.ErrorIs(t, err, models.ErrFileStorage)

	entries, err := os.ReadDir(filepath.Join(repo.root, "owner1"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}
