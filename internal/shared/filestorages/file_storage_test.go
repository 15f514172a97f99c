package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStorage_EmptyRoot(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"file.json",
		"daily-traffic/r-1/2025-12-28.json",
		"raw-batches/r_1/01ARZ3NDEKTSV4RRFFQ69G5FAV.json",
		"file.with.dots.json",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			result, err := storage.Put(ctx, key, strings.NewReader("payload"), PutOptions{})
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)

			content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
			require.NoError(t, err)
			assert.Equal(t, "payload", string(content))
		})
	}
}

func TestPut_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../file.json",
		"daily-traffic/../../etc/passwd",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(ctx, key, strings.NewReader("data"), PutOptions{})
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)
		})
	}
}

func TestPut_NoOverwrite_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "batch.json", strings.NewReader("first"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	_, err = storage.Put(ctx, "batch.json", strings.NewReader("second"), PutOptions{AllowOverwrite: false})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	assert.Equal(t, "first", readKey(t, storage, "batch.json"))
	assertNoTempFiles(t, storage)
}

func TestPut_Overwrite_ReplacesContent(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "day.json", strings.NewReader("first"), PutOptions{})
	require.NoError(t, err)

	result, err := storage.Put(ctx, "day.json", strings.NewReader("second"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	assert.Equal(t, "day.json", result.FileKey)

	assert.Equal(t, "second", readKey(t, storage, "day.json"))
	assertNoTempFiles(t, storage)
}

func TestDelete_ReleasesKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "raw-batches/r-1/b-1.json", strings.NewReader("first"), PutOptions{})
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, "raw-batches/r-1/b-1.json"))
	_, err = storage.Get(ctx, "raw-batches/r-1/b-1.json")
	assert.ErrorIs(t, err, ErrFileNotFound)

	// create-if-not-exists succeeds again once deleted
	_, err = storage.Put(ctx, "raw-batches/r-1/b-1.json", strings.NewReader("second"), PutOptions{})
	require.NoError(t, err)
	assert.Equal(t, "second", readKey(t, storage, "raw-batches/r-1/b-1.json"))
}

func TestDelete_MissingFile(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	assert.NoError(t, storage.Delete(context.Background(), "raw-batches/r-1/missing.json"))
}

func TestDelete_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	for _, key := range []string{"", "../outside.json", "/etc/passwd"} {
		assert.ErrorIs(t, storage.Delete(context.Background(), key), ErrInvalidKey, "key %q", key)
	}
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "nonexistent.json")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestList_ReturnsSortedKeys(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	for _, key := range []string{
		"daily-traffic/r1/2025-12-29.json",
		"daily-traffic/r1/2025-12-27.json",
		"daily-traffic/r1/2025-12-28.json",
		"daily-traffic/r2/2025-12-28.json",
	} {
		_, err := storage.Put(ctx, key, strings.NewReader("{}"), PutOptions{})
		require.NoError(t, err)
	}

	keys, err := storage.List(ctx, "daily-traffic/r1")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"daily-traffic/r1/2025-12-27.json",
		"daily-traffic/r1/2025-12-28.json",
		"daily-traffic/r1/2025-12-29.json",
	}, keys)
}

func TestList_MissingPrefix(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	keys, err := storage.List(context.Background(), "daily-traffic/unknown")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestList_InvalidPrefix(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.List(context.Background(), "../outside")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func newTestStorage(t *testing.T) FileStorage {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}

func readKey(t *testing.T, storage FileStorage, key string) string {
	t.Helper()
	rc, err := storage.Get(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(content)
}

func assertNoTempFiles(t *testing.T, storage FileStorage) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(storage.(*fileStorage).dir, ".tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
