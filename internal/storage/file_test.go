package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, testLogger())
	ctx := context.Background()

	blob := []byte(`{"bank_balance":"12345.67","accounts":[]}`)
	require.NoError(t, store.Save(ctx, "mine", blob))

	loaded, err := store.Load(ctx, "mine")
	require.NoError(t, err)
	assert.JSONEq(t, string(blob), string(loaded))

	// One file per namespace, named <namespace>-data.json.
	_, err = os.Stat(filepath.Join(dir, "mine-data.json"))
	require.NoError(t, err)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(t.TempDir(), testLogger())
	loaded, err := store.Load(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(loaded))
}

func TestFileStore_CorruptFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken-data.json"), []byte("{not json"), 0644))

	store := NewFileStore(dir, testLogger())
	loaded, err := store.Load(context.Background(), "broken")
	require.NoError(t, err, "corrupt data is treated as no saved data, not an error")
	assert.Equal(t, "{}", string(loaded))
}

func TestFileStore_CreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFileStore(dir, testLogger())
	require.NoError(t, store.Save(context.Background(), "x", []byte("{}")))
	_, err := os.Stat(dir)
	require.NoError(t, err)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	loaded, err := store.Load(ctx, "ns")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(loaded))

	require.NoError(t, store.Save(ctx, "ns", []byte(`{"a":1}`)))
	loaded, err = store.Load(ctx, "ns")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(loaded))
}
