package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/raykavin/linechart/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var source = []core.Series{
	{Name: "a", Data: []core.Point{{Date: "a", Value: 1}, {Date: "b", Value: 3}}},
	{Name: "b", Data: []core.Point{{Date: "a", Value: 5}}},
}

func memoryStore(t *testing.T) *Store {
	t.Helper()
	store, err := FromMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SaveLoad(t *testing.T) {
	store := memoryStore(t)

	require.NoError(t, store.Save("weekly", source))
	loaded, err := store.Load("weekly")
	require.NoError(t, err)
	assert.Equal(t, source, loaded)

	require.NoError(t, store.Save("weekly", source[:1]))
	loaded, err = store.Load("weekly")
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestStore_NotFound(t *testing.T) {
	store := memoryStore(t)

	_, err := store.Load("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete("missing"), ErrNotFound)
	assert.ErrorIs(t, store.Save("  ", source), ErrInvalidName)
}

func TestStore_ListAndDelete(t *testing.T) {
	store := memoryStore(t)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	require.NoError(t, store.Save("second", source))
	require.NoError(t, store.Save("first", source))
	require.NoError(t, store.Save("second", source))

	datasets, err := store.List()
	require.NoError(t, err)
	require.Len(t, datasets, 2)
	assert.Equal(t, "first", datasets[0].Name)
	assert.Equal(t, "second", datasets[1].Name)

	require.NoError(t, store.Delete("first"))
	datasets, err = store.List()
	require.NoError(t, err)
	require.Len(t, datasets, 1)
	assert.Equal(t, "second", datasets[0].Name)
}

func TestStore_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datasets.db")

	store, err := FromFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("weekly", source))
	require.NoError(t, store.Close())

	store, err = FromFile(path)
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.Load("weekly")
	require.NoError(t, err)
	assert.Equal(t, source, loaded)
}
