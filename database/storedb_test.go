package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefinder/dataset"
)

func openTestDB(t *testing.T) *StoreDB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"), Config{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStoreDB_ReplaceAndLoad(t *testing.T) {
	db := openTestDB(t)

	stores := []dataset.Store{
		{
			Name: "Colruyt Anderlecht", Brand: "Colruyt", City: "Anderlecht",
			Address: "Boulevard Industriel 148", PostalCode: "1070",
			Lat: 50.8215, Lon: 4.2841,
			Hours: map[string]string{"monday": "08:30-20:00", "sunday": "Fermé"},
		},
		{Name: "Aldi Schaerbeek", Brand: "Aldi", City: "Schaerbeek"},
	}

	require.NoError(t, db.ReplaceStores(stores))

	count, err := db.CountStores()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	loaded, err := db.LoadStores()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Порядок вставки сохраняется
	assert.Equal(t, "Colruyt Anderlecht", loaded[0].Name)
	assert.Equal(t, "Fermé", loaded[0].Hours["sunday"])
	assert.Nil(t, loaded[1].Hours)
}

func TestStoreDB_ReplaceIsAtomic(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.ReplaceStores([]dataset.Store{{Name: "First"}}))
	require.NoError(t, db.ReplaceStores([]dataset.Store{{Name: "Second"}, {Name: "Third"}}))

	loaded, err := db.LoadStores()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Second", loaded[0].Name)
}

func TestStoreDB_ResolveCache(t *testing.T) {
	db := openTestDB(t)

	_, ok := db.GetCachedResolve("ChIJabc", time.Hour)
	assert.False(t, ok)

	require.NoError(t, db.PutCachedResolve("ChIJabc", `{"name":"Delhaize"}`))

	payload, ok := db.GetCachedResolve("ChIJabc", time.Hour)
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"Delhaize"}`, payload)

	// Просроченная запись не возвращается
	_, ok = db.GetCachedResolve("ChIJabc", time.Nanosecond)
	assert.False(t, ok)
}

func TestStoreDB_ResolveCacheUpsert(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.PutCachedResolve("id1", `{"v":1}`))
	require.NoError(t, db.PutCachedResolve("id1", `{"v":2}`))

	payload, ok := db.GetCachedResolve("id1", time.Hour)
	require.True(t, ok)
	assert.JSONEq(t, `{"v":2}`, payload)
}

func TestStoreDB_PruneResolveCache(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.PutCachedResolve("old", `{}`))
	time.Sleep(20 * time.Millisecond)

	pruned, err := db.PruneResolveCache(time.Nanosecond)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pruned)
}
