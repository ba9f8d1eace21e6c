package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() *Dataset {
	return New([]Store{
		{Name: "Delhaize Molière", Brand: "Delhaize", City: "Bruxelles", Address: "Chaussée de Waterloo 706", Lat: 50.81, Lon: 4.36},
		{Name: "Aldi Schaerbeek", Brand: "Aldi", City: "Schaerbeek", Address: "Chaussée de Helmet 241", Lat: 50.86, Lon: 4.38},
		{Name: "Surgelés Picard", Brand: "Picard", City: "Uccle", Address: "Rue Vanderkindere 123"},
	})
}

func TestLocalID_Format(t *testing.T) {
	assert.Equal(t, "local_delhaize_moliere_0", LocalID("Delhaize Molière", 0))
	assert.Equal(t, "local_shop_go_7", LocalID("Shop & Go!", 7))
	assert.True(t, IsLocalID("local_anything_3"))
	assert.False(t, IsLocalID("ChIJd8BlQ2BZwokR"))
}

func TestDataset_ByID(t *testing.T) {
	d := fixture()

	store, ok := d.ByID("local_aldi_schaerbeek_1")
	require.True(t, ok)
	assert.Equal(t, "Aldi", store.Brand)

	_, ok = d.ByID("local_unknown_9")
	assert.False(t, ok)
}

func TestDataset_SearchSubstring(t *testing.T) {
	d := fixture()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"by name", "aldi", 1},
		{"by brand accent-folded", "delhaize moliere", 1},
		{"by city", "schaerbeek", 1},
		{"by address", "waterloo", 1},
		{"case-insensitive", "ALDI", 1},
		{"no match", "okonomiyaki", 0},
		{"empty query", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, d.Search(tt.query), tt.want)
		})
	}
}

func TestDataset_SearchStemmedSecondPass(t *testing.T) {
	d := fixture()

	// "surgelée" не входит подстрокой в "surgelés", но обе формы дают
	// основу "surgel". Диакритика значима для стеммера, поэтому основы
	// берутся до ее удаления.
	for _, query := range []string{"surgelée", "SURGELÉE"} {
		hits := d.Search(query)
		require.Len(t, hits, 1, "query %q", query)
		assert.Equal(t, "Picard", hits[0].Store.Brand)
	}
}

func TestDataset_SearchPreservesOrder(t *testing.T) {
	d := New([]Store{
		{Name: "Carrefour Express", Brand: "Carrefour"},
		{Name: "Carrefour Market", Brand: "Carrefour"},
	})

	hits := d.Search("carrefour")
	require.Len(t, hits, 2)
	assert.Equal(t, "Carrefour Express", hits[0].Store.Name)
	assert.Equal(t, "Carrefour Market", hits[1].Store.Name)
}

func TestDefault_NotEmptyAndIndexed(t *testing.T) {
	d := Default()
	require.Greater(t, d.Len(), 10)

	// Каждая запись достижима по своему идентификатору
	for _, hit := range d.All() {
		store, ok := d.ByID(hit.ID)
		require.True(t, ok)
		assert.Equal(t, hit.Store.Name, store.Name)
	}
}

func TestDefault_AldiPresent(t *testing.T) {
	// Контракт деградации: запрос "Aldi" обязан находить локальные записи
	hits := Default().Search("Aldi")
	assert.NotEmpty(t, hits)
}
