package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marqview/reelscout/tmdb"
)

func persistedFavorites(t *testing.T, kv *fakeKV) []tmdb.MovieSummary {
	t.Helper()
	raw, ok := kv.Get(keyFavorites)
	require.True(t, ok, "favorites must be persisted")
	var favs []tmdb.MovieSummary
	require.NoError(t, json.Unmarshal([]byte(raw), &favs))
	return favs
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	kv := newFakeKV()
	s := newTestStore(&fakeAPI{}, kv)
	a := movie(1, "A")

	s.AddFavorite(a)
	s.AddFavorite(a)

	favs := s.Favorites()
	require.Len(t, favs, 1)
	assert.Equal(t, a, favs[0])
	assert.Len(t, persistedFavorites(t, kv), 1)
}

func TestFavoritesKeepInsertionOrder(t *testing.T) {
	kv := newFakeKV()
	s := newTestStore(&fakeAPI{}, kv)
	a, b, c := movie(3, "C"), movie(1, "A"), movie(2, "B")

	s.AddFavorite(a)
	s.AddFavorite(b)
	s.AddFavorite(c)

	favs := s.Favorites()
	assert.Equal(t, []tmdb.MovieSummary{a, b, c}, favs)
	assert.Equal(t, favs, persistedFavorites(t, kv))
}

func TestRemoveFavorite(t *testing.T) {
	kv := newFakeKV()
	s := newTestStore(&fakeAPI{}, kv)
	a, b := movie(1, "A"), movie(2, "B")
	s.AddFavorite(a)
	s.AddFavorite(b)

	s.RemoveFavorite(1)

	assert.Equal(t, []tmdb.MovieSummary{b}, s.Favorites())
	assert.Equal(t, []tmdb.MovieSummary{b}, persistedFavorites(t, kv))
}

func TestRemoveFavoriteNonMemberWritesThroughUnchanged(t *testing.T) {
	kv := newFakeKV()
	s := newTestStore(&fakeAPI{}, kv)
	a := movie(1, "A")
	s.AddFavorite(a)

	s.RemoveFavorite(99)

	assert.Equal(t, []tmdb.MovieSummary{a}, s.Favorites())
	assert.Equal(t, []tmdb.MovieSummary{a}, persistedFavorites(t, kv))
}

func TestIsFavorite(t *testing.T) {
	s := newTestStore(&fakeAPI{}, newFakeKV())
	assert.False(t, s.IsFavorite(1))

	s.AddFavorite(movie(1, "A"))
	assert.True(t, s.IsFavorite(1))
	assert.False(t, s.IsFavorite(2))

	s.RemoveFavorite(1)
	assert.False(t, s.IsFavorite(1))
}

func TestFavoritesLoadedOnStartup(t *testing.T) {
	kv := newFakeKV()
	favs := []tmdb.MovieSummary{movie(1, "A"), movie(2, "B")}
	data, err := json.Marshal(favs)
	require.NoError(t, err)
	require.NoError(t, kv.Set(keyFavorites, string(data)))

	s := newTestStore(&fakeAPI{}, kv)

	assert.Equal(t, favs, s.Favorites())
	assert.True(t, s.IsFavorite(2))
}

func TestMalformedPersistedFavoritesIgnored(t *testing.T) {
	kv := newFakeKV()
	require.NoError(t, kv.Set(keyFavorites, "{not json"))

	s := newTestStore(&fakeAPI{}, kv)
	assert.Empty(t, s.Favorites())
}
