package store

import (
	"encoding/json"

	"github.com/marqview/reelscout/tmdb"
)

// AddFavorite appends movie to the favorites list unless an entry with the
// same identifier already exists, then writes the updated list through to
// durable storage. Adding a present movie is a no-op.
func (s *Store) AddFavorite(movie tmdb.MovieSummary) {
	s.mu.Lock()
	for _, f := range s.favorites {
		if f.ID == movie.ID {
			s.mu.Unlock()
			return
		}
	}
	s.favorites = append(s.favorites, movie)
	snapshot := append([]tmdb.MovieSummary(nil), s.favorites...)
	s.mu.Unlock()

	s.persistFavorites(snapshot)
}

// RemoveFavorite filters out any entry with the given identifier and
// writes the result through unconditionally, even when nothing matched.
func (s *Store) RemoveFavorite(id int) {
	s.mu.Lock()
	kept := make([]tmdb.MovieSummary, 0, len(s.favorites))
	for _, f := range s.favorites {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	s.favorites = kept
	snapshot := append([]tmdb.MovieSummary(nil), kept...)
	s.mu.Unlock()

	s.persistFavorites(snapshot)
}

// IsFavorite reports current favorites membership. No side effects.
func (s *Store) IsFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.favorites {
		if f.ID == id {
			return true
		}
	}
	return false
}

// Favorites returns the favorites list in insertion order.
func (s *Store) Favorites() []tmdb.MovieSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]tmdb.MovieSummary(nil), s.favorites...)
}

// persistFavorites mirrors the favorites list to durable storage. Write
// failures are logged, not surfaced; in-memory state stays authoritative.
func (s *Store) persistFavorites(favs []tmdb.MovieSummary) {
	data, err := json.Marshal(favs)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to encode favorites")
		return
	}
	if err := s.kv.Set(keyFavorites, string(data)); err != nil {
		s.logger.Warn().Err(err).Str("key", keyFavorites).Msg("Failed to persist favorites")
	}
}
