package store

import "github.com/marqview/reelscout/tmdb"

// Snapshot is the full observable state exposed to the presentation
// surface. All slices are copies; mutating them never affects the store.
type Snapshot struct {
	Trending           []tmdb.MovieSummary
	TrendingPage       int
	TrendingTotalPages int

	Results           []tmdb.MovieSummary
	ResultsPage       int
	ResultsTotalPages int
	Query             string

	Favorites []tmdb.MovieSummary

	Loading bool
	Err     string
}
