package tmdb

import "context"

// API defines the interface for TMDB operations
type API interface {
	// Trending retrieves one page of the daily trending movie feed
	Trending(ctx context.Context, page int, f Filters) (*Page, error)

	// SearchMovies retrieves one page of search results for a query
	SearchMovies(ctx context.Context, query string, page int, f Filters) (*Page, error)

	// MovieDetails retrieves the full payload for a single movie
	MovieDetails(ctx context.Context, id int) (*MovieDetails, error)

	// MovieCredits retrieves cast and crew for a single movie
	MovieCredits(ctx context.Context, id int) (*Credits, error)

	// MovieVideos retrieves trailers and other videos for a single movie
	MovieVideos(ctx context.Context, id int) ([]Video, error)
}
