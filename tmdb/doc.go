// Package tmdb provides a client for the TMDB v3 movie metadata API.
//
// The client covers the small surface this application consumes: the daily
// trending feed, filtered movie search, and the per-movie detail, credits
// and video endpoints. Every request carries the API key and an optional
// language parameter; optional filter fields are mapped to query parameters
// only when non-empty.
//
// Create a client with your API key:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tmdb.NewClient(tmdb.DefaultBaseURL, "your-api-key", logger,
//		tmdb.WithTimeout(15*time.Second),
//		tmdb.WithLanguage("en-US"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page, err := client.Trending(ctx, 1, tmdb.Filters{})
//
// Non-200 responses are returned as *APIError, which carries the status
// code and classification helpers (IsNotFound, IsUnauthorized,
// IsRateLimited). Network and decode failures are wrapped with context.
package tmdb
