package tmdb

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid tmdb configuration")
	// ErrNotFound indicates the movie does not exist
	ErrNotFound = errors.New("movie not found")
)

// APIError represents a TMDB API error response.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsRateLimited checks if the error indicates the request was throttled
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}
