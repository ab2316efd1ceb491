package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public TMDB v3 API endpoint.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Client represents a TMDB API client
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLanguage sets the language parameter attached to every request.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// NewClient creates a new TMDB client
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	client := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// doRequest performs a GET request with the authentication parameter attached
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
	}

	return body, nil
}

// applyFilters maps non-empty filter fields to their query parameters.
// Empty fields are omitted entirely, never sent as empty-string parameters.
func applyFilters(params url.Values, f Filters) {
	if f.Genre != "" {
		params.Set("with_genres", f.Genre)
	}
	if f.Year != "" {
		params.Set("primary_release_year", f.Year)
	}
	if f.MinRating != "" {
		params.Set("vote_average.gte", f.MinRating)
	}
}

// Trending retrieves one page of the daily trending movie feed.
func (c *Client) Trending(ctx context.Context, page int, f Filters) (*Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	applyFilters(params, f)

	body, err := c.doRequest(ctx, "/trending/movie/day", params)
	if err != nil {
		return nil, fmt.Errorf("failed to get trending movies: %w", err)
	}

	var result Page
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	c.logger.Debug().
		Int("page", result.Page).
		Int("count", len(result.Results)).
		Int("total_pages", result.TotalPages).
		Msg("Retrieved trending movies from TMDB")

	return &result, nil
}

// SearchMovies retrieves one page of search results for a query.
// Adult titles are always excluded.
func (c *Client) SearchMovies(ctx context.Context, query string, page int, f Filters) (*Page, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")
	applyFilters(params, f)

	body, err := c.doRequest(ctx, "/search/movie", params)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}

	var result Page
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	c.logger.Debug().
		Str("query", query).
		Int("page", result.Page).
		Int("count", len(result.Results)).
		Msg("Retrieved search results from TMDB")

	return &result, nil
}

// MovieDetails retrieves the full payload for a single movie.
func (c *Client) MovieDetails(ctx context.Context, id int) (*MovieDetails, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d", id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}

	var details MovieDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &details, nil
}

// MovieCredits retrieves cast and crew for a single movie.
func (c *Client) MovieCredits(ctx context.Context, id int) (*Credits, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d/credits", id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get credits for movie %d: %w", id, err)
	}

	var credits Credits
	if err := json.Unmarshal(body, &credits); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &credits, nil
}

// MovieVideos retrieves trailers and other videos for a single movie.
// An absent results field decodes as an empty slice, never an error.
func (c *Client) MovieVideos(ctx context.Context, id int) ([]Video, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d/videos", id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get videos for movie %d: %w", id, err)
	}

	var resp videosResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return resp.Results, nil
}
