package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("missing API key", func(t *testing.T) {
		_, err := NewClient(DefaultBaseURL, "", logger)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("defaults applied", func(t *testing.T) {
		client, err := NewClient("", "test-key", logger)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		client, err := NewClient("http://localhost:9090/", "test-key", logger)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9090", client.baseURL)
	})
}

// newTestClient returns a client against a server that records the last
// request query and replies with body.
func newTestClient(t *testing.T, body string, status int, lastQuery *url.Values) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastQuery != nil {
			*lastQuery = r.URL.Query()
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, "test-key", zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestTrendingFilterMapping(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		want    map[string]string
		absent  []string
	}{
		{
			name:    "all filters set",
			filters: Filters{Genre: "878", Year: "2021", MinRating: "7.5"},
			want: map[string]string{
				"with_genres":          "878",
				"primary_release_year": "2021",
				"vote_average.gte":     "7.5",
			},
		},
		{
			name:    "empty filters omitted entirely",
			filters: Filters{},
			absent:  []string{"with_genres", "primary_release_year", "vote_average.gte"},
		},
		{
			name:    "partial filters",
			filters: Filters{Year: "1999"},
			want:    map[string]string{"primary_release_year": "1999"},
			absent:  []string{"with_genres", "vote_average.gte"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var query url.Values
			client := newTestClient(t, `{"results":[],"page":1,"total_pages":1}`, http.StatusOK, &query)

			_, err := client.Trending(context.Background(), 2, tt.filters)
			require.NoError(t, err)

			assert.Equal(t, "2", query.Get("page"))
			assert.Equal(t, "test-key", query.Get("api_key"))
			for k, v := range tt.want {
				assert.Equal(t, v, query.Get(k), "parameter %s", k)
			}
			for _, k := range tt.absent {
				assert.False(t, query.Has(k), "parameter %s should be absent", k)
			}
		})
	}
}

func TestSearchAlwaysExcludesAdult(t *testing.T) {
	var query url.Values
	client := newTestClient(t, `{"results":[],"page":1,"total_pages":0}`, http.StatusOK, &query)

	_, err := client.SearchMovies(context.Background(), "alien", 1, Filters{})
	require.NoError(t, err)

	assert.Equal(t, "alien", query.Get("query"))
	assert.Equal(t, "false", query.Get("include_adult"))
	assert.False(t, query.Has("with_genres"))
}

func TestTrendingDecodesResults(t *testing.T) {
	page := Page{
		Page:       1,
		TotalPages: 3,
		Results: []MovieSummary{
			{ID: 1, Title: "Alpha", ReleaseDate: "2020-03-01", VoteAverage: 7.1},
			{ID: 2, Title: "Beta", ReleaseDate: "2018-11-20", VoteAverage: 6.4},
		},
	}
	body, err := json.Marshal(page)
	require.NoError(t, err)

	client := newTestClient(t, string(body), http.StatusOK, nil)
	got, err := client.Trending(context.Background(), 1, Filters{})
	require.NoError(t, err)

	require.Len(t, got.Results, 2)
	assert.Equal(t, "Alpha", got.Results[0].Title)
	assert.Equal(t, "2020", got.Results[0].Year())
	assert.Equal(t, 3, got.TotalPages)
}

func TestAbsentResultsIsEmptyNotError(t *testing.T) {
	client := newTestClient(t, `{"page":1,"total_pages":1}`, http.StatusOK, nil)

	got, err := client.SearchMovies(context.Background(), "nothing", 1, Filters{})
	require.NoError(t, err)
	assert.Empty(t, got.Results)

	videos, err := client.MovieVideos(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestAPIErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, apiErr *APIError)
	}{
		{
			name:   "not found",
			status: http.StatusNotFound,
			check: func(t *testing.T, e *APIError) {
				assert.True(t, e.IsNotFound())
			},
		},
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, e *APIError) {
				assert.True(t, e.IsUnauthorized())
			},
		},
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			check: func(t *testing.T, e *APIError) {
				assert.True(t, e.IsRateLimited())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, `{"status_message":"nope"}`, tt.status, nil)

			_, err := client.MovieDetails(context.Background(), 1)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			tt.check(t, apiErr)
		})
	}
}

func TestMovieVideosDecode(t *testing.T) {
	body := `{"id":603,"results":[{"id":"abc","key":"dQw4w9WgXcQ","name":"Official Trailer","site":"YouTube","type":"Trailer","official":true}]}`
	client := newTestClient(t, body, http.StatusOK, nil)

	videos, err := client.MovieVideos(context.Background(), 603)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "Official Trailer", videos[0].Name)
	assert.Equal(t, "YouTube", videos[0].Site)
	assert.True(t, videos[0].Official)
}

func TestMovieSummaryYear(t *testing.T) {
	assert.Equal(t, "1999", MovieSummary{ReleaseDate: "1999-03-31"}.Year())
	assert.Equal(t, "", MovieSummary{}.Year())
	assert.Equal(t, "2020", MovieSummary{ReleaseDate: "2020"}.Year())
}
