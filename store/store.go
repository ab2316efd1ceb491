package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/marqview/reelscout/tmdb"
)

// fetchErrMessage is the generic recoverable message surfaced when a
// trending or search fetch fails. Prior results are always preserved.
const fetchErrMessage = "could not load movies, please try again"

// resultSet is one listing track: its ordered results, pagination cursor,
// the filters that produced it, and the latest fetch sequence number.
type resultSet struct {
	items      []tmdb.MovieSummary
	page       int
	totalPages int
	filters    tmdb.Filters
	seq        uint64
}

// apply merges a fetched page into the track. Page 1 replaces the
// sequence; later pages append in response order, no dedup.
func (rs *resultSet) apply(page int, resp *tmdb.Page, f tmdb.Filters) {
	if page <= 1 {
		rs.items = append([]tmdb.MovieSummary(nil), resp.Results...)
	} else {
		rs.items = append(rs.items, resp.Results...)
	}
	rs.page = resp.Page
	if rs.page == 0 {
		rs.page = page
	}
	rs.totalPages = resp.TotalPages
	rs.filters = f
}

// Store is the movie discovery state controller.
type Store struct {
	api    tmdb.API
	kv     KV
	logger zerolog.Logger

	mu        sync.Mutex
	trending  resultSet
	results   resultSet
	query     string
	favorites []tmdb.MovieSummary
	inFlight  int
	lastErr   string
}

// New creates a Store and loads the persisted favorites once.
func New(api tmdb.API, kv KV, logger zerolog.Logger) *Store {
	s := &Store{
		api:    api,
		kv:     kv,
		logger: logger,
	}
	s.loadFavorites()
	return s
}

func (s *Store) loadFavorites() {
	raw, ok := s.kv.Get(keyFavorites)
	if !ok || raw == "" {
		return
	}
	var favs []tmdb.MovieSummary
	if err := json.Unmarshal([]byte(raw), &favs); err != nil {
		s.logger.Warn().Err(err).Msg("Ignoring malformed persisted favorites")
		return
	}
	s.favorites = favs
}

// Init performs the two startup fetches: trending page 1 and, if a
// last-search query was persisted, that search at page 1. The fetches run
// concurrently and a failure in either never blocks the other; failures
// land in the error flag per the normal fetch path.
func (s *Store) Init(ctx context.Context) error {
	g := new(errgroup.Group)

	g.Go(func() error {
		if err := s.LoadTrending(ctx, 1, tmdb.Filters{}); err != nil {
			s.logger.Warn().Err(err).Msg("Initial trending load failed")
		}
		return nil // Don't block the other fetch on individual errors
	})

	g.Go(func() error {
		last, ok := s.kv.Get(keyLastSearch)
		if !ok || strings.TrimSpace(last) == "" {
			return nil
		}
		if err := s.Search(ctx, last, 1, tmdb.Filters{}); err != nil {
			s.logger.Warn().Err(err).Str("query", last).Msg("Failed to resume persisted search")
		}
		return nil
	})

	return g.Wait()
}

// LoadTrending fetches one page of the trending feed. Page 1 replaces the
// trending results, later pages append. The filters used are recorded for
// subsequent LoadMoreTrending calls. On failure the previous results stay
// untouched and the error flag is set.
func (s *Store) LoadTrending(ctx context.Context, page int, f tmdb.Filters) error {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	s.trending.seq++
	seq := s.trending.seq
	s.inFlight++
	s.mu.Unlock()

	resp, err := s.api.Trending(ctx, page, f)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--

	if seq != s.trending.seq {
		s.logger.Debug().Uint64("seq", seq).Msg("Discarding superseded trending response")
		return nil
	}
	if err != nil {
		s.lastErr = fetchErrMessage
		s.logger.Error().Err(err).Int("page", page).Msg("Failed to load trending movies")
		return err
	}

	s.trending.apply(page, resp, f)
	s.lastErr = ""
	return nil
}

// Search fetches one page of search results for query. An empty or
// whitespace-only query is a no-op: no state change, no request. The query
// becomes the active query and is persisted for session continuity.
func (s *Store) Search(ctx context.Context, query string, page int, f tmdb.Filters) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	s.query = query
	s.results.seq++
	seq := s.results.seq
	s.inFlight++
	s.mu.Unlock()

	if err := s.kv.Set(keyLastSearch, query); err != nil {
		s.logger.Warn().Err(err).Str("key", keyLastSearch).Msg("Failed to persist last search")
	}

	resp, err := s.api.SearchMovies(ctx, query, page, f)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--

	if seq != s.results.seq {
		s.logger.Debug().Uint64("seq", seq).Str("query", query).Msg("Discarding superseded search response")
		return nil
	}
	if err != nil {
		s.lastErr = fetchErrMessage
		s.logger.Error().Err(err).Str("query", query).Int("page", page).Msg("Search failed")
		return err
	}

	s.results.apply(page, resp, f)
	s.lastErr = ""
	return nil
}

// LoadMoreTrending fetches the next trending page with the recorded
// filters. It is a no-op once the cursor reaches the last known page.
func (s *Store) LoadMoreTrending(ctx context.Context) error {
	s.mu.Lock()
	if s.trending.page >= s.trending.totalPages {
		s.mu.Unlock()
		return nil
	}
	page := s.trending.page + 1
	f := s.trending.filters
	s.mu.Unlock()

	return s.LoadTrending(ctx, page, f)
}

// LoadMoreResults fetches the next search page with the recorded query and
// filters. It is a no-op without an active query or past the last page.
func (s *Store) LoadMoreResults(ctx context.Context) error {
	s.mu.Lock()
	if s.query == "" || s.results.page >= s.results.totalPages {
		s.mu.Unlock()
		return nil
	}
	page := s.results.page + 1
	query := s.query
	f := s.results.filters
	s.mu.Unlock()

	return s.Search(ctx, query, page, f)
}

// ResetSearch clears the search results, the active query and filters,
// resets the search cursor to page 1, and removes the persisted
// last-search value. Bumping the sequence number invalidates any search
// response still in flight.
func (s *Store) ResetSearch() {
	s.mu.Lock()
	s.results = resultSet{page: 1, seq: s.results.seq + 1}
	s.query = ""
	s.mu.Unlock()

	if err := s.kv.Remove(keyLastSearch); err != nil {
		s.logger.Warn().Err(err).Str("key", keyLastSearch).Msg("Failed to clear persisted search")
	}
}

// MovieDetails returns the detail payload for a movie, or nil when the
// lookup fails. Failures degrade to "no data" after a structured
// diagnostic; they never touch listing state.
func (s *Store) MovieDetails(ctx context.Context, id int) *tmdb.MovieDetails {
	details, err := s.api.MovieDetails(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Int("movie_id", id).Msg("Movie detail lookup failed")
		return nil
	}
	return details
}

// MovieCredits returns the credits for a movie, or nil when the lookup
// fails.
func (s *Store) MovieCredits(ctx context.Context, id int) *tmdb.Credits {
	credits, err := s.api.MovieCredits(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Int("movie_id", id).Msg("Movie credits lookup failed")
		return nil
	}
	return credits
}

// MovieVideos returns the videos for a movie, or an empty slice when the
// lookup fails.
func (s *Store) MovieVideos(ctx context.Context, id int) []tmdb.Video {
	videos, err := s.api.MovieVideos(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Int("movie_id", id).Msg("Movie videos lookup failed")
		return nil
	}
	return videos
}

// Snapshot returns a copy of the full observable state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Trending:           append([]tmdb.MovieSummary(nil), s.trending.items...),
		TrendingPage:       s.trending.page,
		TrendingTotalPages: s.trending.totalPages,
		Results:            append([]tmdb.MovieSummary(nil), s.results.items...),
		ResultsPage:        s.results.page,
		ResultsTotalPages:  s.results.totalPages,
		Query:              s.query,
		Favorites:          append([]tmdb.MovieSummary(nil), s.favorites...),
		Loading:            s.inFlight > 0,
		Err:                s.lastErr,
	}
}
