package tmdb

import "strings"

// MovieSummary is the list-view representation of a movie as returned by
// trending and search endpoints.
type MovieSummary struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title,omitempty"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	GenreIDs      []int   `json:"genre_ids"`
	Popularity    float64 `json:"popularity"`
}

// Year extracts the release year from the release date, or "" when unknown.
func (m MovieSummary) Year() string {
	if i := strings.IndexByte(m.ReleaseDate, '-'); i > 0 {
		return m.ReleaseDate[:i]
	}
	return m.ReleaseDate
}

// Page is one page of trending or search results.
type Page struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// Genre is a TMDB genre reference.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the full per-movie payload from /movie/{id}.
type MovieDetails struct {
	ID            int     `json:"id"`
	IMDBID        string  `json:"imdb_id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Tagline       string  `json:"tagline"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	Runtime       int     `json:"runtime"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Genres        []Genre `json:"genres"`
	Popularity    float64 `json:"popularity"`
	Status        string  `json:"status"`
}

// Summary converts the detail payload to its list-view form, used when a
// movie enters the favorites set from a detail lookup.
func (d MovieDetails) Summary() MovieSummary {
	ids := make([]int, 0, len(d.Genres))
	for _, g := range d.Genres {
		ids = append(ids, g.ID)
	}
	return MovieSummary{
		ID:            d.ID,
		Title:         d.Title,
		OriginalTitle: d.OriginalTitle,
		Overview:      d.Overview,
		PosterPath:    d.PosterPath,
		BackdropPath:  d.BackdropPath,
		ReleaseDate:   d.ReleaseDate,
		VoteAverage:   d.VoteAverage,
		VoteCount:     d.VoteCount,
		GenreIDs:      ids,
		Popularity:    d.Popularity,
	}
}

// CastMember is one cast credit.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CrewMember is one crew credit.
type CrewMember struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Job        string `json:"job"`
}

// Credits is the /movie/{id}/credits payload.
type Credits struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Video is one entry from /movie/{id}/videos (trailers, teasers, clips).
type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type videosResponse struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

// Filters are optional narrowing criteria for trending and search requests.
// An empty field means "not applied" and is never forwarded to the API.
type Filters struct {
	Genre     string
	Year      string
	MinRating string
}

// IsZero reports whether no filter field is set.
func (f Filters) IsZero() bool {
	return f.Genre == "" && f.Year == "" && f.MinRating == ""
}
