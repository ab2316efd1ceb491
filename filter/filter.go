// Package filter compiles expr expressions for client-side narrowing of
// movie lists, used by the favorites listing and local result filtering.
//
// Expressions evaluate against a single movie and must yield a boolean:
//
//	Rating >= 7.5 && Year > 2015
//	contains(Title, "alien") || Votes > 10000
package filter

import (
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/marqview/reelscout/tmdb"
)

// Filter is a compiled movie filter expression.
type Filter struct {
	program *vm.Program
	src     string
}

// Compile compiles a filter expression.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, ErrEmptyExpression
	}

	program, err := expr.Compile(expression,
		expr.Env(movieEnv(tmdb.MovieSummary{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompileError{Expression: expression, Err: err}
	}

	return &Filter{program: program, src: expression}, nil
}

// Match evaluates the filter against a movie. Evaluation errors skip the
// movie rather than failing the listing.
func (f *Filter) Match(movie tmdb.MovieSummary) bool {
	result, err := expr.Run(f.program, movieEnv(movie))
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

// Apply returns the movies matching the filter, in input order.
func (f *Filter) Apply(movies []tmdb.MovieSummary) []tmdb.MovieSummary {
	matched := make([]tmdb.MovieSummary, 0, len(movies))
	for _, m := range movies {
		if f.Match(m) {
			matched = append(matched, m)
		}
	}
	return matched
}

// String returns the original expression
func (f *Filter) String() string {
	return f.src
}

// movieEnv builds the evaluation environment for one movie: its direct
// properties plus string helpers.
func movieEnv(movie tmdb.MovieSummary) map[string]interface{} {
	year := 0
	if y := movie.Year(); y != "" {
		year, _ = strconv.Atoi(y)
	}

	return map[string]interface{}{
		// Movie properties
		"ID":         movie.ID,
		"Title":      movie.Title,
		"Overview":   movie.Overview,
		"Year":       year,
		"Rating":     movie.VoteAverage,
		"Votes":      movie.VoteCount,
		"Popularity": movie.Popularity,

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
