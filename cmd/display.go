package cmd

import (
	"fmt"
	"strings"

	"github.com/marqview/reelscout/tmdb"
)

// printMovies renders one listing track with its pagination cursor.
func printMovies(heading string, list []tmdb.MovieSummary, page, totalPages int) {
	if len(list) == 0 {
		fmt.Printf("%s: no movies found.\n", heading)
		return
	}

	fmt.Printf("\n%s (page %d of %d, %d loaded):\n", heading, page, totalPages, len(list))
	fmt.Println(strings.Repeat("-", 80))

	for _, m := range list {
		fmt.Printf("• %s", m.Title)
		if y := m.Year(); y != "" {
			fmt.Printf(" (%s)", y)
		}
		if m.VoteAverage > 0 {
			fmt.Printf("  ★ %.1f", m.VoteAverage)
		}
		if movies.IsFavorite(m.ID) {
			fmt.Printf(" [FAVORITE]")
		}
		fmt.Println()
		fmt.Printf("  ID: %d\n", m.ID)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
