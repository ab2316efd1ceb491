package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/marqview/reelscout/tmdb"
)

// detailsCmd represents the details command
var detailsCmd = &cobra.Command{
	Use:   "details <movie-id>",
	Short: "Show details, credits and trailers for a movie",
	Long: `Fetch the full detail payload, cast and crew, and available videos for
one movie. Each lookup degrades to "no data" on failure instead of aborting.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetails,
}

func init() {
	rootCmd.AddCommand(detailsCmd)
}

func runDetails(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id: %s", args[0])
	}

	ctx := context.Background()

	var (
		details *tmdb.MovieDetails
		credits *tmdb.Credits
		videos  []tmdb.Video
	)

	// The three lookups are independent; run them concurrently. The store
	// accessors swallow failures and return empty results.
	g := new(errgroup.Group)
	g.Go(func() error {
		details = movies.MovieDetails(ctx, id)
		return nil
	})
	g.Go(func() error {
		credits = movies.MovieCredits(ctx, id)
		return nil
	})
	g.Go(func() error {
		videos = movies.MovieVideos(ctx, id)
		return nil
	})
	g.Wait()

	if details == nil {
		fmt.Printf("No details available for movie %d.\n", id)
	} else {
		printDetails(details)
	}
	printCredits(credits)
	printVideos(videos)
	return nil
}

func printDetails(d *tmdb.MovieDetails) {
	fmt.Printf("\n%s", d.Title)
	if y := d.Summary().Year(); y != "" {
		fmt.Printf(" (%s)", y)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))

	if d.Tagline != "" {
		fmt.Printf("%s\n\n", d.Tagline)
	}
	if d.Overview != "" {
		fmt.Printf("%s\n\n", d.Overview)
	}
	if len(d.Genres) > 0 {
		names := make([]string, 0, len(d.Genres))
		for _, g := range d.Genres {
			names = append(names, g.Name)
		}
		fmt.Printf("Genres:  %s\n", strings.Join(names, ", "))
	}
	if d.Runtime > 0 {
		fmt.Printf("Runtime: %d min\n", d.Runtime)
	}
	if d.VoteAverage > 0 {
		fmt.Printf("Rating:  %.1f (%d votes)\n", d.VoteAverage, d.VoteCount)
	}
	if d.IMDBID != "" {
		fmt.Printf("IMDB:    https://www.imdb.com/title/%s\n", d.IMDBID)
	}
}

func printCredits(c *tmdb.Credits) {
	if c == nil || len(c.Cast) == 0 {
		return
	}

	fmt.Printf("\nCast:\n")
	limit := min(len(c.Cast), 10)
	for _, member := range c.Cast[:limit] {
		fmt.Printf("  • %s", member.Name)
		if member.Character != "" {
			fmt.Printf(" as %s", member.Character)
		}
		fmt.Println()
	}

	for _, member := range c.Crew {
		if member.Job == "Director" {
			fmt.Printf("Directed by %s\n", member.Name)
		}
	}
}

func printVideos(videos []tmdb.Video) {
	if len(videos) == 0 {
		return
	}

	fmt.Printf("\nVideos:\n")
	for _, v := range videos {
		fmt.Printf("  • %s [%s]", truncate(v.Name, 60), v.Type)
		if v.Site == "YouTube" && v.Key != "" {
			fmt.Printf(" https://www.youtube.com/watch?v=%s", v.Key)
		}
		fmt.Println()
	}
}
