package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marqview/reelscout/filter"
)

var favoritesFilter string

// favoritesCmd represents the favorites command group
var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage the durable favorites list",
	Long: `List, add and remove favorites. The list survives restarts; every
mutation is written through to the state store immediately.`,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorites in the order they were added",
	RunE:  runFavoritesList,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <movie-id>",
	Short: "Add a movie to favorites by TMDB id",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <movie-id>",
	Short: "Remove a movie from favorites by TMDB id",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesRemove,
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)

	favoritesListCmd.Flags().StringVarP(&favoritesFilter, "filter", "f", "", "filter expression, e.g. 'Rating >= 7 && Year > 2015'")
}

func compileLocalFilter(expression string) (*filter.Filter, error) {
	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	favs := movies.Favorites()

	if favoritesFilter != "" {
		f, err := compileLocalFilter(favoritesFilter)
		if err != nil {
			return err
		}
		favs = f.Apply(favs)
	}

	if len(favs) == 0 {
		fmt.Println("No favorites yet. Add one with: reelscout favorites add <movie-id>")
		return nil
	}

	fmt.Printf("\n%d favorite(s):\n", len(favs))
	fmt.Println(strings.Repeat("-", 80))
	for _, m := range favs {
		fmt.Printf("• %s", m.Title)
		if y := m.Year(); y != "" {
			fmt.Printf(" (%s)", y)
		}
		if m.VoteAverage > 0 {
			fmt.Printf("  ★ %.1f", m.VoteAverage)
		}
		fmt.Printf("\n  ID: %d\n", m.ID)
	}
	return nil
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id: %s", args[0])
	}

	if movies.IsFavorite(id) {
		fmt.Printf("Movie %d is already a favorite.\n", id)
		return nil
	}

	details := movies.MovieDetails(context.Background(), id)
	if details == nil {
		return fmt.Errorf("could not look up movie %d", id)
	}

	movies.AddFavorite(details.Summary())
	fmt.Printf("Added %q to favorites.\n", details.Title)
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id: %s", args[0])
	}

	was := movies.IsFavorite(id)
	movies.RemoveFavorite(id)
	if was {
		fmt.Printf("Removed movie %d from favorites.\n", id)
	} else {
		fmt.Printf("Movie %d was not a favorite.\n", id)
	}
	return nil
}
