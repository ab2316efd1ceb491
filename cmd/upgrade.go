package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const githubRepo = "marqview/reelscout"

var checkOnly bool

// upgradeCmd represents the upgrade command
var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade reelscout to the latest release",
	Long:  `Check GitHub releases for a newer version of reelscout and replace the running binary with it.`,
	// No config or clients needed
	PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return nil },
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:               runUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)

	upgradeCmd.Flags().BoolVar(&checkOnly, "check", false, "only check for a newer release")
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if version == "dev" {
		fmt.Println("Development build, skipping self-update.")
		return nil
	}

	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot parse current version %q: %w", version, err)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(githubRepo))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		fmt.Println("No release found for this platform.")
		return nil
	}

	latestVer, err := semver.ParseTolerant(latest.Version())
	if err != nil {
		return fmt.Errorf("cannot parse latest version %q: %w", latest.Version(), err)
	}

	if !latestVer.GT(current) {
		fmt.Printf("reelscout %s is up to date.\n", version)
		return nil
	}

	fmt.Printf("New version available: %s (current: %s)\n", latest.Version(), version)
	if checkOnly {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Printf("Successfully updated to %s\n", latest.Version())
	return nil
}
