package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ethsmith/csc-manager/internal/aggregator"
	"github.com/ethsmith/csc-manager/internal/report"
)

var (
	playersTier    string
	playersSearch  string
	playersFilters []string
	playersSort    string
	playersDir     string
	playersLimit   int
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List players with their best stat line for the mode",
	Long: `List every player that has stats in the selected mode, showing their best
entry by rating.

Filters take the form "key op value" and may be repeated:
  --filter "finalRating >= 1.1" --filter "tier equals Elite"

Numeric stats accept >, >=, <, <= and =. name, tier and steamId accept
contains and equals.`,
	Args: cobra.NoArgs,
	RunE: runPlayers,
}

func init() {
	playersCmd.Flags().StringVarP(&playersTier, "tier", "t", aggregator.AllTiers, "only players with an entry in this tier")
	playersCmd.Flags().StringVarP(&playersSearch, "search", "s", "", "case-insensitive search over name, tier and Steam ID")
	playersCmd.Flags().StringArrayVarP(&playersFilters, "filter", "f", nil, `stat filter "key op value" (repeatable)`)
	playersCmd.Flags().StringVar(&playersSort, "sort", "finalRating", "stat key, name, tier or steamId to sort by")
	playersCmd.Flags().StringVar(&playersDir, "dir", "desc", "sort direction: asc or desc")
	playersCmd.Flags().IntVarP(&playersLimit, "limit", "n", 0, "show at most n players (0 for all)")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	desc, err := sortDesc(playersDir)
	if err != nil {
		return err
	}
	opts := aggregator.ListOptions{
		Mode:    cfg.DefaultMode(),
		Tier:    playersTier,
		Search:  playersSearch,
		SortKey: playersSort,
		Desc:    desc,
	}
	for _, s := range playersFilters {
		f, err := aggregator.ParseFilter(s)
		if err != nil {
			return err
		}
		opts.Filters = append(opts.Filters, f)
	}

	ctx := cmd.Context()
	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	snap, err := a.dash.Load(ctx)
	if err != nil {
		return err
	}
	rows, err := aggregator.Listing(snap.Groups, opts)
	if err != nil {
		return err
	}
	total := len(rows)
	if playersLimit > 0 && len(rows) > playersLimit {
		rows = rows[:playersLimit]
	}
	if total == 0 {
		fmt.Fprintln(os.Stdout, "No players match.")
		return nil
	}
	report.PrintPlayerListing(os.Stdout, rows)
	if len(rows) < total {
		fmt.Fprintf(os.Stdout, "%d more not shown; raise --limit to see them\n", total-len(rows))
	}
	return nil
}

// sortDesc reads a --dir value.
func sortDesc(dir string) (bool, error) {
	switch dir {
	case "desc":
		return true, nil
	case "asc":
		return false, nil
	}
	return false, fmt.Errorf("invalid --dir %q: want asc or desc", dir)
}

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List the tiers players have entries in for the mode",
	Args:  cobra.NoArgs,
	RunE:  runTiers,
}

func runTiers(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	snap, err := a.dash.Load(ctx)
	if err != nil {
		return err
	}
	for _, t := range aggregator.TierOptions(snap.Groups, cfg.DefaultMode()) {
		fmt.Fprintln(os.Stdout, t)
	}
	return nil
}
