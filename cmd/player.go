package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ethsmith/csc-manager/internal/report"
)

var playerCmd = &cobra.Command{
	Use:   "player <steamid|name>",
	Short: "Show one player's entries, percentiles and splits",
	Long: `Show every entry a player has in the selected mode, their best line, radar
percentiles against everyone in the mode, side splits, map ratings and kill
distribution.

The player may be given as a SteamID64, STEAM_0:X:Y, [U:1:Z] or by exact name
(case-insensitive).

--tier shows the entry played in that tier instead of the best one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlayer,
}

var playerTier string

func init() {
	playerCmd.Flags().StringVarP(&playerTier, "tier", "t", "", "show the entry in this tier instead of the best one")
}

func runPlayer(cmd *cobra.Command, args []string) error {
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
	v, err := snap.PlayerDetail(strings.Join(args, " "), cfg.DefaultMode(), playerTier)
	if err != nil {
		return err
	}
	report.PrintPlayerDetail(os.Stdout, v)
	return nil
}
