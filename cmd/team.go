package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ethsmith/csc-manager/internal/report"
)

var teamCmd = &cobra.Command{
	Use:   "team [name|id]",
	Short: "Show a team's roster joined with stats",
	Long: `Show a team's roster with each member's stats for the selected mode, preferring
the entry played in the team's tier, plus the team aggregate and MMR budget.

Without an argument the last team shown is used again.`,
	RunE: runTeam,
}

func runTeam(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	db, err := a.storage()
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")
	if query == "" {
		if query, err = db.LastTeam(); err != nil {
			return err
		}
		if query == "" {
			return fmt.Errorf("no team given and no previous team remembered")
		}
	}

	if _, err := a.dash.Load(ctx); err != nil {
		return err
	}
	v, err := a.dash.Roster(ctx, query, cfg.DefaultMode())
	if err != nil {
		return err
	}
	if err := db.SetLastTeam(v.Team.Name); err != nil {
		a.logger.Warnw("Could not remember team", "team", v.Team.Name, "error", err)
	}
	report.PrintTeam(os.Stdout, v)
	return nil
}
