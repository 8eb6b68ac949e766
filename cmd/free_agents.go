package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ethsmith/csc-manager/internal/report"
	"github.com/ethsmith/csc-manager/internal/roster"
)

var freeAgentsCmd = &cobra.Command{
	Use:   "free-agents",
	Short: "List free agents and counts per status",
	Args:  cobra.NoArgs,
	RunE:  runFreeAgents,
}

func runFreeAgents(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	players, err := a.dash.Players(ctx)
	if err != nil {
		return err
	}
	counts, total := roster.FreeAgentCounts(players)
	report.PrintFreeAgents(os.Stdout, roster.FreeAgents(players), counts, total)
	return nil
}
