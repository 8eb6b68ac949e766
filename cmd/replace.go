package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ethsmith/csc-manager/internal/report"
)

var replaceCmd = &cobra.Command{
	Use:   "replace <team> <steamid>",
	Short: "Find free agents who could replace a rostered player",
	Long: `List free agents whose MMR fits in the team's remaining cap once the given
member leaves, best rated first. Use quotes for team names with spaces.`,
	Args: cobra.ExactArgs(2),
	RunE: runReplace,
}

func runReplace(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.dash.Load(ctx); err != nil {
		return err
	}
	v, err := a.dash.Replacements(ctx, args[0], args[1], cfg.DefaultMode())
	if err != nil {
		return err
	}
	report.PrintReplacements(os.Stdout, v)
	return nil
}
