package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ethsmith/csc-manager/internal/report"
)

var franchisesCmd = &cobra.Command{
	Use:   "franchises",
	Short: "List active franchises and their teams",
	Args:  cobra.NoArgs,
	RunE:  runFranchises,
}

func runFranchises(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	franchises, err := a.dash.Franchises(ctx)
	if err != nil {
		return err
	}
	report.PrintFranchises(os.Stdout, franchises)
	return nil
}
