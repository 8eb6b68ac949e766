package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the roster cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop cached franchise and player data",
	Long:  "Drop every cached roster graph payload in the configured cache backend so the next command fetches fresh data.",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.dash.InvalidateCache(ctx); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Cleared %s cache.\n", cfg.CacheBackend)
	return nil
}
