package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ethsmith/csc-manager/internal/config"
	"github.com/ethsmith/csc-manager/internal/csc"
	"github.com/ethsmith/csc-manager/internal/feed"
	"github.com/ethsmith/csc-manager/internal/model"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cscmgr",
	Short: "CSC stats and roster manager",
	Long: `Browse CSC player statistics from the season stats sheet, join them against
franchise rosters and search the free-agent pool for replacements.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default .cscmgr.yaml in . or $HOME)")
	pf.String("db", config.DefaultDBPath(), "path to SQLite database")
	pf.String("feed-url", feed.DefaultExportURL, "CSV export URL of the stats sheet")
	pf.String("feed-file", "", "read the stats feed from a local CSV file (.gz and .zst accepted)")
	pf.String("sheets-credentials", "", "service account JSON for the Google Sheets API")
	pf.String("sheets-url", "", "stats sheet URL, read through the Google Sheets API")
	pf.String("sheets-range", "Stats!A:FD", "A1 range to read through the Google Sheets API")
	pf.String("csc-endpoint", csc.DefaultEndpoint, "franchise GraphQL endpoint")
	pf.String("cache-backend", csc.BackendSQLite, "roster cache backend: memory, sqlite, redis or none")
	pf.Duration("cache-ttl", csc.DefaultTTL, "roster cache lifetime")
	pf.String("redis-url", "redis://localhost:6379/0", "redis URL for the redis cache backend")
	pf.Duration("http-timeout", 30*time.Second, "timeout for upstream HTTP requests")
	pf.StringP("mode", "m", string(model.ModeRegulation), "stats mode: regulation or scrim")
	pf.BoolP("verbose", "v", false, "debug logging on stderr")

	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(franchisesCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(freeAgentsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
}

// loadConfig resolves flags, environment and the config file into cfg.
// Only flags set on the command line are bound; viper's own defaults cover
// the rest so env and the config file are not shadowed by flag defaults.
func loadConfig(cmd *cobra.Command, _ []string) error {
	v := config.NewViper(cfgFile)
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		_ = v.BindPFlag(f.Name, f)
	})
	c, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}
