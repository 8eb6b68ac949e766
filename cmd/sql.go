package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ethsmith/csc-manager/internal/report"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the local database",
	Long: `Run an arbitrary SQL query against the local SQLite database and print results as a table.

Schema overview:
  cache_entries(key, value BLOB, stored_at INTEGER)   roster graph payloads, stored_at in unix ms
  preferences(key, value)                             e.g. key 'last_team'

Example: SELECT key, length(value), datetime(stored_at/1000, 'unixepoch') FROM cache_entries`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	report.PrintQueryResult(os.Stdout, cols, rows)
	return nil
}
