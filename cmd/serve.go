package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ethsmith/csc-manager/internal/dashboard"
	"github.com/ethsmith/csc-manager/internal/server"
)

var serveRefreshEvery time.Duration

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only JSON API",
	Long: `Load the stats feed and serve players, teams, replacements and free agents as
JSON under /api/v1. Until the first load succeeds the data endpoints answer
503; POST /api/v1/refresh retries it.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("listen", ":8080", "address to listen on")
	serveCmd.Flags().StringSlice("cors-origins", []string{"*"}, "allowed CORS origins")
	serveCmd.Flags().DurationVar(&serveRefreshEvery, "refresh-every", 0, "reload the stats feed on this interval (0 disables)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.dash.Refresh(ctx); err != nil {
		a.logger.Warnw("Initial stats load failed, serving 503 until a refresh succeeds", "error", err)
	}
	if serveRefreshEvery > 0 {
		go refreshLoop(ctx, a.dash, serveRefreshEvery)
	}

	srv := server.New(a.dash, server.Options{
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: 2 * cfg.HTTPTimeout,
	}, a.logger)
	return srv.ListenAndServe(ctx, cfg.Listen)
}

// refreshLoop reruns the fetch cycle until ctx is done. Failures keep the
// previous snapshot and are logged by Refresh.
func refreshLoop(ctx context.Context, d *dashboard.Dashboard, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = d.Refresh(ctx)
		}
	}
}
