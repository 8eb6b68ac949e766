package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ethsmith/csc-manager/internal/aggregator"
	"github.com/ethsmith/csc-manager/internal/dashboard"
	"github.com/ethsmith/csc-manager/internal/model"
	"github.com/ethsmith/csc-manager/internal/report"
	"github.com/ethsmith/csc-manager/internal/roster"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Load the stats feed once and explore players and teams without refetching. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

// shellState is the listing and team selection carried between commands.
type shellState struct {
	app     *app
	mode    model.Mode
	tier    string
	filters []aggregator.StatFilter
	sortKey string
	desc    bool
	team    string
}

func runShell(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	st := &shellState{
		app:     a,
		mode:    cfg.DefaultMode(),
		tier:    aggregator.AllTiers,
		sortKey: "finalRating",
		desc:    true,
	}
	if db, err := a.storage(); err == nil {
		st.team, _ = db.LastTeam()
	}

	cGreeting.Println("cscmgr shell")
	if snap, err := a.dash.Load(ctx); err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		cMuted.Println("type 'refresh' to retry")
	} else {
		cMuted.Printf("%d players loaded, %d rows skipped\n", len(snap.Groups), snap.Rejected)
	}
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("cscmgr")
		cMuted.Printf(" [%s]> ", st.mode)
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		name, args := tokens[0], tokens[1:]
		rest := strings.Join(args, " ")

		switch name {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "mode":
			m, err := model.ParseMode(rest)
			if err != nil {
				cError.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			st.mode = m
			st.tier = aggregator.AllTiers
		case "tiers":
			st.tiers(ctx)
		case "tier":
			if rest == "" {
				rest = aggregator.AllTiers
			}
			st.tier = rest
		case "filter":
			st.filter(rest)
		case "sort":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: sort <key> [asc|desc]")
				continue
			}
			st.sortKey = args[0]
			st.desc = len(args) < 2 || args[1] != "asc"
		case "players", "ls":
			st.players(ctx, rest)
		case "player":
			if rest == "" {
				cError.Fprintln(os.Stderr, "usage: player <steamid|name> [tier]")
				continue
			}
			st.player(ctx, args)
		case "franchises":
			st.franchises(ctx)
		case "team":
			st.showTeam(ctx, rest)
		case "replace":
			if rest == "" {
				cError.Fprintln(os.Stderr, "usage: replace <steamid>")
				continue
			}
			st.replace(ctx, rest)
		case "free-agents", "fa":
			st.freeAgents(ctx)
		case "refresh":
			st.refresh(ctx)
		case "clear-cache":
			if err := a.dash.InvalidateCache(ctx); err != nil {
				cError.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			cMuted.Println("roster cache cleared")
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", name)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"players [search]", "list players with the current tier, filters and sort"},
		{"player <steamid|name> [tier]", "show one player's detail, for a tier's entry if given"},
		{"mode regulation|scrim", "switch stats mode"},
		{"tiers", "list tiers for the current mode"},
		{"tier <name|all>", "restrict the listing to a tier"},
		{"filter <key> <op> <value>", "add a stat filter"},
		{"filter clear", "remove all filters"},
		{"sort <key> [asc|desc]", "sort the listing"},
		{"franchises", "list franchises and teams"},
		{"team [name|id]", "show a team roster (remembered)"},
		{"replace <steamid>", "replacement candidates on the current team"},
		{"free-agents", "list free agents"},
		{"refresh", "reload the stats feed"},
		{"clear-cache", "drop cached roster data"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-30s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

func (st *shellState) snapshot(ctx context.Context) (*dashboard.Snapshot, bool) {
	snap, err := st.app.dash.Load(ctx)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return nil, false
	}
	return snap, true
}

func (st *shellState) filter(rest string) {
	switch rest {
	case "":
		if len(st.filters) == 0 {
			cMuted.Println("no filters")
		}
		for _, f := range st.filters {
			fmt.Printf("  %s %s %s\n", f.Key, f.Op, f.Value)
		}
	case "clear":
		st.filters = nil
	default:
		f, err := aggregator.ParseFilter(rest)
		if err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		st.filters = append(st.filters, f)
	}
}

func (st *shellState) players(ctx context.Context, search string) {
	snap, ok := st.snapshot(ctx)
	if !ok {
		return
	}
	rows, err := aggregator.Listing(snap.Groups, aggregator.ListOptions{
		Mode:    st.mode,
		Tier:    st.tier,
		Search:  search,
		Filters: st.filters,
		SortKey: st.sortKey,
		Desc:    st.desc,
	})
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(rows) == 0 {
		cMuted.Println("No players match.")
		return
	}
	report.PrintPlayerListing(os.Stdout, rows)
}

func (st *shellState) tiers(ctx context.Context) {
	snap, ok := st.snapshot(ctx)
	if !ok {
		return
	}
	for _, t := range aggregator.TierOptions(snap.Groups, st.mode) {
		if t == st.tier {
			cCmd.Printf("* %s\n", t)
			continue
		}
		fmt.Printf("  %s\n", t)
	}
}

func (st *shellState) player(ctx context.Context, args []string) {
	snap, ok := st.snapshot(ctx)
	if !ok {
		return
	}
	query, tier := splitTier(args, aggregator.TierOptions(snap.Groups, st.mode))
	v, err := snap.PlayerDetail(query, st.mode, tier)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	report.PrintPlayerDetail(os.Stdout, v)
}

// splitTier takes a trailing argument naming one of tiers as the tier and
// joins the rest into the player query.
func splitTier(args []string, tiers []string) (query, tier string) {
	if n := len(args); n > 1 {
		last := args[n-1]
		for _, t := range tiers {
			if t != aggregator.AllTiers && strings.EqualFold(t, last) {
				return strings.Join(args[:n-1], " "), t
			}
		}
	}
	return strings.Join(args, " "), ""
}

func (st *shellState) franchises(ctx context.Context) {
	franchises, err := st.app.dash.Franchises(ctx)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	report.PrintFranchises(os.Stdout, franchises)
}

func (st *shellState) showTeam(ctx context.Context, query string) {
	if query == "" {
		query = st.team
	}
	if query == "" {
		cError.Fprintln(os.Stderr, "usage: team <name|id>")
		return
	}
	v, err := st.app.dash.Roster(ctx, query, st.mode)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	st.team = v.Team.Name
	if db, err := st.app.storage(); err == nil {
		if err := db.SetLastTeam(st.team); err != nil {
			st.app.logger.Warnw("Could not remember team", "team", st.team, "error", err)
		}
	}
	report.PrintTeam(os.Stdout, v)
}

func (st *shellState) replace(ctx context.Context, steamID string) {
	if st.team == "" {
		cError.Fprintln(os.Stderr, "select a team first with 'team <name>'")
		return
	}
	v, err := st.app.dash.Replacements(ctx, st.team, steamID, st.mode)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	report.PrintReplacements(os.Stdout, v)
}

func (st *shellState) freeAgents(ctx context.Context) {
	players, err := st.app.dash.Players(ctx)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	counts, total := roster.FreeAgentCounts(players)
	report.PrintFreeAgents(os.Stdout, roster.FreeAgents(players), counts, total)
}

func (st *shellState) refresh(ctx context.Context) {
	snap, err := st.app.dash.Refresh(ctx)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	cMuted.Printf("%d players loaded, %d rows skipped\n", len(snap.Groups), snap.Rejected)
}
