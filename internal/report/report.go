// Package report renders dashboard views as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ethsmith/csc-manager/internal/aggregator"
	"github.com/ethsmith/csc-manager/internal/dashboard"
	"github.com/ethsmith/csc-manager/internal/model"
	"github.com/ethsmith/csc-manager/internal/roster"
)

// Band is a rating colour band.
type Band string

const (
	BandGreen  Band = "green"
	BandBlue   Band = "blue"
	BandYellow Band = "yellow"
	BandRed    Band = "red"
)

// RatingBand buckets a final rating: >=1.2 green, >=1.0 blue, >=0.8 yellow,
// otherwise red.
func RatingBand(r float64) Band {
	switch {
	case r >= 1.2:
		return BandGreen
	case r >= 1.0:
		return BandBlue
	case r >= 0.8:
		return BandYellow
	default:
		return BandRed
	}
}

var bandColors = map[Band]*color.Color{
	BandGreen:  color.New(color.FgGreen, color.Bold),
	BandBlue:   color.New(color.FgBlue),
	BandYellow: color.New(color.FgYellow),
	BandRed:    color.New(color.FgRed),
}

// Rating formats r with two decimals in its band colour.
func Rating(r float64) string {
	return bandColors[RatingBand(r)].Sprintf("%.2f", r)
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func f0(v float64) string { return fmt.Sprintf("%.0f", v) }
func f1(v float64) string { return fmt.Sprintf("%.1f", v) }
func f2(v float64) string { return fmt.Sprintf("%.2f", v) }

// pct renders a 0..1 fraction as a percentage.
func pct(v float64) string { return fmt.Sprintf("%.1f%%", v*100) }

// PrintPlayerListing prints one row per player with their best entry.
func PrintPlayerListing(w io.Writer, rows []aggregator.ListingRow) {
	table := newTable(w)
	table.Header("#", "NAME", "TIER", "GP", "RATING", "K/D", "ADR", "KAST", "HS%", "STEAM ID")
	for i, r := range rows {
		s := r.Stats
		table.Append(
			strconv.Itoa(i+1),
			r.Group.Name,
			r.Tier,
			f0(s.Games),
			Rating(s.FinalRating),
			aggregator.FormatKD(s.Kills, s.Deaths),
			f1(s.ADR),
			pct(s.KAST),
			pct(s.HeadshotPct),
			r.Group.SteamID,
		)
	}
	table.Render()
	fmt.Fprintf(w, "\n(%d players)\n", len(rows))
}

// PrintPlayerDetail prints a player's entries, then the percentile radar,
// side split, map ratings and kill distribution of the selected entry.
func PrintPlayerDetail(w io.Writer, v *dashboard.PlayerView) {
	fmt.Fprintf(w, "\n%s  |  %s  |  %s\n\n", v.Player.Name, v.Player.SteamID, v.Mode)
	if v.Selected == nil {
		fmt.Fprintf(w, "No %s stats.\n", v.Mode)
		return
	}

	entries := newTable(w)
	entries.Header("TIER", "GP", "RATING", "HLTV", "K/D", "ADR", "KPR", "KAST", "HS%")
	for _, e := range v.Entries {
		s := e.Stats
		tier := e.Tier
		if e.Stats == v.Selected.Stats {
			tier = "* " + tier
		}
		entries.Append(
			tier,
			f0(s.Games),
			Rating(s.FinalRating),
			f2(s.HLTVRating),
			aggregator.FormatKD(s.Kills, s.Deaths),
			f1(s.ADR),
			f2(s.KPR),
			pct(s.KAST),
			pct(s.HeadshotPct),
		)
	}
	entries.Render()

	fmt.Fprintln(w, "\nPercentiles vs. all players in mode")
	radar := newTable(w)
	radar.Header("STAT", "VALUE", "PCTL")
	for _, p := range v.Radar {
		radar.Append(p.Label, f2(p.Value), strconv.Itoa(p.Percentile))
	}
	radar.Render()

	fmt.Fprintln(w)
	sides := newTable(w)
	sides.Header("SIDE", "RATING", "ADR", "KPR", "KAST")
	for _, s := range v.Sides {
		sides.Append(string(s.Side), Rating(s.Rating), f1(s.ADR), f2(s.KPR), pct(s.KAST))
	}
	sides.Render()

	if len(v.Maps) > 0 {
		fmt.Fprintln(w)
		maps := newTable(w)
		maps.Header("MAP", "GP", "RATING")
		for _, m := range v.Maps {
			maps.Append(m.Map, f0(m.Games), Rating(m.Rating))
		}
		maps.Render()
	}

	kd := v.KillDistribution
	fmt.Fprintf(w, "\nMulti-kills  1K %s  2K %s  3K %s  4K %s  5K %s\n",
		f0(kd[0]), f0(kd[1]), f0(kd[2]), f0(kd[3]), f0(kd[4]))
}

// PrintFranchises prints every team grouped under its franchise.
func PrintFranchises(w io.Writer, franchises []model.Franchise) {
	table := newTable(w)
	table.Header("FRANCHISE", "PREFIX", "GM", "TEAM", "TIER", "PLAYERS", "MMR", "CAP")
	for _, f := range franchises {
		gm := "—"
		if f.GM != nil {
			gm = f.GM.Name
		}
		for _, t := range f.Teams {
			table.Append(
				f.Name,
				f.Prefix,
				gm,
				t.Name,
				t.Tier.Name,
				strconv.Itoa(len(t.Players)),
				strconv.Itoa(t.RosterMMR()),
				strconv.Itoa(t.Tier.MMRCap),
			)
		}
	}
	table.Render()
}

// PrintTeam prints a merged roster and the team summary line.
func PrintTeam(w io.Writer, v *dashboard.TeamView) {
	fmt.Fprintf(w, "\n%s (%s)  |  %s  |  %s\n\n", v.Team.Name, v.Franchise.Prefix, v.Team.Tier.Name, v.Mode)

	table := newTable(w)
	table.Header(" ", "NAME", "MMR", "TIER", "GP", "RATING", "K/D", "ADR", "KAST", "STEAM ID")
	for _, r := range v.Rows {
		marker := " "
		if r.IsCaptain {
			marker = "C"
		}
		if r.Stats == nil {
			table.Append(marker, r.Member.Name, strconv.Itoa(r.Member.MMR), "—", "—", "—", "—", "—", "—", r.Member.Steam64ID)
			continue
		}
		s := r.Stats
		table.Append(
			marker,
			r.Member.Name,
			strconv.Itoa(r.Member.MMR),
			s.Tier,
			f0(s.Games),
			Rating(s.FinalRating),
			aggregator.FormatKD(s.Kills, s.Deaths),
			f1(s.ADR),
			pct(s.KAST),
			r.Member.Steam64ID,
		)
	}
	table.Render()

	a := v.Aggregate
	fmt.Fprintf(w, "\nAvg rating %s  |  ADR %s  |  KAST %s  |  K/D %s  |  GP %s  |  MMR %d / %d (%d with stats of %d)\n",
		Rating(a.AvgRating), f1(a.AvgADR), pct(a.AvgKAST), f2(a.KDRatio), f0(a.TotalGames),
		a.TotalMMR, a.MMRCap, a.PlayersWithStats, a.PlayerCount)
}

// PrintReplacements prints the candidates for replacing one member.
func PrintReplacements(w io.Writer, v *dashboard.ReplacementView) {
	fmt.Fprintf(w, "\nReplacing %s (%d MMR) on %s  |  max MMR %d\n\n",
		v.Outgoing.Member.Name, v.Outgoing.Member.MMR, v.Team.Name, v.Budget)
	if len(v.Candidates) == 0 {
		fmt.Fprintln(w, "No eligible players.")
		return
	}
	table := newTable(w)
	table.Header("#", "NAME", "STATUS", "MMR", "GP", "RATING", "ADR", "STEAM ID")
	for i, c := range v.Candidates {
		gp, rating, adr := "—", "—", "—"
		if c.Stats != nil {
			gp, rating, adr = f0(c.Stats.Games), Rating(c.Stats.FinalRating), f1(c.Stats.ADR)
		}
		table.Append(
			strconv.Itoa(i+1),
			c.Player.Name,
			c.Player.Type.Label(),
			strconv.Itoa(c.Player.MMR),
			gp,
			rating,
			adr,
			c.Player.Steam64ID,
		)
	}
	table.Render()
}

// PrintFreeAgents prints the per-status counts followed by every free agent.
func PrintFreeAgents(w io.Writer, players []model.CscPlayer, counts []roster.FreeAgentCount, total int) {
	for _, c := range counts {
		fmt.Fprintf(w, "%s %d  ", c.Type.Label(), c.Count)
	}
	fmt.Fprintf(w, "|  total %d\n\n", total)

	table := newTable(w)
	table.Header("NAME", "STATUS", "TIER", "MMR", "STEAM ID")
	for _, p := range players {
		tier := p.TierName()
		if tier == "" {
			tier = "—"
		}
		table.Append(p.Name, p.Type.Label(), tier, strconv.Itoa(p.MMR), p.Steam64ID)
	}
	table.Render()
}

// PrintQueryResult prints raw SQL output.
func PrintQueryResult(w io.Writer, cols []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}
	table := newTable(w)
	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)
	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
	fmt.Fprintf(w, "\n(%d rows)\n", len(rows))
}
