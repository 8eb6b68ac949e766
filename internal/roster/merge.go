// Package roster joins franchise rosters against grouped feed stats and
// searches the free-agent pool for replacements.
package roster

import (
	"sort"

	"github.com/ethsmith/csc-manager/internal/aggregator"
	"github.com/ethsmith/csc-manager/internal/model"
)

// SelectEntry picks the record that represents a player on a team of the
// given tier: the first entry in mode reported under that tier, else the
// first entry in mode. It returns nil when the player has no entries in mode.
func SelectEntry(g *model.GroupedPlayer, mode model.Mode, tier string) *model.StatRecord {
	if g == nil {
		return nil
	}
	entries := g.Entries(mode)
	for _, e := range entries {
		if e.Tier == tier {
			return e.Stats
		}
	}
	if len(entries) > 0 {
		return entries[0].Stats
	}
	return nil
}

// MergeRoster resolves one row per rostered member. Members missing from the
// feed get a nil Stats. Rows are ordered captain first, then members with
// stats by final rating descending, then members without stats; equal rows
// keep roster order.
func MergeRoster(team *model.FranchiseTeam, groups []model.GroupedPlayer, players []model.CscPlayer, mode model.Mode) []model.RosterRow {
	byID := aggregator.Index(groups)
	playersByID := indexPlayers(players)
	captain := team.CaptainID()

	rows := make([]model.RosterRow, 0, len(team.Players))
	for _, m := range team.Players {
		g := byID[m.Steam64ID]
		rows = append(rows, model.RosterRow{
			Member:    m,
			Player:    playersByID[m.Steam64ID],
			Group:     g,
			Stats:     SelectEntry(g, mode, team.Tier.Name),
			IsCaptain: captain != "" && captain == m.Steam64ID,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.IsCaptain != b.IsCaptain {
			return a.IsCaptain
		}
		if a.HasStats() != b.HasStats() {
			return a.HasStats()
		}
		if a.HasStats() {
			return a.Stats.FinalRating > b.Stats.FinalRating
		}
		return false
	})
	return rows
}

// FindMember returns the roster row for steamID.
func FindMember(rows []model.RosterRow, steamID string) (model.RosterRow, bool) {
	for _, r := range rows {
		if r.Member.Steam64ID == steamID {
			return r, true
		}
	}
	return model.RosterRow{}, false
}

func indexPlayers(players []model.CscPlayer) map[string]*model.CscPlayer {
	m := make(map[string]*model.CscPlayer, len(players))
	for i := range players {
		m[players[i].Steam64ID] = &players[i]
	}
	return m
}
