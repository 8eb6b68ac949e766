// Package aggregator folds parsed feed records into per-player groups and
// computes the comparative metrics shown alongside them.
package aggregator

import "github.com/ethsmith/csc-manager/internal/model"

// Group folds records into one GroupedPlayer per identity in a single pass.
// Groups come out in first-seen order and each mode list keeps feed order.
// A regulation record overwrites the group's display name; scrim records never
// do, so a scrim-only player keeps the name that created the group.
//
// Entries point into records, which must not be modified afterwards.
func Group(records []model.StatRecord) []model.GroupedPlayer {
	groups := make([]model.GroupedPlayer, 0)
	index := make(map[string]int)

	for i := range records {
		rec := &records[i]
		gi, ok := index[rec.SteamID]
		if !ok {
			gi = len(groups)
			index[rec.SteamID] = gi
			groups = append(groups, model.GroupedPlayer{
				SteamID:    rec.SteamID,
				Name:       rec.Name,
				Regulation: []model.StatEntry{},
				Scrim:      []model.StatEntry{},
			})
		}
		g := &groups[gi]
		entry := model.StatEntry{Stats: rec, Tier: rec.Tier}
		if model.ClassifyMode(rec.Tier) == model.ModeScrim {
			g.Scrim = append(g.Scrim, entry)
			continue
		}
		g.Regulation = append(g.Regulation, entry)
		g.Name = rec.Name
	}
	return groups
}

// Index maps identity to group position for repeated lookups.
func Index(groups []model.GroupedPlayer) map[string]*model.GroupedPlayer {
	m := make(map[string]*model.GroupedPlayer, len(groups))
	for i := range groups {
		m[groups[i].SteamID] = &groups[i]
	}
	return m
}
