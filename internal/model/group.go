package model

// StatEntry pairs a record with the tier label it was reported under.
type StatEntry struct {
	Stats *StatRecord `json:"stats"`
	Tier  string      `json:"tier"`
}

// GroupedPlayer is every record of one identity, split by mode in feed order.
type GroupedPlayer struct {
	SteamID    string      `json:"steamId"`
	Name       string      `json:"name"`
	Regulation []StatEntry `json:"regulation"`
	Scrim      []StatEntry `json:"scrim"`
}

// Entries returns the entries for the given mode.
func (g *GroupedPlayer) Entries(mode Mode) []StatEntry {
	if mode == ModeScrim {
		return g.Scrim
	}
	return g.Regulation
}

// Tiers returns the distinct tiers the player has entries for, first seen first.
func (g *GroupedPlayer) Tiers(mode Mode) []string {
	var tiers []string
	seen := make(map[string]bool)
	for _, e := range g.Entries(mode) {
		if !seen[e.Tier] {
			seen[e.Tier] = true
			tiers = append(tiers, e.Tier)
		}
	}
	return tiers
}

// HasTier reports whether the player has an entry under tier in the given mode.
func (g *GroupedPlayer) HasTier(mode Mode, tier string) bool {
	for _, e := range g.Entries(mode) {
		if e.Tier == tier {
			return true
		}
	}
	return false
}
