package dashboard

import (
	"fmt"
	"strings"

	"github.com/leighmacdonald/steamid/v4/steamid"

	"github.com/ethsmith/csc-manager/internal/aggregator"
	"github.com/ethsmith/csc-manager/internal/model"
)

// ParseSteamID normalises a Steam ID typed in any common form (SteamID64,
// STEAM_0:X:Y, [U:1:Z]) to its 64-bit decimal string. Input that is not a
// valid Steam ID is returned trimmed but otherwise unchanged.
func ParseSteamID(s string) string {
	s = strings.TrimSpace(s)
	sid := steamid.New(s)
	if !sid.Valid() {
		return s
	}
	return sid.String()
}

// Player finds a player by identity, then by case-insensitive display name.
func (s *Snapshot) Player(query string) (*model.GroupedPlayer, error) {
	q := strings.TrimSpace(query)
	if g, ok := s.byID[q]; ok {
		return g, nil
	}
	if g, ok := s.byID[ParseSteamID(q)]; ok {
		return g, nil
	}
	for i := range s.Groups {
		if strings.EqualFold(s.Groups[i].Name, q) {
			return &s.Groups[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, query)
}

// SideSplit is one side's rates for a record.
type SideSplit struct {
	Side   model.Side `json:"side"`
	Rating float64    `json:"rating"`
	ADR    float64    `json:"adr"`
	KPR    float64    `json:"kpr"`
	KAST   float64    `json:"kast"`
}

// PlayerView is everything shown on a player's page for one mode. Best is
// the top-rated entry; Selected is the entry the breakdown is computed from.
type PlayerView struct {
	Player           *model.GroupedPlayer    `json:"player"`
	Mode             model.Mode              `json:"mode"`
	Entries          []model.StatEntry       `json:"entries"`
	Best             *model.StatEntry        `json:"best"`
	Selected         *model.StatEntry        `json:"selected"`
	KD               float64                 `json:"kd"`
	Radar            []aggregator.RadarPoint `json:"radar"`
	Sides            []SideSplit             `json:"sides"`
	Maps             []model.MapRating       `json:"maps"`
	KillDistribution [5]float64              `json:"killDistribution"`
}

// PlayerDetail builds the view for one player. With tier empty the best
// entry is selected, otherwise the first entry played in tier. The radar
// ranks the selected entry against every record in the same mode. A player
// with no entries in mode gets a view with only Player and Mode set.
func (s *Snapshot) PlayerDetail(query string, mode model.Mode, tier string) (*PlayerView, error) {
	g, err := s.Player(query)
	if err != nil {
		return nil, err
	}
	tier = strings.TrimSpace(tier)
	v := &PlayerView{Player: g, Mode: mode, Entries: g.Entries(mode)}
	best, ok := aggregator.BestEntry(g, mode)
	if !ok {
		if tier != "" {
			return nil, fmt.Errorf("%w: %s has no %s entries", ErrEntryNotFound, g.Name, mode)
		}
		return v, nil
	}
	v.Best = &best
	v.Selected = &best
	if tier != "" {
		sel, ok := entryInTier(v.Entries, tier)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no %s entry in %q", ErrEntryNotFound, g.Name, mode, tier)
		}
		v.Selected = &sel
	}

	st := v.Selected.Stats
	v.KD = aggregator.KDRatio(st.Kills, st.Deaths)
	v.Radar = aggregator.Radar(st, aggregator.StatsForMode(s.Groups, mode))
	for _, side := range []model.Side{model.SideT, model.SideCT} {
		v.Sides = append(v.Sides, SideSplit{
			Side:   side,
			Rating: st.SideRating(side),
			ADR:    aggregator.SideADR(st, side),
			KPR:    aggregator.SideKPR(st, side),
			KAST:   st.SideKAST(side),
		})
	}
	v.Maps = st.MapRatings()
	v.KillDistribution = st.KillDistribution()
	return v, nil
}

func entryInTier(entries []model.StatEntry, tier string) (model.StatEntry, bool) {
	for _, e := range entries {
		if strings.EqualFold(e.Tier, tier) {
			return e, true
		}
	}
	return model.StatEntry{}, false
}
