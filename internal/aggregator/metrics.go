package aggregator

import (
	"fmt"
	"math"
	"sort"

	"github.com/ethsmith/csc-manager/internal/feed"
	"github.com/ethsmith/csc-manager/internal/model"
)

// KDRatio returns kills/deaths, or kills when there are no deaths.
func KDRatio(kills, deaths float64) float64 {
	if deaths == 0 {
		return kills
	}
	return kills / deaths
}

// FormatKD renders a K/D ratio with two decimals.
func FormatKD(kills, deaths float64) string {
	return fmt.Sprintf("%.2f", KDRatio(kills, deaths))
}

// SafeDiv returns a/b, or 0 when b is 0.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// PercentileRank places value within population: the index of the first
// element >= value in the ascending population, as a rounded percentage of
// the population size. A value above every element, or an empty population,
// ranks 100. The population is not modified.
//
// The minimum of a population therefore ranks 0, and a value tied with
// several elements ranks at the first of them.
func PercentileRank(value float64, population []float64) int {
	sorted := make([]float64, len(population))
	copy(sorted, population)
	sort.Float64s(sorted)

	idx := sort.SearchFloat64s(sorted, value)
	if idx == len(sorted) {
		return 100
	}
	return int(math.Floor(float64(idx)/float64(len(sorted))*100 + 0.5))
}

// BestEntry returns the entry with the highest final rating for mode. Ties
// keep the earliest entry. ok is false when the player has no entries.
func BestEntry(g *model.GroupedPlayer, mode model.Mode) (best model.StatEntry, ok bool) {
	entries := g.Entries(mode)
	if len(entries) == 0 {
		return model.StatEntry{}, false
	}
	best = entries[0]
	for _, e := range entries[1:] {
		if e.Stats.FinalRating > best.Stats.FinalRating {
			best = e
		}
	}
	return best, true
}

// SideADR is damage per round on one side, 0 when no rounds were played.
func SideADR(s *model.StatRecord, side model.Side) float64 { return s.SideADR(side) }

// SideKPR is kills per round on one side, 0 when no rounds were played.
func SideKPR(s *model.StatRecord, side model.Side) float64 { return s.SideKPR(side) }

// StatsForMode returns every record of the given mode across all groups, the
// population percentiles are ranked against.
func StatsForMode(groups []model.GroupedPlayer, mode model.Mode) []*model.StatRecord {
	var out []*model.StatRecord
	for i := range groups {
		for _, e := range groups[i].Entries(mode) {
			out = append(out, e.Stats)
		}
	}
	return out
}

// RadarKeys are the stats plotted on a player's percentile radar.
var RadarKeys = []string{
	"adr",
	"kpr",
	"kast",
	"headshotPct",
	"survival",
	"openingKillsPerRound",
	"tradeKillsPerRound",
	"utilityDamagePerRound",
}

var radarLabels = map[string]string{
	"adr":                   "ADR",
	"kpr":                   "KPR",
	"kast":                  "KAST",
	"headshotPct":           "HS%",
	"survival":              "Survival",
	"openingKillsPerRound":  "Entry",
	"tradeKillsPerRound":    "Trade",
	"utilityDamagePerRound": "Util DMG",
}

// RadarPoint is one axis of the percentile radar.
type RadarPoint struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Percentile int     `json:"percentile"`
}

// Radar ranks s against population on each RadarKeys stat.
func Radar(s *model.StatRecord, population []*model.StatRecord) []RadarPoint {
	points := make([]RadarPoint, 0, len(RadarKeys))
	values := make([]float64, len(population))
	for _, key := range RadarKeys {
		c, ok := feed.Lookup(key)
		if !ok {
			continue
		}
		for i, p := range population {
			values[i] = c.Value(p)
		}
		v := c.Value(s)
		points = append(points, RadarPoint{
			Key:        key,
			Label:      radarLabels[key],
			Value:      v,
			Percentile: PercentileRank(v, values),
		})
	}
	return points
}

// TeamAggregate summarises a merged roster. Rating, ADR and KAST are means
// over members with stats; K/D uses summed kills over summed deaths; MMR sums
// every member whether or not they have stats.
func TeamAggregate(rows []model.RosterRow, mmrCap int) model.TeamAggregate {
	agg := model.TeamAggregate{PlayerCount: len(rows), MMRCap: mmrCap}
	var rating, adr, kast float64
	for _, r := range rows {
		agg.TotalMMR += r.Member.MMR
		if r.Stats == nil {
			continue
		}
		agg.PlayersWithStats++
		rating += r.Stats.FinalRating
		adr += r.Stats.ADR
		kast += r.Stats.KAST
		agg.TotalKills += r.Stats.Kills
		agg.TotalDeaths += r.Stats.Deaths
		agg.TotalGames = math.Max(agg.TotalGames, r.Stats.Games)
	}
	n := float64(agg.PlayersWithStats)
	agg.AvgRating = SafeDiv(rating, n)
	agg.AvgADR = SafeDiv(adr, n)
	agg.AvgKAST = SafeDiv(kast, n)
	agg.KDRatio = KDRatio(agg.TotalKills, agg.TotalDeaths)
	return agg
}
