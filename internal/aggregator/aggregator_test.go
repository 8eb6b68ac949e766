package aggregator

import (
	"testing"

	"github.com/ethsmith/csc-manager/internal/model"
)

// rec builds a record with only the fields these tests look at.
func rec(id, name, tier string, rating float64) model.StatRecord {
	return model.StatRecord{SteamID: id, Name: name, Tier: tier, FinalRating: rating}
}

// ---- Group ----

func TestGroup_Conservation(t *testing.T) {
	records := []model.StatRecord{
		rec("1", "A", "Contender", 1.0),
		rec("2", "B", "team_X", 0.9),
		rec("1", "A", "team_Y", 1.1),
		rec("3", "C", "Elite", 1.2),
		rec("1", "A", "Challenger", 0.8),
		rec("2", "B", "Elite", 1.3),
	}
	groups := Group(records)

	total := 0
	seen := make(map[*model.StatRecord]bool)
	for _, g := range groups {
		for _, e := range append(append([]model.StatEntry{}, g.Regulation...), g.Scrim...) {
			total++
			if seen[e.Stats] {
				t.Errorf("record %+v appears twice", *e.Stats)
			}
			seen[e.Stats] = true
			if e.Stats.SteamID != g.SteamID {
				t.Errorf("group %s holds record for %s", g.SteamID, e.Stats.SteamID)
			}
		}
	}
	if total != len(records) {
		t.Errorf("got %d entries, want %d", total, len(records))
	}
}

func TestGroup_FirstSeenOrder(t *testing.T) {
	groups := Group([]model.StatRecord{
		rec("3", "C", "Elite", 1),
		rec("1", "A", "Elite", 1),
		rec("3", "C", "team_Z", 1),
		rec("2", "B", "Elite", 1),
	})
	want := []string{"3", "1", "2"}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}
	for i, id := range want {
		if groups[i].SteamID != id {
			t.Errorf("groups[%d] = %s, want %s", i, groups[i].SteamID, id)
		}
	}
}

func TestGroup_LastRegulationNameWins(t *testing.T) {
	groups := Group([]model.StatRecord{
		rec("1", "A", "Contender", 1),
		rec("1", "ScrimAlias", "team_X", 1),
		rec("1", "B", "Elite", 1),
		rec("1", "LaterAlias", "team_Y", 1),
	})
	if groups[0].Name != "B" {
		t.Errorf("Name = %q, want B", groups[0].Name)
	}
}

func TestGroup_ScrimOnlyKeepsFirstName(t *testing.T) {
	groups := Group([]model.StatRecord{
		rec("1", "First", "team_X", 1),
		rec("1", "Second", "TEAM_Y", 1),
	})
	if groups[0].Name != "First" {
		t.Errorf("Name = %q, want First", groups[0].Name)
	}
	if len(groups[0].Regulation) != 0 || len(groups[0].Scrim) != 2 {
		t.Errorf("regulation=%d scrim=%d, want 0 and 2", len(groups[0].Regulation), len(groups[0].Scrim))
	}
}

func TestGroup_EndToEnd(t *testing.T) {
	records := []model.StatRecord{
		{SteamID: "76561198000000001", Name: "Alice", Tier: "Gold", Games: 10, FinalRating: 1.15},
		{SteamID: "76561198000000001", Name: "Alice", Tier: "team_scrimA", Games: 3, FinalRating: 0.90},
	}
	groups := Group(records)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	g := groups[0]
	if g.SteamID != "76561198000000001" || g.Name != "Alice" {
		t.Errorf("identity = %s/%s", g.SteamID, g.Name)
	}
	if len(g.Regulation) != 1 || g.Regulation[0].Tier != "Gold" {
		t.Errorf("regulation = %+v", g.Regulation)
	}
	if len(g.Scrim) != 1 || g.Scrim[0].Tier != "team_scrimA" {
		t.Errorf("scrim = %+v", g.Scrim)
	}
}

func TestGroup_Empty(t *testing.T) {
	if groups := Group(nil); groups == nil || len(groups) != 0 {
		t.Errorf("Group(nil) = %v, want empty slice", groups)
	}
}

// ---- metrics ----

func TestKDRatio(t *testing.T) {
	if got := KDRatio(5, 0); got != 5 {
		t.Errorf("KDRatio(5, 0) = %v, want 5", got)
	}
	if got := KDRatio(10, 4); got != 2.5 {
		t.Errorf("KDRatio(10, 4) = %v, want 2.5", got)
	}
	if got := FormatKD(2, 3); got != "0.67" {
		t.Errorf("FormatKD(2, 3) = %q, want 0.67", got)
	}
}

func TestPercentileRank(t *testing.T) {
	pop := []float64{40, 10, 30, 20}
	cases := []struct {
		value float64
		want  int
	}{
		{5, 0},
		{10, 0},
		{15, 25},
		{20, 25},
		{30, 50},
		{40, 75},
		{41, 100},
	}
	for _, c := range cases {
		if got := PercentileRank(c.value, pop); got != c.want {
			t.Errorf("PercentileRank(%v) = %d, want %d", c.value, got, c.want)
		}
	}
	if pop[0] != 40 {
		t.Error("population was reordered")
	}
}

func TestPercentileRank_Ties(t *testing.T) {
	// Ties rank at their first occurrence.
	pop := []float64{1, 2, 2, 2, 3, 4}
	if got := PercentileRank(2, pop); got != 17 {
		t.Errorf("PercentileRank(2) = %d, want 17", got)
	}
	if got := PercentileRank(1, []float64{1}); got != 0 {
		t.Errorf("single element = %d, want 0", got)
	}
	if got := PercentileRank(1, nil); got != 100 {
		t.Errorf("empty population = %d, want 100", got)
	}
}

func TestPercentileRank_Rounding(t *testing.T) {
	// 1/8 = 12.5 rounds half up.
	pop := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	if got := PercentileRank(2, pop); got != 13 {
		t.Errorf("PercentileRank(2) = %d, want 13", got)
	}
}

func TestBestEntry(t *testing.T) {
	a := rec("1", "A", "Contender", 1.1)
	b := rec("1", "A", "Elite", 1.3)
	c := rec("1", "A", "Challenger", 1.3)
	s := rec("1", "A", "team_X", 2.0)
	g := Group([]model.StatRecord{a, b, c, s})[0]

	best, ok := BestEntry(&g, model.ModeRegulation)
	if !ok || best.Tier != "Elite" {
		t.Errorf("best regulation = %q, want Elite (first of tie)", best.Tier)
	}
	best, ok = BestEntry(&g, model.ModeScrim)
	if !ok || best.Tier != "team_X" {
		t.Errorf("best scrim = %q, want team_X", best.Tier)
	}

	empty := Group([]model.StatRecord{s})[0]
	if _, ok := BestEntry(&empty, model.ModeRegulation); ok {
		t.Error("BestEntry on empty mode returned ok")
	}
}

func TestSideMetrics(t *testing.T) {
	s := &model.StatRecord{TRoundsPlayed: 10, TDamage: 850, TKills: 7, CTRoundsPlayed: 0, CTDamage: 300}
	if got := SideADR(s, model.SideT); got != 85 {
		t.Errorf("T ADR = %v, want 85", got)
	}
	if got := SideKPR(s, model.SideT); got != 0.7 {
		t.Errorf("T KPR = %v, want 0.7", got)
	}
	if got := SideADR(s, model.SideCT); got != 0 {
		t.Errorf("CT ADR = %v, want 0", got)
	}
}

func TestRadar(t *testing.T) {
	pop := []*model.StatRecord{
		{ADR: 60, KPR: 0.5},
		{ADR: 70, KPR: 0.6},
		{ADR: 80, KPR: 0.7},
		{ADR: 90, KPR: 0.8},
	}
	points := Radar(pop[2], pop)
	if len(points) != len(RadarKeys) {
		t.Fatalf("got %d points, want %d", len(points), len(RadarKeys))
	}
	if points[0].Key != "adr" || points[0].Percentile != 50 || points[0].Value != 80 {
		t.Errorf("adr point = %+v", points[0])
	}
	if points[1].Label != "KPR" || points[1].Percentile != 50 {
		t.Errorf("kpr point = %+v", points[1])
	}
}

func TestTeamAggregate(t *testing.T) {
	rows := []model.RosterRow{
		{Member: model.FranchisePlayer{MMR: 900}, Stats: &model.StatRecord{Games: 8, FinalRating: 1.2, ADR: 80, KAST: 0.70, Kills: 100, Deaths: 50}},
		{Member: model.FranchisePlayer{MMR: 800}, Stats: &model.StatRecord{Games: 10, FinalRating: 0.8, ADR: 60, KAST: 0.60, Kills: 50, Deaths: 100}},
		{Member: model.FranchisePlayer{MMR: 700}},
	}
	agg := TeamAggregate(rows, 4000)
	if agg.PlayerCount != 3 || agg.PlayersWithStats != 2 {
		t.Errorf("counts = %d/%d", agg.PlayerCount, agg.PlayersWithStats)
	}
	if agg.TotalMMR != 2400 || agg.MMRCap != 4000 {
		t.Errorf("mmr = %d/%d, want 2400/4000", agg.TotalMMR, agg.MMRCap)
	}
	if agg.AvgRating != 1.0 || agg.AvgADR != 70 {
		t.Errorf("avg rating/adr = %v/%v, want 1.0/70", agg.AvgRating, agg.AvgADR)
	}
	if agg.KDRatio != 1.0 {
		t.Errorf("KDRatio = %v, want 1.0 (summed, not mean of ratios)", agg.KDRatio)
	}
	if agg.TotalGames != 10 {
		t.Errorf("TotalGames = %v, want 10", agg.TotalGames)
	}
}

func TestTeamAggregate_NoStats(t *testing.T) {
	agg := TeamAggregate([]model.RosterRow{{Member: model.FranchisePlayer{MMR: 500}}}, 3000)
	if agg.AvgRating != 0 || agg.KDRatio != 0 || agg.TotalMMR != 500 {
		t.Errorf("agg = %+v", agg)
	}
}
