package aggregator

import (
	"testing"

	"github.com/ethsmith/csc-manager/internal/model"
)

func listingFixture() []model.GroupedPlayer {
	records := []model.StatRecord{
		{SteamID: "1", Name: "Alice", Tier: "Contender", FinalRating: 1.10, ADR: 80},
		{SteamID: "2", Name: "Bob", Tier: "Elite", FinalRating: 0.95, ADR: 70},
		{SteamID: "3", Name: "Carol", Tier: "Contender", FinalRating: 1.30, ADR: 90},
		{SteamID: "1", Name: "Alice", Tier: "Elite", FinalRating: 1.20, ADR: 85},
		{SteamID: "4", Name: "Dan", Tier: "team_Dragons", FinalRating: 1.50, ADR: 100},
	}
	return Group(records)
}

func names(rows []ListingRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Group.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListing_BestEntryPerPlayer(t *testing.T) {
	rows, err := Listing(listingFixture(), ListOptions{Mode: model.ModeRegulation})
	if err != nil {
		t.Fatal(err)
	}
	if got := names(rows); !equal(got, []string{"Alice", "Bob", "Carol"}) {
		t.Fatalf("names = %v", got)
	}
	if rows[0].Tier != "Elite" || rows[0].Stats.FinalRating != 1.20 {
		t.Errorf("Alice best = %s/%v, want Elite/1.20", rows[0].Tier, rows[0].Stats.FinalRating)
	}
}

func TestListing_TierFilter(t *testing.T) {
	rows, err := Listing(listingFixture(), ListOptions{Mode: model.ModeRegulation, Tier: "Contender"})
	if err != nil {
		t.Fatal(err)
	}
	if got := names(rows); !equal(got, []string{"Alice", "Carol"}) {
		t.Errorf("names = %v", got)
	}
}

func TestListing_Search(t *testing.T) {
	rows, _ := Listing(listingFixture(), ListOptions{Mode: model.ModeRegulation, Search: "ELITE"})
	if got := names(rows); !equal(got, []string{"Alice", "Bob"}) {
		t.Errorf("tier search = %v", got)
	}
	rows, _ = Listing(listingFixture(), ListOptions{Mode: model.ModeRegulation, Search: "3"})
	if got := names(rows); !equal(got, []string{"Carol"}) {
		t.Errorf("id search = %v", got)
	}
}

func TestListing_Filters(t *testing.T) {
	groups := listingFixture()
	cases := []struct {
		filter StatFilter
		want   []string
	}{
		{StatFilter{"finalRating", ">=", "1.2"}, []string{"Alice", "Carol"}},
		{StatFilter{"adr", "<", "85"}, []string{"Bob"}},
		{StatFilter{"adr", "=", "90"}, []string{"Carol"}},
		{StatFilter{"name", "contains", "o"}, []string{"Bob", "Carol"}},
		{StatFilter{"name", "equals", "alice"}, []string{"Alice"}},
		{StatFilter{"finalRating", ">", ""}, []string{"Alice", "Bob", "Carol"}},
		{StatFilter{"finalRating", ">", "abc"}, []string{"Alice", "Bob", "Carol"}},
		{StatFilter{"finalRating", ">", "1.1x"}, []string{"Alice", "Carol"}},
		{StatFilter{"adr", ">=", " 85% "}, []string{"Alice", "Carol"}},
	}
	for _, c := range cases {
		rows, err := Listing(groups, ListOptions{Mode: model.ModeRegulation, Filters: []StatFilter{c.filter}})
		if err != nil {
			t.Fatalf("%+v: %v", c.filter, err)
		}
		if got := names(rows); !equal(got, c.want) {
			t.Errorf("%+v: got %v, want %v", c.filter, got, c.want)
		}
	}
}

func TestListing_NameFilterUsesShownRecord(t *testing.T) {
	// The group takes its name from the last regulation record, the row
	// shows the best one.
	groups := Group([]model.StatRecord{
		{SteamID: "5", Name: "Eve", Tier: "Elite", FinalRating: 1.40},
		{SteamID: "5", Name: "Evie", Tier: "Contender", FinalRating: 1.00},
	})
	for _, c := range []struct {
		value string
		want  int
	}{
		{"eve", 1},
		{"evie", 0},
	} {
		rows, err := Listing(groups, ListOptions{
			Mode:    model.ModeRegulation,
			Filters: []StatFilter{{"name", "equals", c.value}},
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != c.want {
			t.Errorf("name equals %q: got %d rows, want %d", c.value, len(rows), c.want)
		}
	}
}

func TestListing_InvalidFilter(t *testing.T) {
	for _, f := range []StatFilter{
		{"bogus", ">", "1"},
		{"name", ">", "a"},
		{"adr", "contains", "1"},
	} {
		if _, err := Listing(listingFixture(), ListOptions{Filters: []StatFilter{f}}); err == nil {
			t.Errorf("%+v: expected error", f)
		}
	}
}

func TestListing_Sort(t *testing.T) {
	groups := listingFixture()
	rows, _ := Listing(groups, ListOptions{Mode: model.ModeRegulation, SortKey: "finalRating", Desc: true})
	if got := names(rows); !equal(got, []string{"Carol", "Alice", "Bob"}) {
		t.Errorf("rating desc = %v", got)
	}
	rows, _ = Listing(groups, ListOptions{Mode: model.ModeRegulation, SortKey: "name"})
	if got := names(rows); !equal(got, []string{"Alice", "Bob", "Carol"}) {
		t.Errorf("name asc = %v", got)
	}
	if _, err := Listing(groups, ListOptions{SortKey: "nope"}); err == nil {
		t.Error("expected error for unknown sort key")
	}
}

func TestListing_ScrimMode(t *testing.T) {
	rows, _ := Listing(listingFixture(), ListOptions{Mode: model.ModeScrim})
	if got := names(rows); !equal(got, []string{"Dan"}) {
		t.Errorf("scrim = %v", got)
	}
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("name contains van der")
	if err != nil {
		t.Fatal(err)
	}
	if f.Key != "name" || f.Op != "contains" || f.Value != "van der" {
		t.Errorf("f = %+v", f)
	}
	if _, err := ParseFilter("adr"); err == nil {
		t.Error("expected error for missing operator")
	}
}

func TestTierOptions(t *testing.T) {
	got := TierOptions(listingFixture(), model.ModeRegulation)
	if !equal(got, []string{"all", "Contender", "Elite"}) {
		t.Errorf("TierOptions = %v", got)
	}
}
