package aggregator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethsmith/csc-manager/internal/feed"
	"github.com/ethsmith/csc-manager/internal/model"
)

// AllTiers is the tier option that disables tier filtering.
const AllTiers = "all"

// ListingRow is one player in a listing, shown with their best entry.
type ListingRow struct {
	Group *model.GroupedPlayer `json:"-"`
	model.StatEntry
}

// StatFilter restricts a listing on one stat. Numeric stats take the
// operators >, >=, <, <= and =; the text keys name, tier and steamId take
// contains and equals.
type StatFilter struct {
	Key   string `json:"key"`
	Op    string `json:"op"`
	Value string `json:"value"`
}

// ListOptions controls Listing.
type ListOptions struct {
	Mode    model.Mode
	Tier    string // "" or AllTiers for every tier
	Search  string
	Filters []StatFilter
	SortKey string // stat key, "name", "tier" or "steamId"; "" keeps group order
	Desc    bool
}

var textKeys = map[string]func(r ListingRow) string{
	"name":    func(r ListingRow) string { return r.Stats.Name },
	"tier":    func(r ListingRow) string { return r.Tier },
	"steamId": func(r ListingRow) string { return r.Group.SteamID },
}

// ParseFilter parses "key op value", e.g. "finalRating >= 1.1" or
// "name contains ali". The value may contain spaces.
func ParseFilter(s string) (StatFilter, error) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return StatFilter{}, fmt.Errorf("invalid filter %q: want \"key op value\"", s)
	}
	f := StatFilter{Key: parts[0], Op: parts[1], Value: strings.Join(parts[2:], " ")}
	if err := f.validate(); err != nil {
		return StatFilter{}, err
	}
	return f, nil
}

func (f StatFilter) validate() error {
	if _, ok := textKeys[f.Key]; ok {
		switch f.Op {
		case "contains", "equals":
			return nil
		}
		return fmt.Errorf("filter %s: operator %q not valid for text", f.Key, f.Op)
	}
	if _, ok := feed.Lookup(f.Key); !ok {
		return fmt.Errorf("filter: unknown stat %q", f.Key)
	}
	switch f.Op {
	case ">", ">=", "<", "<=", "=":
		return nil
	}
	return fmt.Errorf("filter %s: operator %q not valid for numbers", f.Key, f.Op)
}

// match reports whether r passes f. Numeric targets read their leading
// number the way feed cells do ("1.1x" is 1.1). A blank value, or a target
// with no leading number, passes everything.
func (f StatFilter) match(r ListingRow) bool {
	if strings.TrimSpace(f.Value) == "" {
		return true
	}
	if text, ok := textKeys[f.Key]; ok {
		got := strings.ToLower(text(r))
		want := strings.ToLower(strings.TrimSpace(f.Value))
		if f.Op == "equals" {
			return got == want
		}
		return strings.Contains(got, want)
	}
	c, ok := feed.Lookup(f.Key)
	if !ok {
		return true
	}
	target, ok := feed.ParseNumber(f.Value)
	if !ok {
		return true
	}
	v := c.Value(r.Stats)
	switch f.Op {
	case ">":
		return v > target
	case ">=":
		return v >= target
	case "<":
		return v < target
	case "<=":
		return v <= target
	case "=":
		return v == target
	}
	return true
}

func (r ListingRow) matchesSearch(q string) bool {
	for _, s := range []string{r.Group.Name, r.Stats.Name, r.Tier, r.Group.SteamID} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// Listing returns each player's best entry for opts.Mode after applying the
// tier, search and stat filters, optionally sorted. Players without entries in
// the mode are omitted.
func Listing(groups []model.GroupedPlayer, opts ListOptions) ([]ListingRow, error) {
	for _, f := range opts.Filters {
		if err := f.validate(); err != nil {
			return nil, err
		}
	}
	less, err := sortFunc(opts.SortKey)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(opts.Search))
	rows := make([]ListingRow, 0, len(groups))
	for i := range groups {
		g := &groups[i]
		if opts.Tier != "" && opts.Tier != AllTiers && !g.HasTier(opts.Mode, opts.Tier) {
			continue
		}
		best, ok := BestEntry(g, opts.Mode)
		if !ok {
			continue
		}
		r := ListingRow{Group: g, StatEntry: best}
		if q != "" && !r.matchesSearch(q) {
			continue
		}
		if !matchAll(r, opts.Filters) {
			continue
		}
		rows = append(rows, r)
	}

	if less != nil {
		sort.SliceStable(rows, func(i, j int) bool {
			if opts.Desc {
				return less(rows[j], rows[i])
			}
			return less(rows[i], rows[j])
		})
	}
	return rows, nil
}

func matchAll(r ListingRow, filters []StatFilter) bool {
	for _, f := range filters {
		if !f.match(r) {
			return false
		}
	}
	return true
}

func sortFunc(key string) (func(a, b ListingRow) bool, error) {
	if key == "" {
		return nil, nil
	}
	if text, ok := textKeys[key]; ok {
		return func(a, b ListingRow) bool {
			return strings.ToLower(text(a)) < strings.ToLower(text(b))
		}, nil
	}
	c, ok := feed.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("sort: unknown stat %q", key)
	}
	return func(a, b ListingRow) bool { return c.Value(a.Stats) < c.Value(b.Stats) }, nil
}

// TierOptions returns AllTiers followed by the sorted distinct tiers that
// appear in mode.
func TierOptions(groups []model.GroupedPlayer, mode model.Mode) []string {
	seen := make(map[string]bool)
	var tiers []string
	for i := range groups {
		for _, t := range groups[i].Tiers(mode) {
			if !seen[t] {
				seen[t] = true
				tiers = append(tiers, t)
			}
		}
	}
	sort.Strings(tiers)
	return append([]string{AllTiers}, tiers...)
}
