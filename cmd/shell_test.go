package cmd

import "testing"

func TestSplitTier(t *testing.T) {
	tiers := []string{"all", "Contender", "Elite"}
	cases := []struct {
		args        []string
		query, tier string
	}{
		{[]string{"Alice"}, "Alice", ""},
		{[]string{"Elite"}, "Elite", ""},
		{[]string{"Alice", "elite"}, "Alice", "Elite"},
		{[]string{"van", "der", "Berg"}, "van der Berg", ""},
		{[]string{"van", "der", "Berg", "Contender"}, "van der Berg", "Contender"},
		{[]string{"Alice", "all"}, "Alice all", ""},
	}
	for _, c := range cases {
		q, tier := splitTier(c.args, tiers)
		if q != c.query || tier != c.tier {
			t.Errorf("splitTier(%q) = %q, %q, want %q, %q", c.args, q, tier, c.query, c.tier)
		}
	}
}
