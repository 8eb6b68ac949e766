package feed

import (
	"math"
	"strconv"
	"testing"
)

// row builds a full-width feed row with the given identity and column values
// keyed by stat key. Unnamed columns are left blank.
func row(id, name, tier string, vals map[string]string) []string {
	cells := make([]string, SchemaWidth)
	cells[0], cells[1], cells[2] = id, name, tier
	for k, v := range vals {
		c, ok := Lookup(k)
		if !ok {
			panic("unknown column " + k)
		}
		cells[c.Index] = v
	}
	return cells
}

// ---- Num ----

func TestNum(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"1.25", 1.25},
		{" 3 ", 3},
		{"-0.5", -0.5},
		{"45%", 45},
		{"1.2.3", 1.2},
		{".5", 0.5},
		{"2e3", 2000},
		{"abc", 0},
		{"NaN", 0},
		{"Infinity", 0},
		{"1e999", 0},
		{"-", 0},
	}
	for _, c := range cases {
		if got := Num(c.in); got != c.want {
			t.Errorf("Num(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNum_NeverNaN(t *testing.T) {
	for _, in := range []string{"nan", "NaN", "inf", "-inf", "+Inf", "1e400", "-1e400"} {
		v := Num(in)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("Num(%q) = %v, want finite", in, v)
		}
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.1x", 1.1, true},
		{" 0 ", 0, true},
		{"75%", 75, true},
		{"", 0, false},
		{"x1", 0, false},
		{"1e999", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseNumber(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseNumber(%q) = %v, %v, want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

// ---- ParseRow ----

func TestParseRow_RejectsMissingIdentity(t *testing.T) {
	cases := [][]string{
		nil,
		{},
		{"7656"},
		{"", "Alice", "Contender"},
		{"7656", "", "Contender"},
		{"   ", "Alice"},
		{"7656", "  "},
	}
	for _, c := range cases {
		if _, ok := ParseRow(c); ok {
			t.Errorf("ParseRow(%q) accepted, want rejected", c)
		}
	}
}

func TestParseRow_ShortRowZeroFilled(t *testing.T) {
	rec, ok := ParseRow([]string{"7656", "Bob", "Elite", "4", "1.10"})
	if !ok {
		t.Fatal("short row rejected")
	}
	if rec.Games != 4 || rec.FinalRating != 1.10 {
		t.Errorf("games=%v rating=%v, want 4 and 1.10", rec.Games, rec.FinalRating)
	}
	if rec.ADR != 0 || rec.OverpassGames != 0 {
		t.Errorf("missing cells should be 0, got adr=%v overpassGames=%v", rec.ADR, rec.OverpassGames)
	}
}

func TestParseRow_ExtraCellsIgnored(t *testing.T) {
	cells := row("7656", "Bob", "Elite", map[string]string{"overpassGames": "3"})
	cells = append(cells, "999", "junk")
	rec, ok := ParseRow(cells)
	if !ok {
		t.Fatal("row rejected")
	}
	if rec.OverpassGames != 3 {
		t.Errorf("OverpassGames = %v, want 3", rec.OverpassGames)
	}
}

func TestParseRow_IdentityTrimmedTierRaw(t *testing.T) {
	rec, ok := ParseRow([]string{" 7656 ", " Alice ", " Contender"})
	if !ok {
		t.Fatal("row rejected")
	}
	if rec.SteamID != "7656" || rec.Name != "Alice" {
		t.Errorf("identity = %q/%q, want trimmed", rec.SteamID, rec.Name)
	}
	if rec.Tier != " Contender" {
		t.Errorf("Tier = %q, want untouched", rec.Tier)
	}
}

func TestParseRow_Positional(t *testing.T) {
	vals := map[string]string{
		"games":       "12",
		"finalRating": "1.15",
		"adr":         "85.2",
		"kast":        "0.72",
		"headshotPct": "48%",
		"ctRating":    "1.3",
		"dust2Games":  "5",
	}
	rec, ok := ParseRow(row("7656", "Alice", "Contender", vals))
	if !ok {
		t.Fatal("row rejected")
	}
	for k, v := range vals {
		c, _ := Lookup(k)
		if got := c.Value(&rec); got != Num(v) {
			t.Errorf("%s = %v, want %v", k, got, Num(v))
		}
	}
}

func TestParseRows_CountsRejected(t *testing.T) {
	rows := [][]string{
		row("1", "Alice", "Contender", map[string]string{"games": "10"}),
		{"", "Ghost"},
		row("2", "Bob", "team_Contender", nil),
		{},
	}
	recs, rejected := ParseRows(rows)
	if len(recs) != 2 || rejected != 2 {
		t.Fatalf("got %d records, %d rejected, want 2 and 2", len(recs), rejected)
	}
	if recs[0].Name != "Alice" || recs[1].Name != "Bob" {
		t.Errorf("order not preserved: %q, %q", recs[0].Name, recs[1].Name)
	}
}

// ---- Columns ----

func TestColumns_Schema(t *testing.T) {
	if err := validateColumns(); err != nil {
		t.Fatal(err)
	}
	for i, c := range Columns {
		if c.Index != identityColumns+i {
			t.Errorf("column %s index %d, want %d", c.Key, c.Index, identityColumns+i)
		}
	}
	if Columns[len(Columns)-1].Index != SchemaWidth-1 {
		t.Errorf("last column index %d, want %d", Columns[len(Columns)-1].Index, SchemaWidth-1)
	}
}

func TestColumns_DistinctFields(t *testing.T) {
	// Writing a distinct value through every column must read back unchanged,
	// which fails if two columns share a field.
	cells := make([]string, SchemaWidth)
	cells[0], cells[1] = "1", "x"
	for _, c := range Columns {
		cells[c.Index] = strconv.Itoa(c.Index)
	}
	rec, ok := ParseRow(cells)
	if !ok {
		t.Fatal("row rejected")
	}
	for _, c := range Columns {
		if got := c.Value(&rec); got != float64(c.Index) {
			t.Errorf("%s = %v, want %d", c.Key, got, c.Index)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Lookup("notAStat"); ok {
		t.Error("Lookup of unknown key succeeded")
	}
}
