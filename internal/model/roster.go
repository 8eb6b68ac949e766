package model

// ---- Roster views ----

// RosterRow is one roster member joined against the stats feed. Stats is nil
// when the member has no entry in the requested mode.
type RosterRow struct {
	Member    FranchisePlayer `json:"member"`
	Player    *CscPlayer      `json:"player,omitempty"`
	Group     *GroupedPlayer  `json:"-"`
	Stats     *StatRecord     `json:"stats"`
	IsCaptain bool            `json:"isCaptain"`
}

// HasStats reports whether the row resolved a stat record.
func (r *RosterRow) HasStats() bool { return r.Stats != nil }

// Candidate is a signable player considered as a replacement.
type Candidate struct {
	Player CscPlayer   `json:"player"`
	Stats  *StatRecord `json:"stats"`
}

// TeamAggregate summarises a roster. Means cover only rows with stats;
// TotalMMR covers every rostered member.
type TeamAggregate struct {
	PlayerCount      int     `json:"playerCount"`
	PlayersWithStats int     `json:"playersWithStats"`
	TotalGames       float64 `json:"totalGames"`
	AvgRating        float64 `json:"avgRating"`
	AvgADR           float64 `json:"avgAdr"`
	AvgKAST          float64 `json:"avgKast"`
	TotalKills       float64 `json:"totalKills"`
	TotalDeaths      float64 `json:"totalDeaths"`
	KDRatio          float64 `json:"kdRatio"`
	TotalMMR         int     `json:"totalMmr"`
	MMRCap           int     `json:"mmrCap"`
}
