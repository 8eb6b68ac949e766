package model

// StatRecord is one player's aggregated performance in one competitive context:
// a single row of the stats feed. Records are built once at ingestion and only
// read afterwards.
type StatRecord struct {
	SteamID string `json:"steamId"`
	Name    string `json:"name"`
	Tier    string `json:"tier"`

	// Core
	Games        float64 `json:"games"`
	FinalRating  float64 `json:"finalRating"`
	HLTVRating   float64 `json:"hltvRating"`
	RoundsPlayed float64 `json:"roundsPlayed"`
	RoundsWon    float64 `json:"roundsWon"`
	RoundsLost   float64 `json:"roundsLost"`

	// Combat
	Kills         float64 `json:"kills"`
	Assists       float64 `json:"assists"`
	Deaths        float64 `json:"deaths"`
	Damage        float64 `json:"damage"`
	ADR           float64 `json:"adr"`
	KPR           float64 `json:"kpr"`
	DPR           float64 `json:"dpr"`
	KAST          float64 `json:"kast"`
	Survival      float64 `json:"survival"`
	Headshots     float64 `json:"headshots"`
	HeadshotPct   float64 `json:"headshotPct"`
	AvgTimeToKill float64 `json:"avgTimeToKill"`

	// Opening
	OpeningKills           float64 `json:"openingKills"`
	OpeningDeaths          float64 `json:"openingDeaths"`
	OpeningAttempts        float64 `json:"openingAttempts"`
	OpeningSuccesses       float64 `json:"openingSuccesses"`
	OpeningKillsPerRound   float64 `json:"openingKillsPerRound"`
	OpeningDeathsPerRound  float64 `json:"openingDeathsPerRound"`
	OpeningAttemptsPct     float64 `json:"openingAttemptsPct"`
	OpeningSuccessPct      float64 `json:"openingSuccessPct"`
	RoundsWonAfterOpening  float64 `json:"roundsWonAfterOpening"`
	WinPctAfterOpeningKill float64 `json:"winPctAfterOpeningKill"`

	// Economy
	EcoKillValue             float64 `json:"ecoKillValue"`
	EcoDeathValue            float64 `json:"ecoDeathValue"`
	EconImpact               float64 `json:"econImpact"`
	RoundImpact              float64 `json:"roundImpact"`
	ProbabilitySwing         float64 `json:"probabilitySwing"`
	ProbabilitySwingPerRound float64 `json:"probabilitySwingPerRound"`

	// Clutch
	ClutchRounds         float64 `json:"clutchRounds"`
	ClutchWins           float64 `json:"clutchWins"`
	ClutchPointsPerRound float64 `json:"clutchPointsPerRound"`
	Clutch1v1Attempts    float64 `json:"clutch1v1Attempts"`
	Clutch1v1Wins        float64 `json:"clutch1v1Wins"`
	Clutch1v1WinPct      float64 `json:"clutch1v1WinPct"`

	// Trading
	TradeKills              float64 `json:"tradeKills"`
	TradeKillsPerRound      float64 `json:"tradeKillsPerRound"`
	TradeKillsPct           float64 `json:"tradeKillsPct"`
	FastTrades              float64 `json:"fastTrades"`
	TradedDeaths            float64 `json:"tradedDeaths"`
	TradedDeathsPerRound    float64 `json:"tradedDeathsPerRound"`
	TradedDeathsPct         float64 `json:"tradedDeathsPct"`
	TradeDenials            float64 `json:"tradeDenials"`
	SavedByTeammate         float64 `json:"savedByTeammate"`
	SavedByTeammatePerRound float64 `json:"savedByTeammatePerRound"`
	SavedTeammate           float64 `json:"savedTeammate"`
	SavedTeammatePerRound   float64 `json:"savedTeammatePerRound"`
	OpeningDeathsTraded     float64 `json:"openingDeathsTraded"`
	OpeningDeathsTradedPct  float64 `json:"openingDeathsTradedPct"`

	// AWP
	AWPKills                   float64 `json:"awpKills"`
	AWPKillsPerRound           float64 `json:"awpKillsPerRound"`
	AWPKillsPct                float64 `json:"awpKillsPct"`
	RoundsWithAWPKill          float64 `json:"roundsWithAwpKill"`
	RoundsWithAWPKillPct       float64 `json:"roundsWithAwpKillPct"`
	AWPMultiKillRounds         float64 `json:"awpMultiKillRounds"`
	AWPMultiKillRoundsPerRound float64 `json:"awpMultiKillRoundsPerRound"`
	AWPOpeningKills            float64 `json:"awpOpeningKills"`
	AWPOpeningKillsPerRound    float64 `json:"awpOpeningKillsPerRound"`
	AWPDeaths                  float64 `json:"awpDeaths"`
	AWPDeathsNoKill            float64 `json:"awpDeathsNoKill"`

	// Multi-Kill
	OneK                   float64 `json:"oneK"`
	TwoK                   float64 `json:"twoK"`
	ThreeK                 float64 `json:"threeK"`
	FourK                  float64 `json:"fourK"`
	FiveK                  float64 `json:"fiveK"`
	RoundsWithKill         float64 `json:"roundsWithKill"`
	RoundsWithKillPct      float64 `json:"roundsWithKillPct"`
	RoundsWithMultiKill    float64 `json:"roundsWithMultiKill"`
	RoundsWithMultiKillPct float64 `json:"roundsWithMultiKillPct"`

	// Impact
	KillsInWonRounds   float64 `json:"killsInWonRounds"`
	KillsPerRoundWin   float64 `json:"killsPerRoundWin"`
	DamageInWonRounds  float64 `json:"damageInWonRounds"`
	DamagePerRoundWin  float64 `json:"damagePerRoundWin"`
	PerfectKills       float64 `json:"perfectKills"`
	DamagePerKill      float64 `json:"damagePerKill"`
	KnifeKills         float64 `json:"knifeKills"`
	PistolVsRifleKills float64 `json:"pistolVsRifleKills"`

	// Support
	SupportRounds     float64 `json:"supportRounds"`
	SupportRoundsPct  float64 `json:"supportRoundsPct"`
	AssistedKills     float64 `json:"assistedKills"`
	AssistedKillsPct  float64 `json:"assistedKillsPct"`
	AssistsPerRound   float64 `json:"assistsPerRound"`
	AttackRounds      float64 `json:"attackRounds"`
	AttacksPerRound   float64 `json:"attacksPerRound"`
	TimeAlivePerRound float64 `json:"timeAlivePerRound"`
	LastAliveRounds   float64 `json:"lastAliveRounds"`
	LastAlivePct      float64 `json:"lastAlivePct"`
	SavesOnLoss       float64 `json:"savesOnLoss"`
	SavesPerRoundLoss float64 `json:"savesPerRoundLoss"`

	// Utility
	UtilityDamage              float64 `json:"utilityDamage"`
	UtilityDamagePerRound      float64 `json:"utilityDamagePerRound"`
	UtilityKills               float64 `json:"utilityKills"`
	UtilityKillsPer100Rounds   float64 `json:"utilityKillsPer100Rounds"`
	FlashesThrown              float64 `json:"flashesThrown"`
	FlashesThrownPerRound      float64 `json:"flashesThrownPerRound"`
	FlashAssists               float64 `json:"flashAssists"`
	FlashAssistsPerRound       float64 `json:"flashAssistsPerRound"`
	EnemyFlashDurationPerRound float64 `json:"enemyFlashDurationPerRound"`
	TeamFlashCount             float64 `json:"teamFlashCount"`
	TeamFlashDurationPerRound  float64 `json:"teamFlashDurationPerRound"`

	// Situational
	ExitFrags                float64 `json:"exitFrags"`
	EarlyDeaths              float64 `json:"earlyDeaths"`
	LowBuyKills              float64 `json:"lowBuyKills"`
	LowBuyKillsPct           float64 `json:"lowBuyKillsPct"`
	DisadvantagedBuyKills    float64 `json:"disadvantagedBuyKills"`
	DisadvantagedBuyKillsPct float64 `json:"disadvantagedBuyKillsPct"`

	// Pistol
	PistolRoundsPlayed    float64 `json:"pistolRoundsPlayed"`
	PistolRoundKills      float64 `json:"pistolRoundKills"`
	PistolRoundDeaths     float64 `json:"pistolRoundDeaths"`
	PistolRoundDamage     float64 `json:"pistolRoundDamage"`
	PistolRoundsWon       float64 `json:"pistolRoundsWon"`
	PistolRoundSurvivals  float64 `json:"pistolRoundSurvivals"`
	PistolRoundMultiKills float64 `json:"pistolRoundMultiKills"`
	PistolRoundRating     float64 `json:"pistolRoundRating"`

	// T Side
	TRoundsPlayed        float64 `json:"tRoundsPlayed"`
	TKills               float64 `json:"tKills"`
	TDeaths              float64 `json:"tDeaths"`
	TDamage              float64 `json:"tDamage"`
	TSurvivals           float64 `json:"tSurvivals"`
	TRoundsWithMultiKill float64 `json:"tRoundsWithMultiKill"`
	TEcoKillValue        float64 `json:"tEcoKillValue"`
	TKAST                float64 `json:"tKast"`
	TClutchRounds        float64 `json:"tClutchRounds"`
	TClutchWins          float64 `json:"tClutchWins"`
	TRating              float64 `json:"tRating"`
	TEcoRating           float64 `json:"tEcoRating"`

	// CT Side
	CTRoundsPlayed        float64 `json:"ctRoundsPlayed"`
	CTKills               float64 `json:"ctKills"`
	CTDeaths              float64 `json:"ctDeaths"`
	CTDamage              float64 `json:"ctDamage"`
	CTSurvivals           float64 `json:"ctSurvivals"`
	CTRoundsWithMultiKill float64 `json:"ctRoundsWithMultiKill"`
	CTEcoKillValue        float64 `json:"ctEcoKillValue"`
	CTKAST                float64 `json:"ctKast"`
	CTClutchRounds        float64 `json:"ctClutchRounds"`
	CTClutchWins          float64 `json:"ctClutchWins"`
	CTRating              float64 `json:"ctRating"`
	CTEcoRating           float64 `json:"ctEcoRating"`

	// Maps
	AncientRating  float64 `json:"ancientRating"`
	AncientGames   float64 `json:"ancientGames"`
	AnubisRating   float64 `json:"anubisRating"`
	AnubisGames    float64 `json:"anubisGames"`
	Dust2Rating    float64 `json:"dust2Rating"`
	Dust2Games     float64 `json:"dust2Games"`
	InfernoRating  float64 `json:"infernoRating"`
	InfernoGames   float64 `json:"infernoGames"`
	MirageRating   float64 `json:"mirageRating"`
	MirageGames    float64 `json:"mirageGames"`
	NukeRating     float64 `json:"nukeRating"`
	NukeGames      float64 `json:"nukeGames"`
	OverpassRating float64 `json:"overpassRating"`
	OverpassGames  float64 `json:"overpassGames"`
}

// Side is one of the two halves of a CS2 match.
type Side string

const (
	SideT  Side = "T"
	SideCT Side = "CT"
)

// KDRatio returns kills per death, or raw kills when the player never died.
func (s *StatRecord) KDRatio() float64 {
	if s.Deaths == 0 {
		return s.Kills
	}
	return s.Kills / s.Deaths
}

// SideADR returns damage per round on the given side, 0 when no rounds were played there.
func (s *StatRecord) SideADR(side Side) float64 {
	if side == SideCT {
		return safeDiv(s.CTDamage, s.CTRoundsPlayed)
	}
	return safeDiv(s.TDamage, s.TRoundsPlayed)
}

// SideKPR returns kills per round on the given side.
func (s *StatRecord) SideKPR(side Side) float64 {
	if side == SideCT {
		return safeDiv(s.CTKills, s.CTRoundsPlayed)
	}
	return safeDiv(s.TKills, s.TRoundsPlayed)
}

// SideRating returns the upstream rating for the given side.
func (s *StatRecord) SideRating(side Side) float64 {
	if side == SideCT {
		return s.CTRating
	}
	return s.TRating
}

// SideKAST returns the upstream KAST for the given side.
func (s *StatRecord) SideKAST(side Side) float64 {
	if side == SideCT {
		return s.CTKAST
	}
	return s.TKAST
}

// MapRating is a per-map rating with the number of games behind it.
type MapRating struct {
	Map    string  `json:"map"`
	Rating float64 `json:"rating"`
	Games  float64 `json:"games"`
}

// MapPool lists the tracked maps in feed order.
var MapPool = []string{"Ancient", "Anubis", "Dust2", "Inferno", "Mirage", "Nuke", "Overpass"}

// MapRatings returns the maps the player has at least one game on, in MapPool order.
func (s *StatRecord) MapRatings() []MapRating {
	all := []MapRating{
		{"Ancient", s.AncientRating, s.AncientGames},
		{"Anubis", s.AnubisRating, s.AnubisGames},
		{"Dust2", s.Dust2Rating, s.Dust2Games},
		{"Inferno", s.InfernoRating, s.InfernoGames},
		{"Mirage", s.MirageRating, s.MirageGames},
		{"Nuke", s.NukeRating, s.NukeGames},
		{"Overpass", s.OverpassRating, s.OverpassGames},
	}
	out := all[:0]
	for _, m := range all {
		if m.Games > 0 {
			out = append(out, m)
		}
	}
	return out
}

// KillDistribution returns the 1K..5K round counts.
func (s *StatRecord) KillDistribution() [5]float64 {
	return [5]float64{s.OneK, s.TwoK, s.ThreeK, s.FourK, s.FiveK}
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
