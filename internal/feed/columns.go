package feed

import (
	"fmt"

	"github.com/ethsmith/csc-manager/internal/model"
)

// SchemaWidth is the number of positional columns in the current feed schema.
const SchemaWidth = 160

// identityColumns are the leading steam ID, name and tier cells.
const identityColumns = 3

// Column binds one positional feed column to a StatRecord field.
type Column struct {
	Index int
	Key   string
	Label string
	Group string
	field func(*model.StatRecord) *float64
}

// Value reads the column's statistic from s.
func (c Column) Value(s *model.StatRecord) float64 { return *c.field(s) }

func col(key, label, group string, field func(*model.StatRecord) *float64) Column {
	return Column{Key: key, Label: label, Group: group, field: field}
}

// Columns lists every numeric column in feed order. Adding or removing a
// tracked statistic is a one-line edit here plus the matching struct field.
var Columns = []Column{
	// Core
	col("games", "Games", "Core", func(s *model.StatRecord) *float64 { return &s.Games }),
	col("finalRating", "Final Rating", "Core", func(s *model.StatRecord) *float64 { return &s.FinalRating }),
	col("hltvRating", "HLTV Rating", "Core", func(s *model.StatRecord) *float64 { return &s.HLTVRating }),
	col("roundsPlayed", "Rounds Played", "Core", func(s *model.StatRecord) *float64 { return &s.RoundsPlayed }),
	col("roundsWon", "Rounds Won", "Core", func(s *model.StatRecord) *float64 { return &s.RoundsWon }),
	col("roundsLost", "Rounds Lost", "Core", func(s *model.StatRecord) *float64 { return &s.RoundsLost }),

	// Combat
	col("kills", "Kills", "Combat", func(s *model.StatRecord) *float64 { return &s.Kills }),
	col("assists", "Assists", "Combat", func(s *model.StatRecord) *float64 { return &s.Assists }),
	col("deaths", "Deaths", "Combat", func(s *model.StatRecord) *float64 { return &s.Deaths }),
	col("damage", "Damage", "Combat", func(s *model.StatRecord) *float64 { return &s.Damage }),
	col("adr", "ADR", "Combat", func(s *model.StatRecord) *float64 { return &s.ADR }),
	col("kpr", "KPR", "Combat", func(s *model.StatRecord) *float64 { return &s.KPR }),
	col("dpr", "DPR", "Combat", func(s *model.StatRecord) *float64 { return &s.DPR }),
	col("kast", "KAST", "Combat", func(s *model.StatRecord) *float64 { return &s.KAST }),
	col("survival", "Survival", "Combat", func(s *model.StatRecord) *float64 { return &s.Survival }),
	col("headshots", "Headshots", "Combat", func(s *model.StatRecord) *float64 { return &s.Headshots }),
	col("headshotPct", "Headshot %", "Combat", func(s *model.StatRecord) *float64 { return &s.HeadshotPct }),
	col("avgTimeToKill", "Avg Time To Kill", "Combat", func(s *model.StatRecord) *float64 { return &s.AvgTimeToKill }),

	// Opening
	col("openingKills", "Opening Kills", "Opening", func(s *model.StatRecord) *float64 { return &s.OpeningKills }),
	col("openingDeaths", "Opening Deaths", "Opening", func(s *model.StatRecord) *float64 { return &s.OpeningDeaths }),
	col("openingAttempts", "Opening Attempts", "Opening", func(s *model.StatRecord) *float64 { return &s.OpeningAttempts }),
	col("openingSuccesses", "Opening Successes", "Opening", func(s *model.StatRecord) *float64 { return &s.OpeningSuccesses }),
	col("openingKillsPerRound", "Opening Kills/Rd", "Opening", func(s *model.StatRecord) *float64 { return &s.OpeningKillsPerRound }),
	col("openingDeathsPerRound", "Opening Deaths/Rd", "Opening", func(s *model.StatRecord) *float64 { return &s.OpeningDeathsPerRound }),
	col("openingAttemptsPct", "Opening Attempts %", "Opening", func(s *model.StatRecord) *float64 { return &s.OpeningAttemptsPct }),
	col("openingSuccessPct", "Opening Success %", "Opening", func(s *model.StatRecord) *float64 { return &s.OpeningSuccessPct }),
	col("roundsWonAfterOpening", "Rounds Won After Opening", "Opening", func(s *model.StatRecord) *float64 { return &s.RoundsWonAfterOpening }),
	col("winPctAfterOpeningKill", "Win % After Opening Kill", "Opening", func(s *model.StatRecord) *float64 { return &s.WinPctAfterOpeningKill }),

	// Economy
	col("ecoKillValue", "Eco Kill Value", "Economy", func(s *model.StatRecord) *float64 { return &s.EcoKillValue }),
	col("ecoDeathValue", "Eco Death Value", "Economy", func(s *model.StatRecord) *float64 { return &s.EcoDeathValue }),
	col("econImpact", "Econ Impact", "Economy", func(s *model.StatRecord) *float64 { return &s.EconImpact }),
	col("roundImpact", "Round Impact", "Economy", func(s *model.StatRecord) *float64 { return &s.RoundImpact }),
	col("probabilitySwing", "Probability Swing", "Economy", func(s *model.StatRecord) *float64 { return &s.ProbabilitySwing }),
	col("probabilitySwingPerRound", "Probability Swing/Rd", "Economy", func(s *model.StatRecord) *float64 { return &s.ProbabilitySwingPerRound }),

	// Clutch
	col("clutchRounds", "Clutch Rounds", "Clutch", func(s *model.StatRecord) *float64 { return &s.ClutchRounds }),
	col("clutchWins", "Clutch Wins", "Clutch", func(s *model.StatRecord) *float64 { return &s.ClutchWins }),
	col("clutchPointsPerRound", "Clutch Points/Rd", "Clutch", func(s *model.StatRecord) *float64 { return &s.ClutchPointsPerRound }),
	col("clutch1v1Attempts", "Clutch1v1 Attempts", "Clutch", func(s *model.StatRecord) *float64 { return &s.Clutch1v1Attempts }),
	col("clutch1v1Wins", "Clutch1v1 Wins", "Clutch", func(s *model.StatRecord) *float64 { return &s.Clutch1v1Wins }),
	col("clutch1v1WinPct", "Clutch1v1 Win %", "Clutch", func(s *model.StatRecord) *float64 { return &s.Clutch1v1WinPct }),

	// Trading
	col("tradeKills", "Trade Kills", "Trading", func(s *model.StatRecord) *float64 { return &s.TradeKills }),
	col("tradeKillsPerRound", "Trade Kills/Rd", "Trading", func(s *model.StatRecord) *float64 { return &s.TradeKillsPerRound }),
	col("tradeKillsPct", "Trade Kills %", "Trading", func(s *model.StatRecord) *float64 { return &s.TradeKillsPct }),
	col("fastTrades", "Fast Trades", "Trading", func(s *model.StatRecord) *float64 { return &s.FastTrades }),
	col("tradedDeaths", "Traded Deaths", "Trading", func(s *model.StatRecord) *float64 { return &s.TradedDeaths }),
	col("tradedDeathsPerRound", "Traded Deaths/Rd", "Trading", func(s *model.StatRecord) *float64 { return &s.TradedDeathsPerRound }),
	col("tradedDeathsPct", "Traded Deaths %", "Trading", func(s *model.StatRecord) *float64 { return &s.TradedDeathsPct }),
	col("tradeDenials", "Trade Denials", "Trading", func(s *model.StatRecord) *float64 { return &s.TradeDenials }),
	col("savedByTeammate", "Saved By Teammate", "Trading", func(s *model.StatRecord) *float64 { return &s.SavedByTeammate }),
	col("savedByTeammatePerRound", "Saved By Teammate/Rd", "Trading", func(s *model.StatRecord) *float64 { return &s.SavedByTeammatePerRound }),
	col("savedTeammate", "Saved Teammate", "Trading", func(s *model.StatRecord) *float64 { return &s.SavedTeammate }),
	col("savedTeammatePerRound", "Saved Teammate/Rd", "Trading", func(s *model.StatRecord) *float64 { return &s.SavedTeammatePerRound }),
	col("openingDeathsTraded", "Opening Deaths Traded", "Trading", func(s *model.StatRecord) *float64 { return &s.OpeningDeathsTraded }),
	col("openingDeathsTradedPct", "Opening Deaths Traded %", "Trading", func(s *model.StatRecord) *float64 { return &s.OpeningDeathsTradedPct }),

	// AWP
	col("awpKills", "AWP Kills", "AWP", func(s *model.StatRecord) *float64 { return &s.AWPKills }),
	col("awpKillsPerRound", "AWP Kills/Rd", "AWP", func(s *model.StatRecord) *float64 { return &s.AWPKillsPerRound }),
	col("awpKillsPct", "AWP Kills %", "AWP", func(s *model.StatRecord) *float64 { return &s.AWPKillsPct }),
	col("roundsWithAwpKill", "Rounds With AWP Kill", "AWP", func(s *model.StatRecord) *float64 { return &s.RoundsWithAWPKill }),
	col("roundsWithAwpKillPct", "Rounds With AWP Kill %", "AWP", func(s *model.StatRecord) *float64 { return &s.RoundsWithAWPKillPct }),
	col("awpMultiKillRounds", "AWP Multi Kill Rounds", "AWP", func(s *model.StatRecord) *float64 { return &s.AWPMultiKillRounds }),
	col("awpMultiKillRoundsPerRound", "AWP Multi Kill Rounds/Rd", "AWP", func(s *model.StatRecord) *float64 { return &s.AWPMultiKillRoundsPerRound }),
	col("awpOpeningKills", "AWP Opening Kills", "AWP", func(s *model.StatRecord) *float64 { return &s.AWPOpeningKills }),
	col("awpOpeningKillsPerRound", "AWP Opening Kills/Rd", "AWP", func(s *model.StatRecord) *float64 { return &s.AWPOpeningKillsPerRound }),
	col("awpDeaths", "AWP Deaths", "AWP", func(s *model.StatRecord) *float64 { return &s.AWPDeaths }),
	col("awpDeathsNoKill", "AWP Deaths No Kill", "AWP", func(s *model.StatRecord) *float64 { return &s.AWPDeathsNoKill }),

	// Multi-Kill
	col("oneK", "One K", "Multi-Kill", func(s *model.StatRecord) *float64 { return &s.OneK }),
	col("twoK", "Two K", "Multi-Kill", func(s *model.StatRecord) *float64 { return &s.TwoK }),
	col("threeK", "Three K", "Multi-Kill", func(s *model.StatRecord) *float64 { return &s.ThreeK }),
	col("fourK", "Four K", "Multi-Kill", func(s *model.StatRecord) *float64 { return &s.FourK }),
	col("fiveK", "Five K", "Multi-Kill", func(s *model.StatRecord) *float64 { return &s.FiveK }),
	col("roundsWithKill", "Rounds With Kill", "Multi-Kill", func(s *model.StatRecord) *float64 { return &s.RoundsWithKill }),
	col("roundsWithKillPct", "Rounds With Kill %", "Multi-Kill", func(s *model.StatRecord) *float64 { return &s.RoundsWithKillPct }),
	col("roundsWithMultiKill", "Rounds With Multi Kill", "Multi-Kill", func(s *model.StatRecord) *float64 { return &s.RoundsWithMultiKill }),
	col("roundsWithMultiKillPct", "Rounds With Multi Kill %", "Multi-Kill", func(s *model.StatRecord) *float64 { return &s.RoundsWithMultiKillPct }),

	// Impact
	col("killsInWonRounds", "Kills In Won Rounds", "Impact", func(s *model.StatRecord) *float64 { return &s.KillsInWonRounds }),
	col("killsPerRoundWin", "Kills/Rd Win", "Impact", func(s *model.StatRecord) *float64 { return &s.KillsPerRoundWin }),
	col("damageInWonRounds", "Damage In Won Rounds", "Impact", func(s *model.StatRecord) *float64 { return &s.DamageInWonRounds }),
	col("damagePerRoundWin", "Damage/Rd Win", "Impact", func(s *model.StatRecord) *float64 { return &s.DamagePerRoundWin }),
	col("perfectKills", "Perfect Kills", "Impact", func(s *model.StatRecord) *float64 { return &s.PerfectKills }),
	col("damagePerKill", "Damage/Kill", "Impact", func(s *model.StatRecord) *float64 { return &s.DamagePerKill }),
	col("knifeKills", "Knife Kills", "Impact", func(s *model.StatRecord) *float64 { return &s.KnifeKills }),
	col("pistolVsRifleKills", "Pistol Vs Rifle Kills", "Impact", func(s *model.StatRecord) *float64 { return &s.PistolVsRifleKills }),

	// Support
	col("supportRounds", "Support Rounds", "Support", func(s *model.StatRecord) *float64 { return &s.SupportRounds }),
	col("supportRoundsPct", "Support Rounds %", "Support", func(s *model.StatRecord) *float64 { return &s.SupportRoundsPct }),
	col("assistedKills", "Assisted Kills", "Support", func(s *model.StatRecord) *float64 { return &s.AssistedKills }),
	col("assistedKillsPct", "Assisted Kills %", "Support", func(s *model.StatRecord) *float64 { return &s.AssistedKillsPct }),
	col("assistsPerRound", "Assists/Rd", "Support", func(s *model.StatRecord) *float64 { return &s.AssistsPerRound }),
	col("attackRounds", "Attack Rounds", "Support", func(s *model.StatRecord) *float64 { return &s.AttackRounds }),
	col("attacksPerRound", "Attacks/Rd", "Support", func(s *model.StatRecord) *float64 { return &s.AttacksPerRound }),
	col("timeAlivePerRound", "Time Alive/Rd", "Support", func(s *model.StatRecord) *float64 { return &s.TimeAlivePerRound }),
	col("lastAliveRounds", "Last Alive Rounds", "Support", func(s *model.StatRecord) *float64 { return &s.LastAliveRounds }),
	col("lastAlivePct", "Last Alive %", "Support", func(s *model.StatRecord) *float64 { return &s.LastAlivePct }),
	col("savesOnLoss", "Saves On Loss", "Support", func(s *model.StatRecord) *float64 { return &s.SavesOnLoss }),
	col("savesPerRoundLoss", "Saves/Rd Loss", "Support", func(s *model.StatRecord) *float64 { return &s.SavesPerRoundLoss }),

	// Utility
	col("utilityDamage", "Utility Damage", "Utility", func(s *model.StatRecord) *float64 { return &s.UtilityDamage }),
	col("utilityDamagePerRound", "Utility Damage/Rd", "Utility", func(s *model.StatRecord) *float64 { return &s.UtilityDamagePerRound }),
	col("utilityKills", "Utility Kills", "Utility", func(s *model.StatRecord) *float64 { return &s.UtilityKills }),
	col("utilityKillsPer100Rounds", "Utility Kills Per100 Rounds", "Utility", func(s *model.StatRecord) *float64 { return &s.UtilityKillsPer100Rounds }),
	col("flashesThrown", "Flashes Thrown", "Utility", func(s *model.StatRecord) *float64 { return &s.FlashesThrown }),
	col("flashesThrownPerRound", "Flashes Thrown/Rd", "Utility", func(s *model.StatRecord) *float64 { return &s.FlashesThrownPerRound }),
	col("flashAssists", "Flash Assists", "Utility", func(s *model.StatRecord) *float64 { return &s.FlashAssists }),
	col("flashAssistsPerRound", "Flash Assists/Rd", "Utility", func(s *model.StatRecord) *float64 { return &s.FlashAssistsPerRound }),
	col("enemyFlashDurationPerRound", "Enemy Flash Duration/Rd", "Utility", func(s *model.StatRecord) *float64 { return &s.EnemyFlashDurationPerRound }),
	col("teamFlashCount", "Team Flash Count", "Utility", func(s *model.StatRecord) *float64 { return &s.TeamFlashCount }),
	col("teamFlashDurationPerRound", "Team Flash Duration/Rd", "Utility", func(s *model.StatRecord) *float64 { return &s.TeamFlashDurationPerRound }),

	// Situational
	col("exitFrags", "Exit Frags", "Situational", func(s *model.StatRecord) *float64 { return &s.ExitFrags }),
	col("earlyDeaths", "Early Deaths", "Situational", func(s *model.StatRecord) *float64 { return &s.EarlyDeaths }),
	col("lowBuyKills", "Low Buy Kills", "Situational", func(s *model.StatRecord) *float64 { return &s.LowBuyKills }),
	col("lowBuyKillsPct", "Low Buy Kills %", "Situational", func(s *model.StatRecord) *float64 { return &s.LowBuyKillsPct }),
	col("disadvantagedBuyKills", "Disadvantaged Buy Kills", "Situational", func(s *model.StatRecord) *float64 { return &s.DisadvantagedBuyKills }),
	col("disadvantagedBuyKillsPct", "Disadvantaged Buy Kills %", "Situational", func(s *model.StatRecord) *float64 { return &s.DisadvantagedBuyKillsPct }),

	// Pistol
	col("pistolRoundsPlayed", "Pistol Rounds Played", "Pistol", func(s *model.StatRecord) *float64 { return &s.PistolRoundsPlayed }),
	col("pistolRoundKills", "Pistol Round Kills", "Pistol", func(s *model.StatRecord) *float64 { return &s.PistolRoundKills }),
	col("pistolRoundDeaths", "Pistol Round Deaths", "Pistol", func(s *model.StatRecord) *float64 { return &s.PistolRoundDeaths }),
	col("pistolRoundDamage", "Pistol Round Damage", "Pistol", func(s *model.StatRecord) *float64 { return &s.PistolRoundDamage }),
	col("pistolRoundsWon", "Pistol Rounds Won", "Pistol", func(s *model.StatRecord) *float64 { return &s.PistolRoundsWon }),
	col("pistolRoundSurvivals", "Pistol Round Survivals", "Pistol", func(s *model.StatRecord) *float64 { return &s.PistolRoundSurvivals }),
	col("pistolRoundMultiKills", "Pistol Round Multi Kills", "Pistol", func(s *model.StatRecord) *float64 { return &s.PistolRoundMultiKills }),
	col("pistolRoundRating", "Pistol Round Rating", "Pistol", func(s *model.StatRecord) *float64 { return &s.PistolRoundRating }),

	// T Side
	col("tRoundsPlayed", "T Rounds Played", "T Side", func(s *model.StatRecord) *float64 { return &s.TRoundsPlayed }),
	col("tKills", "T Kills", "T Side", func(s *model.StatRecord) *float64 { return &s.TKills }),
	col("tDeaths", "T Deaths", "T Side", func(s *model.StatRecord) *float64 { return &s.TDeaths }),
	col("tDamage", "T Damage", "T Side", func(s *model.StatRecord) *float64 { return &s.TDamage }),
	col("tSurvivals", "T Survivals", "T Side", func(s *model.StatRecord) *float64 { return &s.TSurvivals }),
	col("tRoundsWithMultiKill", "T Rounds With Multi Kill", "T Side", func(s *model.StatRecord) *float64 { return &s.TRoundsWithMultiKill }),
	col("tEcoKillValue", "T Eco Kill Value", "T Side", func(s *model.StatRecord) *float64 { return &s.TEcoKillValue }),
	col("tKast", "T KAST", "T Side", func(s *model.StatRecord) *float64 { return &s.TKAST }),
	col("tClutchRounds", "T Clutch Rounds", "T Side", func(s *model.StatRecord) *float64 { return &s.TClutchRounds }),
	col("tClutchWins", "T Clutch Wins", "T Side", func(s *model.StatRecord) *float64 { return &s.TClutchWins }),
	col("tRating", "T Rating", "T Side", func(s *model.StatRecord) *float64 { return &s.TRating }),
	col("tEcoRating", "T Eco Rating", "T Side", func(s *model.StatRecord) *float64 { return &s.TEcoRating }),

	// CT Side
	col("ctRoundsPlayed", "CT Rounds Played", "CT Side", func(s *model.StatRecord) *float64 { return &s.CTRoundsPlayed }),
	col("ctKills", "CT Kills", "CT Side", func(s *model.StatRecord) *float64 { return &s.CTKills }),
	col("ctDeaths", "CT Deaths", "CT Side", func(s *model.StatRecord) *float64 { return &s.CTDeaths }),
	col("ctDamage", "CT Damage", "CT Side", func(s *model.StatRecord) *float64 { return &s.CTDamage }),
	col("ctSurvivals", "CT Survivals", "CT Side", func(s *model.StatRecord) *float64 { return &s.CTSurvivals }),
	col("ctRoundsWithMultiKill", "CT Rounds With Multi Kill", "CT Side", func(s *model.StatRecord) *float64 { return &s.CTRoundsWithMultiKill }),
	col("ctEcoKillValue", "CT Eco Kill Value", "CT Side", func(s *model.StatRecord) *float64 { return &s.CTEcoKillValue }),
	col("ctKast", "CT KAST", "CT Side", func(s *model.StatRecord) *float64 { return &s.CTKAST }),
	col("ctClutchRounds", "CT Clutch Rounds", "CT Side", func(s *model.StatRecord) *float64 { return &s.CTClutchRounds }),
	col("ctClutchWins", "CT Clutch Wins", "CT Side", func(s *model.StatRecord) *float64 { return &s.CTClutchWins }),
	col("ctRating", "CT Rating", "CT Side", func(s *model.StatRecord) *float64 { return &s.CTRating }),
	col("ctEcoRating", "CT Eco Rating", "CT Side", func(s *model.StatRecord) *float64 { return &s.CTEcoRating }),

	// Maps
	col("ancientRating", "Ancient Rating", "Maps", func(s *model.StatRecord) *float64 { return &s.AncientRating }),
	col("ancientGames", "Ancient Games", "Maps", func(s *model.StatRecord) *float64 { return &s.AncientGames }),
	col("anubisRating", "Anubis Rating", "Maps", func(s *model.StatRecord) *float64 { return &s.AnubisRating }),
	col("anubisGames", "Anubis Games", "Maps", func(s *model.StatRecord) *float64 { return &s.AnubisGames }),
	col("dust2Rating", "Dust2 Rating", "Maps", func(s *model.StatRecord) *float64 { return &s.Dust2Rating }),
	col("dust2Games", "Dust2 Games", "Maps", func(s *model.StatRecord) *float64 { return &s.Dust2Games }),
	col("infernoRating", "Inferno Rating", "Maps", func(s *model.StatRecord) *float64 { return &s.InfernoRating }),
	col("infernoGames", "Inferno Games", "Maps", func(s *model.StatRecord) *float64 { return &s.InfernoGames }),
	col("mirageRating", "Mirage Rating", "Maps", func(s *model.StatRecord) *float64 { return &s.MirageRating }),
	col("mirageGames", "Mirage Games", "Maps", func(s *model.StatRecord) *float64 { return &s.MirageGames }),
	col("nukeRating", "Nuke Rating", "Maps", func(s *model.StatRecord) *float64 { return &s.NukeRating }),
	col("nukeGames", "Nuke Games", "Maps", func(s *model.StatRecord) *float64 { return &s.NukeGames }),
	col("overpassRating", "Overpass Rating", "Maps", func(s *model.StatRecord) *float64 { return &s.OverpassRating }),
	col("overpassGames", "Overpass Games", "Maps", func(s *model.StatRecord) *float64 { return &s.OverpassGames }),
}

var columnsByKey map[string]Column

func init() {
	if err := validateColumns(); err != nil {
		panic(err)
	}
}

func validateColumns() error {
	if got := identityColumns + len(Columns); got != SchemaWidth {
		return fmt.Errorf("feed schema has %d columns, want %d", got, SchemaWidth)
	}
	columnsByKey = make(map[string]Column, len(Columns))
	for i := range Columns {
		Columns[i].Index = identityColumns + i
		c := Columns[i]
		if _, dup := columnsByKey[c.Key]; dup {
			return fmt.Errorf("duplicate feed column %q", c.Key)
		}
		columnsByKey[c.Key] = c
	}
	return nil
}

// Lookup returns the column for a stat key such as "finalRating".
func Lookup(key string) (Column, bool) {
	c, ok := columnsByKey[key]
	return c, ok
}
