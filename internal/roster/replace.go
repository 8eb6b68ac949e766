package roster

import (
	"sort"

	"github.com/ethsmith/csc-manager/internal/aggregator"
	"github.com/ethsmith/csc-manager/internal/model"
)

// MaxCandidates caps a replacement search result.
const MaxCandidates = 20

// MaxReplacementMMR is the most a replacement may cost while keeping the team
// under its tier cap once outgoing leaves.
func MaxReplacementMMR(team *model.FranchiseTeam, outgoing model.RosterRow) int {
	return team.Tier.MMRCap - (team.RosterMMR() - outgoing.Member.MMR)
}

// FindCandidates lists signable players in the team's tier who fit the budget
// freed by outgoing. Players with stats come first by final rating, the rest
// by MMR, both descending. At most MaxCandidates are returned.
func FindCandidates(outgoing model.RosterRow, team *model.FranchiseTeam, pool []model.CscPlayer, groups []model.GroupedPlayer, mode model.Mode) []model.Candidate {
	budget := MaxReplacementMMR(team, outgoing)
	byID := aggregator.Index(groups)

	out := make([]model.Candidate, 0)
	for _, p := range pool {
		if !p.Type.IsFreeAgent() || p.MMR > budget || p.TierName() != team.Tier.Name {
			continue
		}
		out = append(out, model.Candidate{
			Player: p,
			Stats:  SelectEntry(byID[p.Steam64ID], mode, team.Tier.Name),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Stats != nil) != (b.Stats != nil) {
			return a.Stats != nil
		}
		if a.Stats != nil {
			return a.Stats.FinalRating > b.Stats.FinalRating
		}
		return a.Player.MMR > b.Player.MMR
	})

	if len(out) > MaxCandidates {
		out = out[:MaxCandidates]
	}
	return out
}

// FreeAgents returns the players in pool with a signable status, in pool order.
func FreeAgents(pool []model.CscPlayer) []model.CscPlayer {
	out := make([]model.CscPlayer, 0)
	for _, p := range pool {
		if p.Type.IsFreeAgent() {
			out = append(out, p)
		}
	}
	return out
}

// FreeAgentCount is the number of players holding one signable status.
type FreeAgentCount struct {
	Type  model.PlayerType `json:"type"`
	Count int              `json:"count"`
}

// FreeAgentCounts tallies pool by signable status in model.FreeAgentTypes
// order, along with the total.
func FreeAgentCounts(pool []model.CscPlayer) (counts []FreeAgentCount, total int) {
	tally := make(map[model.PlayerType]int)
	for _, p := range pool {
		if p.Type.IsFreeAgent() {
			tally[p.Type]++
			total++
		}
	}
	counts = make([]FreeAgentCount, 0, len(model.FreeAgentTypes))
	for _, t := range model.FreeAgentTypes {
		counts = append(counts, FreeAgentCount{Type: t, Count: tally[t]})
	}
	return counts, total
}
