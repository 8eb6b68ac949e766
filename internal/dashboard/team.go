package dashboard

import (
	"context"
	"fmt"

	"github.com/ethsmith/csc-manager/internal/aggregator"
	"github.com/ethsmith/csc-manager/internal/model"
	"github.com/ethsmith/csc-manager/internal/roster"
)

// TeamView is one team's roster merged against the stats feed.
type TeamView struct {
	Franchise *model.Franchise     `json:"franchise"`
	Team      *model.FranchiseTeam `json:"team"`
	Mode      model.Mode           `json:"mode"`
	Rows      []model.RosterRow    `json:"rows"`
	Aggregate model.TeamAggregate  `json:"aggregate"`
}

// ReplacementView lists who could replace one member within the cap.
type ReplacementView struct {
	Team       *model.FranchiseTeam `json:"team"`
	Outgoing   model.RosterRow      `json:"outgoing"`
	Budget     int                  `json:"maxMmr"`
	Candidates []model.Candidate    `json:"candidates"`
}

// Roster merges a team's roster against the current snapshot. It fetches
// the roster graph fresh but never the stats feed; ErrNotLoaded is returned
// until a snapshot exists.
func (d *Dashboard) Roster(ctx context.Context, teamQuery string, mode model.Mode) (*TeamView, error) {
	snap, err := d.Snapshot()
	if err != nil {
		return nil, err
	}
	league, err := d.Teams(ctx)
	if err != nil {
		return nil, err
	}
	return buildTeamView(snap, league, teamQuery, mode)
}

func buildTeamView(snap *Snapshot, league *League, teamQuery string, mode model.Mode) (*TeamView, error) {
	f, t, err := FindTeam(league.Franchises, teamQuery)
	if err != nil {
		return nil, err
	}
	rows := roster.MergeRoster(t, snap.Groups, league.Players, mode)
	return &TeamView{
		Franchise: f,
		Team:      t,
		Mode:      mode,
		Rows:      rows,
		Aggregate: aggregator.TeamAggregate(rows, t.Tier.MMRCap),
	}, nil
}

// Replacements finds candidates to replace the member identified by steamID.
// The search runs over the current snapshot and the last fetched roster
// graph; the roster source is only hit when no graph is held yet.
func (d *Dashboard) Replacements(ctx context.Context, teamQuery, steamID string, mode model.Mode) (*ReplacementView, error) {
	snap, err := d.Snapshot()
	if err != nil {
		return nil, err
	}
	league, err := d.League(ctx)
	if err != nil {
		return nil, err
	}
	view, err := buildTeamView(snap, league, teamQuery, mode)
	if err != nil {
		return nil, err
	}
	out, ok := findMember(view.Rows, steamID)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrMemberNotFound, steamID, view.Team.Name)
	}
	return &ReplacementView{
		Team:       view.Team,
		Outgoing:   out,
		Budget:     roster.MaxReplacementMMR(view.Team, out),
		Candidates: roster.FindCandidates(out, view.Team, league.Players, snap.Groups, mode),
	}, nil
}

// findMember matches steamID as given, then in normalised form.
func findMember(rows []model.RosterRow, steamID string) (model.RosterRow, bool) {
	if r, ok := roster.FindMember(rows, steamID); ok {
		return r, true
	}
	return roster.FindMember(rows, ParseSteamID(steamID))
}
