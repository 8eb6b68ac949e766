// Package dashboard ties the stats feed and the roster graph together. It
// owns the current snapshot of grouped stats and answers the questions the
// CLI and the API ask about teams and players.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ethsmith/csc-manager/internal/aggregator"
	"github.com/ethsmith/csc-manager/internal/csc"
	"github.com/ethsmith/csc-manager/internal/feed"
	"github.com/ethsmith/csc-manager/internal/model"
)

var (
	ErrNotLoaded      = errors.New("stats not loaded")
	ErrTeamNotFound   = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrMemberNotFound = errors.New("player is not on the team")
	ErrEntryNotFound  = errors.New("no entry in that tier")
	ErrUpstream       = errors.New("upstream fetch failed")
)

// Snapshot is the result of one successful fetch cycle. It is never modified
// after Refresh publishes it, so any number of readers may share it.
type Snapshot struct {
	Records  []model.StatRecord
	Groups   []model.GroupedPlayer
	Rejected int
	LoadedAt time.Time

	byID map[string]*model.GroupedPlayer
}

// Dashboard holds the latest Snapshot and the roster graph source.
type Dashboard struct {
	feed   feed.Source
	roster csc.Source
	logger *zap.SugaredLogger

	snap      atomic.Pointer[Snapshot]
	league    atomic.Pointer[League]
	refreshMu sync.Mutex
}

// New returns a Dashboard with no snapshot loaded.
func New(feedSrc feed.Source, roster csc.Source, logger *zap.SugaredLogger) *Dashboard {
	return &Dashboard{feed: feedSrc, roster: roster, logger: logger}
}

// Refresh runs one fetch-and-rebuild cycle. The new snapshot replaces the
// current one only when the whole cycle succeeds; on failure the previous
// snapshot stays in place and the error is returned.
func (d *Dashboard) Refresh(ctx context.Context) (*Snapshot, error) {
	d.refreshMu.Lock()
	defer d.refreshMu.Unlock()

	start := time.Now()
	records, rejected, err := feed.Fetch(ctx, d.feed)
	if err != nil {
		d.logger.Errorw("Stats refresh failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	groups := aggregator.Group(records)
	s := &Snapshot{
		Records:  records,
		Groups:   groups,
		Rejected: rejected,
		LoadedAt: time.Now(),
		byID:     aggregator.Index(groups),
	}
	d.snap.Store(s)
	d.logger.Infow("Stats refreshed",
		"records", len(records),
		"players", len(groups),
		"rejected", rejected,
		"duration", time.Since(start))
	return s, nil
}

// Snapshot returns the current snapshot, or ErrNotLoaded before the first
// successful Refresh.
func (d *Dashboard) Snapshot() (*Snapshot, error) {
	s := d.snap.Load()
	if s == nil {
		return nil, ErrNotLoaded
	}
	return s, nil
}

// Load returns the current snapshot, refreshing first if there is none.
func (d *Dashboard) Load(ctx context.Context) (*Snapshot, error) {
	if s := d.snap.Load(); s != nil {
		return s, nil
	}
	return d.Refresh(ctx)
}

// InvalidateCache forgets the last fetched League and drops cached roster
// graph payloads when the roster source is cached.
func (d *Dashboard) InvalidateCache(ctx context.Context) error {
	d.league.Store(nil)
	inv, ok := d.roster.(interface{ Invalidate(context.Context) error })
	if !ok {
		return nil
	}
	if err := inv.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate cache: %w", err)
	}
	d.logger.Infow("Roster cache invalidated")
	return nil
}

// League is the roster graph: every active franchise and every player.
type League struct {
	Franchises []model.Franchise
	Players    []model.CscPlayer
}

// Teams fetches franchises and players concurrently. Either failure fails
// the call. A successful fetch is kept for later replacement searches.
func (d *Dashboard) Teams(ctx context.Context) (*League, error) {
	var l League
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fr, err := d.roster.Franchises(gctx)
		l.Franchises = fr
		return err
	})
	g.Go(func() error {
		ps, err := d.roster.Players(gctx)
		l.Players = ps
		return err
	})
	if err := g.Wait(); err != nil {
		d.logger.Errorw("Roster graph fetch failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	d.league.Store(&l)
	return &l, nil
}

// League returns the roster graph from the last successful Teams call,
// fetching it only when none is held.
func (d *Dashboard) League(ctx context.Context) (*League, error) {
	if l := d.league.Load(); l != nil {
		return l, nil
	}
	return d.Teams(ctx)
}

// Franchises fetches the franchise list alone.
func (d *Dashboard) Franchises(ctx context.Context) ([]model.Franchise, error) {
	fr, err := d.roster.Franchises(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return fr, nil
}

// Players fetches the player list alone.
func (d *Dashboard) Players(ctx context.Context) ([]model.CscPlayer, error) {
	ps, err := d.roster.Players(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return ps, nil
}

// FindTeam looks a team up by ID or case-insensitive name and returns it with
// its franchise.
func FindTeam(franchises []model.Franchise, query string) (*model.Franchise, *model.FranchiseTeam, error) {
	q := strings.TrimSpace(query)
	for i := range franchises {
		f := &franchises[i]
		for j := range f.Teams {
			t := &f.Teams[j]
			if t.ID == q || strings.EqualFold(t.Name, q) {
				return f, t, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrTeamNotFound, query)
}
