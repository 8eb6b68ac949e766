package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ethsmith/csc-manager/internal/aggregator"
	"github.com/ethsmith/csc-manager/internal/dashboard"
	"github.com/ethsmith/csc-manager/internal/model"
	"github.com/ethsmith/csc-manager/internal/report"
	"github.com/ethsmith/csc-manager/internal/roster"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// PlayerListItem is one row of GET /players.
type PlayerListItem struct {
	SteamID string            `json:"steamId"`
	Name    string            `json:"name"`
	Tier    string            `json:"tier"`
	Stats   *model.StatRecord `json:"stats"`
	Band    string            `json:"band"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	body := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"loaded":    false,
	}
	if snap, err := s.dash.Snapshot(); err == nil {
		body["loaded"] = true
		body["loadedAt"] = snap.LoadedAt.UTC()
		body["players"] = len(snap.Groups)
	}
	respondJSON(w, http.StatusOK, body)
}

// listPlayers serves the player listing.
// Query params: mode, tier, q, sort, dir (asc|desc), filter (repeatable, key:op:value)
func (s *Server) listPlayers(w http.ResponseWriter, r *http.Request) {
	snap, err := s.dash.Snapshot()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	mode, ok := s.mode(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	opts := aggregator.ListOptions{
		Mode:    mode,
		Tier:    q.Get("tier"),
		Search:  q.Get("q"),
		SortKey: q.Get("sort"),
		Desc:    strings.EqualFold(q.Get("dir"), "desc"),
	}
	for _, raw := range q["filter"] {
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) < 2 {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid filter %q: want key:op:value", raw))
			return
		}
		f := aggregator.StatFilter{Key: parts[0], Op: parts[1]}
		if len(parts) == 3 {
			f.Value = parts[2]
		}
		opts.Filters = append(opts.Filters, f)
	}

	rows, err := aggregator.Listing(snap.Groups, opts)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	items := make([]PlayerListItem, len(rows))
	for i, row := range rows {
		items[i] = PlayerListItem{
			SteamID: row.Group.SteamID,
			Name:    row.Group.Name,
			Tier:    row.Tier,
			Stats:   row.Stats,
			Band:    string(report.RatingBand(row.Stats.FinalRating)),
		}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"mode":    mode,
		"players": items,
		"count":   len(items),
	})
}

func (s *Server) listTiers(w http.ResponseWriter, r *http.Request) {
	snap, err := s.dash.Snapshot()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	mode, ok := s.mode(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"mode":  mode,
		"tiers": aggregator.TierOptions(snap.Groups, mode),
	})
}

func (s *Server) getPlayer(w http.ResponseWriter, r *http.Request) {
	snap, err := s.dash.Snapshot()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	mode, ok := s.mode(w, r)
	if !ok {
		return
	}
	v, err := snap.PlayerDetail(chi.URLParam(r, "id"), mode, r.URL.Query().Get("tier"))
	if err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	snap, err := s.dash.Refresh(r.Context())
	if err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"records":  len(snap.Records),
		"players":  len(snap.Groups),
		"rejected": snap.Rejected,
		"loadedAt": snap.LoadedAt.UTC(),
	})
}

func (s *Server) listFranchises(w http.ResponseWriter, r *http.Request) {
	fr, err := s.dash.Franchises(r.Context())
	if err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"franchises": fr,
		"count":      len(fr),
	})
}

func (s *Server) listFreeAgents(w http.ResponseWriter, r *http.Request) {
	ps, err := s.dash.Players(r.Context())
	if err != nil {
		s.respondErr(w, err)
		return
	}
	counts, total := roster.FreeAgentCounts(ps)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"players": roster.FreeAgents(ps),
		"counts":  counts,
		"total":   total,
	})
}

func (s *Server) getRoster(w http.ResponseWriter, r *http.Request) {
	mode, ok := s.mode(w, r)
	if !ok {
		return
	}
	v, err := s.dash.Roster(r.Context(), chi.URLParam(r, "team"), mode)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (s *Server) getReplacements(w http.ResponseWriter, r *http.Request) {
	mode, ok := s.mode(w, r)
	if !ok {
		return
	}
	v, err := s.dash.Replacements(r.Context(), chi.URLParam(r, "team"), chi.URLParam(r, "steamID"), mode)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (s *Server) invalidateCache(w http.ResponseWriter, r *http.Request) {
	if err := s.dash.InvalidateCache(r.Context()); err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"invalidated": true})
}

// mode reads ?mode=, writing a 400 when it is not recognised.
func (s *Server) mode(w http.ResponseWriter, r *http.Request) (model.Mode, bool) {
	m, err := model.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return m, true
}

// respondErr maps dashboard errors onto HTTP statuses.
func (s *Server) respondErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, dashboard.ErrNotLoaded):
		status = http.StatusServiceUnavailable
	case errors.Is(err, dashboard.ErrTeamNotFound),
		errors.Is(err, dashboard.ErrPlayerNotFound),
		errors.Is(err, dashboard.ErrMemberNotFound),
		errors.Is(err, dashboard.ErrEntryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, dashboard.ErrUpstream):
		status = http.StatusBadGateway
	}
	if status >= 500 {
		s.logger.Warnw("Request failed", "status", status, "error", err)
	}
	respondError(w, status, err.Error())
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
