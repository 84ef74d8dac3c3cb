package web

import (
	"net/http"
	"time"

	"github.com/goalwatch/goalwatch/internal/domain/match"
)

type matchdayDTO struct {
	Matches   []match.Match `json:"matches"`
	TeamNames []string      `json:"teamNames"`
	Round     int           `json:"round"`
	FetchedAt time.Time     `json:"fetchedAt"`
}

type leagueDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Shortcut string `json:"shortcut"`
	Season   string `json:"season"`
	Sport    string `json:"sport"`
}

// ListMatches mirrors the matchday page as JSON, with the same round and
// team query semantics.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.ListMatches")
	defer span.End()

	q, err := h.parseQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	day, err := h.matchdays.Matchday(ctx, q.Round)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "round", q.Round, "error", err)
		writeError(ctx, w, err)
		return
	}

	matches := day.Matches
	if q.Team != "" {
		matches = match.FilterByTeam(matches, q.Team)
	}

	writeSuccess(ctx, w, http.StatusOK, matchdayDTO{
		Matches:   matches,
		TeamNames: day.TeamNames,
		Round:     q.Round,
		FetchedAt: day.FetchedAt,
	})
}

// ListTeams returns the distinct team names of the selected matchday.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.ListTeams")
	defer span.End()

	q, err := h.parseQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	day, err := h.matchdays.Matchday(ctx, q.Round)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "round", q.Round, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, day.TeamNames)
}

// ListLeagues passes through the leagues offered by the schedule
// provider.
func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.matchdays.Leagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueDTO{
			ID:       l.ID,
			Name:     l.Name,
			Shortcut: l.Shortcut,
			Season:   l.Season,
			Sport:    l.Sport,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
