package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"

	"github.com/goalwatch/goalwatch/internal/domain/match"
	"github.com/goalwatch/goalwatch/internal/platform/logging"
	"github.com/goalwatch/goalwatch/internal/usecase"
)

type Handler struct {
	matchdays *usecase.MatchdayService
	render    *render.Render
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(matchdays *usecase.MatchdayService, renderer *render.Render, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if renderer == nil {
		renderer = NewRender()
	}

	return &Handler{
		matchdays: matchdays,
		render:    renderer,
		logger:    logger,
		validator: validator.New(),
	}
}

type matchdayQuery struct {
	Round int    `validate:"min=0"`
	Team  string `validate:"omitempty,max=120"`
}

func (h *Handler) parseQuery(r *http.Request) (matchdayQuery, error) {
	q := matchdayQuery{
		Team: strings.TrimSpace(r.URL.Query().Get("team")),
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("round")); raw != "" {
		round, err := strconv.Atoi(raw)
		if err != nil {
			return matchdayQuery{}, fmt.Errorf("%w: round must be a number", usecase.ErrInvalidInput)
		}
		q.Round = round
	}

	if err := h.validator.Struct(q); err != nil {
		return matchdayQuery{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return q, nil
}

// matchdayPage is the view model behind the matchday template.
type matchdayPage struct {
	Title        string
	TeamFilter   string
	TeamNames    []string
	Matches      []match.Match
	TotalMatches int
	Round        int
	FetchedAt    time.Time
}

type errorPage struct {
	Title   string
	Message string
}

// MatchdayPage renders the schedule as filterable cards. An expected
// empty matchday renders the empty state; only unexpected failures fall
// through to the error panel.
func (h *Handler) MatchdayPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.MatchdayPage")
	defer span.End()

	q, err := h.parseQuery(r)
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid request: check the round and team parameters.")
		return
	}

	day, err := h.matchdays.Matchday(ctx, q.Round)
	if err != nil {
		h.logger.ErrorContext(ctx, "load matchday failed", "round", q.Round, "error", err)
		h.renderError(w, http.StatusInternalServerError, "Something went wrong while loading the schedule. Please try again later.")
		return
	}

	matches := day.Matches
	if q.Team != "" {
		matches = match.FilterByTeam(matches, q.Team)
	}

	page := matchdayPage{
		Title:        "GoalWatch",
		TeamFilter:   q.Team,
		TeamNames:    day.TeamNames,
		Matches:      matches,
		TotalMatches: len(day.Matches),
		Round:        q.Round,
		FetchedAt:    day.FetchedAt,
	}

	if err := h.render.HTML(w, http.StatusOK, "matchday", page); err != nil {
		h.logger.ErrorContext(ctx, "render matchday failed", "error", err)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, status int, message string) {
	page := errorPage{
		Title:   "GoalWatch",
		Message: message,
	}
	if err := h.render.HTML(w, status, "error", page); err != nil {
		h.logger.Error("render error page failed", "error", err)
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
