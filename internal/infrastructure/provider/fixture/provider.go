// Package fixture serves a deterministic matchday for local development
// and demos, so the web UI can run without reaching either upstream API.
package fixture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goalwatch/goalwatch/internal/usecase"
)

// Provider implements both the schedule and the logo source with static
// data. Kickoff times are derived from a time source so the page always
// shows a mix of finished and upcoming matches.
type Provider struct {
	now func() time.Time
}

func New() *Provider {
	return &Provider{now: time.Now}
}

// Matches returns one deterministic matchday regardless of scope.
func (p *Provider) Matches(ctx context.Context, scope usecase.MatchScope) ([]usecase.ExternalMatch, error) {
	_ = ctx

	base := p.now().UTC().Truncate(time.Hour)
	season := scope.Season
	if season == 0 {
		season = base.Year()
	}
	round := scope.Round
	if round == 0 {
		round = 12
	}
	group := groupLabel(round)

	finishedKickoff := base.Add(-26 * time.Hour)
	liveKickoff := base.Add(-1 * time.Hour)
	upcomingKickoff := base.Add(22 * time.Hour)
	updated := base.Add(-30 * time.Minute)
	attendance := 51234

	return []usecase.ExternalMatch{
		{
			ID:         900001,
			KickoffUTC: finishedKickoff,
			LeagueName: "Premier League",
			Season:     season,
			Group:      group,
			Finished:   true,
			Team1:      usecase.ExternalTeam{ID: 1, Name: "Arsenal", ShortName: "ARS", IconURL: "https://static.example.org/badges/arsenal.png"},
			Team2:      usecase.ExternalTeam{ID: 2, Name: "Liverpool", ShortName: "LIV"},
			Results: []usecase.ExternalResult{
				{Kind: usecase.ResultKindHalfTime, PointsTeam1: 1, PointsTeam2: 0},
				{Kind: usecase.ResultKindFinal, PointsTeam1: 2, PointsTeam2: 1},
			},
			Goals: []usecase.ExternalGoal{
				{ScoreTeam1: 1, ScoreTeam2: 0, Scorer: "Saka", Minute: intPtr(23)},
				{ScoreTeam1: 1, ScoreTeam2: 1, Scorer: "Salah", Minute: intPtr(58)},
				{ScoreTeam1: 2, ScoreTeam2: 1, Scorer: "Havertz", Minute: intPtr(81)},
			},
			LocationCity:    "London",
			LocationStadium: "Emirates Stadium",
			Attendance:      &attendance,
			UpdatedAt:       &updated,
		},
		{
			ID:         900002,
			KickoffUTC: liveKickoff,
			LeagueName: "Premier League",
			Season:     season,
			Group:      group,
			Finished:   false,
			Team1:      usecase.ExternalTeam{ID: 3, Name: "Everton", ShortName: "EVE"},
			Team2:      usecase.ExternalTeam{ID: 4, Name: "Chelsea", ShortName: "CHE"},
			Results: []usecase.ExternalResult{
				{Kind: usecase.ResultKindHalfTime, PointsTeam1: 0, PointsTeam2: 1},
			},
			Goals: []usecase.ExternalGoal{
				{ScoreTeam1: 0, ScoreTeam2: 1, Scorer: "Palmer", Minute: intPtr(34)},
			},
			LocationCity:    "Liverpool",
			LocationStadium: "Goodison Park",
		},
		{
			ID:         900003,
			KickoffUTC: upcomingKickoff,
			LeagueName: "Premier League",
			Season:     season,
			Group:      group,
			Finished:   false,
			Team1:           usecase.ExternalTeam{ID: 5, Name: "Newcastle United", ShortName: "NEW"},
			Team2:           usecase.ExternalTeam{ID: 6, Name: "Aston Villa", ShortName: "AVL"},
			Results:         []usecase.ExternalResult{},
			Goals:           []usecase.ExternalGoal{},
			LocationCity:    "Newcastle",
			LocationStadium: "St James' Park",
		},
	}, nil
}

// Leagues returns the static league list backing the fixture matchday.
func (p *Provider) Leagues(ctx context.Context) ([]usecase.ExternalLeague, error) {
	_ = ctx

	year := p.now().UTC().Year()
	return []usecase.ExternalLeague{
		{ID: 4001, Name: "Premier League", Shortcut: "gb1", Season: seasonLabel(year), Sport: "Football"},
		{ID: 4002, Name: "1. Fussball-Bundesliga", Shortcut: "bl1", Season: seasonLabel(year), Sport: "Football"},
	}, nil
}

// TeamBadge resolves a small built-in set of badges. Unknown names get no
// badge, matching the behaviour of the live logo source.
func (p *Provider) TeamBadge(ctx context.Context, name string) (string, error) {
	_ = ctx

	badges := map[string]string{
		"arsenal":          "https://static.example.org/badges/arsenal.png",
		"liverpool":        "https://static.example.org/badges/liverpool.png",
		"chelsea":          "https://static.example.org/badges/chelsea.png",
		"newcastle united": "https://static.example.org/badges/newcastle.png",
	}

	return badges[strings.ToLower(strings.TrimSpace(name))], nil
}

func groupLabel(round int) string {
	return fmt.Sprintf("Matchday %d", round)
}

func seasonLabel(year int) string {
	return fmt.Sprintf("%d-%d", year, year+1)
}

func intPtr(v int) *int {
	return &v
}
