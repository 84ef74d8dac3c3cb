package openligadb

import (
	"strings"
	"time"

	"github.com/goalwatch/goalwatch/internal/usecase"
)

// Provider labels for score snapshots. resultTypeID is authoritative when
// present; the German display names cover older seasons that predate it.
const (
	resultTypeHalfTime = 1
	resultTypeFinal    = 2

	resultNameFinal    = "endergebnis"
	resultNameHalfTime = "halbzeit"
	resultNameInterim  = "zwischenstand"
)

// mapMatches runs the single boundary normalization pass: every nested
// optional field of the wire payload is resolved here so downstream code
// receives guaranteed-complete records.
func mapMatches(payload []wireMatch) []usecase.ExternalMatch {
	out := make([]usecase.ExternalMatch, 0, len(payload))
	for _, item := range payload {
		out = append(out, mapMatch(item))
	}
	return out
}

func mapMatch(item wireMatch) usecase.ExternalMatch {
	mapped := usecase.ExternalMatch{
		ID:         item.MatchID,
		KickoffUTC: parseKickoff(item),
		LeagueName: strings.TrimSpace(item.LeagueName),
		Season:     item.LeagueSeason,
		Finished:   item.MatchIsFinished,
		Team1:      mapTeam(item.Team1),
		Team2:      mapTeam(item.Team2),
		Results:    mapResults(item.MatchResults),
		Goals:      mapGoals(item.Goals),
		Attendance: item.NumberOfViewers,
		UpdatedAt:  parseProviderTime(item.LastUpdateDateTime),
	}

	if item.Group != nil {
		mapped.Group = strings.TrimSpace(item.Group.GroupName)
	}
	if item.Location != nil {
		mapped.LocationCity = strings.TrimSpace(item.Location.LocationCity)
		mapped.LocationStadium = strings.TrimSpace(item.Location.LocationStadium)
	}
	return mapped
}

func mapTeam(team *wireTeam) usecase.ExternalTeam {
	if team == nil {
		return usecase.ExternalTeam{}
	}
	return usecase.ExternalTeam{
		ID:        team.TeamID,
		Name:      strings.TrimSpace(team.TeamName),
		ShortName: strings.TrimSpace(team.ShortName),
		IconURL:   strings.TrimSpace(team.TeamIconURL),
	}
}

func mapResults(results []wireResult) []usecase.ExternalResult {
	out := make([]usecase.ExternalResult, 0, len(results))
	for _, item := range results {
		out = append(out, usecase.ExternalResult{
			Kind:        classifyResultKind(item),
			PointsTeam1: item.PointsTeam1,
			PointsTeam2: item.PointsTeam2,
		})
	}
	return out
}

func classifyResultKind(item wireResult) string {
	switch item.ResultTypeID {
	case resultTypeFinal:
		return usecase.ResultKindFinal
	case resultTypeHalfTime:
		return usecase.ResultKindHalfTime
	}

	switch strings.ToLower(strings.TrimSpace(item.ResultName)) {
	case resultNameFinal:
		return usecase.ResultKindFinal
	case resultNameHalfTime:
		return usecase.ResultKindHalfTime
	case resultNameInterim:
		return usecase.ResultKindInterim
	default:
		return usecase.ResultKindOther
	}
}

func mapGoals(goals []wireGoal) []usecase.ExternalGoal {
	out := make([]usecase.ExternalGoal, 0, len(goals))
	for _, item := range goals {
		out = append(out, usecase.ExternalGoal{
			ScoreTeam1: item.ScoreTeam1,
			ScoreTeam2: item.ScoreTeam2,
			Scorer:     strings.TrimSpace(item.GoalGetterName),
			Minute:     item.MatchMinute,
			Comment:    strings.TrimSpace(item.Comment),
		})
	}
	return out
}

func mapLeagues(payload []wireLeague) []usecase.ExternalLeague {
	out := make([]usecase.ExternalLeague, 0, len(payload))
	for _, item := range payload {
		out = append(out, usecase.ExternalLeague{
			ID:       item.LeagueID,
			Name:     strings.TrimSpace(item.LeagueName),
			Shortcut: strings.TrimSpace(item.LeagueShortcut),
			Season:   strings.TrimSpace(item.LeagueSeason),
			Sport:    strings.TrimSpace(item.Sport.SportName),
		})
	}
	return out
}

func parseKickoff(item wireMatch) time.Time {
	if parsed := parseProviderTime(item.MatchDateTimeUTC); parsed != nil {
		return parsed.UTC()
	}
	// Older records carry only the local timestamp without an offset;
	// treating it as UTC keeps ordering stable.
	if parsed := parseProviderTime(item.MatchDateTime); parsed != nil {
		return parsed.UTC()
	}
	return time.Time{}
}

var providerTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseProviderTime(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range providerTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed
		}
	}
	return nil
}
