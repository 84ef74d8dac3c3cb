package usecase

import (
	"regexp"
	"sort"
	"strings"

	"github.com/goalwatch/goalwatch/internal/domain/match"
)

// Schedule providers prefix league and matchday names with an ordinal,
// e.g. "1. Premier League" or "15. Spieltag". One leading ordinal is
// stripped for display; stripping is idempotent.
var leadingOrdinalRegex = regexp.MustCompile(`^\d+\.\s+`)

// NormalizeMatches joins raw matches with resolved logos and produces the
// display-ready list sorted ascending by kickoff. Output length always
// equals input length; a malformed match degrades field by field instead
// of failing the batch.
func NormalizeMatches(raw []ExternalMatch, logos map[string]string) []match.Match {
	out := make([]match.Match, 0, len(raw))
	for _, item := range raw {
		out = append(out, normalizeMatch(item, logos))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].KickoffUTC.Before(out[j].KickoffUTC)
	})
	return out
}

func normalizeMatch(raw ExternalMatch, logos map[string]string) match.Match {
	normalized := match.Match{
		ID:              raw.ID,
		KickoffUTC:      raw.KickoffUTC,
		Team1:           normalizeTeam(raw.Team1, logos),
		Team2:           normalizeTeam(raw.Team2, logos),
		LeagueName:      StripLeadingOrdinal(raw.LeagueName),
		Season:          raw.Season,
		Group:           StripLeadingOrdinal(raw.Group),
		Finished:        raw.Finished,
		Score:           deriveScore(raw),
		Goals:           normalizeGoals(raw.Goals),
		LocationCity:    strings.TrimSpace(raw.LocationCity),
		LocationStadium: strings.TrimSpace(raw.LocationStadium),
		Attendance:      raw.Attendance,
		UpdatedAt:       raw.UpdatedAt,
	}
	return normalized
}

func normalizeTeam(raw ExternalTeam, logos map[string]string) match.Team {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = match.UnknownTeamName
	}

	logo := logos[name]
	if logo == "" {
		logo = strings.TrimSpace(raw.IconURL)
	}

	return match.Team{
		ID:      raw.ID,
		Name:    name,
		LogoURL: logo,
	}
}

// deriveScore picks the single authoritative score for a match. Priority:
// the final result of a finished match, then a half-time or interim
// snapshot, then the running score of the chronologically last goal.
// With none of those the match has no score yet.
func deriveScore(raw ExternalMatch) *match.Score {
	if raw.Finished {
		for _, result := range raw.Results {
			if result.Kind == ResultKindFinal {
				return &match.Score{Team1: result.PointsTeam1, Team2: result.PointsTeam2}
			}
		}
	}

	for _, result := range raw.Results {
		if result.Kind == ResultKindHalfTime || result.Kind == ResultKindInterim {
			return &match.Score{Team1: result.PointsTeam1, Team2: result.PointsTeam2}
		}
	}

	if len(raw.Goals) > 0 {
		ordered := sortGoalsByMinute(raw.Goals)
		last := ordered[len(ordered)-1]
		return &match.Score{Team1: last.ScoreTeam1, Team2: last.ScoreTeam2}
	}

	return nil
}

func normalizeGoals(raw []ExternalGoal) []match.Goal {
	ordered := sortGoalsByMinute(raw)

	out := make([]match.Goal, 0, len(ordered))
	for _, goal := range ordered {
		scorer := strings.TrimSpace(goal.Scorer)
		if scorer == "" {
			scorer = match.UnknownPlayerName
		}

		out = append(out, match.Goal{
			ScoreTeam1: goal.ScoreTeam1,
			ScoreTeam2: goal.ScoreTeam2,
			Scorer:     scorer,
			Minute:     goal.Minute,
			Comment:    strings.TrimSpace(goal.Comment),
		})
	}
	return out
}

func sortGoalsByMinute(goals []ExternalGoal) []ExternalGoal {
	ordered := make([]ExternalGoal, len(goals))
	copy(ordered, goals)
	sort.SliceStable(ordered, func(i, j int) bool {
		return match.MinuteSortKey(ordered[i].Minute) < match.MinuteSortKey(ordered[j].Minute)
	})
	return ordered
}

// StripLeadingOrdinal trims the value and removes one leading numeric
// ordinal prefix of the form "<digits>. ".
func StripLeadingOrdinal(value string) string {
	value = strings.TrimSpace(value)
	return strings.TrimSpace(leadingOrdinalRegex.ReplaceAllString(value, ""))
}
