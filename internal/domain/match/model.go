package match

import (
	"strings"
	"time"
)

const (
	// UnknownTeamName substitutes a blank or missing team name.
	UnknownTeamName = "Unknown Team"
	// UnknownPlayerName substitutes a blank goal scorer name.
	UnknownPlayerName = "Unknown Player"
)

// Team is one side of a normalized match. LogoURL is empty when no logo
// could be resolved; the presentation layer substitutes a placeholder.
type Team struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// Score is the single derived score of a match.
type Score struct {
	Team1 int `json:"team1"`
	Team2 int `json:"team2"`
}

// Goal is one scored goal with the running score after it. Minute stays
// nil when the provider did not report one.
type Goal struct {
	ScoreTeam1 int    `json:"scoreTeam1"`
	ScoreTeam2 int    `json:"scoreTeam2"`
	Scorer     string `json:"scorer"`
	Minute     *int   `json:"minute"`
	Comment    string `json:"comment,omitempty"`
}

// Match is the display-ready match record produced by the normalizer.
type Match struct {
	ID              int64      `json:"id"`
	KickoffUTC      time.Time  `json:"kickoffUtc"`
	Team1           Team       `json:"team1"`
	Team2           Team       `json:"team2"`
	LeagueName      string     `json:"leagueName"`
	Season          int        `json:"season,omitempty"`
	Group           string     `json:"group,omitempty"`
	Finished        bool       `json:"isFinished"`
	Score           *Score     `json:"score,omitempty"`
	Goals           []Goal     `json:"goals"`
	LocationCity    string     `json:"locationCity,omitempty"`
	LocationStadium string     `json:"locationStadium,omitempty"`
	Attendance      *int       `json:"attendance,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// HasTeam reports whether name matches either side, case-insensitively.
func (m Match) HasTeam(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return strings.EqualFold(m.Team1.Name, name) || strings.EqualFold(m.Team2.Name, name)
}

// FilterByTeam returns the matches involving the named team. An empty
// name means no filter and returns the input unchanged.
func FilterByTeam(items []Match, name string) []Match {
	if strings.TrimSpace(name) == "" {
		return items
	}

	out := make([]Match, 0, len(items))
	for _, item := range items {
		if item.HasTeam(name) {
			out = append(out, item)
		}
	}
	return out
}

// MinuteSortKey is the ordering key for a goal minute. A nil minute sorts
// as minute zero without mutating the stored value.
func MinuteSortKey(minute *int) int {
	if minute == nil {
		return 0
	}
	return *minute
}
