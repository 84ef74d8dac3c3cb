package usecase

import (
	"context"
	"time"
)

// Result kinds produced at the adapter boundary. Providers tag score
// snapshots with free-form labels; the mapper folds them into this set so
// the normalizer never inspects provider naming.
const (
	ResultKindFinal    = "final"
	ResultKindHalfTime = "half-time"
	ResultKindInterim  = "interim"
	ResultKindOther    = "other"
)

// ExternalTeam is one side of a raw match after boundary normalization.
// Name may still be empty; everything else is guaranteed present.
type ExternalTeam struct {
	ID        int64
	Name      string
	ShortName string
	IconURL   string
}

// ExternalResult is a named score snapshot attached to a raw match.
type ExternalResult struct {
	Kind        string
	PointsTeam1 int
	PointsTeam2 int
}

// ExternalGoal is a raw goal entry. Minute is nil when the provider did
// not report one.
type ExternalGoal struct {
	ScoreTeam1 int
	ScoreTeam2 int
	Scorer     string
	Minute     *int
	Comment    string
}

// ExternalMatch is the guaranteed-complete intermediate match record.
// Adapters run one normalization pass over the wire payload so downstream
// code never re-checks nested optionality: Team1/Team2 are always set
// (possibly with an empty name), slices are never nil, and absent fields
// stay zero-valued.
type ExternalMatch struct {
	ID              int64
	KickoffUTC      time.Time
	LeagueName      string
	Season          int
	Group           string
	Finished        bool
	Team1           ExternalTeam
	Team2           ExternalTeam
	Results         []ExternalResult
	Goals           []ExternalGoal
	LocationCity    string
	LocationStadium string
	Attendance      *int
	UpdatedAt       *time.Time
}

// ExternalLeague is one league offered by the schedule provider.
type ExternalLeague struct {
	ID       int64
	Name     string
	Shortcut string
	Season   string
	Sport    string
}

// MatchScope identifies one page of schedule data. Round zero means the
// provider's current matchday.
type MatchScope struct {
	League string
	Season int
	Round  int
}

// MatchSource fetches the raw match list for a scope.
type MatchSource interface {
	Matches(ctx context.Context, scope MatchScope) ([]ExternalMatch, error)
	Leagues(ctx context.Context) ([]ExternalLeague, error)
}

// LogoSource resolves one team display name to a badge URL. An empty URL
// with a nil error means "no logo found", which is not a failure.
type LogoSource interface {
	TeamBadge(ctx context.Context, name string) (string, error)
}
