package fixture

import (
	"context"
	"testing"
	"time"

	"github.com/goalwatch/goalwatch/internal/usecase"
)

func TestProvider_MatchesAreDeterministic(t *testing.T) {
	t.Parallel()

	p := New()
	fixed := time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	scope := usecase.MatchScope{League: "gb1", Season: 2026, Round: 3}
	first, err := p.Matches(context.Background(), scope)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	second, err := p.Matches(context.Background(), scope)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("got %d and %d matches, want 3 each", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || !first[i].KickoffUTC.Equal(second[i].KickoffUTC) {
			t.Fatalf("match %d differs between calls", i)
		}
	}

	var finished, upcoming bool
	for _, m := range first {
		if m.Finished {
			finished = true
		}
		if m.KickoffUTC.After(fixed) {
			upcoming = true
		}
		if m.Season != 2026 {
			t.Fatalf("Season = %d, want scope season", m.Season)
		}
		if m.Group != "Matchday 3" {
			t.Fatalf("Group = %q", m.Group)
		}
		if m.Results == nil || m.Goals == nil {
			t.Fatal("Results and Goals must not be nil")
		}
	}
	if !finished || !upcoming {
		t.Fatalf("want a mix of finished and upcoming matches, got finished=%v upcoming=%v", finished, upcoming)
	}
}

func TestProvider_TeamBadge(t *testing.T) {
	t.Parallel()

	p := New()

	badge, err := p.TeamBadge(context.Background(), "  ARSENAL  ")
	if err != nil {
		t.Fatalf("TeamBadge: %v", err)
	}
	if badge == "" {
		t.Fatal("known team has no badge")
	}

	badge, err = p.TeamBadge(context.Background(), "Ruritania Rovers")
	if err != nil {
		t.Fatalf("TeamBadge: %v", err)
	}
	if badge != "" {
		t.Fatalf("unknown team badge = %q, want absent", badge)
	}
}

func TestProvider_Leagues(t *testing.T) {
	t.Parallel()

	p := New()
	p.now = func() time.Time { return time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC) }

	leagues, err := p.Leagues(context.Background())
	if err != nil {
		t.Fatalf("Leagues: %v", err)
	}
	if len(leagues) != 2 {
		t.Fatalf("got %d leagues, want 2", len(leagues))
	}
	if leagues[0].Season != "2026-2027" {
		t.Fatalf("Season = %q", leagues[0].Season)
	}
}
