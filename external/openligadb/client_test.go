package openligadb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goalwatch/goalwatch/internal/platform/logging"
	"github.com/goalwatch/goalwatch/internal/platform/resilience"
	"github.com/goalwatch/goalwatch/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		Logger:     logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled: false,
		},
	})
}

const sampleMatchday = `[
  {
    "matchID": 72000,
    "matchDateTimeUTC": "2026-08-22T14:00:00Z",
    "leagueName": "1. Premier League",
    "leagueSeason": 2026,
    "group": {"groupName": "12. Matchday", "groupOrderID": 12},
    "team1": {"teamId": 1, "teamName": "Liverpool FC", "shortName": "LFC", "teamIconUrl": "https://icons.example/lfc.png"},
    "team2": {"teamId": 2, "teamName": "Chelsea FC", "shortName": "CFC"},
    "matchIsFinished": true,
    "matchResults": [
      {"resultName": "Halbzeit", "pointsTeam1": 1, "pointsTeam2": 0, "resultTypeID": 1},
      {"resultName": "Endergebnis", "pointsTeam1": 2, "pointsTeam2": 1, "resultTypeID": 2}
    ],
    "goals": [
      {"scoreTeam1": 1, "scoreTeam2": 0, "goalGetterName": "Salah", "matchMinute": 25}
    ],
    "location": {"locationCity": "Liverpool", "locationStadium": "Anfield"},
    "numberOfViewers": 53000
  }
]`

func TestClient_Matches(t *testing.T) {
	t.Parallel()

	var gotPath atomic.Value
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleMatchday))
	})

	matches, err := client.Matches(context.Background(), usecase.MatchScope{League: "gb1"})
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if path, _ := gotPath.Load().(string); path != "/getmatchdata/gb1" {
		t.Fatalf("request path = %q, want /getmatchdata/gb1", path)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}

	m := matches[0]
	if m.ID != 72000 {
		t.Fatalf("ID = %d", m.ID)
	}
	if !m.Finished {
		t.Fatal("Finished = false, want true")
	}
	if m.Team1.Name != "Liverpool FC" || m.Team2.Name != "Chelsea FC" {
		t.Fatalf("teams = %q vs %q", m.Team1.Name, m.Team2.Name)
	}
	if m.Team1.IconURL != "https://icons.example/lfc.png" {
		t.Fatalf("Team1.IconURL = %q", m.Team1.IconURL)
	}
	if len(m.Results) != 2 || m.Results[1].Kind != usecase.ResultKindFinal {
		t.Fatalf("Results = %+v", m.Results)
	}
	if len(m.Goals) != 1 || m.Goals[0].Minute == nil || *m.Goals[0].Minute != 25 {
		t.Fatalf("Goals = %+v", m.Goals)
	}
	if m.LocationStadium != "Anfield" {
		t.Fatalf("LocationStadium = %q", m.LocationStadium)
	}
	if m.Attendance == nil || *m.Attendance != 53000 {
		t.Fatalf("Attendance = %v", m.Attendance)
	}
	wantKickoff := time.Date(2026, 8, 22, 14, 0, 0, 0, time.UTC)
	if !m.KickoffUTC.Equal(wantKickoff) {
		t.Fatalf("KickoffUTC = %v, want %v", m.KickoffUTC, wantKickoff)
	}
}

func TestClient_MatchesWithRoundBuildsSeasonPath(t *testing.T) {
	t.Parallel()

	var gotPath atomic.Value
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.Matches(context.Background(), usecase.MatchScope{League: "bl1", Season: 2026, Round: 7})
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if path, _ := gotPath.Load().(string); path != "/getmatchdata/bl1/2026/7" {
		t.Fatalf("request path = %q, want /getmatchdata/bl1/2026/7", path)
	}
}

func TestClient_MatchesRoundWithoutSeasonRejected(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	})

	if _, err := client.Matches(context.Background(), usecase.MatchScope{League: "gb1", Round: 3}); err == nil {
		t.Fatal("expected error for round without season")
	}
}

func TestClient_MatchesEmptyLeagueRejected(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	})

	if _, err := client.Matches(context.Background(), usecase.MatchScope{}); err == nil {
		t.Fatal("expected error for empty league")
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		MaxRetries: 1,
		Logger:     logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled: false,
		},
	})

	if _, err := client.Matches(context.Background(), usecase.MatchScope{League: "gb1"}); err != nil {
		t.Fatalf("Matches after retry: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("upstream called %d times, want 2", got)
	}
}

func TestClient_DoesNotRetryClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := client.Matches(context.Background(), usecase.MatchScope{League: "nope"}); err == nil {
		t.Fatal("expected error for 404 response")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("upstream called %d times, want 1", got)
	}
}

func TestClient_OpenCircuitShortCircuits(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent when circuit is open")
	})
	client.circuitEnabled = true
	client.breaker = resilience.NewCircuitBreaker(1, time.Minute, 1)
	client.breaker.RecordFailure()

	_, err := client.Matches(context.Background(), usecase.MatchScope{League: "gb1"})
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("error = %v, want ErrDependencyUnavailable", err)
	}
}

func TestClient_Leagues(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/getavailableleagues" {
			t.Errorf("request path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[
			{"leagueId": 4608, "leagueName": "1. Fußball-Bundesliga", "leagueShortcut": "bl1", "leagueSeason": "2026", "sport": {"sportId": 1, "sportName": "Fußball"}}
		]`))
	})

	leagues, err := client.Leagues(context.Background())
	if err != nil {
		t.Fatalf("Leagues: %v", err)
	}
	if len(leagues) != 1 {
		t.Fatalf("got %d leagues, want 1", len(leagues))
	}
	if leagues[0].Shortcut != "bl1" || leagues[0].Sport != "Fußball" {
		t.Fatalf("league = %+v", leagues[0])
	}
}
