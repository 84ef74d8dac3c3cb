package openligadb

import (
	"testing"
	"time"

	"github.com/goalwatch/goalwatch/internal/usecase"
)

func TestClassifyResultKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   wireResult
		want string
	}{
		{name: "type id final", in: wireResult{ResultTypeID: 2}, want: usecase.ResultKindFinal},
		{name: "type id half time", in: wireResult{ResultTypeID: 1}, want: usecase.ResultKindHalfTime},
		{name: "type id wins over name", in: wireResult{ResultTypeID: 2, ResultName: "Halbzeit"}, want: usecase.ResultKindFinal},
		{name: "name final", in: wireResult{ResultName: "Endergebnis"}, want: usecase.ResultKindFinal},
		{name: "name half time", in: wireResult{ResultName: "Halbzeit"}, want: usecase.ResultKindHalfTime},
		{name: "name interim", in: wireResult{ResultName: "Zwischenstand"}, want: usecase.ResultKindInterim},
		{name: "name case insensitive", in: wireResult{ResultName: "  ENDERGEBNIS  "}, want: usecase.ResultKindFinal},
		{name: "unknown", in: wireResult{ResultName: "Verlängerung"}, want: usecase.ResultKindOther},
		{name: "empty", in: wireResult{}, want: usecase.ResultKindOther},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := classifyResultKind(tc.in); got != tc.want {
				t.Fatalf("classifyResultKind(%+v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMapMatch_NilTeamsYieldZeroTeams(t *testing.T) {
	t.Parallel()

	mapped := mapMatch(wireMatch{MatchID: 5})

	if mapped.Team1.Name != "" || mapped.Team2.Name != "" {
		t.Fatalf("teams = %+v / %+v, want zero values", mapped.Team1, mapped.Team2)
	}
	if mapped.Results == nil || mapped.Goals == nil {
		t.Fatal("Results and Goals must not be nil")
	}
}

func TestParseKickoff(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   wireMatch
		want time.Time
	}{
		{
			name: "utc field preferred",
			in: wireMatch{
				MatchDateTimeUTC: "2026-08-22T14:00:00Z",
				MatchDateTime:    "2026-08-22T16:00:00",
			},
			want: time.Date(2026, 8, 22, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "local fallback without offset",
			in:   wireMatch{MatchDateTime: "2026-08-22T16:00:00"},
			want: time.Date(2026, 8, 22, 16, 0, 0, 0, time.UTC),
		},
		{
			name: "fractional seconds",
			in:   wireMatch{MatchDateTime: "2026-08-22T16:00:00.123"},
			want: time.Date(2026, 8, 22, 16, 0, 0, 123000000, time.UTC),
		},
		{
			name: "absent timestamps",
			in:   wireMatch{},
			want: time.Time{},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := parseKickoff(tc.in); !got.Equal(tc.want) {
				t.Fatalf("parseKickoff = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMapMatch_TrimsNestedText(t *testing.T) {
	t.Parallel()

	mapped := mapMatch(wireMatch{
		LeagueName: "  1. Premier League  ",
		Group:      &wireGroup{GroupName: "  12. Matchday  "},
		Location:   &wireLocation{LocationCity: " London ", LocationStadium: " Wembley "},
		Team1:      &wireTeam{TeamName: "  Arsenal  ", TeamIconURL: " https://icons.example/ars.png "},
	})

	if mapped.LeagueName != "1. Premier League" {
		t.Fatalf("LeagueName = %q", mapped.LeagueName)
	}
	if mapped.Group != "12. Matchday" {
		t.Fatalf("Group = %q", mapped.Group)
	}
	if mapped.LocationCity != "London" || mapped.LocationStadium != "Wembley" {
		t.Fatalf("location = %q / %q", mapped.LocationCity, mapped.LocationStadium)
	}
	if mapped.Team1.Name != "Arsenal" || mapped.Team1.IconURL != "https://icons.example/ars.png" {
		t.Fatalf("Team1 = %+v", mapped.Team1)
	}
}
