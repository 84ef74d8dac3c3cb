package match

import "testing"

func TestMatch_HasTeam(t *testing.T) {
	t.Parallel()

	m := Match{
		Team1: Team{Name: "Liverpool FC"},
		Team2: Team{Name: "Chelsea FC"},
	}

	cases := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "exact team1", query: "Liverpool FC", want: true},
		{name: "exact team2", query: "Chelsea FC", want: true},
		{name: "case insensitive", query: "liverpool fc", want: true},
		{name: "surrounding whitespace", query: "  Chelsea FC  ", want: true},
		{name: "substring does not match", query: "Liverpool", want: false},
		{name: "unknown team", query: "Arsenal", want: false},
		{name: "empty query", query: "", want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := m.HasTeam(tc.query); got != tc.want {
				t.Fatalf("HasTeam(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestFilterByTeam(t *testing.T) {
	t.Parallel()

	items := []Match{
		{ID: 1, Team1: Team{Name: "Liverpool FC"}, Team2: Team{Name: "Chelsea FC"}},
		{ID: 2, Team1: Team{Name: "Arsenal"}, Team2: Team{Name: "Everton"}},
		{ID: 3, Team1: Team{Name: "Chelsea FC"}, Team2: Team{Name: "Everton"}},
	}

	filtered := FilterByTeam(items, "chelsea fc")
	if len(filtered) != 2 {
		t.Fatalf("filtered %d matches, want 2", len(filtered))
	}
	if filtered[0].ID != 1 || filtered[1].ID != 3 {
		t.Fatalf("filtered wrong matches: %v, %v", filtered[0].ID, filtered[1].ID)
	}

	all := FilterByTeam(items, "")
	if len(all) != len(items) {
		t.Fatalf("empty filter returned %d matches, want %d", len(all), len(items))
	}

	none := FilterByTeam(items, "Real Madrid")
	if len(none) != 0 {
		t.Fatalf("unknown team returned %d matches, want 0", len(none))
	}
}

func TestMinuteSortKey(t *testing.T) {
	t.Parallel()

	if got := MinuteSortKey(nil); got != 0 {
		t.Fatalf("MinuteSortKey(nil) = %d, want 0", got)
	}

	minute := 57
	if got := MinuteSortKey(&minute); got != 57 {
		t.Fatalf("MinuteSortKey(&57) = %d, want 57", got)
	}
	if minute != 57 {
		t.Fatalf("stored minute mutated to %d", minute)
	}
}
