package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/goalwatch/goalwatch/internal/domain/match"
	"github.com/goalwatch/goalwatch/internal/platform/cache"
	"github.com/goalwatch/goalwatch/internal/platform/logging"
)

const defaultLogoWorkers = 8

// Matchday is the page view model: the normalized match list plus the
// distinct team names appearing in it, locale-aware sorted.
type Matchday struct {
	Matches   []match.Match
	TeamNames []string
	FetchedAt time.Time
}

// MatchdayService orchestrates one render's data pipeline: fetch raw
// matches, fan out logo lookups, normalize, and memoize the result for
// the revalidation window.
type MatchdayService struct {
	source      MatchSource
	logos       LogoSource
	cache       *cache.Store
	logger      *logging.Logger
	scope       MatchScope
	logoWorkers int
}

func NewMatchdayService(
	source MatchSource,
	logos LogoSource,
	store *cache.Store,
	scope MatchScope,
	logoWorkers int,
	logger *logging.Logger,
) *MatchdayService {
	if logger == nil {
		logger = logging.Default()
	}
	if logoWorkers < 1 {
		logoWorkers = defaultLogoWorkers
	}

	return &MatchdayService{
		source:      source,
		logos:       logos,
		cache:       store,
		logger:      logger,
		scope:       scope,
		logoWorkers: logoWorkers,
	}
}

// Matchday returns the normalized matchday for the configured league.
// Round zero selects the provider's current matchday. Results are served
// from the TTL cache when fresh; a cache miss recomputes the whole page
// data from scratch.
func (s *MatchdayService) Matchday(ctx context.Context, round int) (Matchday, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.Matchday")
	defer span.End()

	if round < 0 {
		return Matchday{}, fmt.Errorf("%w: round must not be negative", ErrInvalidInput)
	}

	scope := s.scope
	scope.Round = round

	if s.cache == nil {
		return s.load(ctx, scope)
	}

	key := fmt.Sprintf("matchday:%s:%d:%d", scope.League, scope.Season, scope.Round)
	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.load(ctx, scope)
	})
	if err != nil {
		return Matchday{}, err
	}

	day, ok := value.(Matchday)
	if !ok {
		return Matchday{}, fmt.Errorf("unexpected cache payload type %T", value)
	}
	return day, nil
}

// Leagues lists the leagues offered by the schedule provider.
func (s *MatchdayService) Leagues(ctx context.Context) ([]ExternalLeague, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.Leagues")
	defer span.End()

	leagues, err := s.source.Leagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list leagues: %v", ErrDependencyUnavailable, err)
	}
	return leagues, nil
}

func (s *MatchdayService) load(ctx context.Context, scope MatchScope) (Matchday, error) {
	raw, err := s.source.Matches(ctx, scope)
	if err != nil {
		if ctx.Err() != nil {
			return Matchday{}, ctx.Err()
		}
		// Upstream trouble is not a page failure: the schedule degrades
		// to "no matches" and the empty state renders.
		s.logger.WarnContext(ctx, "match source failed, serving empty matchday",
			"league", scope.League,
			"season", scope.Season,
			"round", scope.Round,
			"error", err,
		)
		raw = nil
	}

	logos := s.resolveLogos(ctx, distinctTeamNames(raw))
	matches := NormalizeMatches(raw, logos)

	return Matchday{
		Matches:   matches,
		TeamNames: s.sortedTeamNames(matches),
		FetchedAt: time.Now().UTC(),
	}, nil
}

// resolveLogos fans one badge lookup per distinct team name out to a
// worker pool and joins all results before returning. A failed lookup
// leaves the name unmapped rather than failing the join.
func (s *MatchdayService) resolveLogos(ctx context.Context, names []string) map[string]string {
	out := make(map[string]string, len(names))
	if len(names) == 0 || s.logos == nil {
		return out
	}

	pool, err := ants.NewPool(s.logoWorkers)
	if err != nil {
		s.logger.WarnContext(ctx, "create logo worker pool failed", "error", err)
		return out
	}
	defer pool.Release()

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, name := range names {
		name := name
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			badge, lookupErr := s.logos.TeamBadge(ctx, name)
			if lookupErr != nil {
				s.logger.WarnContext(ctx, "logo lookup failed", "team", name, "error", lookupErr)
				return
			}
			if badge == "" {
				return
			}

			mu.Lock()
			out[name] = badge
			mu.Unlock()
		}); err != nil {
			wg.Done()
			s.logger.WarnContext(ctx, "submit logo lookup failed", "team", name, "error", err)
		}
	}
	wg.Wait()

	return out
}

func (s *MatchdayService) sortedTeamNames(matches []match.Match) []string {
	seen := make(map[string]struct{}, len(matches)*2)
	names := make([]string, 0, len(matches)*2)
	for _, item := range matches {
		for _, name := range []string{item.Team1.Name, item.Team2.Name} {
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	// collate.Collator keeps mutable sort state, so build one per call
	// instead of sharing it across concurrent loads.
	collate.New(language.English).SortStrings(names)
	return names
}

// distinctTeamNames collects the trimmed team names across all matches,
// preserving first-seen order so lookups stay deterministic.
func distinctTeamNames(raw []ExternalMatch) []string {
	seen := make(map[string]struct{}, len(raw)*2)
	names := make([]string, 0, len(raw)*2)
	for _, item := range raw {
		for _, team := range []ExternalTeam{item.Team1, item.Team2} {
			name := strings.TrimSpace(team.Name)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
