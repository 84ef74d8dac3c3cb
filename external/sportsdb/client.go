package sportsdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/goalwatch/goalwatch/internal/platform/logging"
	"github.com/goalwatch/goalwatch/internal/platform/resilience"
	"github.com/goalwatch/goalwatch/internal/usecase"
)

const (
	defaultBaseURL = "https://www.thesportsdb.com/api/v1/json"
	// The public test key; good enough for team badge lookups.
	defaultAPIKey   = "3"
	maxResponseSize = 2 << 20
)

var errSportsDBTransient = crerr.New("thesportsdb transient failure")

// searchResponse is the team-search envelope. The provider returns a
// JSON null instead of an empty array when nothing matched.
type searchResponse struct {
	Teams []searchTeam `json:"teams"`
}

type searchTeam struct {
	ID        string `json:"idTeam"`
	Name      string `json:"strTeam"`
	Badge     string `json:"strTeamBadge"`
	Alternate string `json:"strAlternate"`
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client resolves team names to badge URLs via TheSportsDB. It
// implements usecase.LogoSource.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		apiKey = defaultAPIKey
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         apiKey,
		maxRetries:     cfg.MaxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// TeamBadge returns the best badge URL for the team name, or "" when the
// provider has no usable candidate. A sole candidate is accepted
// unconditionally. With several, selection order is: a case-insensitive
// exact name match, then a candidate whose alternate names contain the
// query as a substring, then the first candidate in provider order.
func (c *Client) TeamBadge(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("team name is required")
	}

	path := "/" + url.PathEscape(c.apiKey) + "/searchteams.php?t=" + url.QueryEscape(name)

	var payload searchResponse
	if err := c.doJSON(ctx, path, &payload); err != nil {
		return "", fmt.Errorf("search team %q: %w", name, err)
	}

	if len(payload.Teams) == 0 {
		return "", nil
	}

	return strings.TrimSpace(pickCandidate(payload.Teams, name).Badge), nil
}

func pickCandidate(teams []searchTeam, query string) searchTeam {
	if len(teams) == 1 {
		return teams[0]
	}

	lowered := strings.ToLower(query)
	for _, team := range teams {
		if strings.EqualFold(strings.TrimSpace(team.Name), query) {
			return team
		}
	}
	for _, team := range teams {
		if team.Alternate != "" && strings.Contains(strings.ToLower(team.Alternate), lowered) {
			return team
		}
	}
	return teams[0]
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "thesportsdb circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: logo provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errSportsDBTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errSportsDBTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errSportsDBTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				lastErr = fmt.Errorf("%w: provider status=%d", errSportsDBTransient, resp.StatusCode)
			default:
				return nil, fmt.Errorf("provider status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * 500 * time.Millisecond
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "thesportsdb request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}
