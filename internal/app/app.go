package app

import (
	"fmt"
	"net/http"

	"github.com/goalwatch/goalwatch/external/openligadb"
	"github.com/goalwatch/goalwatch/external/sportsdb"
	"github.com/goalwatch/goalwatch/internal/config"
	"github.com/goalwatch/goalwatch/internal/infrastructure/provider/fixture"
	"github.com/goalwatch/goalwatch/internal/interfaces/web"
	"github.com/goalwatch/goalwatch/internal/platform/cache"
	"github.com/goalwatch/goalwatch/internal/platform/logging"
	"github.com/goalwatch/goalwatch/internal/platform/resilience"
	"github.com/goalwatch/goalwatch/internal/usecase"
)

// NewHTTPServer wires providers, the matchday service and the web layer
// into one server. DATA_PROVIDER selects between the live upstream
// clients and the deterministic fixture provider.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	source, logos := buildProviders(cfg, logger)

	var store *cache.Store
	if cfg.PageCacheEnabled {
		store = cache.NewStore(cfg.PageCacheTTL)
	}

	scope := usecase.MatchScope{
		League: cfg.OpenLigaLeague,
		Season: cfg.OpenLigaSeason,
	}
	matchdays := usecase.NewMatchdayService(source, logos, store, scope, cfg.LogoWorkers, logger)

	handler := web.NewHandler(matchdays, web.NewRender(), logger)
	router := web.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildProviders(cfg config.Config, logger *logging.Logger) (usecase.MatchSource, usecase.LogoSource) {
	if cfg.DataProvider == config.ProviderFixture {
		provider := fixture.New()
		logger.Info("using fixture data provider")
		return provider, provider
	}

	schedule := openligadb.NewClient(openligadb.ClientConfig{
		BaseURL:    cfg.OpenLigaBaseURL,
		Timeout:    cfg.OpenLigaTimeout,
		MaxRetries: cfg.OpenLigaMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.OpenLigaCircuitEnabled,
			FailureThreshold: cfg.OpenLigaCircuitFailureCount,
			OpenTimeout:      cfg.OpenLigaCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.OpenLigaCircuitHalfOpenMaxReq,
		},
	})

	badges := sportsdb.NewClient(sportsdb.ClientConfig{
		BaseURL:    cfg.SportsDBBaseURL,
		APIKey:     cfg.SportsDBAPIKey,
		Timeout:    cfg.SportsDBTimeout,
		MaxRetries: cfg.SportsDBMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SportsDBCircuitEnabled,
			FailureThreshold: cfg.SportsDBCircuitFailureCount,
			OpenTimeout:      cfg.SportsDBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SportsDBCircuitHalfOpenMaxReq,
		},
	})

	return schedule, badges
}
