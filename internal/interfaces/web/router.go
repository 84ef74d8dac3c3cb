package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/goalwatch/goalwatch/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/", handler.MatchdayPage)
	r.Get("/healthz", handler.Healthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/matches", handler.ListMatches)
		r.Get("/teams", handler.ListTeams)
		r.Get("/leagues", handler.ListLeagues)
	})

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, r))))
}
