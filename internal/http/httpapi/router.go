package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"fundly/internal/http/handlers"
	"fundly/internal/infra"
	"fundly/internal/middleware"
)

// NewRouter wires the full route tree with the shared middleware chain.
// Writes require a session token; reads are public.
func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Logger(logger),
		chimw.Recoverer,
		middleware.CORS(cfg.AllowedOrigins),
		middleware.I18N(cfg.DefaultLocale, lookup),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/stats", app.StatsSummary)

	r.Route("/v1/auth", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
		r.Post("/register", app.Register)
		r.Post("/login", app.Login)
	})

	r.Get("/v1/campaigns", app.CampaignsList)
	r.Get("/v1/campaigns/{id}", app.CampaignsGet)
	r.Get("/v1/campaigns/{id}/transactions", app.TransactionsList)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(cfg.JWTSecret))
		r.Get("/v1/me", app.Me)
		r.Post("/v1/campaigns", app.CampaignsCreate)
		r.Post("/v1/campaigns/{id}/donations", app.DonationsCreate)
	})

	return r
}
