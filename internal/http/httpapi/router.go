package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"donationtracker/internal/http/handlers"
	"donationtracker/internal/infra"
	"donationtracker/internal/metrics"
	"donationtracker/internal/middleware"
)

// Options configures the router beyond the handler container.
type Options struct {
	Logger          infra.Logger
	Metrics         *metrics.Metrics
	AllowedOrigins  []string
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
	RateLimitPerMin int
	// TrustProxy rewrites RemoteAddr from X-Forwarded-For / X-Real-IP. Enable
	// only behind a proxy that sets those headers.
	TrustProxy bool
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/healthz", app.Health)
	r.Get("/openapi.json", app.OpenAPI)
	r.Get("/stats", app.Stats)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
		r.Post("/donate", app.Donate)
		r.Post("/contact", app.Contact)
	})

	return r
}
