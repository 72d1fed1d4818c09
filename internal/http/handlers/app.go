package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"donationtracker/internal/domain"
	"donationtracker/internal/metrics"
	"donationtracker/internal/middleware"
)

// DonationStore is the donation state the handlers read and mutate.
type DonationStore interface {
	Append(ctx context.Context, d domain.Donation) error
	Stats() domain.Stats
}

// App carries the handler dependencies.
type App struct {
	Store    DonationStore
	Log      zerolog.Logger
	Metrics  *metrics.Metrics
	Now      func() time.Time
	validate *validator.Validate
	messages localizer
	started  time.Time
}

func NewApp(store DonationStore, log zerolog.Logger, m *metrics.Metrics) *App {
	return &App{
		Store:    store,
		Log:      log,
		Metrics:  m,
		Now:      time.Now,
		validate: validator.New(),
		messages: localizer{cat: newCatalog()},
		started:  time.Now(),
	}
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) fail(w http.ResponseWriter, r *http.Request, code int, key string) {
	a.json(w, code, statusResponse{Success: false, Message: a.text(r, key)})
}

func (a *App) text(r *http.Request, key string) string {
	return a.messages.text(middleware.LocaleFromContext(r.Context()), key)
}

// logger returns a request-scoped logger.
func (a *App) logger(r *http.Request) *zerolog.Logger {
	l := a.Log.With().Str("request_id", middleware.RequestIDFromContext(r.Context())).Logger()
	return &l
}
