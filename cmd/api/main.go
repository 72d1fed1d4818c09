package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"donationtracker/internal/donations"
	"donationtracker/internal/http/handlers"
	"donationtracker/internal/http/httpapi"
	"donationtracker/internal/infra"
	"donationtracker/internal/infra/geoip"
	"donationtracker/internal/metrics"
	"donationtracker/internal/middleware"
	"donationtracker/internal/storage"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	files, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare data directory")
	}

	store, err := donations.NewStore(files, cfg.DataFile, cfg.DonationGoal, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create donation store")
	}
	// Load failures leave an empty store; the server still starts.
	if err := store.Load(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("starting with empty donation data")
	}

	var lookup middleware.CountryLookup
	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		defer resolver.Close()
		lookup = resolver.Lookup
	}

	m := metrics.New(store)
	app := handlers.NewApp(store, logger, m)
	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          logger,
		Metrics:         m,
		AllowedOrigins:  cfg.AllowedOrigins,
		DefaultLocale:   cfg.DefaultLocale,
		CountryLookup:   lookup,
		RateLimitPerMin: cfg.RateLimitPerMin,
		TrustProxy:      cfg.TrustProxy,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Int("donation_goal", cfg.DonationGoal).Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
