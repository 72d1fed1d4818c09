package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultDonationGoal is the fundraising target used when DONATION_GOAL is unset.
const DefaultDonationGoal = 10000

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	DataDir          string
	DataFile         string
	DonationGoal     int
	DefaultLocale    string
	GeoIPDBPath      string
	AllowedOrigins   []string
	RateLimitPerMin  int
	TrustProxy       bool
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "3000"),
		DataDir:          getEnv("DATA_DIR", "data"),
		DataFile:         getEnv("DATA_FILE", "donations.json"),
		DonationGoal:     getEnvInt("DONATION_GOAL", DefaultDonationGoal),
		DefaultLocale:    getEnv("DEFAULT_LOCALE", "en"),
		GeoIPDBPath:      os.Getenv("GEOIP_DB_PATH"),
		AllowedOrigins:   splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		TrustProxy:       getEnvBool("TRUST_PROXY", false),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	if cfg.DonationGoal <= 0 {
		return nil, fmt.Errorf("DONATION_GOAL must be positive, got %d", cfg.DonationGoal)
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
