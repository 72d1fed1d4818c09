package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DONATION_GOAL", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("DATA_FILE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("TRUST_PROXY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "3000")
	}
	if cfg.DonationGoal != DefaultDonationGoal {
		t.Fatalf("DonationGoal mismatch: got %d want %d", cfg.DonationGoal, DefaultDonationGoal)
	}
	if cfg.DataDir != "data" || cfg.DataFile != "donations.json" {
		t.Fatalf("data location mismatch: %q %q", cfg.DataDir, cfg.DataFile)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Fatalf("expected no allowed origins, got %#v", cfg.AllowedOrigins)
	}
	if cfg.TrustProxy {
		t.Fatal("TrustProxy should default to false")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DONATION_GOAL", "25000")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com ")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8081" {
		t.Fatalf("Port mismatch: got %q", cfg.Port)
	}
	if cfg.DonationGoal != 25000 {
		t.Fatalf("DonationGoal mismatch: got %d", cfg.DonationGoal)
	}
	if !cfg.TrustProxy {
		t.Fatal("TrustProxy should be enabled")
	}
	expected := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.AllowedOrigins) != len(expected) {
		t.Fatalf("AllowedOrigins mismatch: got %#v want %#v", cfg.AllowedOrigins, expected)
	}
	for i, origin := range expected {
		if cfg.AllowedOrigins[i] != origin {
			t.Fatalf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], origin)
		}
	}
}

func TestLoadConfigInvalidGoalFallsBack(t *testing.T) {
	t.Setenv("DONATION_GOAL", "lots")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.DonationGoal != DefaultDonationGoal {
		t.Fatalf("DonationGoal mismatch: got %d", cfg.DonationGoal)
	}
}

func TestLoadConfigRejectsNonPositiveGoal(t *testing.T) {
	t.Setenv("DONATION_GOAL", "-10")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for negative donation goal")
	}
}
