package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PENYATA_PORT", "NATS_URL", "NATS_TOKEN", "DATABASE_URL", "LOG_LEVEL", "PENYATA_API_TOKEN", "SUGGESTION_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != 8760 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.NatsURL != "nats://localhost:4222" {
		t.Errorf("NatsURL = %q", cfg.NatsURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.SuggestionLimit != 5 {
		t.Errorf("SuggestionLimit = %d", cfg.SuggestionLimit)
	}
	if cfg.APIToken != "" || cfg.DatabaseURL != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PENYATA_PORT", "9090")
	t.Setenv("NATS_URL", "nats://broker:4222")
	t.Setenv("DATABASE_URL", "postgres://localhost/penyata")
	t.Setenv("SUGGESTION_LIMIT", "10")

	cfg := Load()
	if cfg.Port != 9090 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.NatsURL != "nats://broker:4222" {
		t.Errorf("NatsURL = %q", cfg.NatsURL)
	}
	if cfg.DatabaseURL != "postgres://localhost/penyata" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.SuggestionLimit != 10 {
		t.Errorf("SuggestionLimit = %d", cfg.SuggestionLimit)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("PENYATA_PORT", "not-a-port")

	if cfg := Load(); cfg.Port != 8760 {
		t.Errorf("Port = %d, want fallback", cfg.Port)
	}
}
