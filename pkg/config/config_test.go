package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("default port = %q", cfg.Port)
	}
	if cfg.CandidateCap != 12 {
		t.Errorf("default candidate cap = %d", cfg.CandidateCap)
	}
	if cfg.ModelTimeout != 60*time.Second {
		t.Errorf("default model timeout = %v", cfg.ModelTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "9090")
	t.Setenv("CANDIDATE_CAP", "6")
	t.Setenv("MODEL_TIMEOUT_SECONDS", "15")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.CandidateCap != 6 {
		t.Errorf("candidate cap = %d", cfg.CandidateCap)
	}
	if cfg.ModelTimeout != 15*time.Second {
		t.Errorf("model timeout = %v", cfg.ModelTimeout)
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := Load()
	cfg.GeminiAPIKey = ""
	if err := cfg.Validate(); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestInvalidIntFallsBack(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("CANDIDATE_CAP", "dozen")

	cfg := Load()
	if cfg.CandidateCap != 12 {
		t.Errorf("expected default cap on parse failure, got %d", cfg.CandidateCap)
	}
}

func TestValidateBadCap(t *testing.T) {
	cfg := Config{GeminiAPIKey: "k", CandidateCap: 0, MaxImageBytes: 1}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero candidate cap")
	}
}
