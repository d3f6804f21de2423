package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey means no Gemini credential was configured. This is
// a construction-time failure, distinct from the model being
// unreachable at search time.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

const (
	defaultCandidateCap  = 12
	defaultModelTimeout  = 60 * time.Second
	defaultMaxImageBytes = 8 << 20 // 8 MiB
)

// Config holds all runtime configuration, read from the environment
// (with .env support) once at startup.
type Config struct {
	Port             string
	GeminiAPIKey     string
	GeminiBaseURL    string
	MatchModel       string // visual comparison + categorization calls
	DirectMatchModel string // direct metadata-matching call
	CategorizeModel  string
	CatalogPath      string // empty means built-in seed catalog
	ImageProxyPrefix string // optional CORS-relaxing proxy for remote images
	CandidateCap     int
	ModelTimeout     time.Duration
	MaxImageBytes    int64
}

// Load reads configuration from the environment. A .env file is
// loaded first if present.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	return Config{
		Port:             envOrDefault("PORT", "8080"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:    envOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		MatchModel:       envOrDefault("MATCH_MODEL", "gemini-3-flash-preview"),
		DirectMatchModel: envOrDefault("DIRECT_MATCH_MODEL", "gemini-3-pro-preview"),
		CategorizeModel:  envOrDefault("CATEGORIZE_MODEL", "gemini-3-flash-preview"),
		CatalogPath:      os.Getenv("CATALOG_PATH"),
		ImageProxyPrefix: os.Getenv("IMAGE_PROXY_PREFIX"),
		CandidateCap:     envOrDefaultInt("CANDIDATE_CAP", defaultCandidateCap),
		ModelTimeout:     time.Duration(envOrDefaultInt("MODEL_TIMEOUT_SECONDS", int(defaultModelTimeout/time.Second))) * time.Second,
		MaxImageBytes:    int64(envOrDefaultInt("MAX_IMAGE_BYTES", defaultMaxImageBytes)),
	}
}

// Validate checks the configuration before any client is constructed.
func (c Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return ErrMissingAPIKey
	}
	if c.CandidateCap <= 0 {
		return fmt.Errorf("CANDIDATE_CAP must be positive, got %d", c.CandidateCap)
	}
	if c.MaxImageBytes <= 0 {
		return fmt.Errorf("MAX_IMAGE_BYTES must be positive, got %d", c.MaxImageBytes)
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Printf("Warning: invalid %s=%q, using default %d\n", key, v, def)
		return def
	}
	return n
}
