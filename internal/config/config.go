// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// the HTTP server, matching, translation, and observability integrations.
package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // timezone database for minimal container images

	"github.com/joho/godotenv"
)

// Translation provider names accepted by TRANSLATE_PROVIDERS.
const (
	ProviderGoogle = "google"
	ProviderGemini = "gemini"
	ProviderGroq   = "groq"
)

// Match scorer names accepted by MATCH_SCORER.
const (
	ScorerRatio       = "ratio"
	ScorerLevenshtein = "levenshtein"
)

// DefaultPort is the HTTP port when PORT is unset.
const DefaultPort = "5000"

// Default models used when a provider is enabled without an explicit model.
const (
	DefaultGeminiTranslateModel = "gemini-2.5-flash-lite"
	DefaultGroqTranslateModel   = "llama-3.3-70b-versatile"
	DefaultGoogleTranslateURL   = "https://translate.google.com/m"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port             string
	LogLevel         string
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
	TrustedProxies   []string // IPs or CIDRs whose X-Forwarded-For is honored; empty trusts none

	// Data Configuration
	DataDir  string // Directory holding the SQLite account store
	Timezone string // IANA zone used for admission day counting

	// Matching Configuration
	FuzzyCutoff float64
	MatchScorer string

	// Metrics Authentication
	MetricsUsername string // Username for /metrics endpoint Basic Auth (default: "prometheus")
	MetricsPassword string // Password for /metrics endpoint Basic Auth (empty = no auth)

	// Observability
	SentryToken         string
	SentryHost          string
	SentryEnvironment   string
	BetterStackToken    string
	BetterStackEndpoint string

	Chat      ChatConfig
	Translate TranslateConfig
}

// ChatConfig holds chat endpoint limits.
type ChatConfig struct {
	RequestTimeout time.Duration // Deadline for one resolve + translate cycle

	// Rate Limits (Token Bucket Algorithm, keyed by client IP)
	RateBurst        float64 // Maximum burst tokens per client (default: 20)
	RateRefillPerSec float64 // Tokens refilled per second (default: 1)

	MaxMessageLength int // Longest accepted message in runes (default: 2000)
}

// TranslateConfig holds reply translation settings.
type TranslateConfig struct {
	Enabled   bool
	Providers []string // Ordered provider chain; later entries are fallbacks
	Target    string   // Target language code
	Timeout   time.Duration
	CacheSize int           // 0 disables caching
	CacheTTL  time.Duration // Absolute expiration for cached translations

	GoogleURL    string
	GeminiAPIKey string
	GeminiModel  string
	GroqAPIKey   string
	GroqModel    string
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv(EnvPort, DefaultPort),
		LogLevel:         getEnv(EnvLogLevel, "info"),
		ShutdownTimeout:  getDurationEnv(EnvShutdownTimeout, GracefulShutdown),
		CORSAllowOrigins: getListEnv(EnvCORSAllowOrigin, []string{"*"}),
		TrustedProxies:   getListEnv(EnvTrustedProxies, nil),

		DataDir:  getEnv(EnvDataDir, "./data"),
		Timezone: getEnv(EnvTimezone, "Asia/Kolkata"),

		FuzzyCutoff: getFloatEnv(EnvFuzzyCutoff, 0.6),
		MatchScorer: strings.ToLower(getEnv(EnvMatchScorer, ScorerRatio)),

		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),

		SentryToken:         getEnv(EnvSentryToken, ""),
		SentryHost:          getEnv(EnvSentryHost, ""),
		SentryEnvironment:   getEnv(EnvSentryEnvironment, "production"),
		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),

		Chat: ChatConfig{
			RequestTimeout:   ChatProcessing,
			RateBurst:        getFloatEnv(EnvChatRateBurst, 20),
			RateRefillPerSec: getFloatEnv(EnvChatRateRefillPerSec, 1),
			MaxMessageLength: getIntEnv(EnvChatMaxMessageLength, 2000),
		},

		Translate: TranslateConfig{
			Enabled:      getBoolEnv(EnvTranslateEnabled, true),
			Providers:    getListEnv(EnvTranslateProviders, []string{ProviderGoogle}),
			Target:       getEnv(EnvTranslateTarget, "ta"),
			Timeout:      getDurationEnv(EnvTranslateTimeout, TranslateRequest),
			CacheSize:    getIntEnv(EnvTranslateCacheSize, 512),
			CacheTTL:     getDurationEnv(EnvTranslateCacheTTL, 24*time.Hour),
			GoogleURL:    getEnv(EnvGoogleTranslateURL, DefaultGoogleTranslateURL),
			GeminiAPIKey: getEnv(EnvGeminiAPIKey, ""),
			GeminiModel:  getEnv(EnvGeminiTranslateModel, DefaultGeminiTranslateModel),
			GroqAPIKey:   getEnv(EnvGroqAPIKey, ""),
			GroqModel:    getEnv(EnvGroqTranslateModel, DefaultGroqTranslateModel),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New("DATA_DIR is required"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %v", c.ShutdownTimeout))
	}
	if c.MetricsPassword != "" && c.MetricsUsername == "" {
		errs = append(errs, errors.New("METRICS_USERNAME is required when METRICS_PASSWORD is set"))
	}
	for _, p := range c.TrustedProxies {
		if _, err := netip.ParsePrefix(p); err == nil {
			continue
		}
		if _, err := netip.ParseAddr(p); err != nil {
			errs = append(errs, fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", p))
		}
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err))
	}
	if c.FuzzyCutoff < 0 || c.FuzzyCutoff > 1 {
		errs = append(errs, fmt.Errorf("FUZZY_CUTOFF must be within [0,1], got %v", c.FuzzyCutoff))
	}
	if c.MatchScorer != ScorerRatio && c.MatchScorer != ScorerLevenshtein {
		errs = append(errs, fmt.Errorf("MATCH_SCORER must be %q or %q, got %q", ScorerRatio, ScorerLevenshtein, c.MatchScorer))
	}
	if err := c.Chat.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("chat config: %w", err))
	}
	if err := c.Translate.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("translate config: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks chat endpoint limits.
func (c ChatConfig) Validate() error {
	var errs []error
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request timeout must be positive, got %v", c.RequestTimeout))
	}
	if c.RateBurst <= 0 {
		errs = append(errs, fmt.Errorf("CHAT_RATE_BURST must be positive, got %v", c.RateBurst))
	}
	if c.RateRefillPerSec <= 0 {
		errs = append(errs, fmt.Errorf("CHAT_RATE_REFILL_PER_SEC must be positive, got %v", c.RateRefillPerSec))
	}
	if c.MaxMessageLength <= 0 {
		errs = append(errs, fmt.Errorf("CHAT_MAX_MESSAGE_LENGTH must be positive, got %d", c.MaxMessageLength))
	}
	return errors.Join(errs...)
}

// Validate checks translation settings. Provider credentials are only
// required when translation is enabled.
func (c TranslateConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	var errs []error
	if len(c.Providers) == 0 {
		errs = append(errs, errors.New("TRANSLATE_PROVIDERS must list at least one provider"))
	}
	for _, p := range c.Providers {
		switch p {
		case ProviderGoogle:
			if c.GoogleURL == "" {
				errs = append(errs, errors.New("GOOGLE_TRANSLATE_URL is required for the google provider"))
			}
		case ProviderGemini:
			if c.GeminiAPIKey == "" {
				errs = append(errs, errors.New("GEMINI_API_KEY is required for the gemini provider"))
			}
		case ProviderGroq:
			if c.GroqAPIKey == "" {
				errs = append(errs, errors.New("GROQ_API_KEY is required for the groq provider"))
			}
		default:
			errs = append(errs, fmt.Errorf("unknown translation provider %q", p))
		}
	}
	if c.Target == "" {
		errs = append(errs, errors.New("TRANSLATE_TARGET is required"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("TRANSLATE_TIMEOUT must be positive, got %v", c.Timeout))
	}
	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("TRANSLATE_CACHE_SIZE cannot be negative, got %d", c.CacheSize))
	}
	if c.CacheSize > 0 && c.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("TRANSLATE_CACHE_TTL must be positive, got %v", c.CacheTTL))
	}
	return errors.Join(errs...)
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getBoolEnv retrieves boolean environment variable with fallback to default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getListEnv splits a comma-separated variable, dropping blanks and duplicates.
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" || slices.Contains(out, part) {
			continue
		}
		out = append(out, part)
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// SQLitePath returns the full path to the SQLite database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "campus_chat.db")
}

// Location resolves the configured timezone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// HasLLMProvider returns true if a translation chain includes an LLM provider.
func (c *Config) HasLLMProvider() bool {
	return slices.Contains(c.Translate.Providers, ProviderGemini) ||
		slices.Contains(c.Translate.Providers, ProviderGroq)
}
