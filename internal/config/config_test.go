package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:             "5000",
		LogLevel:         "info",
		ShutdownTimeout:  GracefulShutdown,
		CORSAllowOrigins: []string{"*"},
		DataDir:          "./data",
		Timezone:         "Asia/Kolkata",
		FuzzyCutoff:      0.6,
		MatchScorer:      ScorerRatio,
		Chat: ChatConfig{
			RequestTimeout:   ChatProcessing,
			RateBurst:        20,
			RateRefillPerSec: 1,
			MaxMessageLength: 2000,
		},
		Translate: TranslateConfig{
			Enabled:   true,
			Providers: []string{ProviderGoogle},
			Target:    "ta",
			Timeout:   TranslateRequest,
			CacheSize: 512,
			CacheTTL:  24 * time.Hour,
			GoogleURL: DefaultGoogleTranslateURL,
		},
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvPort, "")
	t.Setenv(EnvTranslateProviders, "")
	t.Setenv(EnvMatchScorer, "")
	t.Setenv(EnvTrustedProxies, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "Asia/Kolkata", cfg.Timezone)
	assert.InDelta(t, 0.6, cfg.FuzzyCutoff, 1e-9)
	assert.Equal(t, ScorerRatio, cfg.MatchScorer)
	assert.Equal(t, []string{ProviderGoogle}, cfg.Translate.Providers)
	assert.Equal(t, "ta", cfg.Translate.Target)
	assert.Equal(t, TranslateRequest, cfg.Translate.Timeout)
	assert.InDelta(t, 20.0, cfg.Chat.RateBurst, 1e-9)
	assert.Empty(t, cfg.TrustedProxies, "no proxy is trusted unless configured")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvPort, "8080")
	t.Setenv(EnvMatchScorer, "Levenshtein")
	t.Setenv(EnvTranslateProviders, "groq, google,groq")
	t.Setenv(EnvGroqAPIKey, "gsk_test")
	t.Setenv(EnvTranslateTimeout, "3s")
	t.Setenv(EnvCORSAllowOrigin, "https://a.example, https://b.example")
	t.Setenv(EnvTrustedProxies, "10.0.0.0/8, 192.0.2.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ScorerLevenshtein, cfg.MatchScorer)
	assert.Equal(t, []string{ProviderGroq, ProviderGoogle}, cfg.Translate.Providers)
	assert.Equal(t, 3*time.Second, cfg.Translate.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.1"}, cfg.TrustedProxies)
	assert.True(t, cfg.HasLLMProvider())
}

func TestLoad_InvalidFails(t *testing.T) {
	t.Setenv(EnvTranslateProviders, "gemini")
	t.Setenv(EnvGeminiAPIKey, "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains []string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:        "missing port",
			mutate:      func(c *Config) { c.Port = "" },
			errContains: []string{"PORT is required"},
		},
		{
			name:        "bad timezone",
			mutate:      func(c *Config) { c.Timezone = "Mars/Olympus" },
			errContains: []string{"TIMEZONE"},
		},
		{
			name:        "cutoff out of range",
			mutate:      func(c *Config) { c.FuzzyCutoff = 1.5 },
			errContains: []string{"FUZZY_CUTOFF"},
		},
		{
			name:   "trusted proxies accept IPs and CIDRs",
			mutate: func(c *Config) { c.TrustedProxies = []string{"192.0.2.1", "10.0.0.0/8", "::1"} },
		},
		{
			name: "metrics password without username",
			mutate: func(c *Config) {
				c.MetricsUsername = ""
				c.MetricsPassword = "secret"
			},
			errContains: []string{"METRICS_USERNAME is required"},
		},
		{
			name:        "bad trusted proxy",
			mutate:      func(c *Config) { c.TrustedProxies = []string{"proxy.internal"} },
			errContains: []string{`TRUSTED_PROXIES entry "proxy.internal"`},
		},
		{
			name:        "unknown scorer",
			mutate:      func(c *Config) { c.MatchScorer = "jaro" },
			errContains: []string{"MATCH_SCORER"},
		},
		{
			name: "multiple errors are joined",
			mutate: func(c *Config) {
				c.DataDir = ""
				c.Chat.RateBurst = 0
			},
			errContains: []string{"DATA_DIR is required", "CHAT_RATE_BURST"},
		},
		{
			name:        "unknown provider",
			mutate:      func(c *Config) { c.Translate.Providers = []string{"deepl"} },
			errContains: []string{`unknown translation provider "deepl"`},
		},
		{
			name: "disabled translation skips provider checks",
			mutate: func(c *Config) {
				c.Translate.Enabled = false
				c.Translate.Providers = []string{ProviderGroq}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if len(tt.errContains) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.errContains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestGetListEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"unset uses default", "", []string{"x"}},
		{"trims and lowercases", " Google , GEMINI ", []string{"google", "gemini"}},
		{"drops duplicates", "groq,groq", []string{"groq"}},
		{"only separators", " , ,", []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_LIST_ENV", tt.value)
			assert.Equal(t, tt.want, getListEnv("TEST_LIST_ENV", []string{"x"}))
		})
	}
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("TEST_DURATION", "not-a-duration")
	assert.Equal(t, time.Second, getDurationEnv("TEST_DURATION", time.Second))

	t.Setenv("TEST_DURATION", "250ms")
	assert.Equal(t, 250*time.Millisecond, getDurationEnv("TEST_DURATION", time.Second))
}

func TestGetBoolEnv(t *testing.T) {
	t.Setenv("TEST_BOOL", "false")
	assert.False(t, getBoolEnv("TEST_BOOL", true))

	t.Setenv("TEST_BOOL", "maybe")
	assert.True(t, getBoolEnv("TEST_BOOL", true))
}

func TestLocationAndPaths(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
	assert.Equal(t, "data/campus_chat.db", cfg.SQLitePath())

	cfg.Timezone = "Nowhere/Invalid"
	assert.Equal(t, time.UTC, cfg.Location())
}
