// Package config defines environment variable keys for configuration.
package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvDataDir         = "DATA_DIR"
	EnvTimezone        = "TIMEZONE"
	EnvCORSAllowOrigin = "CORS_ALLOW_ORIGINS"
	EnvTrustedProxies  = "TRUSTED_PROXIES"

	// Matching
	EnvFuzzyCutoff = "FUZZY_CUTOFF"
	EnvMatchScorer = "MATCH_SCORER"

	// Chat endpoint
	EnvChatRateBurst        = "CHAT_RATE_BURST"
	EnvChatRateRefillPerSec = "CHAT_RATE_REFILL_PER_SEC"
	EnvChatMaxMessageLength = "CHAT_MAX_MESSAGE_LENGTH"

	// Translation
	EnvTranslateEnabled     = "TRANSLATE_ENABLED"
	EnvTranslateProviders   = "TRANSLATE_PROVIDERS"
	EnvTranslateTarget      = "TRANSLATE_TARGET"
	EnvTranslateTimeout     = "TRANSLATE_TIMEOUT"
	EnvTranslateCacheSize   = "TRANSLATE_CACHE_SIZE"
	EnvTranslateCacheTTL    = "TRANSLATE_CACHE_TTL"
	EnvGoogleTranslateURL   = "GOOGLE_TRANSLATE_URL"
	EnvGeminiAPIKey         = "GEMINI_API_KEY"
	EnvGeminiTranslateModel = "GEMINI_TRANSLATE_MODEL"
	EnvGroqAPIKey           = "GROQ_API_KEY"
	EnvGroqTranslateModel   = "GROQ_TRANSLATE_MODEL"

	// Sentry
	EnvSentryToken       = "SENTRY_TOKEN"
	EnvSentryHost        = "SENTRY_HOST"
	EnvSentryEnvironment = "SENTRY_ENVIRONMENT"

	// Better Stack
	EnvBetterStackToken    = "BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "BETTERSTACK_ENDPOINT"

	// Metrics auth
	EnvMetricsUsername = "METRICS_USERNAME"
	EnvMetricsPassword = "METRICS_PASSWORD"
)
