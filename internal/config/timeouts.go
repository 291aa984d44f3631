// Package config provides centralized timeout constants for the application.
//
// The chat endpoint is synchronous: the browser waits for the reply, so every
// budget below has to fit inside ChatProcessing.
//
// # Translation
//
// Only replies to Tamil messages are translated. The translation call is the
// one remote dependency on the request path, so it gets its own short budget
// and a failure falls back to the untranslated reply.
package config

import "time"

// HTTP server timeouts
const (
	// HTTPReadHeader bounds how long a client may take to send request headers.
	HTTPReadHeader = 5 * time.Second

	// HTTPRead is the HTTP server read timeout. Chat payloads are small JSON bodies.
	HTTPRead = 10 * time.Second

	// HTTPWrite is the HTTP server write timeout.
	// Must accommodate ChatProcessing plus response serialization.
	HTTPWrite = 20 * time.Second

	// HTTPIdle is the HTTP server idle timeout for keep-alive connections.
	HTTPIdle = 120 * time.Second
)

// Chat processing
const (
	// ChatProcessing is the deadline for resolving and translating one message.
	ChatProcessing = 15 * time.Second

	// TranslateRequest is the default timeout for a single translation call.
	TranslateRequest = 8 * time.Second
)

// Database timeouts
const (
	// DatabaseBusyTimeout is SQLite busy_timeout pragma value.
	DatabaseBusyTimeout = 5 * time.Second

	// DatabaseConnMaxLifetime is the maximum lifetime of database connections.
	DatabaseConnMaxLifetime = time.Hour

	// ReadinessCheck bounds the database ping done by /readyz.
	ReadinessCheck = 3 * time.Second
)

// Background job intervals
const (
	// RateLimiterCleanupInterval is how often inactive client rate limiters are cleaned.
	RateLimiterCleanupInterval = 5 * time.Minute

	// RateLimiterIdleTTL is how long a client limiter may stay unused before cleanup.
	RateLimiterIdleTTL = 10 * time.Minute
)

// Graceful shutdown
const (
	// GracefulShutdown is the timeout for graceful server shutdown.
	// Allows in-flight requests to complete before forceful termination.
	GracefulShutdown = 30 * time.Second

	// LogFlushTimeout bounds flushing buffered remote log records on exit.
	LogFlushTimeout = 5 * time.Second
)
