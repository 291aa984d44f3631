// Package sentry initializes error tracking against Better Stack's
// Sentry-compatible ingest and reports reply-handler failures.
package sentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/srmist/campus-chat-go/internal/ctxutil"
)

// Config holds Sentry configuration for Better Stack integration.
type Config struct {
	// Token is the Better Stack Errors application token.
	Token string

	// Host is the Better Stack Errors ingesting host (e.g., "errors.betterstack.com").
	Host string

	Environment string
	Release     string

	// SampleRate controls error sampling (0.0-1.0, default 1.0 = 100%).
	SampleRate float64

	Debug bool
}

// BuildDSN returns https://TOKEN@HOST/1. The project ID is required by the
// SDK and ignored by Better Stack.
func BuildDSN(token, host string) (string, error) {
	if token == "" {
		return "", errors.New("sentry token is empty")
	}
	if host == "" {
		return "", fmt.Errorf("sentry host is required when token is provided")
	}
	return fmt.Sprintf("https://%s@%s/1", token, host), nil
}

// Initialize sets up the Sentry SDK.
// If Token is empty, Sentry is disabled and nil is returned.
func Initialize(cfg Config) error {
	if cfg.Token == "" {
		return nil
	}

	dsn, err := BuildDSN(cfg.Token, cfg.Host)
	if err != nil {
		return err
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = 1.0
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		SampleRate:       sampleRate,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
	})
}

// Flush waits for buffered events to be sent to the server.
// Returns true if all events were sent within the timeout, or if Sentry is
// disabled and there is nothing to send.
func Flush(timeout time.Duration) bool {
	if !IsEnabled() {
		return true
	}
	return sentry.Flush(timeout)
}

// IsEnabled returns true if Sentry is initialized and active.
func IsEnabled() bool {
	return sentry.CurrentHub().Client() != nil
}

// CaptureHandlerFailure reports a failed or panicking reply handler, tagged
// with the handler name and request values from ctx. It is a no-op when
// Sentry is disabled.
func CaptureHandlerFailure(ctx context.Context, handler string, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil || err == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("handler", handler)
		if id, ok := ctxutil.GetRequestID(ctx); ok {
			scope.SetTag("request_id", id)
		}
		if lang := ctxutil.GetLanguage(ctx); lang != "" {
			scope.SetTag("lang", lang)
		}
		hub.CaptureException(err)
	})
}
