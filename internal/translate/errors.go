package translate

import (
	"context"
	"errors"
	"net/http"
	"strings"

	domerrors "github.com/srmist/campus-chat-go/internal/errors"
)

// ErrorAction is what the provider chain does after a failed call.
type ErrorAction int

const (
	// ActionRetry retries the same provider after a backoff.
	ActionRetry ErrorAction = iota
	// ActionFallback moves on to the next provider without retrying.
	ActionFallback
	// ActionFail stops the whole chain.
	ActionFail
)

// String returns a human-readable string for the error action.
func (a ErrorAction) String() string {
	switch a {
	case ActionRetry:
		return "retry"
	case ActionFallback:
		return "fallback"
	case ActionFail:
		return "fail"
	default:
		return "unknown"
	}
}

// ErrEmptyTranslation is returned when a provider answers with no text.
var ErrEmptyTranslation = errors.New("empty translation")

// ClassifyError maps a provider error to an action:
//   - 429, 408, 5xx, timeouts and network errors retry
//   - quota exhaustion and other 4xx fall back to the next provider
//   - caller cancellation fails the chain
func ClassifyError(err error) ErrorAction {
	if err == nil {
		return ActionFail
	}
	if errors.Is(err, context.Canceled) {
		return ActionFail
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ActionRetry
	}
	if errors.Is(err, ErrEmptyTranslation) {
		return ActionFallback
	}

	var te *domerrors.TranslationError
	if errors.As(err, &te) && te.StatusCode > 0 {
		return classifyStatusCode(te.StatusCode)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "quota", "billing", "daily limit"):
		return ActionFallback
	case containsAny(msg, "rate limit", "too many requests", "resource_exhausted",
		"unavailable", "overloaded", "timeout", "connection reset", "eof"):
		return ActionRetry
	case containsAny(msg, "unauthorized", "forbidden", "invalid api key", "permission denied", "not found"):
		return ActionFallback
	default:
		return ActionRetry
	}
}

func classifyStatusCode(code int) ErrorAction {
	switch {
	case code == http.StatusTooManyRequests,
		code == http.StatusRequestTimeout,
		code >= 500 && code < 600:
		return ActionRetry
	case code >= 400 && code < 500:
		return ActionFallback
	default:
		return ActionRetry
	}
}

// wrapError attaches provider context to err.
func wrapError(err error, p Provider, target string, statusCode int) error {
	if err == nil {
		return nil
	}
	return domerrors.NewTranslationError(p.String(), target, statusCode, err)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
