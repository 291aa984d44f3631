// Package translate turns English replies into the user's script.
//
// Architecture:
//   - Google: scrapes the public mobile translate page (goquery)
//   - Gemini: google.golang.org/genai
//   - Groq: github.com/openai/openai-go/v3 against the OpenAI-compatible API
//
// Providers are tried in configured order. Each provider call is retried
// with jittered backoff on transient errors; permanent errors and quota
// exhaustion move on to the next provider. Results are cached per
// (text, target) and concurrent identical requests share one upstream call.
package translate

import (
	"context"
	"time"
)

// Provider names a translation backend.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderGemini Provider = "gemini"
	ProviderGroq   Provider = "groq"
)

// String returns the string representation of the provider.
func (p Provider) String() string {
	return string(p)
}

// ProviderEndpoint holds base URLs for OpenAI-compatible providers.
var ProviderEndpoint = map[Provider]string{
	ProviderGroq: "https://api.groq.com/openai/v1/",
}

// Translator translates plain text into a target language. Source language
// detection is left to the provider.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
	Provider() Provider
	Close() error
}

// RetryConfig bounds per-provider retries.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultRetryConfig keeps total retry time well inside the translate timeout.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  2,
		InitialDelay: 250 * time.Millisecond,
		MaxDelay:     time.Second,
	}
}
