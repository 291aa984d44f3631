package translate

import (
	"context"
	"errors"
	"fmt"
	"time"

	domerrors "github.com/srmist/campus-chat-go/internal/errors"
	"github.com/srmist/campus-chat-go/internal/logger"
	"github.com/srmist/campus-chat-go/internal/metrics"
)

// Chain tries providers in order:
//  1. retry the same provider with backoff on transient errors
//  2. move on to the next provider on fallback errors or exhausted retries
//  3. stop at once on caller cancellation
type Chain struct {
	providers []Translator
	retry     RetryConfig
	logger    *logger.Logger
	metrics   *metrics.Metrics
}

// NewChain creates a provider chain. log and m may be nil.
func NewChain(providers []Translator, retry RetryConfig, log *logger.Logger, m *metrics.Metrics) *Chain {
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}
	return &Chain{providers: providers, retry: retry, logger: log, metrics: m}
}

// Provider returns the first provider's name.
func (c *Chain) Provider() Provider {
	if len(c.providers) == 0 {
		return ""
	}
	return c.providers[0].Provider()
}

// Translate returns the first successful translation. When every provider
// fails the error wraps domerrors.ErrTranslationFailed and the last cause.
func (c *Chain) Translate(ctx context.Context, text, target string) (string, error) {
	if len(c.providers) == 0 {
		return "", fmt.Errorf("%w: no providers configured", domerrors.ErrTranslationFailed)
	}

	var lastErr error
	for i, p := range c.providers {
		out, err := c.translateWithRetry(ctx, p, text, target)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if ClassifyError(err) == ActionFail || ctx.Err() != nil {
			break
		}
		if c.logger != nil && i+1 < len(c.providers) {
			c.logger.WithModule("translate").WarnContext(ctx, "Falling back to next translation provider",
				"from", p.Provider(),
				"to", c.providers[i+1].Provider(),
				"error", err)
		}
	}

	return "", errors.Join(domerrors.ErrTranslationFailed, lastErr)
}

func (c *Chain) translateWithRetry(ctx context.Context, p Translator, text, target string) (string, error) {
	var lastErr error

	for attempt := range c.retry.MaxAttempts {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		start := time.Now()
		out, err := p.Translate(ctx, text, target)
		elapsed := time.Since(start).Seconds()
		if err == nil {
			c.metrics.RecordTranslation(p.Provider().String(), "success", elapsed)
			return out, nil
		}

		status := "error"
		if errors.Is(err, context.DeadlineExceeded) {
			status = "timeout"
		}
		c.metrics.RecordTranslation(p.Provider().String(), status, elapsed)

		lastErr = err
		if ClassifyError(err) != ActionRetry || attempt == c.retry.MaxAttempts-1 {
			break
		}

		backoff := CalculateBackoff(attempt+1, c.retry.InitialDelay, c.retry.MaxDelay)
		if !hasBudget(ctx, backoff) {
			return "", fmt.Errorf("timeout during retry: %w", lastErr)
		}
		if err := Sleep(ctx, backoff); err != nil {
			return "", err
		}
	}

	return "", lastErr
}

// Close closes every provider.
func (c *Chain) Close() error {
	var errs []error
	for _, p := range c.providers {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
