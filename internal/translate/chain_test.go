package translate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerrors "github.com/srmist/campus-chat-go/internal/errors"
	"github.com/srmist/campus-chat-go/internal/metrics"
)

var fastRetry = RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

func status(code int) error {
	return wrapError(errors.New("upstream"), ProviderGroq, "ta", code)
}

func TestChain_FirstProviderSucceeds(t *testing.T) {
	t.Parallel()
	a := newFake(ProviderGoogle, ok("முதல்"))
	b := newFake(ProviderGroq, ok("இரண்டாம்"))

	out, err := NewChain([]Translator{a, b}, fastRetry, nil, nil).Translate(context.Background(), "hi", "ta")
	require.NoError(t, err)
	assert.Equal(t, "முதல்", out)
	assert.Zero(t, b.callCount())
}

func TestChain_RetriesTransientErrors(t *testing.T) {
	t.Parallel()
	a := newFake(ProviderGoogle, fail(status(503)), fail(status(429)), ok("சரி"))

	out, err := NewChain([]Translator{a}, fastRetry, nil, nil).Translate(context.Background(), "hi", "ta")
	require.NoError(t, err)
	assert.Equal(t, "சரி", out)
	assert.Equal(t, 3, a.callCount())
}

func TestChain_FallsBackWithoutRetryOnClientError(t *testing.T) {
	t.Parallel()
	a := newFake(ProviderGemini, fail(status(401)))
	b := newFake(ProviderGroq, ok("சரி"))

	out, err := NewChain([]Translator{a, b}, fastRetry, nil, nil).Translate(context.Background(), "hi", "ta")
	require.NoError(t, err)
	assert.Equal(t, "சரி", out)
	assert.Equal(t, 1, a.callCount())
	assert.Equal(t, 1, b.callCount())
}

func TestChain_FallsBackAfterExhaustedRetries(t *testing.T) {
	t.Parallel()
	a := newFake(ProviderGoogle, fail(status(500)))
	b := newFake(ProviderGroq, ok("சரி"))

	out, err := NewChain([]Translator{a, b}, fastRetry, nil, nil).Translate(context.Background(), "hi", "ta")
	require.NoError(t, err)
	assert.Equal(t, "சரி", out)
	assert.Equal(t, 3, a.callCount())
}

func TestChain_AllFail(t *testing.T) {
	t.Parallel()
	a := newFake(ProviderGoogle, fail(status(403)))
	b := newFake(ProviderGroq, fail(wrapError(ErrEmptyTranslation, ProviderGroq, "ta", 0)))

	_, err := NewChain([]Translator{a, b}, fastRetry, nil, nil).Translate(context.Background(), "hi", "ta")
	require.Error(t, err)
	assert.ErrorIs(t, err, domerrors.ErrTranslationFailed)
	assert.ErrorIs(t, err, ErrEmptyTranslation)
}

func TestChain_StopsOnCancellation(t *testing.T) {
	t.Parallel()
	a := newFake(ProviderGoogle, fail(context.Canceled))
	b := newFake(ProviderGroq, ok("சரி"))

	_, err := NewChain([]Translator{a, b}, fastRetry, nil, nil).Translate(context.Background(), "hi", "ta")
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, b.callCount())
}

func TestChain_NoProviders(t *testing.T) {
	t.Parallel()
	c := NewChain(nil, fastRetry, nil, nil)

	_, err := c.Translate(context.Background(), "hi", "ta")
	assert.ErrorIs(t, err, domerrors.ErrTranslationFailed)
	assert.Equal(t, Provider(""), c.Provider())
}

func TestChain_RecordsMetrics(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	a := newFake(ProviderGoogle, fail(status(500)), ok("சரி"))

	_, err := NewChain([]Translator{a}, fastRetry, nil, m).Translate(context.Background(), "hi", "ta")
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "campus_chat_translation_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range metric.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			got[labels["provider"]+"/"+labels["status"]] = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{"google/error": 1, "google/success": 1}, got)
}
