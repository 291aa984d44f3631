package sentry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	dsn, err := BuildDSN("abc123", "errors.betterstack.com")
	require.NoError(t, err)
	assert.Equal(t, "https://abc123@errors.betterstack.com/1", dsn)

	_, err = BuildDSN("", "errors.betterstack.com")
	assert.Error(t, err)

	_, err = BuildDSN("abc123", "")
	assert.Error(t, err)
}

func TestInitialize_EmptyTokenDisables(t *testing.T) {
	assert.NoError(t, Initialize(Config{}))
}

func TestInitialize_MissingHost(t *testing.T) {
	assert.Error(t, Initialize(Config{Token: "test-token"}))
}

func TestCaptureHandlerFailure_NoClient(t *testing.T) {
	assert.NotPanics(t, func() {
		CaptureHandlerFailure(context.Background(), "hostel", errors.New("boom"))
		CaptureHandlerFailure(context.Background(), "hostel", nil)
	})
}

func TestFlush_DisabledReportsSuccess(t *testing.T) {
	require.NoError(t, Initialize(Config{}))
	require.False(t, IsEnabled())
	assert.True(t, Flush(100*time.Millisecond), "nothing buffered, so nothing can time out")
}
