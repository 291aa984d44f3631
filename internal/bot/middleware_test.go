package bot

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerrors "github.com/srmist/campus-chat-go/internal/errors"
	"github.com/srmist/campus-chat-go/internal/logger"
	"github.com/srmist/campus-chat-go/internal/metrics"
)

func direct(ctx context.Context, h Handler, q Query) (Reply, error) {
	return h.HandleMessage(ctx, q)
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("debug", &buf)
	h := stub("fees", "*", "fee table")

	reply, err := LoggingMiddleware(log)(direct)(context.Background(), h, testQuery("fees"))

	require.NoError(t, err)
	assert.Equal(t, "fee table", reply.Text)
	assert.Contains(t, buf.String(), "Handler completed")
	assert.Contains(t, buf.String(), `"module":"fees"`)
}

func TestMetricsMiddleware(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	mw := MetricsMiddleware(m)

	_, _ = mw(direct)(context.Background(), stub("fees", "*", "fee table"), testQuery("fees"))
	_, _ = mw(direct)(context.Background(), stub("fees", "*", ""), testQuery("fees"))
	_, _ = mw(direct)(context.Background(), &stubHandler{name: "fees", trigger: "*", err: errStub}, testQuery("fees"))

	families, err := registry.Gather()
	require.NoError(t, err)
	var hits float64
	for _, fam := range families {
		if fam.GetName() == "campus_chat_handler_hits_total" {
			for _, metric := range fam.GetMetric() {
				hits += metric.GetCounter().GetValue()
			}
		}
	}
	assert.InDelta(t, 1.0, hits, 1e-9, "only non-empty successful replies count as hits")
}

func TestRecoveryMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("debug", &buf)
	h := &stubHandler{name: "hostel", trigger: "*", panics: true}

	var (
		reply Reply
		err   error
	)
	require.NotPanics(t, func() {
		reply, err = RecoveryMiddleware(log)(direct)(context.Background(), h, testQuery("hostel"))
	})

	assert.True(t, reply.IsEmpty())
	assert.ErrorIs(t, err, domerrors.ErrHandlerPanic)
	assert.Contains(t, buf.String(), "Handler panicked")
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next HandlerFunc) HandlerFunc {
			return func(ctx context.Context, h Handler, q Query) (Reply, error) {
				order = append(order, name)
				return next(ctx, h, q)
			}
		}
	}

	r := NewRegistry(testLogger(), nil)
	r.Use(tag("outer"), tag("inner"))
	r.Register(stub("fees", "*", "x"))
	r.Resolve(context.Background(), testQuery("x"))

	assert.Equal(t, []string{"outer", "inner"}, order)
}
