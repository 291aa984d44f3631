package bot

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	domerrors "github.com/srmist/campus-chat-go/internal/errors"
	"github.com/srmist/campus-chat-go/internal/logger"
	"github.com/srmist/campus-chat-go/internal/metrics"
)

// HandlerFunc invokes a handler for a query.
type HandlerFunc func(ctx context.Context, h Handler, q Query) (Reply, error)

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// LoggingMiddleware logs handler execution with timing and result info.
func LoggingMiddleware(log *logger.Logger) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, h Handler, q Query) (Reply, error) {
			start := time.Now()

			reply, err := next(ctx, h, q)

			log.WithModule(h.Name()).
				WithField("text_length", len(q.Raw)).
				WithField("duration_ms", time.Since(start).Milliseconds()).
				WithField("declined", reply.IsEmpty()).
				DebugContext(ctx, "Handler completed")

			return reply, err
		}
	}
}

// MetricsMiddleware records which handler produced a reply.
func MetricsMiddleware(m *metrics.Metrics) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, h Handler, q Query) (Reply, error) {
			reply, err := next(ctx, h, q)
			if err == nil && !reply.IsEmpty() {
				m.RecordHandlerHit(h.Name())
			}
			return reply, err
		}
	}
}

// RecoveryMiddleware converts a handler panic into an error wrapping
// domerrors.ErrHandlerPanic so the registry can apply the link's policy.
func RecoveryMiddleware(log *logger.Logger) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, h Handler, q Query) (reply Reply, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.WithModule(h.Name()).
						WithField("panic", r).
						WithField("stack", string(debug.Stack())).
						ErrorContext(ctx, "Handler panicked")
					reply = Reply{}
					err = fmt.Errorf("%w: %v", domerrors.ErrHandlerPanic, r)
				}
			}()

			return next(ctx, h, q)
		}
	}
}
