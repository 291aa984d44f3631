package logger

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/srmist/campus-chat-go/internal/ctxutil"
)

// ContextHandler adds request-scoped values from ctxutil to every record:
// request_id, client_ip and lang.
type ContextHandler struct {
	next slog.Handler
}

// NewContextHandler wraps next.
func NewContextHandler(next slog.Handler) *ContextHandler {
	return &ContextHandler{next: next}
}

// Enabled delegates to the wrapped handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle enriches r and forwards it. Cancelling ctx has no effect on
// record processing.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := ctxutil.GetRequestID(ctx); ok && id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	if ip := ctxutil.GetClientIP(ctx); ip != "" {
		r.AddAttrs(slog.String("client_ip", ip))
	}
	if lang := ctxutil.GetLanguage(ctx); lang != "" {
		r.AddAttrs(slog.String("lang", lang))
	}
	return h.next.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{next: h.next.WithGroup(name)}
}

// MultiHandler sends each record to every enabled child.
type MultiHandler struct {
	children []slog.Handler
}

// NewMultiHandler ignores nil children.
func NewMultiHandler(children ...slog.Handler) *MultiHandler {
	kept := make([]slog.Handler, 0, len(children))
	for _, c := range children {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &MultiHandler{children: kept}
}

// Enabled is true when any child accepts level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, c := range h.children {
		if c.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle gives each child its own clone of r and joins their errors.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, c := range h.children {
		if !c.Enabled(ctx, r.Level) {
			continue
		}
		if err := c.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs implements slog.Handler.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &MultiHandler{children: mapHandlers(h.children, func(c slog.Handler) slog.Handler {
		return c.WithAttrs(attrs)
	})}
}

// WithGroup implements slog.Handler.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return &MultiHandler{children: mapHandlers(h.children, func(c slog.Handler) slog.Handler {
		return c.WithGroup(name)
	})}
}

func mapHandlers(in []slog.Handler, fn func(slog.Handler) slog.Handler) []slog.Handler {
	out := make([]slog.Handler, len(in))
	for i, c := range in {
		out[i] = fn(c)
	}
	return out
}

const (
	defaultAsyncBufferSize   = 1024
	defaultAsyncFlushTimeout = 5 * time.Second
)

// AsyncOptions configures the async log pipeline.
type AsyncOptions struct {
	BufferSize   int
	FlushTimeout time.Duration
}

type queuedRecord struct {
	ctx    context.Context
	record slog.Record
	dest   slog.Handler
}

// asyncQueue is shared by every handler derived from one AsyncHandler.
type asyncQueue struct {
	records      chan queuedRecord
	flushTimeout time.Duration
	stopped      atomic.Bool
	dropped      atomic.Uint64
	done         sync.WaitGroup
}

func startQueue(opts AsyncOptions) *asyncQueue {
	size := opts.BufferSize
	if size <= 0 {
		size = defaultAsyncBufferSize
	}
	flush := opts.FlushTimeout
	if flush <= 0 {
		flush = defaultAsyncFlushTimeout
	}
	q := &asyncQueue{records: make(chan queuedRecord, size), flushTimeout: flush}
	q.done.Add(1)
	go func() {
		defer q.done.Done()
		for qr := range q.records {
			_ = qr.dest.Handle(qr.ctx, qr.record)
		}
	}()
	return q
}

func (q *asyncQueue) push(qr queuedRecord) {
	if q.stopped.Load() {
		return
	}
	select {
	case q.records <- qr:
	default:
		q.dropped.Add(1)
	}
}

func (q *asyncQueue) stop(ctx context.Context) error {
	if q.stopped.Swap(true) {
		return nil
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.flushTimeout)
		defer cancel()
	}
	close(q.records)

	drained := make(chan struct{})
	go func() {
		q.done.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AsyncHandler queues records for a background goroutine so slow remote
// sinks never block request handling. A full queue drops records.
type AsyncHandler struct {
	queue *asyncQueue
	dest  slog.Handler
}

// NewAsyncHandler starts the background worker for dest.
func NewAsyncHandler(dest slog.Handler, opts AsyncOptions) *AsyncHandler {
	return &AsyncHandler{queue: startQueue(opts), dest: dest}
}

// Enabled delegates to the destination handler.
func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.dest.Enabled(ctx, level)
}

// Handle enqueues a clone of r. The context is detached so cancellation of
// the request does not reach the remote sink.
func (h *AsyncHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.dest.Enabled(ctx, r.Level) {
		return nil
	}
	h.queue.push(queuedRecord{ctx: ctxutil.PreserveTracing(ctx), record: r.Clone(), dest: h.dest})
	return nil
}

// WithAttrs implements slog.Handler.
func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AsyncHandler{queue: h.queue, dest: h.dest.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler.
func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &AsyncHandler{queue: h.queue, dest: h.dest.WithGroup(name)}
}

// Dropped reports records discarded on a full queue.
func (h *AsyncHandler) Dropped() uint64 {
	return h.queue.dropped.Load()
}

// Shutdown stops accepting records and waits for the queue to drain, bounded
// by ctx or the flush timeout.
func (h *AsyncHandler) Shutdown(ctx context.Context) error {
	if h == nil || h.queue == nil {
		return nil
	}
	return h.queue.stop(ctx)
}
