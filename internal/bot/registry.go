package bot

import (
	"context"
	"errors"
	"fmt"

	domerrors "github.com/srmist/campus-chat-go/internal/errors"
	"github.com/srmist/campus-chat-go/internal/logger"
	"github.com/srmist/campus-chat-go/internal/metrics"
	"github.com/srmist/campus-chat-go/internal/sentry"
)

// Link is one guarded handler inside a Chain.
type Link struct {
	Handler Handler

	// Override links are evaluated even when an earlier chain already
	// produced a reply, and their output replaces it.
	Override bool

	// FailSoft links turn handler errors and panics into ServerErrorReply
	// instead of declining.
	FailSoft bool
}

// Chain is an if/else-if group: links are tried in order and the first
// link whose guard fires ends the chain, whether or not it produced text.
type Chain []Link

// Resolution is the outcome of one cascade run.
type Resolution struct {
	Reply   Reply
	Handler string // name of the handler that supplied Reply, "" if none
}

// Registry evaluates chains in registration order.
type Registry struct {
	chains     []Chain
	middleware []Middleware
	logger     *logger.Logger
	metrics    *metrics.Metrics
}

// NewRegistry creates a new handler registry.
func NewRegistry(log *logger.Logger, m *metrics.Metrics) *Registry {
	return &Registry{
		chains:  make([]Chain, 0),
		logger:  log,
		metrics: m,
	}
}

// Use appends middleware wrapped around every handler invocation.
// The first middleware added is the outermost.
func (r *Registry) Use(mw ...Middleware) {
	r.middleware = append(r.middleware, mw...)
}

// Register adds a single gated handler: it runs only while no reply exists.
func (r *Registry) Register(h Handler) {
	r.RegisterChain(Link{Handler: h})
}

// RegisterFailSoft adds a single gated, fail-soft handler.
func (r *Registry) RegisterFailSoft(h Handler) {
	r.RegisterChain(Link{Handler: h, FailSoft: true})
}

// RegisterChain adds an if/else-if group of links.
func (r *Registry) RegisterChain(links ...Link) {
	if len(links) == 0 {
		return
	}
	r.chains = append(r.chains, Chain(links))
}

// GetHandler returns a handler by name.
func (r *Registry) GetHandler(name string) Handler {
	for _, c := range r.chains {
		for _, l := range c {
			if l.Handler.Name() == name {
				return l.Handler
			}
		}
	}
	return nil
}

// Names lists handler names in evaluation order.
func (r *Registry) Names() []string {
	var names []string
	for _, c := range r.chains {
		for _, l := range c {
			names = append(names, l.Handler.Name())
		}
	}
	return names
}

// Resolve runs the cascade for q. Gated links are skipped once a reply
// exists; override links may replace it.
func (r *Registry) Resolve(ctx context.Context, q Query) Resolution {
	var res Resolution

	for _, chain := range r.chains {
		for _, link := range chain {
			if !link.Override && !res.Reply.IsEmpty() {
				continue
			}
			if !link.Handler.CanHandle(q) {
				continue
			}

			reply := r.invoke(ctx, link, q)
			if !reply.IsEmpty() {
				res = Resolution{Reply: reply, Handler: link.Handler.Name()}
			}
			break
		}
	}

	return res
}

// invoke runs one handler through the middleware stack and applies the
// link's failure policy.
func (r *Registry) invoke(ctx context.Context, link Link, q Query) Reply {
	h := link.Handler

	reply, err := r.call(ctx, h, q)
	if err == nil {
		return reply
	}

	kind := "error"
	if errors.Is(err, domerrors.ErrHandlerPanic) {
		kind = "panic"
	}
	r.metrics.RecordHandlerFailure(h.Name(), kind)
	sentry.CaptureHandlerFailure(ctx, h.Name(), err)

	if r.logger != nil {
		r.logger.WithModule(h.Name()).
			WithError(err).
			WithField("fail_soft", link.FailSoft).
			ErrorContext(ctx, "Handler failed")
	}

	if link.FailSoft {
		return Text(ServerErrorReply)
	}
	return Reply{}
}

// call runs the wrapped handler. A panic that escapes the middleware stack
// is still converted to an error so Resolve always returns.
func (r *Registry) call(ctx context.Context, h Handler, q Query) (reply Reply, err error) {
	defer func() {
		if p := recover(); p != nil {
			reply = Reply{}
			err = fmt.Errorf("%w: %v", domerrors.ErrHandlerPanic, p)
		}
	}()
	return r.wrapped()(ctx, h, q)
}

// wrapped composes the middleware around a direct handler call.
func (r *Registry) wrapped() HandlerFunc {
	final := func(ctx context.Context, h Handler, q Query) (Reply, error) {
		return h.HandleMessage(ctx, q)
	}
	for i := len(r.middleware) - 1; i >= 0; i-- {
		final = r.middleware[i](final)
	}
	return final
}

// String describes the cascade layout for debugging.
func (r *Registry) String() string {
	return fmt.Sprintf("Registry(%d chains, %d handlers)", len(r.chains), len(r.Names()))
}
