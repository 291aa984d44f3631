package bot

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/srmist/campus-chat-go/internal/ctxutil"
	domerrors "github.com/srmist/campus-chat-go/internal/errors"
	"github.com/srmist/campus-chat-go/internal/logger"
	"github.com/srmist/campus-chat-go/internal/metrics"
)

// Translator rewrites a resolved reply for the script of the original
// message. It must fail open: on any error it returns reply unchanged and
// false.
type Translator interface {
	TranslateReply(ctx context.Context, reply, original string) (string, bool)
}

// Response is what the chat endpoint sends back.
type Response struct {
	Reply      string
	Handler    string
	Lang       string
	Translated bool
}

// Processor drives one message through normalize, resolve and translate.
type Processor struct {
	registry   *Registry
	translator Translator
	fallback   func(Query) Reply
	logger     *logger.Logger
	metrics    *metrics.Metrics
	now        func() time.Time

	timeout   time.Duration
	maxLength int
}

// ProcessorConfig holds configuration for creating a new Processor.
type ProcessorConfig struct {
	Registry   *Registry
	Translator Translator // nil disables translation

	// Fallback answers when no handler replied. Registries built by the
	// application always end with a catch-all handler, so this is a guard.
	Fallback func(Query) Reply

	Logger  *logger.Logger
	Metrics *metrics.Metrics
	Clock   func() time.Time // defaults to time.Now

	Timeout          time.Duration // 0 means no deadline
	MaxMessageLength int           // in runes; 0 means unlimited
}

// NewProcessor creates a new message processor.
func NewProcessor(cfg ProcessorConfig) *Processor {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Processor{
		registry:   cfg.Registry,
		translator: cfg.Translator,
		fallback:   cfg.Fallback,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        clock,
		timeout:    cfg.Timeout,
		maxLength:  cfg.MaxMessageLength,
	}
}

// ProcessMessage resolves raw into a reply. Blank input returns
// EmptyMessageReply with an error wrapping domerrors.ErrEmptyMessage and
// never reaches the handlers. Every other input yields a non-empty reply.
func (p *Processor) ProcessMessage(ctx context.Context, raw string) (Response, error) {
	start := time.Now()
	q := NewQuery(raw, p.now())
	lang := q.Lang()

	if q.IsBlank() {
		p.metrics.RecordChat("empty", lang, time.Since(start).Seconds())
		return Response{Reply: EmptyMessageReply, Lang: lang}, fmt.Errorf("process message: %w", domerrors.ErrEmptyMessage)
	}

	if p.maxLength > 0 && utf8.RuneCountInString(q.Raw) > p.maxLength {
		p.metrics.RecordChat("too_long", lang, time.Since(start).Seconds())
		msg := fmt.Sprintf("⚠️ Message is too long. Please keep it under %d characters.", p.maxLength)
		return Response{Reply: msg, Lang: lang}, domerrors.NewValidationError("message", "exceeds maximum length")
	}

	ctx = ctxutil.WithLanguage(ctx, lang)
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	res := p.registry.Resolve(ctx, q)
	if res.Reply.IsEmpty() && p.fallback != nil {
		res = Resolution{Reply: p.fallback(q), Handler: "default"}
	}

	out := Response{
		Reply:   res.Reply.Text,
		Handler: res.Handler,
		Lang:    lang,
	}

	if q.Tamil && !res.Reply.Localized && p.translator != nil {
		out.Reply, out.Translated = p.translator.TranslateReply(ctx, res.Reply.Text, q.Raw)
	}

	duration := time.Since(start)
	p.metrics.RecordChat("ok", lang, duration.Seconds())
	if p.logger != nil {
		p.logger.WithField("handler", out.Handler).
			WithField("lang", lang).
			WithField("translated", out.Translated).
			WithField("duration_ms", duration.Milliseconds()).
			DebugContext(ctx, "Message resolved")
	}

	return out, nil
}
