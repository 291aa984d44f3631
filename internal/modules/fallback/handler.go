// Package fallback is the last resort of the reply cascade. It classifies
// the message into an intent and answers from the response table, falling
// back to an apology in the message's language.
package fallback

import (
	"context"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/intent"
	"github.com/srmist/campus-chat-go/internal/knowledge"
	"github.com/srmist/campus-chat-go/internal/logger"
	"github.com/srmist/campus-chat-go/internal/metrics"
	"github.com/srmist/campus-chat-go/internal/modules/timing"
)

// ModuleName identifies the handler in logs and metrics.
const ModuleName = "fallback"

// Handler always produces a reply.
type Handler struct {
	base       *knowledge.Base
	classifier *intent.Classifier
	logger     *logger.Logger
	metrics    *metrics.Metrics
}

// NewHandler creates a new fallback handler. log and m may be nil.
func NewHandler(base *knowledge.Base, classifier *intent.Classifier, log *logger.Logger, m *metrics.Metrics) *Handler {
	return &Handler{base: base, classifier: classifier, logger: log, metrics: m}
}

// Name returns the module name
func (h *Handler) Name() string {
	return ModuleName
}

// CanHandle accepts every message.
func (h *Handler) CanHandle(bot.Query) bool {
	return true
}

// HandleMessage never fails and never returns an empty reply.
func (h *Handler) HandleMessage(ctx context.Context, q bot.Query) (bot.Reply, error) {
	return h.Reply(ctx, q), nil
}

// Reply resolves q through the classifier. It is also used directly by the
// processor when no cascade handler replied.
func (h *Handler) Reply(ctx context.Context, q bot.Query) bot.Reply {
	res, ok := h.classifier.Classify(q.Lower)
	if !ok {
		h.metrics.RecordIntentFallback("none", "none")
		return h.apology(q)
	}

	h.metrics.RecordIntentFallback(res.Intent, string(res.Phase))
	if h.logger != nil {
		h.logger.WithModule(ModuleName).DebugContext(ctx, "Classified message",
			"intent", res.Intent,
			"keyword", res.Keyword,
			"score", res.Score,
			"phase", string(res.Phase),
		)
	}

	if res.Intent == knowledge.IntentCollegeTiming {
		return bot.Text(timing.Render(h.base.Timings, q.Lower))
	}
	if text, ok := h.base.Responses[res.Intent]; ok && text != "" {
		return bot.Text(text)
	}
	return h.apology(q)
}

func (h *Handler) apology(q bot.Query) bot.Reply {
	if q.Tamil {
		return bot.Localized(h.base.Texts.FallbackTamil)
	}
	return bot.Text(h.base.Texts.FallbackEnglish)
}
