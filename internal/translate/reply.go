package translate

import (
	"context"
	"time"

	"github.com/srmist/campus-chat-go/internal/logger"
	"github.com/srmist/campus-chat-go/internal/textutil"
)

// ReplyTranslator adapts a Translator to the chat pipeline. It only acts
// when the user wrote in Tamil, strips markup first, and fails open: any
// error yields the reply unchanged.
type ReplyTranslator struct {
	translator Translator
	target     string
	timeout    time.Duration
	logger     *logger.Logger
}

// NewReplyTranslator creates a reply translator. timeout 0 means the
// caller's deadline applies.
func NewReplyTranslator(t Translator, target string, timeout time.Duration, log *logger.Logger) *ReplyTranslator {
	return &ReplyTranslator{translator: t, target: target, timeout: timeout, logger: log}
}

// TranslateReply returns the translated reply and true, or reply and false
// when translation was not needed or did not succeed.
func (r *ReplyTranslator) TranslateReply(ctx context.Context, reply, original string) (string, bool) {
	if r == nil || r.translator == nil || !textutil.IsTamil(original) {
		return reply, false
	}

	plain := textutil.StripTags(reply)
	if plain == "" {
		return reply, false
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	out, err := r.translator.Translate(ctx, plain, r.target)
	if err != nil {
		if r.logger != nil {
			r.logger.WithModule("translate").
				WithError(err).
				WarnContext(ctx, "Translation failed, returning original reply")
		}
		return reply, false
	}
	return out, true
}

// Close releases the underlying translator.
func (r *ReplyTranslator) Close() error {
	if r == nil || r.translator == nil {
		return nil
	}
	return r.translator.Close()
}
