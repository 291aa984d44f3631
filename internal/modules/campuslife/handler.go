// Package campuslife answers club, cultural and sports questions.
package campuslife

import (
	"context"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/knowledge"
	"github.com/srmist/campus-chat-go/internal/textutil"
)

// ModuleName identifies the handler in logs and metrics.
const ModuleName = "campus_life"

// Handler replies with the first campus-life block whose keywords occur in
// the message. It is registered as an override and replaces earlier replies.
type Handler struct {
	blocks []knowledge.CampusBlock
}

// NewHandler creates a new campus life handler.
func NewHandler(base *knowledge.Base) *Handler {
	return &Handler{blocks: base.CampusLife}
}

// Name returns the module name
func (h *Handler) Name() string {
	return ModuleName
}

func (h *Handler) CanHandle(q bot.Query) bool {
	_, ok := h.match(q.Lower)
	return ok
}

func (h *Handler) HandleMessage(_ context.Context, q bot.Query) (bot.Reply, error) {
	block, ok := h.match(q.Lower)
	if !ok {
		return bot.Reply{}, nil
	}
	return bot.Text(block.Title + block.Details), nil
}

func (h *Handler) match(text string) (knowledge.CampusBlock, bool) {
	for _, b := range h.blocks {
		if textutil.ContainsAny(text, b.Keywords) {
			return b, true
		}
	}
	return knowledge.CampusBlock{}, false
}
