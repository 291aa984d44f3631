// Package fees answers course fee questions from the fee table.
package fees

import (
	"context"
	"strings"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/knowledge"
)

// ModuleName identifies the handler in logs and metrics.
const ModuleName = "fees"

// Handler replies with the fee schedule of the first course key found in
// the message, in department then course declaration order.
type Handler struct {
	base *knowledge.Base
}

// NewHandler creates a new fees handler.
func NewHandler(base *knowledge.Base) *Handler {
	return &Handler{base: base}
}

// Name returns the module name
func (h *Handler) Name() string {
	return ModuleName
}

// CanHandle reports whether any course key occurs in the message.
// Department names alone ("engineering") do not match.
func (h *Handler) CanHandle(q bot.Query) bool {
	_, ok := h.base.FindCourse(q.Lower)
	return ok
}

// HandleMessage renders every year of the matched course in table order.
func (h *Handler) HandleMessage(_ context.Context, q bot.Query) (bot.Reply, error) {
	course, ok := h.base.FindCourse(q.Lower)
	if !ok {
		return bot.Reply{}, nil
	}
	return bot.Text(Format(course)), nil
}

// Format renders a course's fee block.
func Format(c knowledge.Course) string {
	var b strings.Builder
	b.WriteString("💰 Fees for ")
	b.WriteString(strings.ToUpper(c.Key))
	b.WriteString(":\n")
	for _, row := range c.Fees {
		b.WriteString(row.Year)
		b.WriteString(": ")
		b.WriteString(row.Amount)
		b.WriteString("\n")
	}
	return b.String()
}
