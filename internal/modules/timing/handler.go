// Package timing answers class schedule questions from the timing table.
package timing

import (
	"context"
	"strings"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/knowledge"
)

// ModuleName identifies the handler in logs and metrics.
const ModuleName = "timing"

const (
	trigger    = "timing"
	fullHeader = "⏰ College Timings:\n"
)

// Handler replies with one course's schedule or the full table.
type Handler struct {
	timings []knowledge.TimingEntry
}

// NewHandler creates a new timing handler.
func NewHandler(base *knowledge.Base) *Handler {
	return &Handler{timings: base.Timings}
}

// Name returns the module name
func (h *Handler) Name() string {
	return ModuleName
}

// CanHandle matches any message mentioning timing, which covers
// "college timing" too.
func (h *Handler) CanHandle(q bot.Query) bool {
	return strings.Contains(q.Lower, trigger)
}

// HandleMessage renders the schedule for the message.
func (h *Handler) HandleMessage(_ context.Context, q bot.Query) (bot.Reply, error) {
	return bot.Text(Render(h.timings, q.Lower)), nil
}

// Render returns the schedule of the first timing key contained in text, in
// table order. Only the first matching key is considered; if its schedule
// is empty, or no key matches, the full table is rendered under a header.
func Render(timings []knowledge.TimingEntry, text string) string {
	for _, entry := range timings {
		if !strings.Contains(text, entry.Key) {
			continue
		}
		if out := renderSchedule(entry.Schedule); out != "" {
			return out
		}
		break
	}

	var b strings.Builder
	b.WriteString(fullHeader)
	for _, entry := range timings {
		for _, line := range entry.Schedule.Entries() {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderSchedule(s knowledge.Schedule) string {
	if s.Kind == knowledge.Single {
		return s.Text
	}
	var b strings.Builder
	for _, line := range s.Entries() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
