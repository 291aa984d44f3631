// Package contact answers contact, entrance exam and department admission
// questions. The three handlers form one else-if chain: contact first, then
// entrance exams, then department notes.
package contact

import (
	"context"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/fuzzy"
	"github.com/srmist/campus-chat-go/internal/knowledge"
	"github.com/srmist/campus-chat-go/internal/textutil"
)

// Module names used in logs and metrics.
const (
	ContactModule    = "contact"
	EntranceModule   = "entrance_exam"
	DepartmentModule = "department_info"
)

var (
	contactKeywords = []string{
		"contact", "phone", "email", "reach you", "call you", "college contact", "தொடர்பு",
	}
	entranceKeywords = []string{
		"entrance exam", "exam date", "is there any entrance", "entrance test",
	}
)

// ContactHandler returns the institution's contact block.
type ContactHandler struct {
	text string
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(base *knowledge.Base) *ContactHandler {
	return &ContactHandler{text: base.Texts.Contact}
}

// Name returns the module name
func (h *ContactHandler) Name() string {
	return ContactModule
}

func (h *ContactHandler) CanHandle(q bot.Query) bool {
	return textutil.ContainsAny(q.Lower, contactKeywords)
}

func (h *ContactHandler) HandleMessage(_ context.Context, _ bot.Query) (bot.Reply, error) {
	return bot.Text(h.text), nil
}

// EntranceHandler explains entrance exams followed by the department line
// for the first department named in the message.
type EntranceHandler struct {
	header   string
	fallback string
	notes    []knowledge.DepartmentNote
}

// NewEntranceHandler creates a new entrance exam handler.
func NewEntranceHandler(base *knowledge.Base) *EntranceHandler {
	return &EntranceHandler{
		header:   base.Texts.Entrance,
		fallback: base.Texts.EntranceDefault,
		notes:    base.EntranceNotes,
	}
}

// Name returns the module name
func (h *EntranceHandler) Name() string {
	return EntranceModule
}

func (h *EntranceHandler) CanHandle(q bot.Query) bool {
	return textutil.ContainsAny(q.Lower, entranceKeywords)
}

// HandleMessage always appends a department line; messages naming no
// department get the generic one.
func (h *EntranceHandler) HandleMessage(_ context.Context, q bot.Query) (bot.Reply, error) {
	line := h.fallback
	for _, n := range h.notes {
		if textutil.ContainsAny(q.Lower, n.Keywords) {
			line = n.Text
			break
		}
	}
	return bot.Text(h.header + line), nil
}

// DepartmentHandler returns the admission note of the first matching
// department. Notes flagged Fuzzy compare the whole message against their
// keywords instead of testing containment.
type DepartmentHandler struct {
	notes   []knowledge.DepartmentNote
	matcher *fuzzy.Matcher
}

// NewDepartmentHandler creates a new department info handler.
func NewDepartmentHandler(base *knowledge.Base, matcher *fuzzy.Matcher) *DepartmentHandler {
	return &DepartmentHandler{notes: base.DepartmentNotes, matcher: matcher}
}

// Name returns the module name
func (h *DepartmentHandler) Name() string {
	return DepartmentModule
}

func (h *DepartmentHandler) CanHandle(q bot.Query) bool {
	_, ok := h.match(q.Lower)
	return ok
}

func (h *DepartmentHandler) HandleMessage(_ context.Context, q bot.Query) (bot.Reply, error) {
	note, ok := h.match(q.Lower)
	if !ok {
		return bot.Reply{}, nil
	}
	return bot.Text(note.Text), nil
}

func (h *DepartmentHandler) match(text string) (knowledge.DepartmentNote, bool) {
	for _, n := range h.notes {
		if n.Fuzzy {
			if h.matcher.IsCloseMatch(text, n.Keywords) {
				return n, true
			}
			continue
		}
		if textutil.ContainsAny(text, n.Keywords) {
			return n, true
		}
	}
	return knowledge.DepartmentNote{}, false
}
