// Package admission answers admission eligibility, process, start-date and
// deadline questions.
//
// Eligibility and process are matched by whole-message similarity against the
// intent keyword lists rather than by containment, so near phrasings such as
// "admision process" still resolve. Date replies count calendar days in the
// configured timezone using the time carried on the query.
package admission

import (
	"context"
	"fmt"
	"time"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/fuzzy"
	"github.com/srmist/campus-chat-go/internal/knowledge"
	"github.com/srmist/campus-chat-go/internal/textutil"
)

// Module names used in logs and metrics.
const (
	EligibilityModule = "admission_eligibility"
	ProcessModule     = "admission_process"
	StartModule       = "admission_start"
	DeadlineModule    = "admission_deadline"
)

// InstitutionName is shown in the admission start reply.
const InstitutionName = "SRM Institute of Technology"

var (
	startKeywords = []string{
		"admission date", "start of admission", "when will admission start", "சென்னை",
	}
	deadlineKeywords = []string{
		"admission deadline", "last date for admission", "end of admission", "முடிவும்",
	}
)

// fuzzyHandler replies with a fixed text when the message is close to one of
// an intent's keywords.
type fuzzyHandler struct {
	name     string
	keywords []string
	text     string
	matcher  *fuzzy.Matcher
}

func (h *fuzzyHandler) Name() string { return h.name }

func (h *fuzzyHandler) CanHandle(q bot.Query) bool {
	return h.matcher.IsCloseMatch(q.Lower, h.keywords)
}

func (h *fuzzyHandler) HandleMessage(_ context.Context, _ bot.Query) (bot.Reply, error) {
	return bot.Text(h.text), nil
}

// NewEligibilityHandler answers eligibility questions.
func NewEligibilityHandler(base *knowledge.Base, matcher *fuzzy.Matcher) bot.Handler {
	return &fuzzyHandler{
		name:     EligibilityModule,
		keywords: base.IntentKeywords(knowledge.IntentAdmissionEligibility),
		text:     base.Texts.Eligibility,
		matcher:  matcher,
	}
}

// NewProcessHandler answers "how do I apply" questions.
func NewProcessHandler(base *knowledge.Base, matcher *fuzzy.Matcher) bot.Handler {
	return &fuzzyHandler{
		name:     ProcessModule,
		keywords: base.IntentKeywords(knowledge.IntentAdmissionProcess),
		text:     base.Texts.AdmissionProcess,
		matcher:  matcher,
	}
}

// DaysUntil returns the number of calendar days from now to target, both
// taken as dates in loc. It is zero on the target date and negative after it.
func DaysUntil(target knowledge.Date, now time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	// Compare as UTC midnights so DST transitions in loc cannot skew the count.
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	day := time.Date(target.Year, target.Month, target.Day, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(today).Hours() / 24)
}

// StartHandler reports when admission opens and how many days remain.
type StartHandler struct {
	start knowledge.Date
	loc   *time.Location
}

// NewStartHandler creates a new admission start handler.
func NewStartHandler(base *knowledge.Base, loc *time.Location) *StartHandler {
	return &StartHandler{start: base.AdmissionStart, loc: loc}
}

// Name returns the module name
func (h *StartHandler) Name() string {
	return StartModule
}

// CanHandle matches start-date phrasings.
func (h *StartHandler) CanHandle(q bot.Query) bool {
	return textutil.ContainsAny(q.Lower, startKeywords)
}

// HandleMessage renders the start date with the remaining day count. The
// count is not clamped and goes negative once admission has opened.
func (h *StartHandler) HandleMessage(_ context.Context, q bot.Query) (bot.Reply, error) {
	days := DaysUntil(h.start, q.Received, h.loc)
	return bot.Text(fmt.Sprintf(
		"📅 Admission at <b>%s</b> starts on <b>%s</b>.<br>"+
			"⏳ Only <b>%d</b> days left!<br>"+
			"🔥 Hurry up! Secure your seat and start your journey towards excellence.",
		InstitutionName, h.start.Format(), days,
	)), nil
}

// DeadlineHandler reports the admission deadline.
type DeadlineHandler struct {
	deadline knowledge.Date
	loc      *time.Location
}

// NewDeadlineHandler creates a new deadline handler.
func NewDeadlineHandler(base *knowledge.Base, loc *time.Location) *DeadlineHandler {
	return &DeadlineHandler{deadline: base.AdmissionDeadline, loc: loc}
}

// Name returns the module name
func (h *DeadlineHandler) Name() string {
	return DeadlineModule
}

// CanHandle matches deadline phrasings.
func (h *DeadlineHandler) CanHandle(q bot.Query) bool {
	return textutil.ContainsAny(q.Lower, deadlineKeywords)
}

// HandleMessage returns the remaining days, or a passed notice once the
// deadline date is behind us. The deadline date itself still counts as open.
func (h *DeadlineHandler) HandleMessage(_ context.Context, q bot.Query) (bot.Reply, error) {
	days := DaysUntil(h.deadline, q.Received, h.loc)
	if days < 0 {
		return bot.Text("⚠ Admission deadline has passed."), nil
	}
	return bot.Text(fmt.Sprintf(
		"📅 Admission ends on %s<br>⏳ Only %d days left!",
		h.deadline.Format(), days,
	)), nil
}
