// Package hostel answers residence questions from the boys and girls rosters.
package hostel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/knowledge"
	"github.com/srmist/campus-chat-go/internal/logger"
	"github.com/srmist/campus-chat-go/internal/textutil"
)

// ModuleName identifies the handler in logs and metrics.
const ModuleName = "hostel"

// ErrEmptyRoster is returned when a requested roster has no entries.
var ErrEmptyRoster = errors.New("hostel: roster is empty")

var (
	triggerKeywords = []string{"hostel", "boys", "girls", "ஆண்கள்", "பெண்கள்", "ஹோஸ்டல்"}
	boysKeywords    = []string{"boys", "ஆண்கள்"}
	girlsKeywords   = []string{"girls", "பெண்கள்"}
)

// Handler lists hostels for the requested roster, or the overview when no
// roster is named. It is registered fail-soft.
type Handler struct {
	base   *knowledge.Base
	logger *logger.Logger
}

// NewHandler creates a new hostel handler.
func NewHandler(base *knowledge.Base, log *logger.Logger) *Handler {
	return &Handler{base: base, logger: log}
}

// Name returns the module name
func (h *Handler) Name() string {
	return ModuleName
}

// CanHandle matches hostel and roster words in either language.
func (h *Handler) CanHandle(q bot.Query) bool {
	return textutil.ContainsAny(q.Lower, triggerKeywords)
}

// HandleMessage checks boys before girls, so a message naming both gets the
// boys roster.
func (h *Handler) HandleMessage(ctx context.Context, q bot.Query) (bot.Reply, error) {
	switch {
	case textutil.ContainsAny(q.Lower, boysKeywords):
		return h.roster(ctx, "Boys", h.base.BoysHostels)
	case textutil.ContainsAny(q.Lower, girlsKeywords):
		return h.roster(ctx, "Girls", h.base.GirlsHostels)
	default:
		return bot.Text(h.base.Texts.HostelOverview), nil
	}
}

func (h *Handler) roster(ctx context.Context, label string, hostels []knowledge.Hostel) (bot.Reply, error) {
	if len(hostels) == 0 {
		return bot.Reply{}, fmt.Errorf("%w: %s", ErrEmptyRoster, strings.ToLower(label))
	}
	if h.logger != nil {
		h.logger.WithModule(ModuleName).DebugContext(ctx, "Rendering hostel roster",
			"roster", label,
			"count", len(hostels),
		)
	}
	return bot.Text(FormatRoster(label, hostels)), nil
}

// FormatRoster renders a roster header followed by one block per hostel.
func FormatRoster(label string, hostels []knowledge.Hostel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>🏠 %s Hostels:</b><br>", label)
	for _, hs := range hostels {
		ac := "Non-AC"
		if hs.AC {
			ac = "AC"
		}
		fmt.Fprintf(&b, "%s - %s<br>Rooms: %d, Members/Room: %d<br>Hostel Fees: ₹%d, Mess Fees: ₹%d<br><br>",
			hs.Name, ac, hs.Rooms, hs.MembersPerRoom, hs.HostelFee, hs.MessFee)
	}
	return b.String()
}
