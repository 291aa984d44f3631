// Package placement answers placement overview and statistics questions.
package placement

import (
	"context"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/knowledge"
	"github.com/srmist/campus-chat-go/internal/textutil"
)

// Module names used in logs and metrics.
const (
	InfoModule  = "placement_info"
	StatsModule = "placement_stats"
)

var (
	infoKeywords  = []string{"placements", "placement details", "placement info", "பதவி"}
	statsKeywords = []string{"previous year placement", "past placements", "placement stats", "முன்னாள் பதவிகள்"}
)

// staticHandler replies with one fixed block when any keyword is contained.
type staticHandler struct {
	name     string
	keywords []string
	text     string
}

// Name returns the module name
func (h *staticHandler) Name() string { return h.name }

func (h *staticHandler) CanHandle(q bot.Query) bool {
	return textutil.ContainsAny(q.Lower, h.keywords)
}

func (h *staticHandler) HandleMessage(_ context.Context, _ bot.Query) (bot.Reply, error) {
	return bot.Text(h.text), nil
}

// NewInfoHandler answers general placement questions.
func NewInfoHandler(base *knowledge.Base) bot.Handler {
	return &staticHandler{name: InfoModule, keywords: infoKeywords, text: base.Texts.PlacementInfo}
}

// NewStatsHandler answers questions about past placement results.
func NewStatsHandler(base *knowledge.Base) bot.Handler {
	return &staticHandler{name: StatsModule, keywords: statsKeywords, text: base.Texts.PlacementStats}
}
