package placement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/knowledge"
)

func TestHandlers(t *testing.T) {
	t.Parallel()
	base := knowledge.Default()
	info := NewInfoHandler(base)
	stats := NewStatsHandler(base)

	tests := []struct {
		input string
		info  bool
		stats bool
	}{
		{"placement details", true, false},
		{"tell me about placements", true, false},
		{"past placements", true, true},
		{"placement stats", false, true},
		{"previous year placement record", false, true},
		{"முன்னாள் பதவிகள்", true, true},
		{"placement", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := bot.NewQuery(tt.input, time.Time{})
			assert.Equal(t, tt.info, info.CanHandle(q), "info")
			assert.Equal(t, tt.stats, stats.CanHandle(q), "stats")
		})
	}

	reply, err := stats.HandleMessage(context.Background(), bot.NewQuery("placement stats", time.Time{}))
	require.NoError(t, err)
	assert.Equal(t, base.Texts.PlacementStats, reply.Text)
	assert.Equal(t, StatsModule, stats.Name())
}
