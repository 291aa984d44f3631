package hostel

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/knowledge"
	"github.com/srmist/campus-chat-go/internal/logger"
)

func query(s string) bot.Query {
	return bot.NewQuery(s, time.Time{})
}

func newHandler(base *knowledge.Base) *Handler {
	return NewHandler(base, logger.NewWithWriter("debug", io.Discard))
}

func TestCanHandle(t *testing.T) {
	t.Parallel()
	h := newHandler(knowledge.Default())

	for _, s := range []string{"hostel", "Boys hostel", "girls", "ஆண்கள் விடுதி", "ஹோஸ்டல் கட்டணம்"} {
		assert.True(t, h.CanHandle(query(s)), s)
	}
	assert.False(t, h.CanHandle(query("placement")))
}

func TestHandleMessage_BoysRoster(t *testing.T) {
	t.Parallel()
	h := newHandler(knowledge.Default())

	reply, err := h.HandleMessage(context.Background(), query("boys hostel"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(reply.Text, "<b>🏠 Boys Hostels:</b><br>"))
	assert.Equal(t, 5, strings.Count(reply.Text, "Rooms: "))
	assert.Contains(t, reply.Text,
		"Paari Hostel (AC) - AC<br>Rooms: 50, Members/Room: 2<br>Hostel Fees: ₹10000, Mess Fees: ₹20000<br><br>")
	assert.Contains(t, reply.Text,
		"Marutham Hostel (Non-AC) - Non-AC<br>Rooms: 45, Members/Room: 4<br>Hostel Fees: ₹8000, Mess Fees: ₹20000<br><br>")
}

func TestHandleMessage_Selection(t *testing.T) {
	t.Parallel()
	base := knowledge.Default()
	h := newHandler(base)

	tests := []struct {
		input  string
		prefix string
	}{
		{"girls hostel", "<b>🏠 Girls Hostels:</b><br>"},
		{"பெண்கள் ஹோஸ்டல்", "<b>🏠 Girls Hostels:</b><br>"},
		{"boys and girls hostel", "<b>🏠 Boys Hostels:</b><br>"},
		{"hostel facilities", base.Texts.HostelOverview},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			reply, err := h.HandleMessage(context.Background(), query(tt.input))
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(reply.Text, tt.prefix), reply.Text)
		})
	}
}

func TestHandleMessage_EmptyRoster(t *testing.T) {
	t.Parallel()
	h := NewHandler(&knowledge.Base{}, nil)

	_, err := h.HandleMessage(context.Background(), query("girls hostel"))
	require.ErrorIs(t, err, ErrEmptyRoster)
	assert.Contains(t, err.Error(), "girls")
}

func TestFormatRoster(t *testing.T) {
	t.Parallel()
	got := FormatRoster("Boys", []knowledge.Hostel{
		{Name: "Test", Rooms: 1, MembersPerRoom: 2, AC: false, HostelFee: 3, MessFee: 4},
	})
	assert.Equal(t,
		"<b>🏠 Boys Hostels:</b><br>Test - Non-AC<br>Rooms: 1, Members/Room: 2<br>Hostel Fees: ₹3, Mess Fees: ₹4<br><br>",
		got)
}
