package fees

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/knowledge"
)

func query(s string) bot.Query {
	return bot.NewQuery(s, time.Time{})
}

func TestCanHandle(t *testing.T) {
	t.Parallel()
	h := NewHandler(knowledge.Default())

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"course key", "fees for cse", true},
		{"course key without fee word", "cse", true},
		{"mixed case", "Fees for MBBS", true},
		{"multi word key", "bsc nursing cost", true},
		{"department only", "engineering fees", false},
		{"unrelated", "hello there", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.CanHandle(query(tt.input)))
		})
	}
}

func TestHandleMessage_CSE(t *testing.T) {
	t.Parallel()
	h := NewHandler(knowledge.Default())

	reply, err := h.HandleMessage(context.Background(), query("fees for cse"))
	require.NoError(t, err)

	want := "💰 Fees for CSE:\n" +
		"1st year: ₹60,000\n" +
		"2nd year: ₹55,000\n" +
		"3rd year: ₹55,000\n" +
		"4th year: ₹55,000\n"
	assert.Equal(t, want, reply.Text)
	assert.False(t, reply.Localized)
}

func TestHandleMessage_FirstKeyWins(t *testing.T) {
	t.Parallel()
	h := NewHandler(knowledge.Default())

	tests := []struct {
		input  string
		header string
	}{
		// "llb" is declared before "ba llb" and "bba llb".
		{"ba llb fees", "💰 Fees for LLB:\n"},
		// arts is declared before law, so "bba" wins over "bba llb".
		{"bba llb fees", "💰 Fees for BBA:\n"},
		{"m.arch", "💰 Fees for M.ARCH:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			reply, err := h.HandleMessage(context.Background(), query(tt.input))
			require.NoError(t, err)
			assert.Contains(t, reply.Text, tt.header)
		})
	}
}

func TestHandleMessage_FixtureTable(t *testing.T) {
	t.Parallel()
	base := &knowledge.Base{Departments: []knowledge.Department{{
		Name: "demo",
		Courses: []knowledge.Course{{
			Key:  "widgetry",
			Fees: []knowledge.YearAmount{{Year: "only year", Amount: "₹1"}},
		}},
	}}}
	h := NewHandler(base)

	reply, err := h.HandleMessage(context.Background(), query("widgetry"))
	require.NoError(t, err)
	assert.Equal(t, "💰 Fees for WIDGETRY:\nonly year: ₹1\n", reply.Text)

	reply, err = h.HandleMessage(context.Background(), query("nothing"))
	require.NoError(t, err)
	assert.True(t, reply.IsEmpty())
}
