package contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/fuzzy"
	"github.com/srmist/campus-chat-go/internal/knowledge"
)

func query(s string) bot.Query {
	return bot.NewQuery(s, time.Time{})
}

func TestContactHandler(t *testing.T) {
	t.Parallel()
	base := knowledge.Default()
	h := NewContactHandler(base)

	for _, s := range []string{"contact number", "What is your email", "how can I reach you", "தொடர்பு"} {
		assert.True(t, h.CanHandle(query(s)), s)
	}
	assert.False(t, h.CanHandle(query("entrance exam")))

	reply, err := h.HandleMessage(context.Background(), query("phone"))
	require.NoError(t, err)
	assert.Equal(t, base.Texts.Contact, reply.Text)
}

func TestEntranceHandler(t *testing.T) {
	t.Parallel()
	base := knowledge.Default()
	h := NewEntranceHandler(base)

	tests := []struct {
		input string
		line  string
	}{
		{"entrance exam for mbbs", base.EntranceNotes[1].Text},
		{"is there any entrance test for law", base.EntranceNotes[3].Text},
		{"entrance exam for cse", base.EntranceNotes[0].Text},
		{"exam date", base.Texts.EntranceDefault},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := query(tt.input)
			require.True(t, h.CanHandle(q))
			reply, err := h.HandleMessage(context.Background(), q)
			require.NoError(t, err)
			assert.Equal(t, base.Texts.Entrance+tt.line, reply.Text)
		})
	}
}

func TestDepartmentHandler(t *testing.T) {
	t.Parallel()
	base := knowledge.Default()
	h := NewDepartmentHandler(base, fuzzy.Default())

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"mbbs admission", "medical", true},
		{"மருத்துவம்", "medical", true},
		{"engineering", "engineering", true},
		{"enginering", "engineering", true},
		{"mba admission", "mba", true},
		{"llb", "law", true},
		{"barch", "architecture", true},
		{"bcom admission", "arts_science", true},
		{"hello", "", false},
	}

	names := map[string]string{}
	for _, n := range base.DepartmentNotes {
		names[n.Name] = n.Text
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := query(tt.input)
			require.Equal(t, tt.ok, h.CanHandle(q))
			reply, err := h.HandleMessage(context.Background(), q)
			require.NoError(t, err)
			if !tt.ok {
				assert.True(t, reply.IsEmpty())
				return
			}
			assert.Equal(t, names[tt.want], reply.Text)
		})
	}
}

func TestDepartmentHandler_EngineeringIsFuzzyOnly(t *testing.T) {
	t.Parallel()
	h := NewDepartmentHandler(knowledge.Default(), fuzzy.Default())

	// Containment alone does not select the fuzzy engineering note.
	assert.False(t, h.CanHandle(query("i would like to know about the cse department placements")))
}
