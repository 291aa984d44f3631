package campus

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

func TestDressCodeHandler(t *testing.T) {
	t.Parallel()
	base := knowledge.Default()
	h := NewDressCodeHandler(base, fuzzy.Default())

	tests := []struct {
		input string
		want  bool
	}{
		{"dress code", true},
		{"What is the dress code?", true},
		{"dres code", true},
		{"உடை விதிகள்", true},
		{"hostel fees", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, h.CanHandle(query(tt.input)))
		})
	}

	reply, err := h.HandleMessage(context.Background(), query("dress code"))
	require.NoError(t, err)
	assert.Equal(t, base.Texts.DressCode, reply.Text)
}

func TestDressCodeHandler_MissingText(t *testing.T) {
	t.Parallel()
	base := &knowledge.Base{Intents: knowledge.Default().Intents}
	h := NewDressCodeHandler(base, fuzzy.Default())

	_, err := h.HandleMessage(context.Background(), query("dress code"))
	require.ErrorIs(t, err, errNoDressCode)
}

func TestCollegeInfoHandler(t *testing.T) {
	t.Parallel()
	base := knowledge.Default()
	h := NewCollegeInfoHandler(base)

	reply, err := h.HandleMessage(context.Background(), query("Tell me about college"))
	require.NoError(t, err)
	assert.Equal(t, base.Texts.CollegeInfoEnglish, reply.Text)
	assert.False(t, reply.Localized)

	q := query("கல்லூரி பற்றிய தகவல்")
	require.True(t, h.CanHandle(q))
	reply, err = h.HandleMessage(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, base.Texts.CollegeInfoTamil, reply.Text)
	assert.True(t, reply.Localized)

	assert.False(t, h.CanHandle(query("college fest")))
}

func TestCoursesHandler(t *testing.T) {
	t.Parallel()
	base := knowledge.Default()
	h := NewCoursesHandler(base)

	tests := []struct {
		input     string
		handles   bool
		localized bool
	}{
		{"what courses are offered", true, false},
		{"arts programmes", true, false},
		{"பாடநெறிகள் என்ன", true, true},
		{"placement", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := query(tt.input)
			require.Equal(t, tt.handles, h.CanHandle(q))
			if !tt.handles {
				return
			}
			reply, err := h.HandleMessage(context.Background(), q)
			require.NoError(t, err)
			assert.Equal(t, tt.localized, reply.Localized)
			if tt.localized {
				assert.Equal(t, base.Texts.CoursesTamil, reply.Text)
			} else {
				assert.Equal(t, base.Texts.CoursesEnglish, reply.Text)
			}
		})
	}
}
