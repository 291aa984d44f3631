// Package bot provides the reply resolver: the Handler interface every topic
// module implements, the Registry that evaluates handlers as an ordered
// cascade, and the Processor that drives one chat message end to end.
package bot

import (
	"context"
	"strings"
	"time"

	"github.com/srmist/campus-chat-go/internal/textutil"
)

// Fixed replies produced outside the topic handlers.
const (
	// EmptyMessageReply answers a missing, non-string, or blank message.
	EmptyMessageReply = "⚠️ Please type a message."

	// ServerErrorReply replaces the output of a fail-soft handler that errored or panicked.
	ServerErrorReply = "⚠️ Server error occurred. Please try again later."
)

// Query is one normalized chat message.
type Query struct {
	Raw      string    // trimmed message, original casing
	Lower    string    // normalized form used for matching
	Tamil    bool      // message contains at least one Tamil rune
	Received time.Time // wall-clock time the message was accepted
}

// NewQuery normalizes raw. It never fails; blank input yields an empty Query.
func NewQuery(raw string, received time.Time) Query {
	return Query{
		Raw:      strings.TrimSpace(raw),
		Lower:    textutil.Normalize(raw),
		Tamil:    textutil.IsTamil(raw),
		Received: received,
	}
}

// IsBlank reports whether the message had no visible content.
func (q Query) IsBlank() bool {
	return q.Lower == ""
}

// Lang returns "ta" for Tamil input and "en" otherwise.
func (q Query) Lang() string {
	if q.Tamil {
		return "ta"
	}
	return "en"
}

// Reply is a resolved answer. Text may contain inline markup.
type Reply struct {
	Text string
	// Localized marks text already written in Tamil; it is not translated.
	Localized bool
}

// Text builds a Reply in the default script.
func Text(s string) Reply {
	return Reply{Text: s}
}

// Localized builds a Reply already written in Tamil.
func Localized(s string) Reply {
	return Reply{Text: s, Localized: true}
}

// IsEmpty reports whether the handler declined.
func (r Reply) IsEmpty() bool {
	return r.Text == ""
}

// Handler defines the interface that all topic modules must implement.
type Handler interface {
	// Name identifies the handler in logs and metrics.
	Name() string

	// CanHandle is the handler's guard. It must be cheap and side-effect free.
	CanHandle(q Query) bool

	// HandleMessage produces the reply. An empty Reply means the handler declined.
	HandleMessage(ctx context.Context, q Query) (Reply, error)
}
