package bot

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/srmist/campus-chat-go/internal/logger"
)

// stubHandler fires when its trigger is contained in the query.
type stubHandler struct {
	name    string
	trigger string
	reply   Reply
	err     error
	panics  bool
	calls   int
}

func (s *stubHandler) Name() string { return s.name }

func (s *stubHandler) CanHandle(q Query) bool {
	return s.trigger == "*" || strings.Contains(q.Lower, s.trigger)
}

func (s *stubHandler) HandleMessage(_ context.Context, _ Query) (Reply, error) {
	s.calls++
	if s.panics {
		panic("boom")
	}
	return s.reply, s.err
}

func stub(name, trigger, text string) *stubHandler {
	return &stubHandler{name: name, trigger: trigger, reply: Text(text)}
}

var errStub = errors.New("stub failure")

func testLogger() *logger.Logger {
	return logger.NewWithWriter("debug", io.Discard)
}

func testQuery(raw string) Query {
	return NewQuery(raw, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
}
