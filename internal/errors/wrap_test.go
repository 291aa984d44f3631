package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWrapper(t *testing.T) {
	w := NewWrapper("hostel", "list_hostels")

	assert.NoError(t, w.Wrap(nil, "ignored"))
	assert.NoError(t, w.Wrapf(nil, "ignored %d", 1))

	cause := errors.New("roster missing")
	err := w.Wrap(cause, "Error fetching hostel data")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)

	var we *WrappedError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "hostel", we.Module)
	assert.Equal(t, "list_hostels", we.Operation)

	err = w.Wrapf(cause, "retry in %d seconds", 5)
	assert.Equal(t, "retry in 5 seconds", GetUserMessage(err))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"Nil", nil, ""},
		{"Plain error", errors.New("plain"), "plain"},
		{"Wrapped", NewWrapper("m", "op").Wrap(errors.New("x"), "friendly"), "friendly"},
		{"Wrapped inside fmt", fmt.Errorf("outer: %w", NewWrapper("m", "op").Wrap(errors.New("x"), "friendly")), "friendly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetUserMessage(tt.err))
		})
	}
}

func TestWrappedError_Error(t *testing.T) {
	err := NewWrapper("dresscode", "match").Wrap(errors.New("bad table"), "Server error")
	assert.Equal(t, "[dresscode:match] Server error: bad table", err.Error())
}
