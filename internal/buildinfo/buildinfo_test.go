package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelease(t *testing.T) {
	origVersion, origCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = origVersion, origCommit })

	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{"Version wins", "v1.2.0", "0123456789abcdef", "v1.2.0"},
		{"Short commit", "", "0123456789abcdef", "0123456"},
		{"Tiny commit", "", "abc", "abc"},
		{"Nothing injected", "", "", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit = tt.version, tt.commit
			assert.Equal(t, tt.want, Release())
		})
	}
}
