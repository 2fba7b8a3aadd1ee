package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "remote mode", args: []string{"cmd", "-a", "http://api:8000", "-m=false", "-i", "10"},
			expected: &Config{APIBaseURL: "http://api:8000", MockMode: false, OnlineCheckInterval: 10 * time.Second}},
		{name: "data file and level", args: []string{"cmd", "-d", "/tmp/x.db", "-l", "debug", "-z", "ignored"},
			expected: &Config{DataFile: "/tmp/x.db", LogLevel: "debug"}},
		{name: "mock off with separate value", args: []string{"cmd", "-m", "false", "-a", "http://api:8000"},
			expected: &Config{APIBaseURL: "http://api:8000", MockMode: false}},
		{name: "mock on", args: []string{"cmd", "-m", "-d", "/tmp/y.db"},
			expected: &Config{MockMode: true, DataFile: "/tmp/y.db"}},
		{name: "incorrect check interval", args: []string{"cmd", "-i", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
