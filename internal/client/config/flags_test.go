package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name:     "all flags",
			args:     []string{"-d", "/tmp/a.db", "-l", "debug", "-b", "250"},
			expected: &Config{DatabasePath: "/tmp/a.db", LogLevel: "debug", BusyTimeout: 250 * time.Millisecond},
		},
		{
			name:     "unknown flags skipped",
			args:     []string{"-c", "cfg.json", "-x", "1", "-l", "warn"},
			expected: &Config{DatabasePath: "keep.db", LogLevel: "warn", BusyTimeout: time.Second},
		},
		{
			name:        "bad busy timeout",
			args:        []string{"-b", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{DatabasePath: "keep.db", LogLevel: "info", BusyTimeout: time.Second}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
