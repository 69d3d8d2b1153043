package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-d", "auth.db", "-l", "debug"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "auth.db"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-d", "auth.db"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "flag followed by another flag keeps no value",
			args:         []string{"-d", "-l", "warn"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d"},
		},
		{
			name:         "nil args",
			args:         nil,
			allowedFlags: []string{"-d"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short form", args: []string{"-c", "a.json", "-d", "x.db"}, want: "a.json"},
		{name: "long form with equals", args: []string{"-config=b.json"}, want: "b.json"},
		{name: "long form separate", args: []string{"-l", "info", "-config", "c.json"}, want: "c.json"},
		{name: "absent", args: []string{"-d", "x.db"}, want: ""},
		{name: "flag without value", args: []string{"-c"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFileFlag(tt.args))
		})
	}
}
