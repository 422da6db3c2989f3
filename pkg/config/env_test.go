package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		setEnv       bool
		defaultValue string
		want         string
	}{
		{name: "set", envValue: "octocat", setEnv: true, defaultValue: "dimipash", want: "octocat"},
		{name: "unset uses default", setEnv: false, defaultValue: "dimipash", want: "dimipash"},
		{name: "empty uses default", envValue: "", setEnv: true, defaultValue: "dimipash", want: "dimipash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv("TEST_STRING", tt.envValue)
			}
			assert.Equal(t, tt.want, GetEnvString("TEST_STRING", tt.defaultValue))
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		setEnv       bool
		defaultValue int
		want         int
	}{
		{name: "valid", envValue: "20", setEnv: true, defaultValue: 5, want: 20},
		{name: "unset uses default", setEnv: false, defaultValue: 5, want: 5},
		{name: "garbage uses default", envValue: "abc", setEnv: true, defaultValue: 5, want: 5},
		{name: "negative is accepted", envValue: "-3", setEnv: true, defaultValue: 5, want: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv("TEST_INT", tt.envValue)
			}
			assert.Equal(t, tt.want, GetEnvInt("TEST_INT", tt.defaultValue))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		setEnv       bool
		defaultValue bool
		want         bool
	}{
		{name: "true", envValue: "true", setEnv: true, defaultValue: false, want: true},
		{name: "one", envValue: "1", setEnv: true, defaultValue: false, want: true},
		{name: "false", envValue: "false", setEnv: true, defaultValue: true, want: false},
		{name: "unset uses default", setEnv: false, defaultValue: true, want: true},
		{name: "invalid uses default", envValue: "yes", setEnv: true, defaultValue: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv("TEST_BOOL", tt.envValue)
			}
			assert.Equal(t, tt.want, GetEnvBool("TEST_BOOL", tt.defaultValue))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		setEnv       bool
		defaultValue time.Duration
		want         time.Duration
	}{
		{name: "valid seconds", envValue: "10s", setEnv: true, defaultValue: time.Minute, want: 10 * time.Second},
		{name: "composite", envValue: "1m30s", setEnv: true, defaultValue: time.Minute, want: 90 * time.Second},
		{name: "unset uses default", setEnv: false, defaultValue: time.Minute, want: time.Minute},
		{name: "bare number uses default", envValue: "10", setEnv: true, defaultValue: time.Minute, want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv("TEST_DURATION", tt.envValue)
			}
			assert.Equal(t, tt.want, GetEnvDuration("TEST_DURATION", tt.defaultValue))
		})
	}
}

func TestGetEnvStringList(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		setEnv       bool
		defaultValue []string
		want         []string
	}{
		{name: "single", envValue: "Python", setEnv: true, defaultValue: nil, want: []string{"Python"}},
		{name: "multiple with spaces", envValue: "Python, Go , Django", setEnv: true, defaultValue: nil, want: []string{"Python", "Go", "Django"}},
		{name: "empty entries filtered", envValue: ",Go,,", setEnv: true, defaultValue: nil, want: []string{"Go"}},
		{name: "unset uses default", setEnv: false, defaultValue: []string{"a"}, want: []string{"a"}},
		{name: "only commas uses default", envValue: ",,", setEnv: true, defaultValue: []string{"a"}, want: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv("TEST_LIST", tt.envValue)
			}
			assert.Equal(t, tt.want, GetEnvStringList("TEST_LIST", tt.defaultValue))
		})
	}
}
