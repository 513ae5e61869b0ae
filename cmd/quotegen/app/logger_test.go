package app

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	var warnings bytes.Buffer
	orig := errWriter
	errWriter = &warnings
	t.Cleanup(func() { errWriter = orig })

	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"both prefers quiet", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit wins", Config{LogLevel: "error", Verbose: true}, "error"},
		{"invalid explicit", Config{LogLevel: "loud"}, "info"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(&tt.config))
		})
	}
	assert.Contains(t, warnings.String(), `invalid log level "loud"`)
}

func TestNewLoggerLevel(t *testing.T) {
	logger := NewLogger(&Config{Quiet: true, LogFormat: "json", LogOutput: "discard"})
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}
