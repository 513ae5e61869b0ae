package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/quotegen"
)

var _ Application = (*Mock)(nil)

// Mock is a configurable Application for tests. Unset funcs return zero
// values; Logger defaults to a no-op logger.
type Mock struct {
	ClientFunc       func() (quotegen.Client, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionValue     string
}

// Client implements Application.
func (m *Mock) Client() (quotegen.Client, error) {
	if m.ClientFunc == nil {
		return nil, nil
	}
	return m.ClientFunc()
}

// Logger implements Application.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc == nil {
		logger := zerolog.Nop()
		return &logger
	}
	return m.LoggerFunc()
}

// OutputFormat implements Application.
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc == nil {
		return ""
	}
	return m.OutputFormatFunc()
}

// Version implements Application.
func (m *Mock) Version() string { return m.VersionValue }

// Commit implements Application.
func (m *Mock) Commit() string { return "" }

// Date implements Application.
func (m *Mock) Date() string { return "" }

// BuiltBy implements Application.
func (m *Mock) BuiltBy() string { return "" }
