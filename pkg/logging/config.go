package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/agentstation/quotegen/pkg/constants"
)

// envPrefix matches the CLI's configuration prefix so QUOTEGEN_LOG_LEVEL
// means the same thing before and after flags are parsed.
const envPrefix = "QUOTEGEN_"

// Config holds logger configuration options
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error, off)
	Level string

	// Format is json, console or auto (console on a terminal)
	Format string

	// Output is stderr, stdout, discard or a file path to append to
	Output string

	// TimeFormat for console timestamps (kitchen, rfc3339 or a Go layout)
	TimeFormat string

	NoColor   bool
	AddCaller bool
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

// EnvConfig returns DefaultConfig overridden by QUOTEGEN_LOG_LEVEL,
// QUOTEGEN_LOG_FORMAT and QUOTEGEN_LOG_OUTPUT. QUOTEGEN_DEBUG selects the
// debug level when no level is set.
func EnvConfig() *Config {
	cfg := DefaultConfig()
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		cfg.Level = v
	} else if os.Getenv(envPrefix+"DEBUG") != "" {
		cfg.Level = "debug"
	}
	if v := os.Getenv(envPrefix + "LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(envPrefix + "LOG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	return cfg
}

// NewLoggerFromConfig creates a new logger from configuration. It also sets
// zerolog's global level so events below it are never built.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(writer(cfg)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

func writer(cfg *Config) io.Writer {
	var out io.Writer
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	case "discard", "none":
		return io.Discard
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
		if err != nil {
			out = os.Stderr
		} else {
			out = file
		}
	}

	console := false
	switch strings.ToLower(cfg.Format) {
	case "console", "pretty":
		console = true
	case "", "auto":
		f, ok := out.(*os.File)
		console = ok && isatty.IsTerminal(f.Fd())
	}
	if !console {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat(cfg.TimeFormat),
		NoColor:    cfg.NoColor,
	}
}

// ParseLevel parses a log level string, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch level = strings.ToLower(level); level {
	case "":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "none", "off":
		return zerolog.Disabled
	}
	if l, err := zerolog.ParseLevel(level); err == nil {
		return l
	}
	return zerolog.InfoLevel
}

func timeFormat(format string) string {
	switch strings.ToLower(format) {
	case "", "kitchen":
		return time.Kitchen
	case "rfc3339":
		return time.RFC3339
	}
	if strings.Contains(format, "2006") || strings.Contains(format, "15:04") {
		return format
	}
	return time.Kitchen
}
