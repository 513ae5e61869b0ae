package server

import (
	"net"
	"strconv"
	"time"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// API settings
	PathPrefix string

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string

	// CacheTTL bounds how long list responses are served from cache.
	// The cache is also flushed on every store change.
	CacheTTL time.Duration

	// NoticeBuffer is how many recent notices GET /notices can return.
	NoticeBuffer int

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:         "localhost",
		Port:         8080,
		PathPrefix:   "/api/v1",
		CORSEnabled:  false,
		CORSOrigins:  []string{},
		CacheTTL:     time.Minute,
		NoticeBuffer: 100,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // streaming endpoints stay open
		IdleTimeout:  120 * time.Second,
	}
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
