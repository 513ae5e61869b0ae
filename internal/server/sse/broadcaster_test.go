package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readEvent reads one SSE frame and returns its lines.
func readEvent(t *testing.T, r *bufio.Reader) []string {
	t.Helper()
	var lines []string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" {
			return lines
		}
		lines = append(lines, line)
	}
}

func TestBroadcasterStreamsEvents(t *testing.T) {
	logger := zerolog.Nop()
	b := NewBroadcaster(&logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.Run(ctx)

	srv := httptest.NewServer(b)
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	first := readEvent(t, reader)
	require.NotEmpty(t, first)
	assert.Equal(t, "event: connected", first[0])

	require.Eventually(t, func() bool { return b.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	b.Broadcast(Event{Event: "quote.added", ID: "42", Data: map[string]any{"id": 42}})
	frame := readEvent(t, reader)
	assert.Equal(t, []string{"event: quote.added", "id: 42", `data: {"id":42}`}, frame)
}

func TestBroadcasterShutdownEndsStreams(t *testing.T) {
	logger := zerolog.Nop()
	b := NewBroadcaster(&logger)

	ctx, cancel := context.WithCancel(context.Background())
	go b.Run(ctx)

	srv := httptest.NewServer(b)
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	readEvent(t, bufio.NewReader(resp.Body))
	require.Eventually(t, func() bool { return b.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	require.Eventually(t, func() bool { return b.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestBroadcastDropsWhenFull(t *testing.T) {
	logger := zerolog.Nop()
	b := NewBroadcaster(&logger)
	for range cap(b.events) + 1 {
		b.Broadcast(Event{Data: "x"})
	}
	assert.Len(t, b.events, cap(b.events))
}
