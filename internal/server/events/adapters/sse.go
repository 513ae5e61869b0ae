package adapters

import (
	"strconv"

	"github.com/agentstation/quotegen/internal/server/events"
	"github.com/agentstation/quotegen/internal/server/sse"
)

// SSESubscriber forwards events to every SSE client.
type SSESubscriber struct {
	broadcaster *sse.Broadcaster
}

// NewSSESubscriber creates a subscriber for broadcaster.
func NewSSESubscriber(broadcaster *sse.Broadcaster) *SSESubscriber {
	return &SSESubscriber{broadcaster: broadcaster}
}

// Send implements events.Subscriber.
func (s *SSESubscriber) Send(event events.Event) error {
	s.broadcaster.Broadcast(sse.Event{
		Event: string(event.Type),
		ID:    strconv.FormatInt(event.Timestamp.UnixMilli(), 10),
		Data:  event.Data,
	})
	return nil
}

// Close is a no-op; the broadcaster owns its connections.
func (s *SSESubscriber) Close() error {
	return nil
}
