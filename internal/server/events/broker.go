package events

import (
	"context"
	"slices"
	"sync"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"
)

// Broker distributes events to every registered subscriber.
// Publish never blocks: when the queue is full the event is dropped and logged.
type Broker struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	events      chan Event
	logger      *zerolog.Logger
}

// NewBroker creates a broker with a bounded event queue.
func NewBroker(logger *zerolog.Logger) *Broker {
	return &Broker{
		events: make(chan Event, 256),
		logger: logger,
	}
}

// Run delivers queued events until ctx is canceled, then closes all subscribers.
func (b *Broker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			b.mu.Lock()
			for _, sub := range b.subscribers {
				_ = sub.Close()
			}
			b.subscribers = nil
			b.mu.Unlock()
			b.logger.Debug().Msg("Event broker shut down")
			return

		case event := <-b.events:
			b.mu.RLock()
			subs := slices.Clone(b.subscribers)
			b.mu.RUnlock()

			for _, sub := range subs {
				if err := sub.Send(event); err != nil {
					b.logger.Warn().
						Err(err).
						Str("event_type", string(event.Type)).
						Msg("Failed to send event to subscriber")
				}
			}

			b.logger.Debug().
				Str("event_type", string(event.Type)).
				Int("subscribers", len(subs)).
				Msg("Event broadcasted")
		}
	}
}

// Publish queues an event for delivery.
func (b *Broker) Publish(eventType EventType, data any) {
	event := Event{
		Type:      eventType,
		Timestamp: utc.Now(),
		Data:      data,
	}

	select {
	case b.events <- event:
	default:
		b.logger.Warn().
			Str("event_type", string(eventType)).
			Msg("Event queue full, event dropped")
	}
}

// Subscribe registers sub.
func (b *Broker) Subscribe(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, sub)
}

// Unsubscribe removes and closes sub.
func (b *Broker) Unsubscribe(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subscribers {
		if s == sub {
			b.subscribers = slices.Delete(b.subscribers, i, i+1)
			_ = s.Close()
			return
		}
	}
}

// SubscriberCount returns the current number of subscribers.
func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
