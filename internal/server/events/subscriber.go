package events

// Subscriber consumes the broker's event stream.
type Subscriber interface {
	// Send delivers an event. It must not block.
	Send(Event) error

	// Close releases the subscriber.
	Close() error
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(Event) error

// Send calls f(e).
func (f SubscriberFunc) Send(e Event) error { return f(e) }

// Close is a no-op.
func (f SubscriberFunc) Close() error { return nil }
