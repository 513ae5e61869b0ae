// Package events fans quote store changes and notices out to the live
// update transports (WebSocket and SSE) through a single broker.
package events

import "github.com/agentstation/utc"

// EventType identifies the kind of live update.
type EventType string

// Event types published by the server.
const (
	QuoteAdded   EventType = "quote.added"
	QuoteUpdated EventType = "quote.updated"
	QuoteRemoved EventType = "quote.removed"

	// Notice carries a user-visible notice from sync, push or persistence.
	Notice EventType = "notice"

	// ClientConnected is sent to transports when a new listener attaches.
	ClientConnected EventType = "client.connected"
)

// Event is one live update.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp utc.Time  `json:"timestamp"`
	Data      any       `json:"data"`
}
