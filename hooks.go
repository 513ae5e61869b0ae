package quotegen

import (
	"sync"

	"github.com/agentstation/quotegen/pkg/quotes"
)

// Hook function types for quote events
type (
	// QuoteAddedHook is called when a quote is added to the store
	QuoteAddedHook func(q quotes.Quote)

	// QuoteUpdatedHook is called when a sync or import overwrites a quote
	QuoteUpdatedHook func(old, new quotes.Quote)

	// QuoteRemovedHook is called when a quote is removed from the store
	QuoteRemovedHook func(q quotes.Quote)

	// NoticeHook is called for every notice
	NoticeHook func(n Notice)
)

// Hooks registers event callbacks.
type Hooks interface {
	OnQuoteAdded(fn QuoteAddedHook)
	OnQuoteUpdated(fn QuoteUpdatedHook)
	OnQuoteRemoved(fn QuoteRemovedHook)
	OnNotice(fn NoticeHook)
}

// hooks manages event callbacks for store changes
type hooks struct {
	mu             sync.RWMutex
	onQuoteAdded   []QuoteAddedHook
	onQuoteUpdated []QuoteUpdatedHook
	onQuoteRemoved []QuoteRemovedHook
	onNotice       []NoticeHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnQuoteAdded registers a callback for when quotes are added
func (h *hooks) OnQuoteAdded(fn QuoteAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onQuoteAdded = append(h.onQuoteAdded, fn)
}

// OnQuoteUpdated registers a callback for when quotes are overwritten
func (h *hooks) OnQuoteUpdated(fn QuoteUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onQuoteUpdated = append(h.onQuoteUpdated, fn)
}

// OnQuoteRemoved registers a callback for when quotes are removed
func (h *hooks) OnQuoteRemoved(fn QuoteRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onQuoteRemoved = append(h.onQuoteRemoved, fn)
}

// OnNotice registers a callback for notices
func (h *hooks) OnNotice(fn NoticeHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onNotice = append(h.onNotice, fn)
}

// triggerNotice delivers n to every notice hook
func (h *hooks) triggerNotice(n Notice) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onNotice {
		hook(n)
	}
}

// triggerStoreUpdate compares old and new store contents and triggers the
// matching hooks
func (h *hooks) triggerStoreUpdate(oldList, newList []quotes.Quote) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	oldByID := make(map[int64]quotes.Quote, len(oldList))
	for _, q := range oldList {
		oldByID[q.ID] = q
	}
	newByID := make(map[int64]struct{}, len(newList))

	for _, q := range newList {
		newByID[q.ID] = struct{}{}
		old, exists := oldByID[q.ID]
		switch {
		case !exists:
			for _, hook := range h.onQuoteAdded {
				hook(q)
			}
		case old != q:
			for _, hook := range h.onQuoteUpdated {
				hook(old, q)
			}
		}
	}

	for _, q := range oldList {
		if _, exists := newByID[q.ID]; !exists {
			for _, hook := range h.onQuoteRemoved {
				hook(q)
			}
		}
	}
}
