package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/agentstation/quotegen"
	"github.com/agentstation/quotegen/internal/server/response"
)

// defaultNoticeLimit is how many notices GET /api/v1/notices returns
// without a limit parameter.
const defaultNoticeLimit = 20

// NoticeLog keeps the most recent notices in a fixed-size ring.
type NoticeLog struct {
	mu    sync.Mutex
	items []quotegen.Notice
	next  int
	full  bool
}

// NewNoticeLog creates a log holding up to size notices.
func NewNoticeLog(size int) *NoticeLog {
	if size < 1 {
		size = 1
	}
	return &NoticeLog{items: make([]quotegen.Notice, size)}
}

// Add records n, evicting the oldest notice when full.
func (l *NoticeLog) Add(n quotegen.Notice) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items[l.next] = n
	l.next = (l.next + 1) % len(l.items)
	if l.next == 0 {
		l.full = true
	}
}

// Recent returns up to limit notices, newest first.
func (l *NoticeLog) Recent(limit int) []quotegen.Notice {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := l.next
	if l.full {
		count = len(l.items)
	}
	if limit <= 0 || limit > count {
		limit = count
	}

	out := make([]quotegen.Notice, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (l.next - i + len(l.items)) % len(l.items)
		out = append(out, l.items[idx])
	}
	return out
}

// HandleNotices handles GET /api/v1/notices?limit=.
func (h *Handlers) HandleNotices(w http.ResponseWriter, r *http.Request) {
	limit := defaultNoticeLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.BadRequest(w, "Invalid limit", "limit must be a positive integer")
			return
		}
		limit = n
	}
	response.OK(w, h.notices.Recent(limit))
}
