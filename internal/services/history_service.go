package services

import "sync"

// historyCapacity bounds the in-memory message history.
const historyCapacity = 10

// HistoryService keeps the last generated messages for the current
// process, newest first. Not persisted across restarts.
type HistoryService interface {
	Record(message string)
	Entries() []string
	MostRecent() (string, bool)
	HasHistory() bool
}

type historyService struct {
	mu      sync.Mutex
	entries []string
}

func NewHistoryService() HistoryService {
	return &historyService{}
}

// Record inserts message at the front unless an identical entry already
// exists. An existing entry keeps its position; it is not promoted. When
// the buffer exceeds capacity the oldest entry is dropped.
func (h *historyService) Record(message string) {
	if message == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, existing := range h.entries {
		if existing == message {
			return
		}
	}

	h.entries = append([]string{message}, h.entries...)
	if len(h.entries) > historyCapacity {
		h.entries = h.entries[:historyCapacity]
	}
}

func (h *historyService) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *historyService) MostRecent() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[0], true
}

func (h *historyService) HasHistory() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries) > 0
}
