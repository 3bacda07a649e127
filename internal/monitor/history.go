package monitor

import (
	"sync"
	"time"

	"github.com/softpedal/lanebot/internal/bot"
)

// History is a bounded in-memory log of applied key actions, kept so a
// calibration session can inspect what the bot just did.
type History struct {
	mu      sync.RWMutex
	entries []bot.Event
	maxSize int
}

// NewHistory creates a history bounded to maxEntries.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultHistorySize
	}
	return &History{
		entries: make([]bot.Event, 0, maxEntries),
		maxSize: maxEntries,
	}
}

// Add stores an event, evicting the oldest past the bound.
func (h *History) Add(evt bot.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, evt)
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[len(h.entries)-h.maxSize:]
	}
}

// Recent returns events from the last window, oldest first.
func (h *History) Recent(window time.Duration) []bot.Event {
	h.mu.RLock()
	defer h.mu.RUnlock()

	cutoff := time.Now().Add(-window)
	var result []bot.Event
	for _, e := range h.entries {
		if !e.Time.Before(cutoff) {
			result = append(result, e)
		}
	}
	return result
}

// Len returns the number of stored events.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
