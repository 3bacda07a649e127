package bot

import (
	"log/slog"
	"time"
)

// Watchdog flags lanes that stay held implausibly long, the usual sign that
// the capture region reads something brighter than the judgment line.
// Observation only; it never touches lane state. Owned by the control loop,
// so no locking.
type Watchdog struct {
	holdLimit time.Duration
	cooldown  time.Duration
	heldSince []time.Time
	lastWarn  time.Time
	now       func() time.Time
}

// NewWatchdog creates a watchdog for lanes columns.
func NewWatchdog(lanes int, holdLimit, cooldown time.Duration) *Watchdog {
	if holdLimit <= 0 {
		holdLimit = DefaultHoldLimit
	}
	if cooldown <= 0 {
		cooldown = DefaultWarnCooldown
	}
	return &Watchdog{
		holdLimit: holdLimit,
		cooldown:  cooldown,
		heldSince: make([]time.Time, lanes),
		now:       time.Now,
	}
}

// Observe inspects the per-lane held state after a frame. A lane held past
// the limit logs a cooldown-gated warning naming the column.
func (w *Watchdog) Observe(held []bool) {
	now := w.now()
	for i, h := range held {
		if i >= len(w.heldSince) {
			return
		}
		if !h {
			w.heldSince[i] = time.Time{}
			continue
		}
		if w.heldSince[i].IsZero() {
			w.heldSince[i] = now
			continue
		}
		if now.Sub(w.heldSince[i]) < w.holdLimit {
			continue
		}
		if now.Sub(w.lastWarn) < w.cooldown {
			continue
		}
		w.lastWarn = now
		slog.Warn("lane held suspiciously long; capture region may be misaligned",
			"column", i, "held_for", now.Sub(w.heldSince[i]))
	}
}

// stuckLanes returns columns currently past the hold limit.
func (w *Watchdog) stuckLanes() []int {
	now := w.now()
	var stuck []int
	for i, since := range w.heldSince {
		if !since.IsZero() && now.Sub(since) >= w.holdLimit {
			stuck = append(stuck, i)
		}
	}
	return stuck
}
