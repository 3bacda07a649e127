// Package monitor exposes loop state over HTTP and WebSocket for calibration.
package monitor

import "time"

// Monitor configuration constants
const (
	// Bounded action history kept for /state queries
	DefaultHistorySize = 200

	// Action broadcast coalescing: flush on size or delay, whichever first
	DefaultBatchSize  = 32
	DefaultFlushDelay = 250 * time.Millisecond

	// Periodic held-state broadcast interval
	snapshotInterval = time.Second
)
