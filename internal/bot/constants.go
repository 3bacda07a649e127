// Package bot runs the capture, reduce, inject control loop.
package bot

import "time"

// Control loop defaults
const (
	// Per-iteration poll wait; a frame-rate ceiling, not a target rate.
	DefaultPollWait = 3 * time.Millisecond

	// Grace period before the first frame so the game window can be focused.
	DefaultStartDelay = 2 * time.Second

	// Buffered hand-off to observers; the frame path never blocks on it.
	eventBuffer = 64
)

// Watchdog defaults
const (
	DefaultHoldLimit    = 10 * time.Second
	DefaultWarnCooldown = 10 * time.Second
)
