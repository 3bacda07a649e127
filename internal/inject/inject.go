// Package inject asserts and releases held keys in the OS input layer.
package inject

import (
	"github.com/go-vgo/robotgo"

	"github.com/softpedal/lanebot/internal/errors"
)

// Injector toggles a key's held state. Implementations are idempotent at the
// OS level; logical state tracking stays with the lane machine so redundant
// calls never happen.
type Injector interface {
	Press(key string) error
	Release(key string) error
}

// Robot injects through robotgo.
type Robot struct{}

// NewRobot creates the production injector.
func NewRobot() Robot { return Robot{} }

// Press asserts the key's held state.
func (Robot) Press(key string) error { return toggle(key, "down") }

// Release deasserts the key's held state.
func (Robot) Release(key string) error { return toggle(key, "up") }

func toggle(key, direction string) error {
	if err := robotgo.KeyToggle(key, direction); err != nil {
		return errors.Wrapf(err, errors.CodeInjectFailed, "key %q %s", key, direction)
	}
	return nil
}
