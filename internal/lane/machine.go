// Package lane turns per-column signal edges into key press and release
// actions. The machine owns the held state; nothing else mutates it.
package lane

import (
	"github.com/softpedal/lanebot/internal/errors"
	"github.com/softpedal/lanebot/internal/keymap"
)

// ActionKind distinguishes press from release.
type ActionKind int

const (
	Press ActionKind = iota
	Release
)

// String returns the kind's lowercase name.
func (k ActionKind) String() string {
	if k == Press {
		return "press"
	}
	return "release"
}

// Action is one key transition for a single lane.
type Action struct {
	Kind   ActionKind
	Column int
	Key    string
}

// Machine holds one "currently held" boolean per lane, initialized to
// not-held. Not safe for concurrent use; the control loop is the sole caller.
type Machine struct {
	bindings *keymap.Table
	held     []bool
}

// NewMachine creates a machine with every lane released.
func NewMachine(bindings *keymap.Table) *Machine {
	return &Machine{
		bindings: bindings,
		held:     make([]bool, bindings.Columns()),
	}
}

// Lanes returns the number of lanes the machine tracks.
func (m *Machine) Lanes() int { return len(m.held) }

// Update compares signals against held state and returns the actions for
// every lane whose signal changed, in column order. A lit signal on a
// released lane presses; a dark signal on a held lane releases; everything
// else is a no-op. Held state after Update exactly reflects the returned
// actions, so steady signals produce nothing on any later call.
func (m *Machine) Update(signals []bool) ([]Action, error) {
	if len(signals) != len(m.held) {
		return nil, errors.Newf(errors.CodeInvalidColumns,
			"got %d signals for %d lanes", len(signals), len(m.held))
	}
	var actions []Action
	for i, lit := range signals {
		switch {
		case lit && !m.held[i]:
			m.held[i] = true
			actions = append(actions, Action{Kind: Press, Column: i, Key: m.bindings.Key(i)})
		case !lit && m.held[i]:
			m.held[i] = false
			actions = append(actions, Action{Kind: Release, Column: i, Key: m.bindings.Key(i)})
		}
	}
	return actions, nil
}

// Held returns a copy of the per-lane held state.
func (m *Machine) Held() []bool {
	held := make([]bool, len(m.held))
	copy(held, m.held)
	return held
}
