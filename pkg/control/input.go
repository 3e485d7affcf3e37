// Package control owns the camera control schemes and switching between
// them.
package control

import "fmt"

// Mode is the active control scheme
type Mode int

const (
	FreeFlight Mode = iota
	Orbital
)

func (m Mode) String() string {
	switch m {
	case FreeFlight:
		return "free-flight"
	case Orbital:
		return "orbital"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the names returned by Mode.String
func ParseMode(s string) (Mode, error) {
	switch s {
	case "free-flight", "freeflight", "free":
		return FreeFlight, nil
	case "orbital", "orbit":
		return Orbital, nil
	}
	return FreeFlight, fmt.Errorf("%s: unknown control mode", s)
}

// Action is a logical input code, independent of the physical key
type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionReset
	ActionLookUp
	ActionLookDown
	ActionLookLeft
	ActionLookRight
	ActionMoveForward
	ActionMoveBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionMoveUp
	ActionMoveDown

	numActions
)

// Input holds which actions are currently held down
type Input struct {
	held [numActions]bool
}

// Press marks an action as held
func (in *Input) Press(a Action) {
	if a > ActionNone && a < numActions {
		in.held[a] = true
	}
}

// Release clears an action
func (in *Input) Release(a Action) {
	if a > ActionNone && a < numActions {
		in.held[a] = false
	}
}

// Held reports whether an action is down
func (in *Input) Held(a Action) bool {
	return a > ActionNone && a < numActions && in.held[a]
}

// Clear releases everything
func (in *Input) Clear() {
	in.held = [numActions]bool{}
}

// axis is +1, -1 or 0 for a pair of opposing actions
func (in *Input) axis(pos, neg Action) float32 {
	var v float32
	if in.Held(pos) {
		v++
	}
	if in.Held(neg) {
		v--
	}
	return v
}
