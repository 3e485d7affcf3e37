package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-orrery/pkg/control"
)

// MinimapMargin is the gap in pixels between the minimap and the window's
// top-right corner
const MinimapMargin = 10

// KeyQuit closes the window
const KeyQuit = glfw.KeyEscape

// KeyBindings maps keys to control actions
var KeyBindings = map[glfw.Key]control.Action{
	glfw.KeySpace: control.ActionToggle,
	glfw.KeyR:     control.ActionReset,

	glfw.KeyUp:    control.ActionLookUp,
	glfw.KeyDown:  control.ActionLookDown,
	glfw.KeyLeft:  control.ActionLookLeft,
	glfw.KeyRight: control.ActionLookRight,

	glfw.KeyW: control.ActionMoveForward,
	glfw.KeyS: control.ActionMoveBack,
	glfw.KeyA: control.ActionStrafeLeft,
	glfw.KeyD: control.ActionStrafeRight,
	glfw.KeyQ: control.ActionMoveUp,
	glfw.KeyE: control.ActionMoveDown,
}

// ActionFor returns the action bound to key, ActionNone when unbound
func ActionFor(key glfw.Key) control.Action {
	if a, ok := KeyBindings[key]; ok {
		return a
	}
	return control.ActionNone
}
