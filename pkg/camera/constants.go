package camera

import "math"

// Camera constants
const (
	// Projection
	DefaultFOV  = 40.0
	DefaultNear = 0.1
	DefaultFar  = 2000.0

	// Default placement, looking down at the origin
	HomeX = 0.0
	HomeY = 80.0
	HomeZ = 160.0

	// Pitch stays this far away from the poles
	PitchEpsilon = 0.001
	MaxPitch     = math.Pi/2 - PitchEpsilon
	MinPitch     = -MaxPitch

	// Minimap ortho camera
	MinimapExtent = 90.0
	MinimapHeight = 150.0
)
