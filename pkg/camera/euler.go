package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// YawPitch extracts yaw and pitch (radians, YXZ order) from a rotation.
// Any roll is discarded.
func YawPitch(q mgl32.Quat) (yaw, pitch float32) {
	m := q.Normalize().Mat4()
	m13, m23, m33 := m.At(0, 2), m.At(1, 2), m.At(2, 2)

	pitch = float32(math.Asin(float64(-mgl32.Clamp(m23, -1, 1))))
	if math.Abs(float64(m23)) < 0.9999999 {
		yaw = float32(math.Atan2(float64(m13), float64(m33)))
	} else {
		// looking straight up or down, recover yaw from the X column
		m31, m11 := m.At(2, 0), m.At(0, 0)
		yaw = float32(math.Atan2(float64(-m31), float64(m11)))
	}
	return yaw, pitch
}

// FromYawPitch builds a rotation with roll 0: yaw about world Y, then pitch
// about the camera's X axis
func FromYawPitch(yaw, pitch float32) mgl32.Quat {
	qy := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0})
	qx := mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0})
	return qy.Mul(qx).Normalize()
}

// ClampPitch keeps pitch away from the poles
func ClampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, MinPitch, MaxPitch)
}

// Forward returns the view direction for a yaw/pitch pair. Yaw 0 faces -Z
// and positive yaw turns toward -X.
func Forward(yaw, pitch float32) mgl32.Vec3 {
	sy, cy := math.Sincos(float64(yaw))
	sp, cp := math.Sincos(float64(pitch))
	return mgl32.Vec3{float32(-sy * cp), float32(sp), float32(-cy * cp)}
}
