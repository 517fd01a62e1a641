package look

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// Orientation is a yaw/pitch pair in degrees. Yaw 0 looks down -Z and grows
// to the right; pitch grows upward.
type Orientation struct {
	Yaw   float64
	Pitch float64
}

// Tilt is the angle about the lateral +X axis, which turns the view
// downward and so has the opposite sign of Pitch.
func (o Orientation) Tilt() float64 {
	return -o.Pitch
}

// Forward returns the unit view direction.
func (o Orientation) Forward() mgl64.Vec3 {
	yaw, pitch := mgl64.DegToRad(o.Yaw), mgl64.DegToRad(o.Pitch)
	return mgl64.Vec3{
		math.Sin(yaw) * math.Cos(pitch),
		math.Sin(pitch),
		-math.Cos(yaw) * math.Cos(pitch),
	}
}

// Right returns the horizontal unit vector to the right of the view.
func (o Orientation) Right() mgl64.Vec3 {
	yaw := mgl64.DegToRad(o.Yaw)
	return mgl64.Vec3{math.Cos(yaw), 0, math.Sin(yaw)}
}

func (o Orientation) Up() mgl64.Vec3 {
	return o.Right().Cross(o.Forward()).Normalize()
}

// Body is the orientation of a body that only turns with yaw.
func (o Orientation) Body() Orientation {
	return Orientation{Yaw: o.Yaw}
}

// Quat returns the rotation taking -Z to Forward: pitch about X, then yaw
// about Y.
func (o Orientation) Quat() mgl64.Quat {
	yaw := mgl64.QuatRotate(-mgl64.DegToRad(o.Yaw), worldUp)
	pitch := mgl64.QuatRotate(mgl64.DegToRad(o.Pitch), mgl64.Vec3{1, 0, 0})
	return yaw.Mul(pitch).Normalize()
}

// ViewMatrix returns a camera matrix at eye looking along Forward.
func (o Orientation) ViewMatrix(eye mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, eye.Add(vec32(o.Forward())), vec32(o.Up()))
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
