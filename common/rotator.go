package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotator is an orientation in degrees. X is forward, Y is right and Z is up;
// positive yaw turns clockwise when seen from above.
type Rotator struct {
	Pitch float64
	Yaw   float64
	Roll  float64
}

// Transform is a world-space location and orientation.
type Transform struct {
	Location mgl64.Vec3
	Rotation Rotator
}

// NormalizeAxis wraps an angle into (-180, 180].
func NormalizeAxis(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	if a > 180 {
		a -= 360
	}
	return a
}

// RotatorFromX returns the orientation whose forward axis points along v.
// A zero vector yields the zero rotator.
func RotatorFromX(v mgl64.Vec3) Rotator {
	return Rotator{
		Pitch: mgl64.RadToDeg(math.Atan2(v.Z(), math.Hypot(v.X(), v.Y()))),
		Yaw:   mgl64.RadToDeg(math.Atan2(v.Y(), v.X())),
	}
}

// DeltaRotator returns a-b with every axis normalized.
func DeltaRotator(a, b Rotator) Rotator {
	return Rotator{
		Pitch: NormalizeAxis(a.Pitch - b.Pitch),
		Yaw:   NormalizeAxis(a.Yaw - b.Yaw),
		Roll:  NormalizeAxis(a.Roll - b.Roll),
	}
}

func (r Rotator) Normalized() Rotator {
	return Rotator{
		Pitch: NormalizeAxis(r.Pitch),
		Yaw:   NormalizeAxis(r.Yaw),
		Roll:  NormalizeAxis(r.Roll),
	}
}

// YawOnly drops pitch and roll.
func (r Rotator) YawOnly() Rotator {
	return Rotator{Yaw: r.Yaw}
}

// Vector is the unit forward axis.
func (r Rotator) Vector() mgl64.Vec3 {
	f, _, _ := r.UnitAxes()
	return f
}

// UnitAxes returns the forward, right and up axes of the rotation.
func (r Rotator) UnitAxes() (forward, right, up mgl64.Vec3) {
	sp, cp := math.Sincos(mgl64.DegToRad(r.Pitch))
	sy, cy := math.Sincos(mgl64.DegToRad(r.Yaw))
	sr, cr := math.Sincos(mgl64.DegToRad(r.Roll))

	forward = mgl64.Vec3{cp * cy, cp * sy, sp}
	right = mgl64.Vec3{sr*sp*cy - cr*sy, sr*sp*sy + cr*cy, -sr * cp}
	up = mgl64.Vec3{-(cr*sp*cy + sr*sy), cy*sr - cr*sp*sy, cr * cp}
	return
}

// Matrix returns the rotation with forward, right and up as columns.
func (r Rotator) Matrix() mgl64.Mat3 {
	f, rt, u := r.UnitAxes()
	return mgl64.Mat3FromCols(f, rt, u)
}
