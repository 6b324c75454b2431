package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// interpSnapDistSq is the squared distance under which InterpTo lands on the target.
const interpSnapDistSq = 1e-8

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// InterpTo moves current toward target with exponential smoothing.
// The fraction covered per call is 1-exp(-speed*dt), so the result never
// passes the target. A non-positive speed snaps straight to the target.
func InterpTo(current, target, dt, speed float64) float64 {
	if speed <= 0 {
		return target
	}
	dist := target - current
	if dist*dist < interpSnapDistSq {
		return target
	}
	if dt <= 0 {
		return current
	}
	return current + dist*(1-math.Exp(-speed*dt))
}

// MapRangeClamped linearly maps v from [inMin, inMax] to [outMin, outMax],
// clamping v to the input range first.
func MapRangeClamped(inMin, inMax, outMin, outMax, v float64) float64 {
	if inMax == inMin {
		if v >= inMax {
			return outMax
		}
		return outMin
	}
	t := Clamp((v-inMin)/(inMax-inMin), 0, 1)
	return Lerp(outMin, outMax, t)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Horizontal returns v with its z component zeroed.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), v.Y(), 0}
}

// HorizontalSize is the length of v on the XY plane.
func HorizontalSize(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Y())
}

// ClampLength scales v down so its length does not exceed maxLen.
func ClampLength(v mgl64.Vec3, maxLen float64) mgl64.Vec3 {
	l := v.Len()
	if l <= maxLen || l == 0 {
		return v
	}
	return v.Mul(maxLen / l)
}
