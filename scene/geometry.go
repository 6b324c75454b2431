package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned box.
type Box struct {
	Name     string
	Min      mgl64.Vec3
	Max      mgl64.Vec3
	Blocking bool
}

// Sphere is a ball around Center.
type Sphere struct {
	Name     string
	Center   mgl64.Vec3
	Radius   float64
	Blocking bool
}

// segmentBoxHit is a slab test. It returns the entry parameter along
// start + d*t for t in [0, 1]; a start inside the box hits at t=0.
func segmentBoxHit(start, d mgl64.Vec3, b Box) (float64, mgl64.Vec3, bool) {
	tmin := 0.0
	tmax := 1.0
	var normal mgl64.Vec3

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if start[axis] < b.Min[axis] || start[axis] > b.Max[axis] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		invD := 1.0 / d[axis]
		t1 := (b.Min[axis] - start[axis]) * invD
		t2 := (b.Max[axis] - start[axis]) * invD
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			normal = mgl64.Vec3{}
			normal[axis] = sign
		}
		tmax = math.Min(tmax, t2)
		if tmax < tmin {
			return 0, mgl64.Vec3{}, false
		}
	}
	return tmin, normal, true
}

// segmentSphereHit solves the quadratic for the first crossing of the
// sphere surface along start + d*t.
func segmentSphereHit(start, d mgl64.Vec3, s Sphere) (float64, bool) {
	if s.Radius <= 0 {
		return 0, false
	}
	f := start.Sub(s.Center)
	c := f.Dot(f) - s.Radius*s.Radius
	if c <= 0 {
		return 0, true
	}

	a := d.Dot(d)
	b := 2 * f.Dot(d)
	disc := b*b - 4*a*c
	if disc < 0 || a == 0 {
		return 0, false
	}

	t := (-b - math.Sqrt(disc)) / (2 * a)
	if t < 0 || t > 1 {
		return 0, false
	}
	return t, true
}
