// Package scene holds static level geometry and answers the world queries a
// character needs: line traces and screen deprojection.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Hit describes the nearest blocking surface along a trace.
type Hit struct {
	Location mgl64.Vec3
	Normal   mgl64.Vec3
	// Time is the fraction of the segment travelled before the hit.
	Time float64
	Name string
}

// Scene is static geometry over an optional infinite floor plane.
type Scene struct {
	HasFloor bool
	FloorZ   float64

	Boxes   []Box
	Spheres []Sphere
}

func New() *Scene {
	return &Scene{}
}

// WithFloor adds a blocking floor at z.
func (s *Scene) WithFloor(z float64) *Scene {
	s.HasFloor = true
	s.FloorZ = z
	return s
}

func (s *Scene) AddBox(b Box) {
	if b.Min.X() > b.Max.X() {
		b.Min[0], b.Max[0] = b.Max[0], b.Min[0]
	}
	if b.Min.Y() > b.Max.Y() {
		b.Min[1], b.Max[1] = b.Max[1], b.Min[1]
	}
	if b.Min.Z() > b.Max.Z() {
		b.Min[2], b.Max[2] = b.Max[2], b.Min[2]
	}
	s.Boxes = append(s.Boxes, b)
}

func (s *Scene) AddSphere(sp Sphere) {
	sp.Radius = math.Abs(sp.Radius)
	s.Spheres = append(s.Spheres, sp)
}

// LineTrace returns the nearest blocking hit on the segment from start to
// end. Non-blocking geometry is ignored.
func (s *Scene) LineTrace(start, end mgl64.Vec3) (Hit, bool) {
	d := end.Sub(start)
	if d.Len() == 0 {
		return Hit{}, false
	}

	best := Hit{Time: math.Inf(1)}
	found := false
	consider := func(t float64, normal mgl64.Vec3, name string) {
		if t < best.Time {
			best = Hit{Time: t, Normal: normal, Name: name}
			found = true
		}
	}

	if s.HasFloor && start.Z() >= s.FloorZ && end.Z() < s.FloorZ {
		consider((s.FloorZ-start.Z())/d.Z(), mgl64.Vec3{0, 0, 1}, "floor")
	}
	for _, b := range s.Boxes {
		if !b.Blocking {
			continue
		}
		if t, n, ok := segmentBoxHit(start, d, b); ok {
			consider(t, n, b.Name)
		}
	}
	for _, sp := range s.Spheres {
		if !sp.Blocking {
			continue
		}
		if t, ok := segmentSphereHit(start, d, sp); ok {
			p := start.Add(d.Mul(t))
			n := p.Sub(sp.Center)
			if n.Len() > 0 {
				n = n.Normalize()
			}
			consider(t, n, sp.Name)
		}
	}

	if !found {
		return Hit{}, false
	}
	best.Location = start.Add(d.Mul(best.Time))
	return best, true
}
