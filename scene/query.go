package scene

import "github.com/go-gl/mathgl/mgl64"

// Query answers a character's world queries against a scene seen through a
// camera. The viewport is read through a pointer so resizes apply at once.
type Query struct {
	Scene    *Scene
	Camera   *Camera
	Viewport *Viewport
}

func NewQuery(s *Scene, cam *Camera, vp *Viewport) *Query {
	return &Query{Scene: s, Camera: cam, Viewport: vp}
}

func (q *Query) ViewportSize() (float64, float64, bool) {
	if q.Viewport == nil || !q.Viewport.Valid() {
		return 0, 0, false
	}
	return q.Viewport.Width, q.Viewport.Height, true
}

func (q *Query) DeprojectScreenToWorld(p mgl64.Vec2) (mgl64.Vec3, mgl64.Vec3, bool) {
	if q.Viewport == nil {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	return Deproject(q.Camera, *q.Viewport, p)
}

func (q *Query) LineTrace(start, end mgl64.Vec3) (mgl64.Vec3, bool) {
	if q.Scene == nil {
		return mgl64.Vec3{}, false
	}
	hit, ok := q.Scene.LineTrace(start, end)
	return hit.Location, ok
}
