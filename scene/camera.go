package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/common"
)

// Camera is a perspective view. FOV is the horizontal field of view in degrees.
type Camera struct {
	Location mgl64.Vec3
	Rotation common.Rotator
	FOV      float64
}

func (c *Camera) FieldOfView() float64 {
	return c.FOV
}

func (c *Camera) SetFieldOfView(fov float64) {
	c.FOV = fov
}

// Viewport is the render target size in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

func (c *Camera) tanHalfFOV() (float64, bool) {
	if c == nil || c.FOV <= 0 || c.FOV >= 180 {
		return 0, false
	}
	return math.Tan(mgl64.DegToRad(c.FOV) / 2), true
}

// Deproject turns a screen point into a world ray starting at the camera.
// Screen y grows downward.
func Deproject(c *Camera, vp Viewport, p mgl64.Vec2) (mgl64.Vec3, mgl64.Vec3, bool) {
	if !vp.Valid() {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	tanHalf, ok := c.tanHalfFOV()
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}

	ndcX := 2*p.X()/vp.Width - 1
	ndcY := 1 - 2*p.Y()/vp.Height

	f, r, u := c.Rotation.UnitAxes()
	dir := f.
		Add(r.Mul(ndcX * tanHalf)).
		Add(u.Mul(ndcY * tanHalf * vp.Height / vp.Width))
	return c.Location, dir.Normalize(), true
}

// Project maps a world point onto the screen. It fails for points at or
// behind the camera plane.
func Project(c *Camera, vp Viewport, world mgl64.Vec3) (mgl64.Vec2, bool) {
	if !vp.Valid() {
		return mgl64.Vec2{}, false
	}
	tanHalf, ok := c.tanHalfFOV()
	if !ok {
		return mgl64.Vec2{}, false
	}

	f, r, u := c.Rotation.UnitAxes()
	d := world.Sub(c.Location)
	depth := d.Dot(f)
	if depth <= 0 {
		return mgl64.Vec2{}, false
	}

	ndcX := d.Dot(r) / (depth * tanHalf)
	ndcY := d.Dot(u) / (depth * tanHalf * vp.Height / vp.Width)
	return mgl64.Vec2{(ndcX + 1) * vp.Width / 2, (1 - ndcY) * vp.Height / 2}, true
}
