package movement

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Obstacle is the ground footprint of blocking geometry. A positive Radius
// makes it a circle around Center; otherwise it is the Min/Max rectangle.
type Obstacle struct {
	Min    mgl64.Vec2
	Max    mgl64.Vec2
	Center mgl64.Vec2
	Radius float64
}

func BoxObstacle(min, max mgl64.Vec2) Obstacle {
	return Obstacle{Min: min, Max: max}
}

func CircleObstacle(center mgl64.Vec2, radius float64) Obstacle {
	return Obstacle{Center: center, Radius: radius}
}

func (o Obstacle) shape(static *cp.Body) *cp.Shape {
	var shape *cp.Shape
	if o.Radius > 0 {
		shape = cp.NewCircle(static, o.Radius, cp.Vector{X: o.Center.X(), Y: o.Center.Y()})
	} else {
		bb := cp.BB{L: o.Min.X(), B: o.Min.Y(), R: o.Max.X(), T: o.Max.Y()}
		shape = cp.NewBox2(static, bb, 0)
	}
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeSolid)
	return shape
}
