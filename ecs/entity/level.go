package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
	"github.com/milk9111/shooter/movement"
	"github.com/milk9111/shooter/prefabs"
	"github.com/milk9111/shooter/scene"
)

// BuildScene turns level objects into traceable geometry over the floor.
func BuildScene(spec *prefabs.LevelSpec) (*scene.Scene, error) {
	s := scene.New().WithFloor(spec.FloorZ)
	for i, o := range spec.Objects {
		switch o.Kind {
		case prefabs.ObjectBox:
			shape, err := o.BoxShape()
			if err != nil {
				return nil, fmt.Errorf("level: object %d (%q): %w", i, o.Name, err)
			}
			s.AddBox(scene.Box{
				Name:     o.Name,
				Min:      vec3(shape.Min),
				Max:      vec3(shape.Max),
				Blocking: o.IsBlocking(),
			})
		case prefabs.ObjectSphere:
			shape, err := o.SphereShape()
			if err != nil {
				return nil, fmt.Errorf("level: object %d (%q): %w", i, o.Name, err)
			}
			s.AddSphere(scene.Sphere{
				Name:     o.Name,
				Center:   vec3(shape.Center),
				Radius:   shape.Radius,
				Blocking: o.IsBlocking(),
			})
		default:
			return nil, fmt.Errorf("level: object %d (%q): unknown kind %q", i, o.Name, o.Kind)
		}
	}
	return s, nil
}

// Obstacles returns the footprints the capsule cannot walk through: blocking
// geometry that overlaps the capsule's height band above the step height.
func Obstacles(s *scene.Scene, cfg movement.Config) []movement.Obstacle {
	low := cfg.FloorZ + cfg.StepHeight
	high := cfg.FloorZ + 2*cfg.CapsuleHalfHeight

	var out []movement.Obstacle
	for _, b := range s.Boxes {
		if !b.Blocking || b.Max.Z() <= low || b.Min.Z() >= high {
			continue
		}
		out = append(out, movement.BoxObstacle(
			mgl64.Vec2{b.Min.X(), b.Min.Y()},
			mgl64.Vec2{b.Max.X(), b.Max.Y()},
		))
	}
	for _, sp := range s.Spheres {
		top := sp.Center.Z() + sp.Radius
		bottom := sp.Center.Z() - sp.Radius
		if !sp.Blocking || top <= low || bottom >= high {
			continue
		}
		out = append(out, movement.CircleObstacle(mgl64.Vec2{sp.Center.X(), sp.Center.Y()}, sp.Radius))
	}
	return out
}

// NewLevel creates the level entity.
func NewLevel(w *ecs.World, spec *prefabs.LevelSpec) (ecs.Entity, error) {
	s, err := BuildScene(spec)
	if err != nil {
		return 0, err
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelComponent.Kind(), &component.Level{
		Spec:     spec,
		Scene:    s,
		Viewport: &scene.Viewport{Width: spec.Viewport.Width, Height: spec.Viewport.Height},
	}); err != nil {
		return 0, fmt.Errorf("level: add level: %w", err)
	}
	return e, nil
}

// ReplaceLevel swaps the level geometry in place so queries holding the
// scene pointer see the new level.
func ReplaceLevel(lvl *component.Level, spec *prefabs.LevelSpec) error {
	s, err := BuildScene(spec)
	if err != nil {
		return err
	}
	*lvl.Scene = *s
	lvl.Spec = spec
	return nil
}

// CurrentLevel returns the first level in the world.
func CurrentLevel(w *ecs.World) (*component.Level, bool) {
	e, ok := ecs.First(w, component.LevelComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.LevelComponent.Kind())
}
