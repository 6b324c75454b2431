package system

import (
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
)

// MovementSystem steps character physics and copies the result into the
// entity transform. The character faces the control yaw.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaSeconds()

	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ch *component.Character, t *component.Transform) {
		if ch.Movement == nil {
			return
		}
		ch.Movement.Step(dt)

		t.Location = ch.Movement.Location()
		if rot, ok := ch.Movement.ControlRotation(); ok {
			t.Rotation = rot.YawOnly()
		}
		if ch.Stage != nil {
			ch.Stage.SetOwner(*t)
		}
	})
}
