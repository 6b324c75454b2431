package system

import (
	"github.com/milk9111/shooter/common"
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
	"github.com/milk9111/shooter/ecs/entity"
)

type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

// Update moves characters with a pending respawn request back to the level
// spawn and resets their aim.
func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var pending []ecs.Entity
	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, _ *component.RespawnRequest) {
		pending = append(pending, e)
	})
	if len(pending) == 0 {
		return
	}

	lvl, lok := entity.CurrentLevel(w)
	for _, e := range pending {
		_ = ecs.Remove(w, e, component.RespawnRequestComponent.Kind())
		if !lok {
			continue
		}

		ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
		if !ok || ch.Movement == nil || ch.Spec == nil {
			continue
		}

		spawn := entity.SpawnTransform(lvl.Spec, ch.Spec)
		ch.Movement.Teleport(spawn.Location)
		ch.Movement.SetControlRotation(spawn.Rotation)

		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Location = ch.Movement.Location()
			t.Rotation = spawn.Rotation
		}
		if ch.Stage != nil {
			ch.Stage.SetOwner(common.Transform{Location: ch.Movement.Location(), Rotation: spawn.Rotation})
		}
	}
}
