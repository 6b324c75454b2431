package system

import (
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
)

// CharacterSystem spawns new controllers and runs their per-frame tick.
type CharacterSystem struct{}

func NewCharacterSystem() *CharacterSystem {
	return &CharacterSystem{}
}

func (s *CharacterSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaSeconds()

	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, ch *component.Character) {
		if ch.Controller == nil {
			return
		}
		if !ch.Spawned {
			ch.Controller.OnSpawn()
			ch.Spawned = true
			w.Events().Push(ecs.Event{Type: ecs.EventCharacterSpawned, Data: e})
		}
		ch.Controller.OnTick(dt)
	})
}
