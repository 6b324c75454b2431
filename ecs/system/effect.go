package system

import (
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
)

// EffectSystem ages spawned effects and advances montages.
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem {
	return &EffectSystem{}
}

func (s *EffectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaSeconds()

	ecs.ForEach(w, component.CharacterComponent.Kind(), func(_ ecs.Entity, ch *component.Character) {
		if ch.Stage != nil {
			ch.Stage.Update(dt)
		}
	})
}
