package system

import (
	"github.com/milk9111/shooter/anim"
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
)

// AnimationSystem refreshes animation snapshots after the characters have
// ticked. A sampler whose character was replaced or removed is invalidated
// so it binds again.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaSeconds()

	ecs.ForEach(w, component.AnimStateComponent.Kind(), func(e ecs.Entity, st *component.AnimState) {
		if st.Sampler == nil {
			return
		}
		if st.Sampler.Bound() && !stillBound(w, e, st.Sampler) {
			st.Sampler.Invalidate()
		}
		st.Sampler.Update(dt)
	})
}

func stillBound(w *ecs.World, e ecs.Entity, s *anim.Sampler) bool {
	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok || ch.Controller == nil {
		return false
	}
	return s.Source() == anim.Source(ch.Controller)
}
