package system

import (
	"log"

	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
)

type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

// Update plays every queued sound from the start. A sound with no player is
// dropped.
func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		for _, name := range audioComp.Pending {
			player := audioComp.Players[name]
			if player == nil {
				continue
			}
			if err := player.Rewind(); err != nil {
				log.Printf("audio: rewind %q: %v", name, err)
				continue
			}
			if v, ok := audioComp.Volume[name]; ok {
				player.SetVolume(v)
			}
			player.Play()
		}
		audioComp.Pending = audioComp.Pending[:0]
	})
}
