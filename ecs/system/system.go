// Package system holds the per-frame systems of the shooter.
package system

import (
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/entity"
)

// Simulation returns the simulation systems in frame order: input reaches
// the controllers before physics, the controllers tick on the new motion,
// then the camera, animation and presentation read the settled state.
// Requests raised during a frame apply at its end.
func Simulation(characterPrefab, levelPrefab string, sounds entity.SoundLoader) []ecs.System {
	return []ecs.System{
		NewCharacterInputSystem(),
		NewMovementSystem(),
		NewCharacterSystem(),
		NewCameraRigSystem(),
		NewAnimationSystem(),
		NewEffectSystem(),
		NewAudioSystem(),
		NewHUDSystem(),
		NewRespawnSystem(),
		NewReloadSystem(characterPrefab, levelPrefab, sounds),
	}
}
