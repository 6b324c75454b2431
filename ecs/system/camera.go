package system

import (
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
	"github.com/milk9111/shooter/ecs/entity"
)

// CameraRigSystem keeps each follow camera on its boom. The controller has
// already written the FOV for this frame.
type CameraRigSystem struct{}

func NewCameraRigSystem() *CameraRigSystem {
	return &CameraRigSystem{}
}

func (s *CameraRigSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CameraRigComponent.Kind(), component.CharacterComponent.Kind(), func(_ ecs.Entity, rig *component.CameraRig, ch *component.Character) {
		if rig.Camera == nil || ch.Movement == nil {
			return
		}
		rot, _ := ch.Movement.ControlRotation()
		entity.PlaceCamera(rig, ch.Movement.Location(), rot)
	})
}
