package system

import (
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
)

// CharacterInputSystem feeds the sampled input of a frame into each
// character controller and clears the button edges.
type CharacterInputSystem struct{}

func NewCharacterInputSystem() *CharacterInputSystem {
	return &CharacterInputSystem{}
}

func (s *CharacterInputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaSeconds()

	ecs.ForEach2(w, component.InputComponent.Kind(), component.CharacterComponent.Kind(), func(e ecs.Entity, in *component.Input, ch *component.Character) {
		c := ch.Controller
		if c == nil {
			return
		}

		c.MoveForward(in.MoveForward)
		c.MoveRight(in.MoveRight)
		c.TurnAtRate(in.TurnRate, dt)
		c.LookAtRate(in.LookUpRate, dt)
		c.Turn(in.Turn, dt)
		c.LookUp(in.LookUp, dt)

		if in.JumpPressed {
			c.Jump()
		}
		if in.JumpReleased {
			c.StopJumping()
		}
		if in.AimPressed {
			c.AimingButtonPressed()
		}
		if in.AimReleased {
			c.AimingButtonReleased()
		}
		if in.FirePressed && c.FireWeapon() {
			if shot, ok := c.LastShot(); ok {
				w.Events().Push(ecs.Event{Type: ecs.EventShotFired, Data: ecs.ShotFired{
					Entity:   e,
					Muzzle:   shot.Muzzle,
					End:      shot.End,
					Resolved: shot.Resolved,
				}})
			}
		}

		in.JumpPressed = false
		in.JumpReleased = false
		in.FirePressed = false
		in.AimPressed = false
		in.AimReleased = false
	})
}
