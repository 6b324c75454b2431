package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
)

// InputSystem samples keyboard, mouse and the first gamepad into every
// Input component. Button edges are OR-ed in and cleared by the consumer.
type InputSystem struct {
	lastX, lastY int
	hasCursor    bool

	jumpHeld bool
	aimHeld  bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Reset forgets the cursor position so the next frame does not see a jump
// in mouse delta after the cursor mode changes.
func (i *InputSystem) Reset() {
	i.hasCursor = false
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	forward := axis(ebiten.KeyS, ebiten.KeyW)
	right := axis(ebiten.KeyA, ebiten.KeyD)
	turnRate := axis(ebiten.KeyArrowLeft, ebiten.KeyArrowRight)
	lookUpRate := axis(ebiten.KeyArrowDown, ebiten.KeyArrowUp)

	jump := ebiten.IsKeyPressed(ebiten.KeySpace)
	aim := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	firePressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	cx, cy := ebiten.CursorPosition()
	dx, dy := 0.0, 0.0
	if i.hasCursor {
		dx = float64(cx - i.lastX)
		dy = float64(cy - i.lastY)
	}
	i.lastX, i.lastY = cx, cy
	i.hasCursor = true

	var pad struct {
		ok     bool
		lx, ly float64
		rx, ry float64
		jump   bool
		aim    bool
		fire   bool
	}
	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		pad.ok = true
		pad.lx = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		pad.ly = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		pad.rx = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		pad.ry = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		pad.jump = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		pad.aim = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		pad.fire = inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	jump = jump || pad.jump
	aim = aim || pad.aim
	firePressed = firePressed || pad.fire

	jumpPressed := jump && !i.jumpHeld
	jumpReleased := !jump && i.jumpHeld
	aimPressed := aim && !i.aimHeld
	aimReleased := !aim && i.aimHeld
	i.jumpHeld = jump
	i.aimHeld = aim

	ecs.ForEach2(w, component.InputComponent.Kind(), component.CharacterComponent.Kind(), func(_ ecs.Entity, input *component.Input, ch *component.Character) {
		scale, invert, deadzone := 1.0, false, 0.0
		if ch.Spec != nil {
			scale = ch.Spec.Input.MouseAxisScale
			invert = ch.Spec.Input.InvertMouseY
			deadzone = ch.Spec.Input.StickDeadzone
		}

		input.MoveForward = forward
		input.MoveRight = right
		input.TurnRate = turnRate
		input.LookUpRate = lookUpRate
		if pad.ok {
			if math.Hypot(pad.lx, pad.ly) > deadzone {
				input.MoveForward = -pad.ly
				input.MoveRight = pad.lx
			}
			if math.Hypot(pad.rx, pad.ry) > deadzone {
				input.TurnRate = pad.rx
				input.LookUpRate = -pad.ry
			}
		}

		input.Turn = dx * scale
		input.LookUp = -dy * scale
		if invert {
			input.LookUp = -input.LookUp
		}

		input.JumpPressed = input.JumpPressed || jumpPressed
		input.JumpReleased = input.JumpReleased || jumpReleased
		input.AimPressed = input.AimPressed || aimPressed
		input.AimReleased = input.AimReleased || aimReleased
		input.FirePressed = input.FirePressed || firePressed
	})
}

func axis(negative, positive ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(negative) {
		v--
	}
	if ebiten.IsKeyPressed(positive) {
		v++
	}
	return v
}
