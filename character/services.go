package character

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/common"
)

// Movement is the physics side of the character: it consumes movement
// intent and rotation input and reports the resulting motion.
type Movement interface {
	AddMovementInput(direction mgl64.Vec3, scale float64)
	// ControlRotation reports false when nothing is possessing the pawn.
	ControlRotation() (common.Rotator, bool)
	AddYawInput(deg float64)
	AddPitchInput(deg float64)
	Velocity() mgl64.Vec3
	IsFalling() bool
	CurrentAcceleration() mgl64.Vec3
	Jump()
	StopJumping()
}

// WorldQuery answers viewport and collision questions within the current frame.
type WorldQuery interface {
	ViewportSize() (width, height float64, ok bool)
	DeprojectScreenToWorld(screen mgl64.Vec2) (position, direction mgl64.Vec3, ok bool)
	LineTrace(start, end mgl64.Vec3) (hit mgl64.Vec3, blocked bool)
}

// Camera is the follow camera whose field of view the controller drives.
type Camera interface {
	FieldOfView() float64
	SetFieldOfView(fov float64)
}

// EffectHandle is a spawned effect that accepts named vector parameters.
type EffectHandle interface {
	SetVectorParameter(name string, v mgl64.Vec3)
}

// Presentation plays sounds, effects and animation montages. Every call is
// fire-and-forget; nothing is read back into controller state.
type Presentation interface {
	PlaySound2D(name string)
	// SpawnEffect may return nil when the effect has no parameter handle.
	SpawnEffect(name string, at common.Transform) EffectHandle
	PlayMontage(name string)
	JumpToSection(montage, section string)
	IsMontagePlaying(name string) bool
	SocketTransform(name string) (common.Transform, bool)
}

// Deps are the external collaborators of a Controller. Any of them may be
// nil; the computations that need a missing one are skipped.
type Deps struct {
	Movement     Movement
	World        WorldQuery
	Camera       Camera
	Presentation Presentation
}
