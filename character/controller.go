package character

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/common"
)

// Controller drives a third-person shooter character: locomotion, aim-state
// dependent look rates and camera zoom, crosshair spread and hit-scan fire.
//
// It never owns time. Input handlers and OnTick receive the frame delta from
// the caller, and all calls happen on the simulation thread.
type Controller struct {
	cfg Config

	move   Movement
	world  WorldQuery
	camera Camera
	fx     Presentation

	aim AimState

	turnRate   float64
	lookUpRate float64

	defaultFOV float64
	currentFOV float64

	crosshairVelocity float64
	crosshairSpread   float64

	lastShot Shot
	hasShot  bool
}

// NewController validates cfg and binds the collaborators.
func NewController(cfg Config, deps Deps) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:        cfg,
		move:       deps.Movement,
		world:      deps.World,
		camera:     deps.Camera,
		fx:         deps.Presentation,
		defaultFOV: cfg.DefaultFOV,
		currentFOV: cfg.DefaultFOV,
	}
	c.SetLookRates()
	c.crosshairSpread = cfg.CrosshairBaseline
	return c, nil
}

// OnSpawn captures the camera's authored FOV as the unzoomed FOV.
func (c *Controller) OnSpawn() {
	if c.camera == nil {
		return
	}
	if fov := c.camera.FieldOfView(); fov > 0 {
		c.defaultFOV = fov
		c.currentFOV = fov
	}
}

// OnTick runs the per-frame update.
func (c *Controller) OnTick(dt float64) {
	c.SetLookRates()
	c.CameraInterpZoom(dt)
	c.CalculateCrosshairSpread(dt)
}

// MoveForward submits movement along the yaw-only forward axis.
func (c *Controller) MoveForward(value float64) {
	c.addHeadingInput(value, func(forward, _ mgl64.Vec3) mgl64.Vec3 { return forward })
}

// MoveRight submits movement along the yaw-only right axis.
func (c *Controller) MoveRight(value float64) {
	c.addHeadingInput(value, func(_, right mgl64.Vec3) mgl64.Vec3 { return right })
}

func (c *Controller) addHeadingInput(value float64, axis func(forward, right mgl64.Vec3) mgl64.Vec3) {
	if c.move == nil || value == 0 {
		return
	}
	rot, ok := c.move.ControlRotation()
	if !ok {
		return
	}
	forward, right, _ := rot.YawOnly().UnitAxes()
	c.move.AddMovementInput(axis(forward, right), value)
}

// TurnAtRate yaws at a normalized stick rate; 1.0 is the full configured rate.
func (c *Controller) TurnAtRate(rate, dt float64) {
	if c.move == nil {
		return
	}
	c.move.AddYawInput(rate * c.turnRate * dt)
}

// LookAtRate pitches at a normalized stick rate.
func (c *Controller) LookAtRate(rate, dt float64) {
	if c.move == nil {
		return
	}
	c.move.AddPitchInput(rate * c.lookUpRate * dt)
}

// Turn yaws by a mouse delta scaled by the aim-dependent sensitivity.
func (c *Controller) Turn(value, dt float64) {
	if c.move == nil {
		return
	}
	c.move.AddYawInput(value * c.cfg.mouseRates(c.aim).Turn * dt)
}

// LookUp pitches by a mouse delta scaled by the aim-dependent sensitivity.
func (c *Controller) LookUp(value, dt float64) {
	if c.move == nil {
		return
	}
	c.move.AddPitchInput(value * c.cfg.mouseRates(c.aim).LookUp * dt)
}

// Jump forwards to the movement service.
func (c *Controller) Jump() {
	if c.move != nil {
		c.move.Jump()
	}
}

// StopJumping ends a held jump.
func (c *Controller) StopJumping() {
	if c.move != nil {
		c.move.StopJumping()
	}
}

// AimingButtonPressed only flips the aim state; rates and FOV follow on the next tick.
func (c *Controller) AimingButtonPressed() {
	c.aim = AimAiming
}

// AimingButtonReleased returns to hip fire.
func (c *Controller) AimingButtonReleased() {
	c.aim = AimHip
}

// SetLookRates selects the gamepad turn and look rates for the aim state.
func (c *Controller) SetLookRates() {
	rates := c.cfg.gamepadRates(c.aim)
	c.turnRate = rates.Turn
	c.lookUpRate = rates.LookUp
}

// CameraInterpZoom eases the FOV toward the zoomed or default FOV and
// applies it to the camera.
func (c *Controller) CameraInterpZoom(dt float64) {
	target := c.cfg.targetFOV(c.aim, c.defaultFOV)
	c.currentFOV = common.InterpTo(c.currentFOV, target, dt, c.cfg.ZoomInterpSpeed)
	if c.camera != nil {
		c.camera.SetFieldOfView(c.currentFOV)
	}
}

// CalculateCrosshairSpread maps horizontal speed onto [0, 1] and adds the baseline.
func (c *Controller) CalculateCrosshairSpread(float64) {
	speed := 0.0
	if c.move != nil {
		speed = common.HorizontalSize(c.move.Velocity())
	}
	c.crosshairVelocity = common.MapRangeClamped(0, c.cfg.CrosshairWalkSpeed, 0, 1, speed)
	c.crosshairSpread = c.cfg.CrosshairBaseline + c.crosshairVelocity
}

// Config returns the tuning the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// AimState is the current aim state.
func (c *Controller) AimState() AimState {
	return c.aim
}

func (c *Controller) Aiming() bool {
	return c.aim == AimAiming
}

// TurnRate is the gamepad yaw rate chosen by the last SetLookRates, in degrees per second.
func (c *Controller) TurnRate() float64 {
	return c.turnRate
}

// LookUpRate is the gamepad pitch counterpart of TurnRate.
func (c *Controller) LookUpRate() float64 {
	return c.lookUpRate
}

// CameraFOV is the interpolated field of view last applied to the camera.
func (c *Controller) CameraFOV() float64 {
	return c.currentFOV
}

// DefaultFOV is the unzoomed field of view captured at spawn.
func (c *Controller) DefaultFOV() float64 {
	return c.defaultFOV
}

// CrosshairSpreadMultiplier is the baseline plus the velocity factor.
func (c *Controller) CrosshairSpreadMultiplier() float64 {
	return c.crosshairSpread
}

// CrosshairVelocity is the speed-driven part of the spread, in [0, 1].
func (c *Controller) CrosshairVelocity() float64 {
	return c.crosshairVelocity
}

// Velocity is the movement velocity, or zero without movement.
func (c *Controller) Velocity() mgl64.Vec3 {
	if c.move == nil {
		return mgl64.Vec3{}
	}
	return c.move.Velocity()
}

func (c *Controller) IsFalling() bool {
	return c.move != nil && c.move.IsFalling()
}

// CurrentAcceleration is the acceleration the movement applied last step.
func (c *Controller) CurrentAcceleration() mgl64.Vec3 {
	if c.move == nil {
		return mgl64.Vec3{}
	}
	return c.move.CurrentAcceleration()
}

// BaseAimRotation is the control rotation, or zero when unpossessed.
func (c *Controller) BaseAimRotation() common.Rotator {
	if c.move == nil {
		return common.Rotator{}
	}
	rot, _ := c.move.ControlRotation()
	return rot
}
