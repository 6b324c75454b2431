// Package movement simulates a walking character. Horizontal motion and wall
// collision run in a chipmunk space on the XY plane; height is integrated
// separately against a flat floor.
package movement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/shooter/common"
)

const (
	collisionTypeCharacter cp.CollisionType = iota + 1
	collisionTypeSolid
)

const maxPitch = 89

// Component is the movement and control state of one character.
type Component struct {
	cfg Config

	space *cp.Space
	body  *cp.Body
	shape *cp.Shape

	z  float64
	vz float64

	pendingInput mgl64.Vec3
	acceleration mgl64.Vec3

	control   common.Rotator
	possessed bool
	jumpHeld  bool
}

// New builds the movement space with the character standing at spawn.
// The spawn yaw seeds the control rotation.
func New(cfg Config, spawn common.Transform, obstacles []Obstacle) (*Component, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	for _, o := range obstacles {
		space.AddShape(o.shape(space.StaticBody))
	}

	mass := 1.0
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, cfg.CapsuleRadius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: spawn.Location.X(), Y: spawn.Location.Y()})
	shape := cp.NewCircle(body, cfg.CapsuleRadius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeCharacter)
	space.AddBody(body)
	space.AddShape(shape)

	c := &Component{
		cfg:       cfg,
		space:     space,
		body:      body,
		shape:     shape,
		z:         math.Max(spawn.Location.Z(), standingZ(cfg)),
		control:   spawn.Rotation.YawOnly().Normalized(),
		possessed: true,
	}
	return c, nil
}

// standingZ is the capsule center height when standing on the floor.
func standingZ(cfg Config) float64 {
	return cfg.FloorZ + cfg.CapsuleHalfHeight
}

func (c *Component) Config() Config {
	return c.cfg
}

// AddMovementInput queues a horizontal direction for the next Step.
func (c *Component) AddMovementInput(dir mgl64.Vec3, scale float64) {
	if !c.possessed || scale == 0 {
		return
	}
	c.pendingInput = c.pendingInput.Add(common.Horizontal(dir).Mul(scale))
}

// Step consumes queued input and advances the simulation by dt seconds.
func (c *Component) Step(dt float64) {
	if dt <= 0 {
		return
	}

	input := common.ClampLength(c.pendingInput, 1)
	c.pendingInput = mgl64.Vec3{}

	falling := c.IsFalling()
	accel := input.Mul(c.cfg.MaxAcceleration)
	if falling {
		accel = accel.Mul(c.cfg.AirControl)
	}
	c.acceleration = accel

	v := c.body.Velocity()
	vel := mgl64.Vec3{v.X, v.Y, 0}
	switch {
	case input.Len() > 0:
		vel = common.ClampLength(vel.Add(accel.Mul(dt)), c.cfg.MaxWalkSpeed)
	case !falling:
		vel = brake(vel, c.cfg.BrakingDeceleration*dt)
	}
	c.body.SetVelocityVector(cp.Vector{X: vel.X(), Y: vel.Y()})
	c.space.Step(dt)

	c.vz += c.cfg.GravityZ * dt
	c.z += c.vz * dt
	if floor := standingZ(c.cfg); c.z <= floor {
		c.z = floor
		c.vz = 0
	}
}

func brake(v mgl64.Vec3, amount float64) mgl64.Vec3 {
	speed := v.Len()
	if speed <= amount || speed == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul((speed - amount) / speed)
}

func (c *Component) Velocity() mgl64.Vec3 {
	v := c.body.Velocity()
	return mgl64.Vec3{v.X, v.Y, c.vz}
}

// Location is the capsule center.
func (c *Component) Location() mgl64.Vec3 {
	p := c.body.Position()
	return mgl64.Vec3{p.X, p.Y, c.z}
}

// FeetLocation is the bottom of the capsule.
func (c *Component) FeetLocation() mgl64.Vec3 {
	return c.Location().Sub(mgl64.Vec3{0, 0, c.cfg.CapsuleHalfHeight})
}

// Teleport moves the capsule and clears its velocity.
func (c *Component) Teleport(loc mgl64.Vec3) {
	c.body.SetPosition(cp.Vector{X: loc.X(), Y: loc.Y()})
	c.body.SetVelocityVector(cp.Vector{})
	c.z = math.Max(loc.Z(), standingZ(c.cfg))
	c.vz = 0
	c.pendingInput = mgl64.Vec3{}
	c.acceleration = mgl64.Vec3{}
}

func (c *Component) IsFalling() bool {
	return c.z > standingZ(c.cfg) || c.vz > 0
}

// CurrentAcceleration is the input acceleration applied by the last Step.
func (c *Component) CurrentAcceleration() mgl64.Vec3 {
	return c.acceleration
}

// ControlRotation reports the aim rotation and whether a controller
// possesses the character.
func (c *Component) ControlRotation() (common.Rotator, bool) {
	return c.control, c.possessed
}

// SetControlRotation replaces the aim rotation, clamping pitch.
func (c *Component) SetControlRotation(rot common.Rotator) {
	rot = rot.Normalized()
	rot.Pitch = common.Clamp(rot.Pitch, -maxPitch, maxPitch)
	rot.Roll = 0
	c.control = rot
}

func (c *Component) AddYawInput(deg float64) {
	if !c.possessed {
		return
	}
	c.control.Yaw = common.NormalizeAxis(c.control.Yaw + deg)
}

// AddPitchInput pitches the aim, clamped short of straight up or down.
func (c *Component) AddPitchInput(deg float64) {
	if !c.possessed {
		return
	}
	c.control.Pitch = common.Clamp(c.control.Pitch+deg, -maxPitch, maxPitch)
}

// Jump launches the character when it stands on the floor.
func (c *Component) Jump() {
	if !c.possessed || c.jumpHeld {
		return
	}
	c.jumpHeld = true
	if c.IsFalling() {
		return
	}
	c.vz = c.cfg.JumpZVelocity
}

func (c *Component) StopJumping() {
	c.jumpHeld = false
}

func (c *Component) Possess() {
	c.possessed = true
}

// Unpossess drops queued input; the body keeps its momentum.
func (c *Component) Unpossess() {
	c.possessed = false
	c.pendingInput = mgl64.Vec3{}
	c.jumpHeld = false
}

func (c *Component) Possessed() bool {
	return c.possessed
}
