// Package anim samples character state into the flat values an animation
// blend stage reads each frame.
package anim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/common"
)

// Source is the character state the sampler reads. *character.Controller
// satisfies it.
type Source interface {
	Velocity() mgl64.Vec3
	IsFalling() bool
	CurrentAcceleration() mgl64.Vec3
	BaseAimRotation() common.Rotator
	Aiming() bool
}

// Resolver looks up the Source for the owning pawn. It reports false while
// the pawn has no character.
type Resolver func() (Source, bool)

// Snapshot is the read-only view handed to the blend stage.
type Snapshot struct {
	Speed                 float64
	IsInAir               bool
	IsAccelerating        bool
	MovementOffsetYaw     float64
	LastMovementOffsetYaw float64
	Aiming                bool
}

// Sampler holds a lazily bound reference to its Source. The binding is kept
// until Invalidate is called.
type Sampler struct {
	resolve Resolver
	source  Source
	bound   bool

	snap Snapshot
}

func NewSampler(resolve Resolver) *Sampler {
	return &Sampler{resolve: resolve}
}

// Initialize attempts the first binding.
func (s *Sampler) Initialize() {
	s.bind()
}

// Invalidate drops the binding. The next Update resolves again.
func (s *Sampler) Invalidate() {
	s.source = nil
	s.bound = false
}

func (s *Sampler) Bound() bool {
	return s.bound
}

func (s *Sampler) Source() Source {
	return s.source
}

func (s *Sampler) bind() bool {
	if s.bound {
		return true
	}
	if s.resolve == nil {
		return false
	}
	src, ok := s.resolve()
	if !ok || src == nil {
		return false
	}
	s.source = src
	s.bound = true
	return true
}

// Update refreshes the snapshot. While no Source can be bound it leaves every
// value untouched.
func (s *Sampler) Update(float64) {
	if !s.bind() {
		return
	}

	vel := s.source.Velocity()
	s.snap.Speed = common.HorizontalSize(vel)
	s.snap.IsInAir = s.source.IsFalling()
	s.snap.IsAccelerating = s.source.CurrentAcceleration().Len() > 0

	aim := s.source.BaseAimRotation()
	movement := common.RotatorFromX(vel)
	s.snap.MovementOffsetYaw = common.DeltaRotator(movement, aim).Yaw

	if s.snap.Speed > 0 {
		s.snap.LastMovementOffsetYaw = s.snap.MovementOffsetYaw
	}
	s.snap.Aiming = s.source.Aiming()
}

func (s *Sampler) Snapshot() Snapshot {
	return s.snap
}
