package movement

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("movement: invalid config")

// Config tunes the character movement. Distances are world units, speeds
// are units per second.
type Config struct {
	MaxWalkSpeed        float64
	MaxAcceleration     float64
	BrakingDeceleration float64
	JumpZVelocity       float64
	// AirControl scales input acceleration while falling.
	AirControl float64
	GravityZ   float64

	CapsuleRadius     float64
	CapsuleHalfHeight float64
	// StepHeight is the tallest obstacle the capsule walks over.
	StepHeight float64
	FloorZ     float64
}

func DefaultConfig() Config {
	return Config{
		MaxWalkSpeed:        600,
		MaxAcceleration:     2048,
		BrakingDeceleration: 2048,
		JumpZVelocity:       600,
		AirControl:          0.2,
		GravityZ:            -980,
		CapsuleRadius:       34,
		CapsuleHalfHeight:   88,
		StepHeight:          45,
	}
}

func (c Config) Validate() error {
	if c.MaxWalkSpeed <= 0 {
		return fmt.Errorf("%w: max walk speed must be positive", ErrInvalidConfig)
	}
	if c.MaxAcceleration <= 0 {
		return fmt.Errorf("%w: max acceleration must be positive", ErrInvalidConfig)
	}
	if c.BrakingDeceleration < 0 {
		return fmt.Errorf("%w: braking deceleration is negative", ErrInvalidConfig)
	}
	if c.JumpZVelocity < 0 {
		return fmt.Errorf("%w: jump velocity is negative", ErrInvalidConfig)
	}
	if c.AirControl < 0 || c.AirControl > 1 {
		return fmt.Errorf("%w: air control %v outside [0, 1]", ErrInvalidConfig, c.AirControl)
	}
	if c.GravityZ > 0 {
		return fmt.Errorf("%w: gravity must point down", ErrInvalidConfig)
	}
	if c.CapsuleRadius <= 0 || c.CapsuleHalfHeight < c.CapsuleRadius {
		return fmt.Errorf("%w: capsule %v x %v", ErrInvalidConfig, c.CapsuleRadius, c.CapsuleHalfHeight)
	}
	return nil
}
