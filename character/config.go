package character

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("character: invalid config")

// AimState is the single source for every aim-dependent selection: turn
// rates, mouse sensitivity and the camera FOV target.
type AimState uint8

const (
	AimHip AimState = iota
	AimAiming
)

func (s AimState) String() string {
	switch s {
	case AimHip:
		return "hip"
	case AimAiming:
		return "aiming"
	default:
		return fmt.Sprintf("AimState(%d)", uint8(s))
	}
}

// RatePair holds a yaw rate and a pitch rate.
type RatePair struct {
	Turn   float64
	LookUp float64
}

// WeaponConfig names the presentation assets used when firing. An empty
// name skips that effect.
type WeaponConfig struct {
	MuzzleSocket    string
	FireMontage     string
	FireSection     string
	FireSound       string
	MuzzleFlash     string
	BeamEffect      string
	BeamTargetParam string
	ImpactEffect    string
}

// Config is fixed for the lifetime of a Controller.
type Config struct {
	// Gamepad rates in degrees per second.
	HipRates    RatePair
	AimingRates RatePair

	// Mouse sensitivity multipliers.
	MouseHipRates    RatePair
	MouseAimingRates RatePair

	// DefaultFOV is used when no camera is attached at spawn.
	DefaultFOV      float64
	ZoomedFOV       float64
	ZoomInterpSpeed float64

	// CrosshairWalkSpeed is the horizontal speed that maps to full spread.
	CrosshairWalkSpeed float64
	CrosshairBaseline  float64

	// ReticleOffsetY lifts the trace origin above the screen center, in pixels.
	ReticleOffsetY float64
	// TraceDistance is the length of the reticle trace in world units.
	TraceDistance float64

	Weapon WeaponConfig
}

// DefaultConfig is the stock hip/aim tuning with the default weapon assets.
func DefaultConfig() Config {
	return Config{
		HipRates:           RatePair{Turn: 90, LookUp: 90},
		AimingRates:        RatePair{Turn: 20, LookUp: 20},
		MouseHipRates:      RatePair{Turn: 1, LookUp: 1},
		MouseAimingRates:   RatePair{Turn: 0.2, LookUp: 0.2},
		DefaultFOV:         90,
		ZoomedFOV:          45,
		ZoomInterpSpeed:    20,
		CrosshairWalkSpeed: 600,
		CrosshairBaseline:  0.2,
		ReticleOffsetY:     50,
		TraceDistance:      50000,
		Weapon: WeaponConfig{
			MuzzleSocket:    "GunSocket",
			FireMontage:     "HipFire",
			FireSection:     "StartShooting",
			FireSound:       "fire",
			MuzzleFlash:     "muzzle_flash",
			BeamEffect:      "smoke_beam",
			BeamTargetParam: "Target",
			ImpactEffect:    "impact",
		},
	}
}

// Validate rejects negative rates and out-of-range tuning.
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"hip turn rate", c.HipRates.Turn},
		{"hip look up rate", c.HipRates.LookUp},
		{"aiming turn rate", c.AimingRates.Turn},
		{"aiming look up rate", c.AimingRates.LookUp},
		{"mouse hip turn rate", c.MouseHipRates.Turn},
		{"mouse hip look up rate", c.MouseHipRates.LookUp},
		{"mouse aiming turn rate", c.MouseAimingRates.Turn},
		{"mouse aiming look up rate", c.MouseAimingRates.LookUp},
		{"zoom interp speed", c.ZoomInterpSpeed},
		{"reticle offset", c.ReticleOffsetY},
	}
	for _, chk := range checks {
		if chk.v < 0 {
			return fmt.Errorf("%w: %s is negative (%v)", ErrInvalidConfig, chk.name, chk.v)
		}
	}
	if c.DefaultFOV <= 0 || c.DefaultFOV >= 180 {
		return fmt.Errorf("%w: default fov %v outside (0, 180)", ErrInvalidConfig, c.DefaultFOV)
	}
	if c.ZoomedFOV <= 0 || c.ZoomedFOV >= 180 {
		return fmt.Errorf("%w: zoomed fov %v outside (0, 180)", ErrInvalidConfig, c.ZoomedFOV)
	}
	if c.CrosshairWalkSpeed <= 0 {
		return fmt.Errorf("%w: crosshair walk speed must be positive", ErrInvalidConfig)
	}
	if c.TraceDistance <= 0 {
		return fmt.Errorf("%w: trace distance must be positive", ErrInvalidConfig)
	}
	return nil
}

func (c Config) gamepadRates(s AimState) RatePair {
	if s == AimAiming {
		return c.AimingRates
	}
	return c.HipRates
}

func (c Config) mouseRates(s AimState) RatePair {
	if s == AimAiming {
		return c.MouseAimingRates
	}
	return c.MouseHipRates
}

func (c Config) targetFOV(s AimState, defaultFOV float64) float64 {
	if s == AimAiming {
		return c.ZoomedFOV
	}
	return defaultFOV
}
