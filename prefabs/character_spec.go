package prefabs

import "fmt"

type RatePairSpec struct {
	Turn   float64 `yaml:"turn"`
	LookUp float64 `yaml:"look_up"`
}

type ControllerSpec struct {
	HipRates           RatePairSpec `yaml:"hip_rates"`
	AimingRates        RatePairSpec `yaml:"aiming_rates"`
	MouseHipRates      RatePairSpec `yaml:"mouse_hip_rates"`
	MouseAimingRates   RatePairSpec `yaml:"mouse_aiming_rates"`
	ZoomedFOV          float64      `yaml:"zoomed_fov"`
	ZoomInterpSpeed    float64      `yaml:"zoom_interp_speed"`
	CrosshairWalkSpeed float64      `yaml:"crosshair_walk_speed"`
	CrosshairBaseline  float64      `yaml:"crosshair_baseline"`
	ReticleOffsetY     float64      `yaml:"reticle_offset_y"`
	TraceDistance      float64      `yaml:"trace_distance"`
}

type MovementSpec struct {
	MaxWalkSpeed        float64 `yaml:"max_walk_speed"`
	MaxAcceleration     float64 `yaml:"max_acceleration"`
	BrakingDeceleration float64 `yaml:"braking_deceleration"`
	JumpZVelocity       float64 `yaml:"jump_z_velocity"`
	AirControl          float64 `yaml:"air_control"`
	GravityZ            float64 `yaml:"gravity_z"`
	CapsuleRadius       float64 `yaml:"capsule_radius"`
	CapsuleHalfHeight   float64 `yaml:"capsule_half_height"`
	StepHeight          float64 `yaml:"step_height"`
}

// CameraSpec places the follow camera on a boom behind the character.
type CameraSpec struct {
	FOV          float64  `yaml:"fov"`
	BoomLength   float64  `yaml:"boom_length"`
	SocketOffset Vec3Spec `yaml:"socket_offset"`
}

type WeaponSpec struct {
	MuzzleSocket    string `yaml:"muzzle_socket"`
	FireMontage     string `yaml:"fire_montage"`
	FireSection     string `yaml:"fire_section"`
	FireSound       string `yaml:"fire_sound"`
	MuzzleFlash     string `yaml:"muzzle_flash"`
	BeamEffect      string `yaml:"beam_effect"`
	BeamTargetParam string `yaml:"beam_target_param"`
	ImpactEffect    string `yaml:"impact_effect"`
}

type EffectSpec struct {
	Lifetime float64   `yaml:"lifetime"`
	Size     float64   `yaml:"size"`
	Color    YAMLColor `yaml:"color"`
}

type MontageSpec struct {
	Length   float64            `yaml:"length"`
	Sections map[string]float64 `yaml:"sections"`
}

// SoundSpec describes a generated one-shot tone.
type SoundSpec struct {
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"`
	Volume    float64 `yaml:"volume"`
}

type InputSpec struct {
	// MouseAxisScale turns mouse pixels per frame into axis values.
	MouseAxisScale float64 `yaml:"mouse_axis_scale"`
	InvertMouseY   bool    `yaml:"invert_mouse_y"`
	StickDeadzone  float64 `yaml:"stick_deadzone"`
}

type CharacterSpec struct {
	Name       string                   `yaml:"name"`
	Controller ControllerSpec           `yaml:"controller"`
	Movement   MovementSpec             `yaml:"movement"`
	Camera     CameraSpec               `yaml:"camera"`
	Input      InputSpec                `yaml:"input"`
	Weapon     WeaponSpec               `yaml:"weapon"`
	Sockets    map[string]TransformSpec `yaml:"sockets"`
	Effects    map[string]EffectSpec    `yaml:"effects"`
	Montages   map[string]MontageSpec   `yaml:"montages"`
	Sounds     map[string]SoundSpec     `yaml:"sounds"`
}

func LoadCharacterSpec(name string) (*CharacterSpec, error) {
	spec, err := LoadSpec[CharacterSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

// Validate checks cross references. Numeric tuning is validated by the
// packages that consume it.
func (s *CharacterSpec) Validate() error {
	if s.Camera.FOV <= 0 || s.Camera.FOV >= 180 {
		return fmt.Errorf("%w: camera fov %v outside (0, 180)", ErrInvalidSpec, s.Camera.FOV)
	}
	if s.Camera.BoomLength < 0 {
		return fmt.Errorf("%w: negative boom length", ErrInvalidSpec)
	}
	w := s.Weapon
	if w.MuzzleSocket != "" {
		if _, ok := s.Sockets[w.MuzzleSocket]; !ok {
			return fmt.Errorf("%w: unknown muzzle socket %q", ErrInvalidSpec, w.MuzzleSocket)
		}
	}
	if w.FireMontage != "" {
		m, ok := s.Montages[w.FireMontage]
		if !ok {
			return fmt.Errorf("%w: unknown fire montage %q", ErrInvalidSpec, w.FireMontage)
		}
		if m.Length <= 0 {
			return fmt.Errorf("%w: montage %q has no length", ErrInvalidSpec, w.FireMontage)
		}
		if w.FireSection != "" {
			start, ok := m.Sections[w.FireSection]
			if !ok {
				return fmt.Errorf("%w: montage %q has no section %q", ErrInvalidSpec, w.FireMontage, w.FireSection)
			}
			if start < 0 || start >= m.Length {
				return fmt.Errorf("%w: section %q starts outside montage %q", ErrInvalidSpec, w.FireSection, w.FireMontage)
			}
		}
	}
	for _, name := range []string{w.MuzzleFlash, w.BeamEffect, w.ImpactEffect} {
		if name == "" {
			continue
		}
		e, ok := s.Effects[name]
		if !ok {
			return fmt.Errorf("%w: unknown effect %q", ErrInvalidSpec, name)
		}
		if e.Lifetime <= 0 {
			return fmt.Errorf("%w: effect %q has no lifetime", ErrInvalidSpec, name)
		}
	}
	if w.BeamEffect != "" && w.BeamTargetParam == "" {
		return fmt.Errorf("%w: beam effect needs a target parameter", ErrInvalidSpec)
	}
	if w.FireSound != "" {
		snd, ok := s.Sounds[w.FireSound]
		if !ok {
			return fmt.Errorf("%w: unknown sound %q", ErrInvalidSpec, w.FireSound)
		}
		if snd.Duration <= 0 || snd.Frequency <= 0 {
			return fmt.Errorf("%w: sound %q needs a frequency and duration", ErrInvalidSpec, w.FireSound)
		}
	}
	return nil
}
