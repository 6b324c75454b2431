package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/character"
	"github.com/milk9111/shooter/common"
	"github.com/milk9111/shooter/fx"
	"github.com/milk9111/shooter/movement"
	"github.com/milk9111/shooter/prefabs"
)

func vec3(v prefabs.Vec3Spec) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func transform(t prefabs.TransformSpec) common.Transform {
	return common.Transform{
		Location: vec3(t.Location),
		Rotation: common.Rotator{Pitch: t.Rotation.Pitch, Yaw: t.Rotation.Yaw, Roll: t.Rotation.Roll},
	}
}

func rates(r prefabs.RatePairSpec) character.RatePair {
	return character.RatePair{Turn: r.Turn, LookUp: r.LookUp}
}

// ControllerConfig maps a character prefab onto controller tuning. The
// camera FOV doubles as the default FOV used before spawn.
func ControllerConfig(spec *prefabs.CharacterSpec) character.Config {
	c := spec.Controller
	w := spec.Weapon
	return character.Config{
		HipRates:           rates(c.HipRates),
		AimingRates:        rates(c.AimingRates),
		MouseHipRates:      rates(c.MouseHipRates),
		MouseAimingRates:   rates(c.MouseAimingRates),
		DefaultFOV:         spec.Camera.FOV,
		ZoomedFOV:          c.ZoomedFOV,
		ZoomInterpSpeed:    c.ZoomInterpSpeed,
		CrosshairWalkSpeed: c.CrosshairWalkSpeed,
		CrosshairBaseline:  c.CrosshairBaseline,
		ReticleOffsetY:     c.ReticleOffsetY,
		TraceDistance:      c.TraceDistance,
		Weapon: character.WeaponConfig{
			MuzzleSocket:    w.MuzzleSocket,
			FireMontage:     w.FireMontage,
			FireSection:     w.FireSection,
			FireSound:       w.FireSound,
			MuzzleFlash:     w.MuzzleFlash,
			BeamEffect:      w.BeamEffect,
			BeamTargetParam: w.BeamTargetParam,
			ImpactEffect:    w.ImpactEffect,
		},
	}
}

func MovementConfig(spec *prefabs.CharacterSpec, floorZ float64) movement.Config {
	m := spec.Movement
	return movement.Config{
		MaxWalkSpeed:        m.MaxWalkSpeed,
		MaxAcceleration:     m.MaxAcceleration,
		BrakingDeceleration: m.BrakingDeceleration,
		JumpZVelocity:       m.JumpZVelocity,
		AirControl:          m.AirControl,
		GravityZ:            m.GravityZ,
		CapsuleRadius:       m.CapsuleRadius,
		CapsuleHalfHeight:   m.CapsuleHalfHeight,
		StepHeight:          m.StepHeight,
		FloorZ:              floorZ,
	}
}

func StageConfig(spec *prefabs.CharacterSpec) fx.Config {
	cfg := fx.Config{
		Effects:  make(map[string]fx.EffectSpec, len(spec.Effects)),
		Montages: make(map[string]fx.MontageSpec, len(spec.Montages)),
		Sockets:  make(map[string]common.Transform, len(spec.Sockets)),
	}
	for name, e := range spec.Effects {
		cfg.Effects[name] = fx.EffectSpec{Lifetime: e.Lifetime}
	}
	for name, m := range spec.Montages {
		sections := make(map[string]float64, len(m.Sections))
		for section, start := range m.Sections {
			sections[section] = start
		}
		cfg.Montages[name] = fx.MontageSpec{Length: m.Length, Sections: sections}
	}
	for name, s := range spec.Sockets {
		cfg.Sockets[name] = transform(s)
	}
	return cfg
}
