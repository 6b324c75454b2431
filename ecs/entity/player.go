package entity

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/anim"
	"github.com/milk9111/shooter/character"
	"github.com/milk9111/shooter/common"
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
	"github.com/milk9111/shooter/fx"
	"github.com/milk9111/shooter/movement"
	"github.com/milk9111/shooter/prefabs"
	"github.com/milk9111/shooter/scene"
)

var (
	_ character.Movement   = (*movement.Component)(nil)
	_ character.WorldQuery = (*scene.Query)(nil)
	_ character.Camera     = (*scene.Camera)(nil)
	_ anim.Source          = (*character.Controller)(nil)
)

// SoundLoader turns a sound prefab into a player. A nil loader leaves the
// character silent.
type SoundLoader interface {
	LoadSound(name string, spec prefabs.SoundSpec) (component.SoundPlayer, error)
}

// NewPlayer creates the player character at the level spawn.
func NewPlayer(w *ecs.World, spec *prefabs.CharacterSpec, lvl *component.Level, sounds SoundLoader) (ecs.Entity, error) {
	if spec == nil || lvl == nil {
		return 0, fmt.Errorf("player: missing character or level")
	}

	spawn := SpawnTransform(lvl.Spec, spec)
	rig := &component.CameraRig{
		Camera:       &scene.Camera{FOV: spec.Camera.FOV},
		BoomLength:   spec.Camera.BoomLength,
		SocketOffset: vec3(spec.Camera.SocketOffset),
	}
	audio := newAudio(spec, sounds)

	ch, err := buildCharacter(spec, lvl, rig, audio, spawn, spawn.Rotation)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	PlaceCamera(rig, ch.Movement.Location(), spawn.Rotation)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	t := component.Transform{Location: ch.Movement.Location(), Rotation: spawn.Rotation.YawOnly()}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &t); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.CharacterComponent.Kind(), ch); err != nil {
		return 0, fmt.Errorf("player: add character: %w", err)
	}
	if err := ecs.Add(w, e, component.CameraRigComponent.Kind(), rig); err != nil {
		return 0, fmt.Errorf("player: add camera rig: %w", err)
	}
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), audio); err != nil {
		return 0, fmt.Errorf("player: add audio: %w", err)
	}
	if err := ecs.Add(w, e, component.HUDComponent.Kind(), &component.HUD{Spread: ch.Controller.CrosshairSpreadMultiplier()}); err != nil {
		return 0, fmt.Errorf("player: add hud: %w", err)
	}

	sampler := anim.NewSampler(CharacterResolver(w, e))
	sampler.Initialize()
	if err := ecs.Add(w, e, component.AnimStateComponent.Kind(), &component.AnimState{Sampler: sampler}); err != nil {
		return 0, fmt.Errorf("player: add anim state: %w", err)
	}

	return e, nil
}

// CharacterResolver finds the controller currently attached to e. It fails
// once e is destroyed or loses its character.
func CharacterResolver(w *ecs.World, e ecs.Entity) anim.Resolver {
	return func() (anim.Source, bool) {
		ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
		if !ok || ch.Controller == nil {
			return nil, false
		}
		return ch.Controller, true
	}
}

// RebuildCharacter replaces the character of e with one built from spec,
// keeping its position and aim. The old controller is dropped.
func RebuildCharacter(w *ecs.World, e ecs.Entity, spec *prefabs.CharacterSpec, lvl *component.Level, sounds SoundLoader) error {
	old, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok {
		return fmt.Errorf("rebuild: entity %v has no character", e)
	}
	rig, ok := ecs.Get(w, e, component.CameraRigComponent.Kind())
	if !ok {
		return fmt.Errorf("rebuild: entity %v has no camera rig", e)
	}
	audio, ok := ecs.Get(w, e, component.AudioComponent.Kind())
	if !ok {
		return fmt.Errorf("rebuild: entity %v has no audio", e)
	}

	at := common.Transform{Location: old.Movement.Location()}
	control, _ := old.Movement.ControlRotation()
	at.Rotation = control.YawOnly()

	// Nothing on e changes until the new character builds.
	ch, err := buildCharacter(spec, lvl, rig, audio, at, control)
	if err != nil {
		return fmt.Errorf("rebuild: %w", err)
	}

	rig.BoomLength = spec.Camera.BoomLength
	rig.SocketOffset = vec3(spec.Camera.SocketOffset)
	rig.Camera.SetFieldOfView(spec.Camera.FOV)
	fresh := newAudio(spec, sounds)
	audio.Players = fresh.Players
	audio.Volume = fresh.Volume
	*old = *ch
	return nil
}

// SpawnTransform places the capsule center above the level spawn point.
func SpawnTransform(lvl *prefabs.LevelSpec, spec *prefabs.CharacterSpec) common.Transform {
	t := transform(lvl.Spawn)
	t.Location = t.Location.Add(mgl64.Vec3{0, 0, spec.Movement.CapsuleHalfHeight})
	t.Rotation = t.Rotation.YawOnly().Normalized()
	return t
}

// PlaceCamera puts the camera at the end of the boom behind pivot.
func PlaceCamera(rig *component.CameraRig, pivot mgl64.Vec3, control common.Rotator) {
	rot := control.Normalized()
	forward := rot.Vector()
	loc := pivot.Sub(forward.Mul(rig.BoomLength)).Add(rot.Matrix().Mul3x1(rig.SocketOffset))
	rig.Camera.Location = loc
	rig.Camera.Rotation = rot
}

func buildCharacter(spec *prefabs.CharacterSpec, lvl *component.Level, rig *component.CameraRig, audio *component.Audio, at common.Transform, control common.Rotator) (*component.Character, error) {
	mcfg := MovementConfig(spec, lvl.Spec.FloorZ)
	mv, err := movement.New(mcfg, at, Obstacles(lvl.Scene, mcfg))
	if err != nil {
		return nil, fmt.Errorf("movement: %w", err)
	}
	mv.SetControlRotation(control)

	stage := fx.NewStage(StageConfig(spec), audio)
	stage.SetOwner(common.Transform{Location: mv.Location(), Rotation: control.YawOnly()})

	ctrl, err := character.NewController(ControllerConfig(spec), character.Deps{
		Movement:     mv,
		World:        scene.NewQuery(lvl.Scene, rig.Camera, lvl.Viewport),
		Camera:       rig.Camera,
		Presentation: stage,
	})
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}

	return &component.Character{
		Spec:       spec,
		Controller: ctrl,
		Movement:   mv,
		Stage:      stage,
	}, nil
}

func newAudio(spec *prefabs.CharacterSpec, sounds SoundLoader) *component.Audio {
	a := &component.Audio{
		Players: make(map[string]component.SoundPlayer, len(spec.Sounds)),
		Volume:  make(map[string]float64, len(spec.Sounds)),
	}
	for name, s := range spec.Sounds {
		a.Volume[name] = s.Volume
		if sounds == nil {
			continue
		}
		p, err := sounds.LoadSound(name, s)
		if err != nil {
			log.Printf("player: load sound %q: %v", name, err)
			continue
		}
		a.Players[name] = p
	}
	return a
}
