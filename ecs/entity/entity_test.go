package entity

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/common"
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
	"github.com/milk9111/shooter/prefabs"
	"github.com/milk9111/shooter/scene"
)

type fakePlayer struct {
	plays  int
	volume float64
}

func (p *fakePlayer) IsPlaying() bool { return false }

func (p *fakePlayer) Rewind() error { return nil }

func (p *fakePlayer) Play() { p.plays++ }

func (p *fakePlayer) SetVolume(volume float64) { p.volume = volume }

type fakeLoader struct {
	loaded []string
	fail   bool
}

func (l *fakeLoader) LoadSound(name string, _ prefabs.SoundSpec) (component.SoundPlayer, error) {
	l.loaded = append(l.loaded, name)
	if l.fail {
		return nil, errors.New("no device")
	}
	return &fakePlayer{}, nil
}

func loadSpecs(t *testing.T) (*prefabs.CharacterSpec, *prefabs.LevelSpec) {
	t.Helper()
	ch, err := prefabs.LoadCharacterSpec("character.yaml")
	if err != nil {
		t.Fatalf("LoadCharacterSpec: %v", err)
	}
	lvl, err := prefabs.LoadLevelSpec("level.yaml")
	if err != nil {
		t.Fatalf("LoadLevelSpec: %v", err)
	}
	return ch, lvl
}

func newLevel(t *testing.T, w *ecs.World, spec *prefabs.LevelSpec) *component.Level {
	t.Helper()
	e, err := NewLevel(w, spec)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	lvl, ok := ecs.Get(w, e, component.LevelComponent.Kind())
	if !ok {
		t.Fatalf("level component missing")
	}
	return lvl
}

func near(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-6
}

func TestBuildScene(t *testing.T) {
	_, lvlSpec := loadSpecs(t)
	s, err := BuildScene(lvlSpec)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	if len(s.Boxes) != 6 || len(s.Spheres) != 2 {
		t.Fatalf("got %d boxes and %d spheres", len(s.Boxes), len(s.Spheres))
	}
	if !s.HasFloor || s.FloorZ != 0 {
		t.Fatalf("floor = %v at %v", s.HasFloor, s.FloorZ)
	}

	hit, ok := s.LineTrace(mgl64.Vec3{0, 0, 300}, mgl64.Vec3{3000, 0, 300})
	if !ok || hit.Name != "back_wall" {
		t.Fatalf("trace hit %q (%v)", hit.Name, ok)
	}
}

func TestBuildSceneRejectsBadObjects(t *testing.T) {
	spec := &prefabs.LevelSpec{
		Viewport: prefabs.ViewportSpec{Width: 10, Height: 10},
		Objects:  []prefabs.ObjectSpec{{Name: "cone", Kind: "cone"}},
	}
	if _, err := BuildScene(spec); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestObstacles(t *testing.T) {
	chSpec, lvlSpec := loadSpecs(t)
	s, err := BuildScene(lvlSpec)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	got := Obstacles(s, MovementConfig(chSpec, lvlSpec.FloorZ))
	// Walls, cover and both spheres. The step and the marker stay walkable.
	if len(got) != 6 {
		t.Fatalf("got %d obstacles, want 6", len(got))
	}
}

func TestControllerConfigValidates(t *testing.T) {
	chSpec, _ := loadSpecs(t)
	cfg := ControllerConfig(chSpec)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.DefaultFOV != chSpec.Camera.FOV {
		t.Fatalf("default fov = %v, want camera fov %v", cfg.DefaultFOV, chSpec.Camera.FOV)
	}
	if cfg.Weapon.MuzzleSocket != chSpec.Weapon.MuzzleSocket {
		t.Fatalf("muzzle socket = %q", cfg.Weapon.MuzzleSocket)
	}
}

func TestStageConfigCopiesSections(t *testing.T) {
	chSpec, _ := loadSpecs(t)
	cfg := StageConfig(chSpec)
	m, ok := cfg.Montages[chSpec.Weapon.FireMontage]
	if !ok {
		t.Fatalf("fire montage missing")
	}
	m.Sections["mutated"] = 1
	if _, ok := chSpec.Montages[chSpec.Weapon.FireMontage].Sections["mutated"]; ok {
		t.Fatalf("stage config shares section map with spec")
	}
	if _, ok := cfg.Sockets[chSpec.Weapon.MuzzleSocket]; !ok {
		t.Fatalf("muzzle socket missing")
	}
}

func TestNewPlayer(t *testing.T) {
	chSpec, lvlSpec := loadSpecs(t)
	w := ecs.NewWorld()
	lvl := newLevel(t, w, lvlSpec)
	loader := &fakeLoader{}

	e, err := NewPlayer(w, chSpec, lvl, loader)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		t.Fatalf("player tag missing")
	}
	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok {
		t.Fatalf("character missing")
	}
	want := mgl64.Vec3{0, 0, chSpec.Movement.CapsuleHalfHeight}
	if got := ch.Movement.Location(); !near(got, want) {
		t.Fatalf("spawn location = %v, want %v", got, want)
	}
	if ch.Spawned {
		t.Fatalf("character marked spawned before the first tick")
	}

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if !near(tr.Location, want) {
		t.Fatalf("transform = %v", tr.Location)
	}

	rig, _ := ecs.Get(w, e, component.CameraRigComponent.Kind())
	if rig.Camera.FOV != chSpec.Camera.FOV {
		t.Fatalf("camera fov = %v", rig.Camera.FOV)
	}
	if rig.Camera.Location.X() >= 0 {
		t.Fatalf("camera should sit behind the character, got %v", rig.Camera.Location)
	}

	st, _ := ecs.Get(w, e, component.AnimStateComponent.Kind())
	if !st.Sampler.Bound() {
		t.Fatalf("sampler not bound after spawn")
	}
	if st.Sampler.Source() != ch.Controller {
		t.Fatalf("sampler bound to the wrong source")
	}

	audio, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	if len(audio.Players) != len(chSpec.Sounds) || len(loader.loaded) != len(chSpec.Sounds) {
		t.Fatalf("loaded %d players for %d sounds", len(audio.Players), len(chSpec.Sounds))
	}
}

func TestNewPlayerWithoutSound(t *testing.T) {
	chSpec, lvlSpec := loadSpecs(t)
	w := ecs.NewWorld()
	lvl := newLevel(t, w, lvlSpec)

	e, err := NewPlayer(w, chSpec, lvl, &fakeLoader{fail: true})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	audio, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	if len(audio.Players) != 0 {
		t.Fatalf("players = %d, want 0", len(audio.Players))
	}
	if audio.Volume[chSpec.Weapon.FireSound] == 0 {
		t.Fatalf("volume not recorded for the fire sound")
	}
}

func TestNewPlayerMissingInputs(t *testing.T) {
	chSpec, _ := loadSpecs(t)
	if _, err := NewPlayer(ecs.NewWorld(), chSpec, nil, nil); err == nil {
		t.Fatalf("expected error without a level")
	}
}

func TestCharacterResolver(t *testing.T) {
	chSpec, lvlSpec := loadSpecs(t)
	w := ecs.NewWorld()
	lvl := newLevel(t, w, lvlSpec)
	e, err := NewPlayer(w, chSpec, lvl, nil)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	resolve := CharacterResolver(w, e)
	if _, ok := resolve(); !ok {
		t.Fatalf("resolver failed on a live character")
	}
	w.DestroyEntity(e)
	if _, ok := resolve(); ok {
		t.Fatalf("resolver succeeded after destroy")
	}
}

func TestRebuildCharacterKeepsPlacement(t *testing.T) {
	chSpec, lvlSpec := loadSpecs(t)
	w := ecs.NewWorld()
	lvl := newLevel(t, w, lvlSpec)
	e, err := NewPlayer(w, chSpec, lvl, nil)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	ch, _ := ecs.Get(w, e, component.CharacterComponent.Kind())
	ch.Movement.Teleport(mgl64.Vec3{-500, 200, 0})
	ch.Movement.AddYawInput(30)
	ch.Movement.AddPitchInput(-10)
	oldCtrl := ch.Controller

	tuned := *chSpec
	tuned.Camera.FOV = 70
	if err := RebuildCharacter(w, e, &tuned, lvl, nil); err != nil {
		t.Fatalf("RebuildCharacter: %v", err)
	}

	ch, _ = ecs.Get(w, e, component.CharacterComponent.Kind())
	if ch.Controller == oldCtrl {
		t.Fatalf("controller was not replaced")
	}
	if got := ch.Movement.Location(); math.Abs(got.X()+500) > 1e-6 || math.Abs(got.Y()-200) > 1e-6 {
		t.Fatalf("location = %v", got)
	}
	rot, _ := ch.Movement.ControlRotation()
	if math.Abs(rot.Yaw-30) > 1e-9 || math.Abs(rot.Pitch+10) > 1e-9 {
		t.Fatalf("control rotation = %+v", rot)
	}
	if ch.Spawned {
		t.Fatalf("rebuilt character must spawn again")
	}
	rig, _ := ecs.Get(w, e, component.CameraRigComponent.Kind())
	if rig.Camera.FOV != 70 {
		t.Fatalf("camera fov = %v, want 70", rig.Camera.FOV)
	}
}

func TestRebuildCharacterNeedsCharacter(t *testing.T) {
	chSpec, lvlSpec := loadSpecs(t)
	w := ecs.NewWorld()
	lvl := newLevel(t, w, lvlSpec)
	if err := RebuildCharacter(w, w.CreateEntity(), chSpec, lvl, nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestReplaceLevelSharesScene(t *testing.T) {
	_, lvlSpec := loadSpecs(t)
	w := ecs.NewWorld()
	lvl := newLevel(t, w, lvlSpec)
	q := scene.NewQuery(lvl.Scene, &scene.Camera{FOV: 90}, lvl.Viewport)

	empty := *lvlSpec
	empty.Objects = nil
	if err := ReplaceLevel(lvl, &empty); err != nil {
		t.Fatalf("ReplaceLevel: %v", err)
	}
	if _, ok := q.LineTrace(mgl64.Vec3{0, 0, 300}, mgl64.Vec3{3000, 0, 300}); ok {
		t.Fatalf("query still sees the old walls")
	}

	got, ok := CurrentLevel(w)
	if !ok || got.Spec != &empty {
		t.Fatalf("CurrentLevel did not return the replaced level")
	}
}

func TestPlaceCamera(t *testing.T) {
	rig := &component.CameraRig{
		Camera:       &scene.Camera{FOV: 90},
		BoomLength:   200,
		SocketOffset: mgl64.Vec3{0, 50, 70},
	}

	tests := []struct {
		name string
		yaw  float64
		want mgl64.Vec3
	}{
		{"facing_x", 0, mgl64.Vec3{-200, 50, 70}},
		{"facing_y", 90, mgl64.Vec3{-50, -200, 70}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			PlaceCamera(rig, mgl64.Vec3{}, common.Rotator{Yaw: tc.yaw})
			if !near(rig.Camera.Location, tc.want) {
				t.Fatalf("camera at %v, want %v", rig.Camera.Location, tc.want)
			}
			if rig.Camera.Rotation.Yaw != tc.yaw {
				t.Fatalf("camera yaw = %v", rig.Camera.Rotation.Yaw)
			}
		})
	}
}
