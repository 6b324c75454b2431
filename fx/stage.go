// Package fx is the presentation side of a character: one-shot effects,
// the montage player, mesh sockets and 2D sound.
package fx

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/character"
	"github.com/milk9111/shooter/common"
)

// SoundSink plays a named one-shot sound without blocking.
type SoundSink interface {
	Play(name string)
}

// EffectSpec describes a spawnable effect.
type EffectSpec struct {
	// Lifetime in seconds.
	Lifetime float64
}

// MontageSpec is a named animation clip with jump targets.
type MontageSpec struct {
	Length float64
	// Sections map a section name to its start time.
	Sections map[string]float64
}

// Config is the presentation setup of one character mesh.
type Config struct {
	Effects  map[string]EffectSpec
	Montages map[string]MontageSpec
	// Sockets are relative to the owner transform.
	Sockets map[string]common.Transform
}

type montageState struct {
	name     string
	position float64
	playing  bool
}

// Stage owns the live presentation state of one character.
type Stage struct {
	cfg   Config
	sound SoundSink
	owner common.Transform

	nextID  uint64
	effects []*Effect

	montage montageState
}

func NewStage(cfg Config, sound SoundSink) *Stage {
	return &Stage{cfg: cfg, sound: sound}
}

// SetOwner moves the mesh the sockets are attached to.
func (s *Stage) SetOwner(t common.Transform) {
	s.owner = t
}

func (s *Stage) Owner() common.Transform {
	return s.owner
}

func (s *Stage) PlaySound2D(name string) {
	if s.sound == nil || name == "" {
		return
	}
	s.sound.Play(name)
}

// SpawnEffect starts a configured effect. Unknown names spawn nothing and
// return nil.
func (s *Stage) SpawnEffect(name string, at common.Transform) character.EffectHandle {
	spec, ok := s.cfg.Effects[name]
	if !ok {
		return nil
	}
	s.nextID++
	e := &Effect{
		ID:        s.nextID,
		Name:      name,
		Transform: at,
		Lifetime:  spec.Lifetime,
	}
	s.effects = append(s.effects, e)
	return e
}

// PlayMontage restarts a configured montage from its beginning.
func (s *Stage) PlayMontage(name string) {
	spec, ok := s.cfg.Montages[name]
	if !ok || spec.Length <= 0 {
		return
	}
	s.montage = montageState{name: name, playing: true}
}

// JumpToSection moves the playing montage to a section start.
func (s *Stage) JumpToSection(montage, section string) {
	if !s.montage.playing || s.montage.name != montage {
		return
	}
	start, ok := s.cfg.Montages[montage].Sections[section]
	if !ok {
		return
	}
	s.montage.position = start
}

func (s *Stage) IsMontagePlaying(name string) bool {
	return s.montage.playing && s.montage.name == name
}

// MontagePosition reports the current montage and its playhead.
func (s *Stage) MontagePosition() (string, float64, bool) {
	return s.montage.name, s.montage.position, s.montage.playing
}

// SocketTransform returns a socket in world space.
func (s *Stage) SocketTransform(name string) (common.Transform, bool) {
	rel, ok := s.cfg.Sockets[name]
	if !ok {
		return common.Transform{}, false
	}
	offset := s.owner.Rotation.Matrix().Mul3x1(rel.Location)
	return common.Transform{
		Location: s.owner.Location.Add(offset),
		Rotation: common.Rotator{
			Pitch: s.owner.Rotation.Pitch + rel.Rotation.Pitch,
			Yaw:   s.owner.Rotation.Yaw + rel.Rotation.Yaw,
			Roll:  s.owner.Rotation.Roll + rel.Rotation.Roll,
		}.Normalized(),
	}, true
}

// SocketNames lists the configured sockets in order.
func (s *Stage) SocketNames() []string {
	names := make([]string, 0, len(s.cfg.Sockets))
	for name := range s.cfg.Sockets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Update ages effects and advances the montage playhead.
func (s *Stage) Update(dt float64) {
	if dt <= 0 {
		return
	}

	live := s.effects[:0]
	for _, e := range s.effects {
		e.Age += dt
		if e.Alive() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.effects); i++ {
		s.effects[i] = nil
	}
	s.effects = live

	if s.montage.playing {
		s.montage.position += dt
		if s.montage.position >= s.cfg.Montages[s.montage.name].Length {
			s.montage.playing = false
		}
	}
}

// Effects returns the live effects, oldest first.
func (s *Stage) Effects() []*Effect {
	return s.effects
}

// Clear drops every effect and stops the montage.
func (s *Stage) Clear() {
	s.effects = nil
	s.montage = montageState{}
}

// Effect is a live one-shot effect.
type Effect struct {
	ID        uint64
	Name      string
	Transform common.Transform
	Age       float64
	Lifetime  float64

	params map[string]mgl64.Vec3
}

func (e *Effect) SetVectorParameter(name string, v mgl64.Vec3) {
	if e.params == nil {
		e.params = make(map[string]mgl64.Vec3)
	}
	e.params[name] = v
}

func (e *Effect) VectorParameter(name string) (mgl64.Vec3, bool) {
	v, ok := e.params[name]
	return v, ok
}

func (e *Effect) Alive() bool {
	return e.Age < e.Lifetime
}

// Progress is the elapsed fraction of the lifetime in [0, 1].
func (e *Effect) Progress() float64 {
	if e.Lifetime <= 0 {
		return 1
	}
	return common.Clamp(e.Age/e.Lifetime, 0, 1)
}

var (
	_ character.Presentation = (*Stage)(nil)
	_ character.EffectHandle = (*Effect)(nil)
)
