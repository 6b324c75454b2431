package fx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/common"
)

type recordingSink struct {
	played []string
}

func (r *recordingSink) Play(name string) {
	r.played = append(r.played, name)
}

func testConfig() Config {
	return Config{
		Effects: map[string]EffectSpec{
			"muzzle_flash": {Lifetime: 0.1},
			"smoke_beam":   {Lifetime: 0.5},
		},
		Montages: map[string]MontageSpec{
			"HipFire": {Length: 0.6, Sections: map[string]float64{"StartShooting": 0.2}},
		},
		Sockets: map[string]common.Transform{
			"GunSocket": {Location: mgl64.Vec3{50, 20, 40}},
		},
	}
}

func TestSpawnEffectLifetime(t *testing.T) {
	s := NewStage(testConfig(), nil)

	h := s.SpawnEffect("muzzle_flash", common.Transform{})
	if h == nil {
		t.Fatalf("expected an effect handle")
	}
	s.SpawnEffect("smoke_beam", common.Transform{})
	if len(s.Effects()) != 2 {
		t.Fatalf("expected 2 effects, got %d", len(s.Effects()))
	}

	s.Update(0.05)
	if got := s.Effects()[0].Progress(); got != 0.5 {
		t.Fatalf("expected flash half done, got %v", got)
	}

	s.Update(0.06)
	if len(s.Effects()) != 1 || s.Effects()[0].Name != "smoke_beam" {
		t.Fatalf("expected only the beam to survive, got %d effects", len(s.Effects()))
	}

	s.Update(1)
	if len(s.Effects()) != 0 {
		t.Fatalf("expected all effects expired, got %d", len(s.Effects()))
	}
}

func TestSpawnUnknownEffect(t *testing.T) {
	s := NewStage(testConfig(), nil)
	if h := s.SpawnEffect("missing", common.Transform{}); h != nil {
		t.Fatalf("expected nil handle for an unknown effect")
	}
	if len(s.Effects()) != 0 {
		t.Fatalf("expected nothing spawned")
	}
}

func TestEffectVectorParameter(t *testing.T) {
	s := NewStage(testConfig(), nil)
	s.SpawnEffect("smoke_beam", common.Transform{}).SetVectorParameter("Target", mgl64.Vec3{1, 2, 3})

	v, ok := s.Effects()[0].VectorParameter("Target")
	if !ok || v != (mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("expected target (1, 2, 3), got %v (%v)", v, ok)
	}
	if _, ok := s.Effects()[0].VectorParameter("Other"); ok {
		t.Fatalf("expected unset parameter to be missing")
	}
}

func TestMontagePlayback(t *testing.T) {
	s := NewStage(testConfig(), nil)
	if s.IsMontagePlaying("HipFire") {
		t.Fatalf("expected idle montage player")
	}

	s.PlayMontage("HipFire")
	s.JumpToSection("HipFire", "StartShooting")
	name, pos, playing := s.MontagePosition()
	if name != "HipFire" || pos != 0.2 || !playing {
		t.Fatalf("expected HipFire at 0.2, got %q %v %v", name, pos, playing)
	}

	s.Update(0.3)
	if !s.IsMontagePlaying("HipFire") {
		t.Fatalf("expected montage still playing at 0.5")
	}
	s.Update(0.1)
	if s.IsMontagePlaying("HipFire") {
		t.Fatalf("expected montage finished at 0.6")
	}
}

func TestMontageIgnoresUnknownNames(t *testing.T) {
	s := NewStage(testConfig(), nil)
	s.PlayMontage("Reload")
	if s.IsMontagePlaying("Reload") {
		t.Fatalf("unknown montage must not play")
	}

	s.PlayMontage("HipFire")
	s.JumpToSection("HipFire", "Missing")
	s.JumpToSection("Reload", "StartShooting")
	if _, pos, _ := s.MontagePosition(); pos != 0 {
		t.Fatalf("expected playhead untouched, got %v", pos)
	}
}

func TestSocketTransformFollowsOwner(t *testing.T) {
	s := NewStage(testConfig(), nil)

	sock, ok := s.SocketTransform("GunSocket")
	if !ok || sock.Location != (mgl64.Vec3{50, 20, 40}) {
		t.Fatalf("expected socket at its offset, got %v (%v)", sock.Location, ok)
	}

	s.SetOwner(common.Transform{Location: mgl64.Vec3{100, 0, 0}, Rotation: common.Rotator{Yaw: 90}})
	sock, _ = s.SocketTransform("GunSocket")
	want := mgl64.Vec3{80, 50, 40}
	if sock.Location.Sub(want).Len() > 1e-9 {
		t.Fatalf("expected socket at %v, got %v", want, sock.Location)
	}
	if sock.Rotation.Yaw != 90 {
		t.Fatalf("expected socket yaw 90, got %v", sock.Rotation.Yaw)
	}

	if _, ok := s.SocketTransform("Missing"); ok {
		t.Fatalf("expected missing socket")
	}
}

func TestPlaySound2D(t *testing.T) {
	sink := &recordingSink{}
	s := NewStage(testConfig(), sink)
	s.PlaySound2D("fire")
	s.PlaySound2D("")
	if len(sink.played) != 1 || sink.played[0] != "fire" {
		t.Fatalf("unexpected sounds %v", sink.played)
	}

	NewStage(testConfig(), nil).PlaySound2D("fire")
}

func TestClear(t *testing.T) {
	s := NewStage(testConfig(), nil)
	s.SpawnEffect("smoke_beam", common.Transform{})
	s.PlayMontage("HipFire")
	s.Clear()
	if len(s.Effects()) != 0 || s.IsMontagePlaying("HipFire") {
		t.Fatalf("expected cleared stage")
	}
}
