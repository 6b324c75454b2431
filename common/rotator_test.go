package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNormalizeAxis(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{360, 0},
		{725, 5},
		{-540, 180},
	}
	for _, c := range cases {
		if got := NormalizeAxis(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("NormalizeAxis(%v): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestRotatorAxes(t *testing.T) {
	cases := []struct {
		name    string
		rot     Rotator
		forward mgl64.Vec3
		right   mgl64.Vec3
		up      mgl64.Vec3
	}{
		{"identity", Rotator{}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
		{"yaw_90", Rotator{Yaw: 90}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 0, 1}},
		{"pitch_90", Rotator{Pitch: 90}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{-1, 0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, r, u := c.rot.UnitAxes()
			if f.Sub(c.forward).Len() > 1e-9 {
				t.Fatalf("forward: expected %v, got %v", c.forward, f)
			}
			if r.Sub(c.right).Len() > 1e-9 {
				t.Fatalf("right: expected %v, got %v", c.right, r)
			}
			if u.Sub(c.up).Len() > 1e-9 {
				t.Fatalf("up: expected %v, got %v", c.up, u)
			}
		})
	}
}

func TestRotatorFromXRoundTrip(t *testing.T) {
	for _, rot := range []Rotator{{Yaw: 30}, {Yaw: -120, Pitch: 15}, {Pitch: -45, Yaw: 170}} {
		got := RotatorFromX(rot.Vector())
		if math.Abs(got.Yaw-rot.Yaw) > 1e-9 || math.Abs(got.Pitch-rot.Pitch) > 1e-9 {
			t.Fatalf("round trip of %+v gave %+v", rot, got)
		}
	}
	if got := RotatorFromX(mgl64.Vec3{}); got != (Rotator{}) {
		t.Fatalf("zero vector should give zero rotator, got %+v", got)
	}
}

func TestDeltaRotatorWraps(t *testing.T) {
	got := DeltaRotator(Rotator{Yaw: -170}, Rotator{Yaw: 170})
	if math.Abs(got.Yaw-20) > 1e-9 {
		t.Fatalf("expected 20, got %v", got.Yaw)
	}
}

func TestMatrixColumnsMatchAxes(t *testing.T) {
	rot := Rotator{Pitch: 10, Yaw: 40}
	f, r, u := rot.UnitAxes()
	m := rot.Matrix()
	if m.Col(0).Sub(f).Len() > 1e-9 || m.Col(1).Sub(r).Len() > 1e-9 || m.Col(2).Sub(u).Len() > 1e-9 {
		t.Fatalf("matrix columns do not match unit axes")
	}
}
