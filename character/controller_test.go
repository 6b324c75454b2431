package character

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/common"
)

const eps = 1e-9

func newTestController(t *testing.T, deps Deps) *Controller {
	t.Helper()
	c, err := NewController(DefaultConfig(), deps)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func vecNear(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func TestNewControllerRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{name: "negative_turn", mut: func(c *Config) { c.HipRates.Turn = -1 }},
		{name: "zero_fov", mut: func(c *Config) { c.DefaultFOV = 0 }},
		{name: "zoomed_fov_180", mut: func(c *Config) { c.ZoomedFOV = 180 }},
		{name: "zero_walk_speed", mut: func(c *Config) { c.CrosshairWalkSpeed = 0 }},
		{name: "zero_trace", mut: func(c *Config) { c.TraceDistance = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mut(&cfg)
			if _, err := NewController(cfg, Deps{}); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewControllerStartsHipFire(t *testing.T) {
	c := newTestController(t, Deps{})
	if c.Aiming() || c.AimState() != AimHip {
		t.Fatalf("expected hip fire at construction, got %v", c.AimState())
	}
	if c.TurnRate() != 90 || c.LookUpRate() != 90 {
		t.Fatalf("expected hip rates 90/90, got %v/%v", c.TurnRate(), c.LookUpRate())
	}
	if c.CrosshairSpreadMultiplier() != 0.2 {
		t.Fatalf("expected baseline spread 0.2, got %v", c.CrosshairSpreadMultiplier())
	}
	if c.CameraFOV() != 90 || c.DefaultFOV() != 90 {
		t.Fatalf("expected fov 90, got %v default %v", c.CameraFOV(), c.DefaultFOV())
	}
}

func TestOnSpawnReadsCameraFOV(t *testing.T) {
	cam := &fakeCamera{fov: 100}
	c := newTestController(t, Deps{Camera: cam})
	c.OnSpawn()
	if c.DefaultFOV() != 100 || c.CameraFOV() != 100 {
		t.Fatalf("expected fov 100 from camera, got default %v current %v", c.DefaultFOV(), c.CameraFOV())
	}
}

func TestOnSpawnKeepsConfigFOVWithoutCamera(t *testing.T) {
	c := newTestController(t, Deps{Camera: &fakeCamera{}})
	c.OnSpawn()
	if c.DefaultFOV() != 90 {
		t.Fatalf("expected config fov when camera reports 0, got %v", c.DefaultFOV())
	}
}

func TestSetLookRatesFollowsAimState(t *testing.T) {
	c := newTestController(t, Deps{})

	c.AimingButtonPressed()
	if c.TurnRate() != 90 {
		t.Fatalf("rates must not change until the next tick, got %v", c.TurnRate())
	}
	c.SetLookRates()
	if c.TurnRate() != 20 || c.LookUpRate() != 20 {
		t.Fatalf("expected aiming rates 20/20, got %v/%v", c.TurnRate(), c.LookUpRate())
	}

	c.AimingButtonReleased()
	c.SetLookRates()
	if c.TurnRate() != 90 || c.LookUpRate() != 90 {
		t.Fatalf("expected hip rates 90/90, got %v/%v", c.TurnRate(), c.LookUpRate())
	}
}

func TestOnTickConvergesToZoomedFOV(t *testing.T) {
	cam := &fakeCamera{fov: 90}
	c := newTestController(t, Deps{Camera: cam})
	c.OnSpawn()
	c.AimingButtonPressed()

	prev := c.CameraFOV()
	for i := 0; i < 50; i++ {
		c.OnTick(0.016)
		if c.CameraFOV() > prev {
			t.Fatalf("tick %d: fov moved away from target: %v -> %v", i, prev, c.CameraFOV())
		}
		if c.CameraFOV() < 45 {
			t.Fatalf("tick %d: fov overshot target: %v", i, c.CameraFOV())
		}
		prev = c.CameraFOV()
	}
	if math.Abs(c.CameraFOV()-45) > 0.01 {
		t.Fatalf("expected fov within 0.01 of 45, got %v", c.CameraFOV())
	}
	if cam.fov != c.CameraFOV() {
		t.Fatalf("camera fov %v not synced with controller %v", cam.fov, c.CameraFOV())
	}
	if len(cam.set) != 50 {
		t.Fatalf("expected 50 camera writes, got %d", len(cam.set))
	}
}

func TestOnTickZoomsBackOut(t *testing.T) {
	cam := &fakeCamera{fov: 90}
	c := newTestController(t, Deps{Camera: cam})
	c.OnSpawn()
	c.AimingButtonPressed()
	for i := 0; i < 50; i++ {
		c.OnTick(0.016)
	}
	c.AimingButtonReleased()
	for i := 0; i < 50; i++ {
		c.OnTick(0.016)
	}
	if math.Abs(c.CameraFOV()-90) > 0.01 {
		t.Fatalf("expected fov back at 90, got %v", c.CameraFOV())
	}
}

func TestCalculateCrosshairSpread(t *testing.T) {
	tests := []struct {
		name     string
		velocity mgl64.Vec3
		want     float64
	}{
		{name: "idle", velocity: mgl64.Vec3{}, want: 0.2},
		{name: "half", velocity: mgl64.Vec3{300, 0, 0}, want: 0.7},
		{name: "walk", velocity: mgl64.Vec3{600, 0, 0}, want: 1.2},
		{name: "sprint", velocity: mgl64.Vec3{1200, 0, 0}, want: 1.2},
		{name: "diagonal", velocity: mgl64.Vec3{0, -600, 0}, want: 1.2},
		{name: "vertical_ignored", velocity: mgl64.Vec3{0, 0, -2000}, want: 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move := newFakeMovement()
			move.velocity = tt.velocity
			c := newTestController(t, Deps{Movement: move})
			c.OnTick(0.016)
			if math.Abs(c.CrosshairSpreadMultiplier()-tt.want) > eps {
				t.Fatalf("expected spread %v, got %v", tt.want, c.CrosshairSpreadMultiplier())
			}
		})
	}
}

func TestMoveUsesYawOnlyAxes(t *testing.T) {
	tests := []struct {
		name    string
		rot     common.Rotator
		forward mgl64.Vec3
		right   mgl64.Vec3
	}{
		{name: "identity", rot: common.Rotator{}, forward: mgl64.Vec3{1, 0, 0}, right: mgl64.Vec3{0, 1, 0}},
		{name: "yaw_90", rot: common.Rotator{Yaw: 90}, forward: mgl64.Vec3{0, 1, 0}, right: mgl64.Vec3{-1, 0, 0}},
		{name: "pitched_down", rot: common.Rotator{Pitch: -60, Yaw: 0, Roll: 15}, forward: mgl64.Vec3{1, 0, 0}, right: mgl64.Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move := newFakeMovement()
			move.rot = tt.rot
			c := newTestController(t, Deps{Movement: move})

			c.MoveForward(0.5)
			c.MoveRight(-1)

			if len(move.inputs) != 2 {
				t.Fatalf("expected 2 inputs, got %d", len(move.inputs))
			}
			if !vecNear(move.inputs[0].dir, tt.forward, 1e-9) || move.inputs[0].scale != 0.5 {
				t.Fatalf("forward input = %+v, want dir %v scale 0.5", move.inputs[0], tt.forward)
			}
			if !vecNear(move.inputs[1].dir, tt.right, 1e-9) || move.inputs[1].scale != -1 {
				t.Fatalf("right input = %+v, want dir %v scale -1", move.inputs[1], tt.right)
			}
		})
	}
}

func TestMoveZeroValueIsNoOp(t *testing.T) {
	move := newFakeMovement()
	c := newTestController(t, Deps{Movement: move})
	c.MoveForward(0)
	c.MoveRight(0)
	if len(move.inputs) != 0 {
		t.Fatalf("expected no inputs, got %d", len(move.inputs))
	}
}

func TestMoveWithoutPossessionIsNoOp(t *testing.T) {
	move := newFakeMovement()
	move.possessed = false
	c := newTestController(t, Deps{Movement: move})
	c.MoveForward(1)
	c.MoveRight(1)
	if len(move.inputs) != 0 {
		t.Fatalf("expected no inputs while unpossessed, got %d", len(move.inputs))
	}
}

func TestTurnAtRateScalesByRateAndDelta(t *testing.T) {
	move := newFakeMovement()
	c := newTestController(t, Deps{Movement: move})

	c.TurnAtRate(1, 0.5)
	c.LookAtRate(-0.5, 1)

	c.AimingButtonPressed()
	c.SetLookRates()
	c.TurnAtRate(1, 0.5)

	if len(move.yaw) != 2 || move.yaw[0] != 45 || move.yaw[1] != 10 {
		t.Fatalf("unexpected yaw inputs %v", move.yaw)
	}
	if len(move.pitch) != 1 || move.pitch[0] != -45 {
		t.Fatalf("unexpected pitch inputs %v", move.pitch)
	}
}

func TestMouseSensitivityFollowsAimState(t *testing.T) {
	move := newFakeMovement()
	c := newTestController(t, Deps{Movement: move})

	c.Turn(10, 1)
	c.LookUp(10, 1)
	c.AimingButtonPressed()
	c.Turn(10, 1)
	c.LookUp(10, 1)

	if len(move.yaw) != 2 || math.Abs(move.yaw[0]-10) > eps || math.Abs(move.yaw[1]-2) > eps {
		t.Fatalf("unexpected yaw inputs %v", move.yaw)
	}
	if len(move.pitch) != 2 || math.Abs(move.pitch[0]-10) > eps || math.Abs(move.pitch[1]-2) > eps {
		t.Fatalf("unexpected pitch inputs %v", move.pitch)
	}
}

func TestJumpForwardsToMovement(t *testing.T) {
	move := newFakeMovement()
	c := newTestController(t, Deps{Movement: move})
	c.Jump()
	c.StopJumping()
	if move.jumps != 1 || move.stopJumps != 1 {
		t.Fatalf("expected one jump and one stop, got %d/%d", move.jumps, move.stopJumps)
	}
}

func TestControllerWithoutMovement(t *testing.T) {
	c := newTestController(t, Deps{})
	c.MoveForward(1)
	c.TurnAtRate(1, 1)
	c.Turn(1, 1)
	c.Jump()
	c.OnTick(0.016)
	if c.Velocity() != (mgl64.Vec3{}) || c.IsFalling() {
		t.Fatalf("expected zero velocity and grounded without movement")
	}
	if c.BaseAimRotation() != (common.Rotator{}) {
		t.Fatalf("expected zero aim rotation without movement")
	}
}
