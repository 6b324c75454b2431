package component

import "github.com/go-gl/mathgl/mgl64"

// HUD is the crosshair and shot feedback shown for the player.
type HUD struct {
	Spread float64
	Aiming bool
	Shots  int

	LastEnd      mgl64.Vec3
	LastResolved bool
	// LastHit names the level object the last shot landed on, if any.
	LastHit string
	// HitMarker counts down in seconds after a shot lands on geometry.
	HitMarker float64
}

var HUDComponent = NewComponent[HUD]()
