package system

import (
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
	"github.com/milk9111/shooter/ecs/entity"
)

// HitMarkerSeconds is how long the hit marker shows after a shot lands.
const HitMarkerSeconds = 0.15

// hitTolerance is how close a shot end must be to geometry to count as a hit.
const hitTolerance = 0.01

// HUDSystem mirrors crosshair state and shot feedback for drawing.
type HUDSystem struct{}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{}
}

func (s *HUDSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaSeconds()

	ecs.ForEach2(w, component.HUDComponent.Kind(), component.CharacterComponent.Kind(), func(_ ecs.Entity, hud *component.HUD, ch *component.Character) {
		if hud.HitMarker > 0 {
			hud.HitMarker -= dt
			if hud.HitMarker < 0 {
				hud.HitMarker = 0
			}
		}
		if ch.Controller == nil {
			return
		}
		hud.Spread = ch.Controller.CrosshairSpreadMultiplier()
		hud.Aiming = ch.Controller.Aiming()
	})

	for _, evt := range w.Events().Of(ecs.EventShotFired) {
		shot, ok := evt.Data.(ecs.ShotFired)
		if !ok {
			continue
		}
		hud, ok := ecs.Get(w, shot.Entity, component.HUDComponent.Kind())
		if !ok {
			continue
		}
		hud.Shots++
		hud.LastEnd = shot.End
		hud.LastResolved = shot.Resolved
		hud.LastHit = ""
		if name, hit := landedOn(w, shot); hit {
			hud.LastHit = name
			hud.HitMarker = HitMarkerSeconds
		}
	}
}

// landedOn retraces a resolved shot slightly past its end to find the
// object it stopped on. Shots that ran out of range hit nothing.
func landedOn(w *ecs.World, shot ecs.ShotFired) (string, bool) {
	if !shot.Resolved {
		return "", false
	}
	lvl, ok := entity.CurrentLevel(w)
	if !ok || lvl.Scene == nil {
		return "", false
	}
	d := shot.End.Sub(shot.Muzzle)
	if d.Len() == 0 {
		return "", false
	}
	past := shot.End.Add(d.Normalize().Mul(2 * hitTolerance))
	hit, ok := lvl.Scene.LineTrace(shot.Muzzle, past)
	if !ok || hit.Location.Sub(shot.End).Len() > hitTolerance {
		return "", false
	}
	return hit.Name, true
}
