package character

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/common"
)

// Shot is the outcome of the most recent FireWeapon call that found a muzzle.
type Shot struct {
	Muzzle   mgl64.Vec3
	End      mgl64.Vec3
	Resolved bool
}

// FireWeapon fires one hit-scan shot unless the fire montage is still
// playing. It reports whether the shot went off.
func (c *Controller) FireWeapon() bool {
	if c.fx == nil {
		return false
	}
	w := c.cfg.Weapon
	if w.FireMontage != "" && c.fx.IsMontagePlaying(w.FireMontage) {
		return false
	}

	if w.FireSound != "" {
		c.fx.PlaySound2D(w.FireSound)
	}
	if w.FireMontage != "" {
		c.fx.PlayMontage(w.FireMontage)
		if w.FireSection != "" {
			c.fx.JumpToSection(w.FireMontage, w.FireSection)
		}
	}

	socket, ok := c.fx.SocketTransform(w.MuzzleSocket)
	if !ok {
		return true
	}
	if w.MuzzleFlash != "" {
		c.fx.SpawnEffect(w.MuzzleFlash, socket)
	}

	end, resolved := c.ResolveBeamEndpoint(socket.Location)
	c.lastShot = Shot{Muzzle: socket.Location, End: end, Resolved: resolved}
	c.hasShot = true
	if !resolved {
		return true
	}

	if w.BeamEffect != "" {
		if beam := c.fx.SpawnEffect(w.BeamEffect, socket); beam != nil && w.BeamTargetParam != "" {
			beam.SetVectorParameter(w.BeamTargetParam, end)
		}
	}
	if w.ImpactEffect != "" {
		c.fx.SpawnEffect(w.ImpactEffect, common.Transform{Location: end})
	}
	return true
}

// ResolveBeamEndpoint finds where a shot from muzzle visibly lands.
//
// The reticle ray is traced first so the shot goes where the crosshair
// points. The muzzle is then traced to that point, and anything in between
// wins. The only failure is a missing viewport or a failed deprojection.
func (c *Controller) ResolveBeamEndpoint(muzzle mgl64.Vec3) (mgl64.Vec3, bool) {
	if c.world == nil {
		return mgl64.Vec3{}, false
	}
	width, height, ok := c.world.ViewportSize()
	if !ok {
		return mgl64.Vec3{}, false
	}
	reticle := mgl64.Vec2{width / 2, height/2 - c.cfg.ReticleOffsetY}

	origin, dir, ok := c.world.DeprojectScreenToWorld(reticle)
	if !ok {
		return mgl64.Vec3{}, false
	}

	end := origin.Add(dir.Mul(c.cfg.TraceDistance))
	if hit, blocked := c.world.LineTrace(origin, end); blocked {
		end = hit
	}
	if hit, blocked := c.world.LineTrace(muzzle, end); blocked {
		end = hit
	}
	return end, true
}

// LastShot returns the most recent shot that found a muzzle socket.
func (c *Controller) LastShot() (Shot, bool) {
	return c.lastShot, c.hasShot
}
