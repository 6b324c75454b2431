package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
	"github.com/milk9111/shooter/ecs/entity"
	"github.com/milk9111/shooter/scene"
)

const (
	nearPlane   = 1.0
	gridSpacing = 200.0
	gridExtent  = 1600.0
	circleSides = 24

	minimapSize  = 240.0
	minimapScale = 0.06
	minimapPad   = 12.0
)

// Renderer draws the level as a wireframe seen through the player camera,
// with a top-down minimap and the crosshair on top.
type Renderer struct {
	debug bool
	face  ebtext.Face
}

func NewRenderer(debug bool) *Renderer {
	return &Renderer{
		debug: debug,
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// view projects world points for one frame.
type view struct {
	screen *ebiten.Image
	cam    *scene.Camera
	vp     scene.Viewport
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image, frames int) {
	screen.Fill(colornames.Midnightblue)

	lvl, ok := entity.CurrentLevel(w)
	if !ok {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	rig, rok := ecs.Get(w, player, component.CameraRigComponent.Kind())
	ch, cok := ecs.Get(w, player, component.CharacterComponent.Kind())
	if !rok || !cok || rig.Camera == nil {
		return
	}

	v := view{screen: screen, cam: rig.Camera, vp: *lvl.Viewport}
	colors := objectColors(lvl)

	r.drawFloor(v, lvl)
	for _, b := range lvl.Scene.Boxes {
		v.box(b.Min, b.Max, colorFor(colors, b.Name, colornames.Lightsteelblue))
	}
	for _, s := range lvl.Scene.Spheres {
		c := colorFor(colors, s.Name, colornames.Salmon)
		v.circle(s.Center, s.Radius, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, c)
		v.circle(s.Center, s.Radius, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}, c)
		v.circle(s.Center, s.Radius, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}, c)
	}
	if ch.Movement != nil {
		r.drawCapsule(v, ch)
	}
	if ch.Stage != nil {
		r.drawEffects(v, ch)
	}

	hud, _ := ecs.Get(w, player, component.HUDComponent.Kind())
	r.drawCrosshair(screen, lvl, ch, hud)
	r.drawMinimap(screen, lvl, ch, hud, colors)
	r.drawStatus(w, screen, player, lvl, ch, hud)

	if r.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f", frames, ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func objectColors(lvl *component.Level) map[string]color.Color {
	colors := make(map[string]color.Color, len(lvl.Spec.Objects))
	for _, o := range lvl.Spec.Objects {
		colors[o.Name] = o.Color.ColorOr(nil)
	}
	return colors
}

func colorFor(colors map[string]color.Color, name string, fallback color.Color) color.Color {
	if c, ok := colors[name]; ok && c != nil {
		return c
	}
	return fallback
}

func fade(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * math.Max(0, math.Min(1, alpha)))
	return n
}

// line draws a world segment clipped to the near plane.
func (v view) line(a, b mgl64.Vec3, c color.Color, width float32) {
	f := v.cam.Rotation.Vector()
	da := a.Sub(v.cam.Location).Dot(f)
	db := b.Sub(v.cam.Location).Dot(f)
	if da < nearPlane && db < nearPlane {
		return
	}
	if da < nearPlane {
		a = a.Add(b.Sub(a).Mul((nearPlane - da) / (db - da)))
	} else if db < nearPlane {
		b = b.Add(a.Sub(b).Mul((nearPlane - db) / (da - db)))
	}
	pa, ok := scene.Project(v.cam, v.vp, a)
	if !ok {
		return
	}
	pb, ok := scene.Project(v.cam, v.vp, b)
	if !ok {
		return
	}
	vector.StrokeLine(v.screen, float32(pa.X()), float32(pa.Y()), float32(pb.X()), float32(pb.Y()), width, c, true)
}

func (v view) box(min, max mgl64.Vec3, c color.Color) {
	corner := func(i int) mgl64.Vec3 {
		p := min
		if i&1 != 0 {
			p[0] = max[0]
		}
		if i&2 != 0 {
			p[1] = max[1]
		}
		if i&4 != 0 {
			p[2] = max[2]
		}
		return p
	}
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				v.line(corner(i), corner(i|bit), c, 1.5)
			}
		}
	}
}

func (v view) circle(center mgl64.Vec3, radius float64, u, w mgl64.Vec3, c color.Color) {
	prev := center.Add(u.Mul(radius))
	for i := 1; i <= circleSides; i++ {
		s, co := math.Sincos(2 * math.Pi * float64(i) / circleSides)
		next := center.Add(u.Mul(radius * co)).Add(w.Mul(radius * s))
		v.line(prev, next, c, 1.5)
		prev = next
	}
}

func (r *Renderer) drawFloor(v view, lvl *component.Level) {
	if !lvl.Scene.HasFloor {
		return
	}
	z := lvl.Scene.FloorZ
	c := color.NRGBA{R: 0x3f, G: 0x3f, B: 0x74, A: 0xff}
	for x := -gridExtent; x <= gridExtent; x += gridSpacing {
		v.line(mgl64.Vec3{x, -gridExtent, z}, mgl64.Vec3{x, gridExtent, z}, c, 1)
		v.line(mgl64.Vec3{-gridExtent, x, z}, mgl64.Vec3{gridExtent, x, z}, c, 1)
	}
}

func (r *Renderer) drawCapsule(v view, ch *component.Character) {
	cfg := ch.Movement.Config()
	loc := ch.Movement.Location()
	bottom := loc.Sub(mgl64.Vec3{0, 0, cfg.CapsuleHalfHeight})
	top := loc.Add(mgl64.Vec3{0, 0, cfg.CapsuleHalfHeight})
	c := colornames.Gold

	x, y := mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}
	v.circle(bottom, cfg.CapsuleRadius, x, y, c)
	v.circle(top, cfg.CapsuleRadius, x, y, c)
	for _, d := range []mgl64.Vec3{x, y, x.Mul(-1), y.Mul(-1)} {
		off := d.Mul(cfg.CapsuleRadius)
		v.line(bottom.Add(off), top.Add(off), c, 1.5)
	}

	rot, _ := ch.Movement.ControlRotation()
	v.line(loc, loc.Add(rot.YawOnly().Vector().Mul(cfg.CapsuleRadius*2)), colornames.Orange, 2)
}

func (r *Renderer) drawEffects(v view, ch *component.Character) {
	for _, e := range ch.Stage.Effects() {
		c := color.Color(colornames.White)
		size := 10.0
		if ch.Spec != nil {
			if spec, ok := ch.Spec.Effects[e.Name]; ok {
				c = spec.Color.ColorOr(c)
				if spec.Size > 0 {
					size = spec.Size
				}
			}
		}
		alpha := 1 - e.Progress()
		loc := e.Transform.Location

		switch {
		case ch.Spec != nil && e.Name == ch.Spec.Weapon.BeamEffect:
			target, ok := e.VectorParameter(ch.Spec.Weapon.BeamTargetParam)
			if ok {
				v.line(loc, target, fade(c, alpha), float32(math.Max(1, size*alpha)))
			}
		case ch.Spec != nil && e.Name == ch.Spec.Weapon.ImpactEffect:
			radius := size * (0.3 + e.Progress())
			v.circle(loc, radius, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, fade(c, alpha))
			v.circle(loc, radius, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}, fade(c, alpha))
		default:
			r.drawBlob(v, loc, size*alpha, fade(c, alpha))
		}
	}
}

func (r *Renderer) drawBlob(v view, at mgl64.Vec3, size float64, c color.Color) {
	p, ok := scene.Project(v.cam, v.vp, at)
	if !ok || size <= 0 {
		return
	}
	depth := at.Sub(v.cam.Location).Dot(v.cam.Rotation.Vector())
	if depth < nearPlane {
		return
	}
	tanHalf := math.Tan(mgl64.DegToRad(v.cam.FOV) / 2)
	px := size / (depth * tanHalf) * v.vp.Width / 2
	vector.DrawFilledCircle(v.screen, float32(p.X()), float32(p.Y()), float32(math.Max(2, px)), c, true)
}

func (r *Renderer) drawCrosshair(screen *ebiten.Image, lvl *component.Level, ch *component.Character, hud *component.HUD) {
	offset := 0.0
	if ch.Controller != nil {
		offset = ch.Controller.Config().ReticleOffsetY
	}
	cx := float32(lvl.Viewport.Width / 2)
	cy := float32(lvl.Viewport.Height/2 - offset)

	spread := 1.0
	c := color.Color(colornames.White)
	if hud != nil {
		spread = hud.Spread
		if hud.Aiming {
			c = colornames.Lightgreen
		}
	}
	gap := float32(4 + 12*spread)
	const length = 8

	vector.StrokeLine(screen, cx-gap-length, cy, cx-gap, cy, 2, c, true)
	vector.StrokeLine(screen, cx+gap, cy, cx+gap+length, cy, 2, c, true)
	vector.StrokeLine(screen, cx, cy-gap-length, cx, cy-gap, 2, c, true)
	vector.StrokeLine(screen, cx, cy+gap, cx, cy+gap+length, 2, c, true)

	if hud != nil && hud.HitMarker > 0 {
		m := fade(colornames.Red, hud.HitMarker/0.15)
		const in, out = 6, 14
		vector.StrokeLine(screen, cx-out, cy-out, cx-in, cy-in, 2, m, true)
		vector.StrokeLine(screen, cx+in, cy-in, cx+out, cy-out, 2, m, true)
		vector.StrokeLine(screen, cx-out, cy+out, cx-in, cy+in, 2, m, true)
		vector.StrokeLine(screen, cx+in, cy+in, cx+out, cy+out, 2, m, true)
	}
}

// drawMinimap is a top-down view centered on the character with world +X up.
func (r *Renderer) drawMinimap(screen *ebiten.Image, lvl *component.Level, ch *component.Character, hud *component.HUD, colors map[string]color.Color) {
	if ch.Movement == nil {
		return
	}
	left := float32(lvl.Viewport.Width - minimapSize - minimapPad)
	top := float32(minimapPad)
	size := float32(minimapSize)
	vector.FillRect(screen, left, top, size, size, color.NRGBA{A: 160}, false)
	vector.StrokeRect(screen, left, top, size, size, 1, colornames.Gray, false)

	origin := ch.Movement.Location()
	cx, cy := float64(left)+minimapSize/2, float64(top)+minimapSize/2
	toMap := func(p mgl64.Vec3) (float32, float32) {
		d := p.Sub(origin)
		return float32(cx + d.Y()*minimapScale), float32(cy - d.X()*minimapScale)
	}
	inside := func(x, y float32) bool {
		return x >= left && x <= left+size && y >= top && y <= top+size
	}

	for _, b := range lvl.Scene.Boxes {
		x0, y0 := toMap(mgl64.Vec3{b.Max.X(), b.Min.Y(), 0})
		x1, y1 := toMap(mgl64.Vec3{b.Min.X(), b.Max.Y(), 0})
		if !inside(x0, y0) && !inside(x1, y1) && !inside(x0, y1) && !inside(x1, y0) {
			continue
		}
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colorFor(colors, b.Name, colornames.Lightsteelblue), false)
	}
	for _, s := range lvl.Scene.Spheres {
		x, y := toMap(s.Center)
		if !inside(x, y) {
			continue
		}
		vector.StrokeCircle(screen, x, y, float32(s.Radius*minimapScale), 1, colorFor(colors, s.Name, colornames.Salmon), true)
	}

	rot, _ := ch.Movement.ControlRotation()
	hx, hy := toMap(origin.Add(rot.YawOnly().Vector().Mul(300)))
	vector.StrokeLine(screen, float32(cx), float32(cy), hx, hy, 1, colornames.Orange, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 3, colornames.Gold, true)

	if hud != nil && hud.Shots > 0 && hud.LastResolved {
		ex, ey := toMap(hud.LastEnd)
		if inside(ex, ey) {
			vector.StrokeLine(screen, float32(cx), float32(cy), ex, ey, 1, fade(colornames.Lightgray, 0.6), true)
		}
	}
}

func (r *Renderer) drawStatus(w *ecs.World, screen *ebiten.Image, player ecs.Entity, lvl *component.Level, ch *component.Character, hud *component.HUD) {
	var lines []string
	if ch.Controller != nil {
		c := ch.Controller
		lines = append(lines, fmt.Sprintf("fov %.1f  spread %.2f  %s", c.CameraFOV(), c.CrosshairSpreadMultiplier(), c.AimState()))
	}
	if hud != nil {
		last := hud.LastHit
		if last == "" {
			last = "-"
		}
		lines = append(lines, fmt.Sprintf("shots %d  last hit %s", hud.Shots, last))
	}
	if st, ok := ecs.Get(w, player, component.AnimStateComponent.Kind()); ok && st.Sampler != nil {
		s := st.Sampler.Snapshot()
		lines = append(lines, fmt.Sprintf("speed %.0f  offset %.0f  last %.0f  air %t  accel %t",
			s.Speed, s.MovementOffsetYaw, s.LastMovementOffsetYaw, s.IsInAir, s.IsAccelerating))
	}

	const lineHeight = 16
	y := lvl.Viewport.Height - float64(len(lines))*lineHeight - 8
	for _, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(10, y)
		op.ColorScale.ScaleWithColor(colornames.White)
		ebtext.Draw(screen, line, r.face, op)
		y += lineHeight
	}
}
