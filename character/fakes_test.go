package character

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/common"
)

type movementInput struct {
	dir   mgl64.Vec3
	scale float64
}

type fakeMovement struct {
	inputs    []movementInput
	rot       common.Rotator
	possessed bool
	yaw       []float64
	pitch     []float64
	velocity  mgl64.Vec3
	falling   bool
	accel     mgl64.Vec3
	jumps     int
	stopJumps int
}

func newFakeMovement() *fakeMovement {
	return &fakeMovement{possessed: true}
}

func (m *fakeMovement) AddMovementInput(dir mgl64.Vec3, scale float64) {
	m.inputs = append(m.inputs, movementInput{dir: dir, scale: scale})
}

func (m *fakeMovement) ControlRotation() (common.Rotator, bool) {
	return m.rot, m.possessed
}

func (m *fakeMovement) AddYawInput(deg float64) {
	m.yaw = append(m.yaw, deg)
}

func (m *fakeMovement) AddPitchInput(deg float64) {
	m.pitch = append(m.pitch, deg)
}

func (m *fakeMovement) Velocity() mgl64.Vec3            { return m.velocity }
func (m *fakeMovement) IsFalling() bool                 { return m.falling }
func (m *fakeMovement) CurrentAcceleration() mgl64.Vec3 { return m.accel }
func (m *fakeMovement) Jump()                           { m.jumps++ }
func (m *fakeMovement) StopJumping()                    { m.stopJumps++ }

type traceCall struct {
	start, end mgl64.Vec3
}

type fakeWorld struct {
	width, height float64
	hasViewport   bool

	deprojectOK bool
	origin      mgl64.Vec3
	direction   mgl64.Vec3
	deprojected []mgl64.Vec2

	// hits answers traces in call order; a nil entry means no hit.
	hits   []*mgl64.Vec3
	traces []traceCall
}

func (w *fakeWorld) ViewportSize() (float64, float64, bool) {
	return w.width, w.height, w.hasViewport
}

func (w *fakeWorld) DeprojectScreenToWorld(p mgl64.Vec2) (mgl64.Vec3, mgl64.Vec3, bool) {
	w.deprojected = append(w.deprojected, p)
	return w.origin, w.direction, w.deprojectOK
}

func (w *fakeWorld) LineTrace(start, end mgl64.Vec3) (mgl64.Vec3, bool) {
	idx := len(w.traces)
	w.traces = append(w.traces, traceCall{start: start, end: end})
	if idx < len(w.hits) && w.hits[idx] != nil {
		return *w.hits[idx], true
	}
	return mgl64.Vec3{}, false
}

type fakeCamera struct {
	fov float64
	set []float64
}

func (c *fakeCamera) FieldOfView() float64 { return c.fov }

func (c *fakeCamera) SetFieldOfView(fov float64) {
	c.fov = fov
	c.set = append(c.set, fov)
}

type fakeEffect struct {
	name   string
	at     common.Transform
	params map[string]mgl64.Vec3
}

func (e *fakeEffect) SetVectorParameter(name string, v mgl64.Vec3) {
	if e.params == nil {
		e.params = map[string]mgl64.Vec3{}
	}
	e.params[name] = v
}

type fakePresentation struct {
	sounds   []string
	effects  []*fakeEffect
	montages []string
	sections []string
	playing  map[string]bool
	sockets  map[string]common.Transform
}

func newFakePresentation() *fakePresentation {
	return &fakePresentation{
		playing: map[string]bool{},
		sockets: map[string]common.Transform{
			"GunSocket": {Location: mgl64.Vec3{10, 20, 30}},
		},
	}
}

func (p *fakePresentation) PlaySound2D(name string) {
	p.sounds = append(p.sounds, name)
}

func (p *fakePresentation) SpawnEffect(name string, at common.Transform) EffectHandle {
	e := &fakeEffect{name: name, at: at}
	p.effects = append(p.effects, e)
	return e
}

func (p *fakePresentation) PlayMontage(name string) {
	p.montages = append(p.montages, name)
	p.playing[name] = true
}

func (p *fakePresentation) JumpToSection(montage, section string) {
	p.sections = append(p.sections, montage+"/"+section)
}

func (p *fakePresentation) IsMontagePlaying(name string) bool {
	return p.playing[name]
}

func (p *fakePresentation) SocketTransform(name string) (common.Transform, bool) {
	t, ok := p.sockets[name]
	return t, ok
}

func (p *fakePresentation) effect(name string) *fakeEffect {
	for _, e := range p.effects {
		if e.name == name {
			return e
		}
	}
	return nil
}

func vecPtr(v mgl64.Vec3) *mgl64.Vec3 {
	return &v
}
