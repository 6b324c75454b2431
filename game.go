package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/shooter/assets"
	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
	"github.com/milk9111/shooter/ecs/entity"
	"github.com/milk9111/shooter/ecs/system"
	"github.com/milk9111/shooter/prefabs"
)

type Options struct {
	Level     string
	Character string
	Debug     bool
	Watch     bool
}

type Game struct {
	opts   Options
	frames int

	world  *ecs.World
	input  *InputSystem
	render *Renderer
	player ecs.Entity

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	lvlSpec, err := prefabs.LoadLevelSpec(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", opts.Level, err)
	}
	chSpec, err := prefabs.LoadCharacterSpec(opts.Character)
	if err != nil {
		return nil, fmt.Errorf("load character %s: %w", opts.Character, err)
	}

	w := ecs.NewWorld()
	le, err := entity.NewLevel(w, lvlSpec)
	if err != nil {
		return nil, err
	}
	lvl, _ := ecs.Get(w, le, component.LevelComponent.Kind())

	sounds := assets.NewToneLoader()
	player, err := entity.NewPlayer(w, chSpec, lvl, sounds)
	if err != nil {
		return nil, err
	}

	for _, s := range system.Simulation(opts.Character, opts.Level, sounds) {
		w.AddSystem(s)
	}

	g := &Game{
		opts:   opts,
		world:  w,
		input:  NewInputSystem(),
		render: NewRenderer(opts.Debug),
		player: player,
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = watcher
		}
	}

	g.setPaused(false)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	g.pumpWatcher()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.requestRespawn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.requestReload(true, true)
	}

	g.input.Update(g.world)
	g.world.SetDeltaSeconds(1 / float64(ebiten.TPS()))
	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen, g.frames)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// LayoutF keeps the level's viewport width and follows the window aspect.
// Deprojection reads the same viewport.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	lvl, ok := entity.CurrentLevel(g.world)
	if !ok || lvl.Viewport == nil || outsideWidth <= 0 || outsideHeight <= 0 {
		return outsideWidth, outsideHeight
	}
	width := lvl.Spec.Viewport.Width
	lvl.Viewport.Width = width
	lvl.Viewport.Height = width * outsideHeight / outsideWidth
	return lvl.Viewport.Width, lvl.Viewport.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.input.Reset()
	if paused {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}

func (g *Game) requestRespawn() {
	if !g.world.IsAlive(g.player) {
		return
	}
	if err := ecs.Add(g.world, g.player, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{}); err != nil {
		log.Printf("respawn: %v", err)
	}
}

func (g *Game) requestReload(character, level bool) {
	e := g.world.CreateEntity()
	if err := ecs.Add(g.world, e, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{Character: character, Level: level}); err != nil {
		log.Printf("reload: %v", err)
	}
}

// pumpWatcher turns changed prefab files into a reload request for the
// next frame.
func (g *Game) pumpWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("watch: %v", err)
		}
	default:
	}

	var character, level bool
	for _, name := range g.watcher.Poll() {
		switch name {
		case prefabs.BaseName(g.opts.Character):
			character = true
		case prefabs.BaseName(g.opts.Level):
			level = true
		}
	}
	if character || level {
		g.requestReload(character, level)
	}
}
