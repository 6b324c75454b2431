// Command prefabcheck validates character and level prefabs without opening
// a window, then fires one reticle trace from the level spawn.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
	"github.com/milk9111/shooter/ecs/entity"
	"github.com/milk9111/shooter/prefabs"
)

func main() {
	characterName := flag.String("character", "character.yaml", "character prefab name")
	levelName := flag.String("level", "level.yaml", "level prefab name")
	flag.Parse()

	if err := run(*characterName, *levelName); err != nil {
		log.Printf("prefabcheck: %v", err)
		os.Exit(1)
	}
}

func run(characterName, levelName string) error {
	chSpec, err := prefabs.LoadCharacterSpec(characterName)
	if err != nil {
		return err
	}
	lvlSpec, err := prefabs.LoadLevelSpec(levelName)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	le, err := entity.NewLevel(w, lvlSpec)
	if err != nil {
		return err
	}
	lvl, _ := ecs.Get(w, le, component.LevelComponent.Kind())

	mcfg := entity.MovementConfig(chSpec, lvlSpec.FloorZ)
	fmt.Printf("level %q: %d boxes, %d spheres, %d movement obstacles\n",
		lvlSpec.Name, len(lvl.Scene.Boxes), len(lvl.Scene.Spheres), len(entity.Obstacles(lvl.Scene, mcfg)))

	player, err := entity.NewPlayer(w, chSpec, lvl, nil)
	if err != nil {
		return err
	}
	ch, _ := ecs.Get(w, player, component.CharacterComponent.Kind())
	ch.Controller.OnSpawn()

	if ch.Stage == nil {
		return nil
	}
	socket, ok := ch.Stage.SocketTransform(chSpec.Weapon.MuzzleSocket)
	if !ok {
		fmt.Printf("character %q: no muzzle socket %q\n", chSpec.Name, chSpec.Weapon.MuzzleSocket)
		return nil
	}
	end, resolved := ch.Controller.ResolveBeamEndpoint(socket.Location)
	if !resolved {
		return fmt.Errorf("reticle trace did not resolve from spawn")
	}
	hit, blocked := lvl.Scene.LineTrace(socket.Location, end.Add(end.Sub(socket.Location).Normalize().Mul(0.02)))
	target := "nothing"
	if blocked {
		target = hit.Name
	}
	fmt.Printf("character %q: spawn shot lands at (%.1f, %.1f, %.1f) on %s\n", chSpec.Name, end.X(), end.Y(), end.Z(), target)
	return nil
}
