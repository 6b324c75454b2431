package component

import (
	"github.com/milk9111/shooter/character"
	"github.com/milk9111/shooter/fx"
	"github.com/milk9111/shooter/movement"
	"github.com/milk9111/shooter/prefabs"
)

// Character bundles a controller with the services it was built on.
type Character struct {
	Spec       *prefabs.CharacterSpec
	Controller *character.Controller
	Movement   *movement.Component
	Stage      *fx.Stage
	Spawned    bool
}

var CharacterComponent = NewComponent[Character]()
