package component

import (
	"github.com/milk9111/shooter/prefabs"
	"github.com/milk9111/shooter/scene"
)

// Level is the loaded level geometry and the viewport it is seen through.
type Level struct {
	Spec     *prefabs.LevelSpec
	Scene    *scene.Scene
	Viewport *scene.Viewport
}

var LevelComponent = NewComponent[Level]()
