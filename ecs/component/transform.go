package component

import "github.com/milk9111/shooter/common"

// Transform is the world placement of an entity.
type Transform = common.Transform

var TransformComponent = NewComponent[Transform]()
