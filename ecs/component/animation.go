package component

import "github.com/milk9111/shooter/anim"

// AnimState carries the animation sampler of a character entity.
type AnimState struct {
	Sampler *anim.Sampler
}

var AnimStateComponent = NewComponent[AnimState]()
