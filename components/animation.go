package components

import (
	"github.com/automoto/metroidvania/assets/animations"
	"github.com/automoto/metroidvania/shared/movement"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     movement.State
	Animations       map[movement.State]*animations.Animation
}

// SetAnimation switches to the animation for state, restarting it when the
// state changes.
func (a *AnimationData) SetAnimation(state movement.State) {
	if a.CurrentState == state && a.CurrentAnimation != nil {
		return
	}

	a.CurrentState = state
	anim, ok := a.Animations[state]
	if !ok {
		a.CurrentAnimation = nil
		return
	}
	a.CurrentAnimation = anim
	a.CurrentAnimation.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()
