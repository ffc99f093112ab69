package factory

import (
	"github.com/automoto/metroidvania/assets/animations"
	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/shared/movement"
)

// GenerateAnimations creates an AnimationData component with one animation
// per movement state from the configured frame timing.
func GenerateAnimations(defs map[movement.State]cfg.AnimationDef) *components.AnimationData {
	animData := &components.AnimationData{
		Animations: make(map[movement.State]*animations.Animation, len(defs)),
	}

	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.Frames, def.FrameDuration)
	}

	animData.SetAnimation(movement.Idle)
	return animData
}
