package systems

import (
	"github.com/automoto/metroidvania/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations picks the animation for each player's movement state and
// advances it.
func UpdateAnimations(e *ecs.ECS) {
	dt := TickDelta()

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		animData := components.Animation.Get(entry)

		if entry.HasComponent(components.Player) {
			snapshot := components.Player.Get(entry).Controller.Snapshot()
			animData.SetAnimation(snapshot.State)
		}

		if animData.CurrentAnimation != nil {
			animData.CurrentAnimation.Update(dt)
		}
	})
}
