package systems

import (
	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSquash flattens the player on landing and tweens it back to full
// height.
func UpdateSquash(e *ecs.ECS) {
	dt := TickDelta()

	components.SquashStretch.Each(e.World, func(entry *donburi.Entry) {
		ss := components.SquashStretch.Get(entry)
		if ss.ScaleY == 0 {
			ss.ScaleY = 1
		}

		if entry.HasComponent(components.Player) {
			grounded := components.Player.Get(entry).Controller.Snapshot().Grounded
			if grounded && !ss.WasGrounded {
				ss.ScaleY = cfg.SquashStretch.LandScaleY
				ss.Tween = gween.New(
					float32(cfg.SquashStretch.LandScaleY), 1,
					float32(cfg.SquashStretch.LandDuration), ease.OutQuad,
				)
			}
			ss.WasGrounded = grounded
		}

		if ss.Tween == nil {
			return
		}
		v, done := ss.Tween.Update(float32(dt))
		ss.ScaleY = float64(v)
		if done {
			ss.ScaleY = 1
			ss.Tween = nil
		}
	})
}
