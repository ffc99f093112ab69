package systems

import (
	"fmt"

	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TickDelta is the fixed step handed to the controller each update.
func TickDelta() float64 {
	return 1 / float64(cfg.C.TickRate)
}

// UpdateMovement advances every player controller by one tick.
// Must run AFTER UpdateInput.
func UpdateMovement(e *ecs.ECS) {
	input := getOrCreateInput(e)
	intent := IntentFrom(input)
	dt := TickDelta()

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if err := player.Controller.Update(intent, dt); err != nil {
			// The candidate buffer is sized from the actor's box, so this is a bug.
			panic(fmt.Sprintf("movement update failed: %v", err))
		}

		if d := intent.Direction(); d != 0 {
			player.Facing = d
		}
	})
}
