package factory

import (
	"fmt"
	"log"

	"github.com/automoto/metroidvania/archetypes"
	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/shared/movement"
	"github.com/automoto/metroidvania/shared/tilegrid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player at (x, y). A non-nil tuning overrides the
// configured movement; if it fails validation the defaults are used instead.
func CreatePlayer(ecs *ecs.ECS, grid *tilegrid.Grid, x, y float64, tuning *movement.Config) *donburi.Entry {
	actor, err := movement.NewActor(
		math.NewVec2(x, y),
		math.NewVec2(cfg.Player.CollisionOffsetX, cfg.Player.CollisionOffsetY),
		cfg.Player.CollisionWidth, cfg.Player.CollisionHeight,
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to create player actor: %v", err))
	}

	ctrl, err := newController(actor, grid, tuning)
	if err != nil {
		panic(fmt.Sprintf("Failed to create player controller: %v", err))
	}

	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{
		Controller: ctrl,
		Facing:     1,
	})
	components.Animation.Set(player, GenerateAnimations(cfg.Animations))
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleY:      1,
		WasGrounded: true,
	})

	return player
}

func newController(actor *movement.Actor, grid *tilegrid.Grid, tuning *movement.Config) (*movement.Controller, error) {
	if tuning != nil {
		ctrl, err := movement.NewController(*tuning, actor, grid)
		if err == nil {
			return ctrl, nil
		}
		log.Printf("Warning: Ignoring saved movement tuning: %v", err)
	}
	return movement.NewController(cfg.Player.Movement(), actor, grid)
}
