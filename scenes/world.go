package scenes

import (
	"sync"

	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/systems"
	"github.com/automoto/metroidvania/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs       *ecs.ECS
	levelName string
	once      sync.Once
}

// NewPlatformerScene creates a scene for the named level. The world is built
// lazily on the first update.
func NewPlatformerScene(levelName string) *PlatformerScene {
	return &PlatformerScene{levelName: levelName}
}

// Update runs one tick. It returns ebiten.Termination once the player quits.
func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if entry, ok := components.Settings.First(ps.ecs.World); ok && components.Settings.Get(entry).Quit {
		return ebiten.Termination
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		screen.Fill(cfg.Colors.Background)
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateSquash)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawActor)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	// Level first: the player collides against its grid.
	levelEntry := factory.CreateLevelByName(ps.ecs, ps.levelName)
	levelData := components.Level.Get(levelEntry)
	spawn := levelData.CurrentLevel.Spawn

	factory.CreatePlayer(ps.ecs, levelData.Grid, spawn.X, spawn.Y, systems.TuningOverride())

	// Snap camera to the spawn to prevent panning from (0,0)
	factory.CreateCamera(ps.ecs, spawn.X, spawn.Y)

	systems.GetOrCreateSettings(ps.ecs)
}
