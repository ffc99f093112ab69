package factory

import (
	"fmt"
	"log"

	"github.com/automoto/metroidvania/archetypes"
	"github.com/automoto/metroidvania/assets"
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelByName loads a level from the embedded assets. Unknown names
// fall back to the built-in level.
func CreateLevelByName(ecs *ecs.ECS, name string) *donburi.Entry {
	loader := assets.NewLevelLoader()
	names := loader.MustLoadLevels()
	if !contains(names, name) {
		log.Printf("Level %q not found (have %v), using built-in level", name, names)
	}
	return CreateLevel(ecs, loader.Level(name))
}

// CreateLevel spawns the level entity and builds its collision grid.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	grid, err := level.Grid()
	if err != nil {
		panic(fmt.Sprintf("Failed to build grid for level %s: %v", level.Name, err))
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
		Grid:         grid,
	})
	return entry
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
