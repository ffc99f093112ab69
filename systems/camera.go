package systems

import (
	"math"

	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	bounds := components.Player.Get(playerEntry).Controller.Snapshot().Bounds

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	targetX := (bounds.Min.X + bounds.Max.X) / 2
	targetY := (bounds.Min.Y + bounds.Max.Y) / 2
	targetX, targetY = clampToLevel(targetX, targetY, levelData)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampToLevel keeps the view inside the level. A level smaller than the
// screen is centred instead.
func clampToLevel(x, y float64, levelData *components.LevelData) (float64, float64) {
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width())
	levelHeight := float64(levelData.CurrentLevel.Height())

	return clampAxis(x, screenWidth, levelWidth), clampAxis(y, screenHeight, levelHeight)
}

func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}

// cameraOffset converts world coordinates to screen coordinates.
func cameraOffset(e *ecs.ECS, screenWidth, screenHeight int) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(screenWidth)/2 - camera.Position.X, float64(screenHeight)/2 - camera.Position.Y
}
