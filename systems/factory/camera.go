package factory

import (
	"github.com/automoto/metroidvania/archetypes"
	"github.com/automoto/metroidvania/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centred on (x, y).
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(x, y),
	})
	return camera
}
