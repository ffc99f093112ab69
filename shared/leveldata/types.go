// Package leveldata provides TMX level parsing shared by the game and the
// headless simulator. It does not import ebitengine.
package leveldata

import (
	"github.com/automoto/metroidvania/shared/tilegrid"
	"github.com/yohamta/donburi/features/math"
)

// Layer and object group names read from TMX files.
const (
	SolidLayer = "solid"
	SpawnGroup = "PlayerSpawn"
)

// Level is the static layout of one map.
type Level struct {
	Name     string
	Cells    [][]int // row-major, tilegrid.Empty or tilegrid.Solid
	TileSize float64
	Spawn    math.Vec2
}

// Grid builds the collision grid for the level.
func (l *Level) Grid() (*tilegrid.Grid, error) {
	return tilegrid.New(l.Cells, l.TileSize)
}

// Width is the level width in pixels.
func (l *Level) Width() int {
	if len(l.Cells) == 0 {
		return 0
	}
	return len(l.Cells[0]) * int(l.TileSize)
}

// Height is the level height in pixels.
func (l *Level) Height() int {
	return len(l.Cells) * int(l.TileSize)
}
