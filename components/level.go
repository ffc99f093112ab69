package components

import (
	"github.com/automoto/metroidvania/shared/leveldata"
	"github.com/automoto/metroidvania/shared/tilegrid"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Grid         *tilegrid.Grid
}

var Level = donburi.NewComponentType[LevelData]()
