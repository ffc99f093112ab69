package components

import (
	"github.com/automoto/metroidvania/shared/movement"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *movement.Controller
	Facing     float64 // -1 left, 1 right; kept when the actor stops
}

var Player = donburi.NewComponentType[PlayerData]()
