package components

import "github.com/yohamta/donburi"

// SettingsData holds the runtime toggles the player can flip during play
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	Quit       bool // set once the quit action fires; the game loop exits
}

var Settings = donburi.NewComponentType[SettingsData]()
