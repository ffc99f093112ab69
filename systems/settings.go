package systems

import (
	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton settings component. A new one
// starts from the config and the current window state.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:      cfg.Debug.Overlay,
			Fullscreen: ebiten.IsFullscreen(),
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the quit, debug overlay and fullscreen actions.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.Quit = true
		return
	}

	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}
