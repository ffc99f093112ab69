package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/shared/movement"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool         `json:"debug"`
	Fullscreen bool         `json:"fullscreen"`
	Tuning     *SavedTuning `json:"tuning,omitempty"`
}

// SavedTuning overrides the player's movement tuning. It is hand-edited, so
// it is validated when the player is created.
type SavedTuning struct {
	MoveSpeed         float64 `json:"moveSpeed"`
	JumpHeight        float64 `json:"jumpHeight"`
	JumpTimeToPeak    float64 `json:"jumpTimeToPeak"`
	JumpTimeToDescend float64 `json:"jumpTimeToDescend"`
}

func (t SavedTuning) Movement() movement.Config {
	return movement.Config{
		MoveSpeed:         t.MoveSpeed,
		JumpHeight:        t.JumpHeight,
		JumpTimeToPeak:    t.JumpTimeToPeak,
		JumpTimeToDescend: t.JumpTimeToDescend,
	}
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// tuningOverride is the saved tuning applied at startup, if any
var tuningOverride *movement.Config

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "metroidvania",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the runtime toggles, keeping any saved tuning
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
	}
	if tuningOverride != nil {
		saved.Tuning = &SavedTuning{
			MoveSpeed:         tuningOverride.MoveSpeed,
			JumpHeight:        tuningOverride.JumpHeight,
			JumpTimeToPeak:    tuningOverride.JumpTimeToPeak,
			JumpTimeToDescend: tuningOverride.JumpTimeToDescend,
		}
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before the scene is created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	applySaved(saved)
	ebiten.SetFullscreen(saved.Fullscreen)
}

func applySaved(saved *SavedSettings) {
	cfg.Debug.Overlay = cfg.Debug.Overlay || saved.Debug

	tuningOverride = nil
	if saved.Tuning != nil {
		t := saved.Tuning.Movement()
		tuningOverride = &t
	}
}

// TuningOverride returns the saved movement tuning, or nil to use the defaults.
func TuningOverride() *movement.Config {
	return tuningOverride
}
