package config

import (
	"image/color"

	"github.com/automoto/metroidvania/shared/movement"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 // pixels per second

	// Jump tuning (designer-facing; gravities are derived from these)
	JumpHeight        float64 // pixels
	JumpTimeToPeak    float64 // seconds
	JumpTimeToDescend float64 // seconds

	// Dimensions
	CollisionWidth   float64
	CollisionHeight  float64
	CollisionOffsetX float64
	CollisionOffsetY float64
}

// Movement returns the controller tuning for the player.
func (p PlayerConfig) Movement() movement.Config {
	return movement.Config{
		MoveSpeed:         p.MoveSpeed,
		JumpHeight:        p.JumpHeight,
		JumpTimeToPeak:    p.JumpTimeToPeak,
		JumpTimeToDescend: p.JumpTimeToDescend,
	}
}

// LevelConfig describes where levels are found
type LevelConfig struct {
	Dir     string // directory of .tmx files inside the assets filesystem
	Default string // level loaded when none is requested
}

// AnimationDef is a looping sequence of frames for one movement state
type AnimationDef struct {
	Frames        int
	FrameDuration float64 // seconds
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	LandScaleY   float64 // vertical scale on land (< 1 = shorter)
	LandDuration float64 // seconds to recover full height
}

// ColorConfig contains the flat colours used to draw the world
type ColorConfig struct {
	Background color.RGBA
	Tile       color.RGBA
	Actor      color.RGBA
	Debug      DebugColors
}

// DebugColors are used by the collision overlay
type DebugColors struct {
	ActorBox    color.RGBA
	QueryWindow color.RGBA
	Grounded    color.RGBA
	Text        color.RGBA
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	FollowSmoothing float64 // fraction of the distance to the target covered per tick
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw collision boxes and the HUD readout
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int // updates per second; movement uses 1/TickRate as dt
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Level LevelConfig
var Animations map[movement.State]AnimationDef
var SquashStretch SquashStretchConfig
var Colors ColorConfig
var Camera CameraConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	// Player Config
	Player = PlayerConfig{
		MoveSpeed: 300,

		JumpHeight:        128,
		JumpTimeToPeak:    0.5,
		JumpTimeToDescend: 0.4,

		CollisionWidth:  16,
		CollisionHeight: 32,
	}

	Level = LevelConfig{
		Dir:     "levels",
		Default: "default",
	}

	Animations = map[movement.State]AnimationDef{
		movement.Idle: {Frames: 4, FrameDuration: 0.15},
		movement.Run:  {Frames: 6, FrameDuration: 0.08},
		movement.Jump: {Frames: 2, FrameDuration: 0.1},
		movement.Fall: {Frames: 2, FrameDuration: 0.1},
	}

	SquashStretch = SquashStretchConfig{
		LandScaleY:   0.8,
		LandDuration: 0.15,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 110, G: 115, B: 113, A: 255},
		Tile:       color.RGBA{R: 26, G: 30, B: 38, A: 255},
		Actor:      color.RGBA{A: 255},
		Debug: DebugColors{
			ActorBox:    color.RGBA{R: 0, G: 0, B: 255, A: 255},
			QueryWindow: color.RGBA{R: 0, G: 255, B: 255, A: 255},
			Grounded:    color.RGBA{R: 0, G: 255, B: 60, A: 255},
			Text:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
	}
}
