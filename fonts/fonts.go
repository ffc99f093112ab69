package fonts

import (
	"errors"
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

var ErrNotLoaded = errors.New("hud font not loaded")

var hud font.Face

// LoadHUD parses ttf and makes it the face for on-screen debug text.
func LoadHUD(ttf []byte, size float64) error {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse hud font: %w", err)
	}
	hud = truetype.NewFace(parsed, &truetype.Options{Size: size})
	return nil
}

// HUD returns the debug text face. It panics if LoadHUD has not succeeded.
func HUD() font.Face {
	if hud == nil {
		panic(ErrNotLoaded)
	}
	return hud
}
