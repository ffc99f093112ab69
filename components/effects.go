package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashStretchData tracks sprite scale deformation for landing feel
type SquashStretchData struct {
	ScaleY      float64      // current vertical scale
	Tween       *gween.Tween // recovery back to 1, nil when idle
	WasGrounded bool
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
