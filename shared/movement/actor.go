package movement

import (
	"fmt"

	"github.com/automoto/metroidvania/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Actor is the mutable physical state of the one dynamic body. Its collision
// box is derived from Position on every read, so the two can never drift.
type Actor struct {
	Position math.Vec2
	Velocity math.Vec2
	Grounded bool

	// JumpTimer is the time in seconds since the actor last left the ground.
	JumpTimer float64

	offset math.Vec2
	size   math.Vec2
}

// NewActor creates an actor at position with a collision box of w x h placed
// at offset from the position.
func NewActor(position, offset math.Vec2, w, h float64) (*Actor, error) {
	if _, err := gamemath.NewAABB(position.X+offset.X, position.Y+offset.Y, w, h); err != nil {
		return nil, fmt.Errorf("new actor: %w", err)
	}
	return &Actor{
		Position: position,
		offset:   offset,
		size:     math.NewVec2(w, h),
	}, nil
}

// Bounds is the actor's world-space collision box.
func (a *Actor) Bounds() gamemath.AABB {
	return gamemath.Rect(a.Position.X+a.offset.X, a.Position.Y+a.offset.Y, a.size.X, a.size.Y)
}

// Size is the width and height of the collision box.
func (a *Actor) Size() math.Vec2 {
	return a.size
}

// Move translates the actor, and with it the collision box.
func (a *Actor) Move(delta math.Vec2) {
	a.Position = a.Position.Add(delta)
}
