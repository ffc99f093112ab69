// Package movement moves one actor through a static tile grid: gravity with
// separate rise and fall curves, horizontal run, variable-height jumps and
// sequential minimum-axis collision resolution.
package movement

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/automoto/metroidvania/shared/gamemath"
	"github.com/automoto/metroidvania/shared/tilegrid"
	"github.com/yohamta/donburi/features/math"
)

// ErrInvalidConfig is returned by NewController for unusable tuning.
var ErrInvalidConfig = errors.New("invalid movement config")

// Config is the designer-facing tuning of a controller.
type Config struct {
	MoveSpeed         float64 // pixels per second
	JumpHeight        float64 // pixels
	JumpTimeToPeak    float64 // seconds
	JumpTimeToDescend float64 // seconds
}

// Intent is the input snapshot for one tick.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool
}

// Direction is -1, 0 or 1. Left wins when both directions are held.
func (i Intent) Direction() float64 {
	if i.Left {
		return -1
	}
	if i.Right {
		return 1
	}
	return 0
}

// Snapshot is a read-only copy of the actor for renderers.
type Snapshot struct {
	Position  math.Vec2
	Velocity  math.Vec2
	Bounds    gamemath.AABB
	Grounded  bool
	JumpTimer float64
	State     State
}

// Controller owns an actor and advances it one tick at a time. It is not safe
// for concurrent use.
type Controller struct {
	actor *Actor
	grid  *tilegrid.Grid

	moveSpeed float64
	jump      gamemath.JumpConstants

	// jump input from the previous tick, for edge detection
	jumpHeld bool

	candidates []gamemath.AABB
}

// NewController derives the jump constants from cfg and sizes the broad-phase
// buffer for the actor's box.
func NewController(cfg Config, actor *Actor, grid *tilegrid.Grid) (*Controller, error) {
	if gomath.IsNaN(cfg.MoveSpeed) || gomath.IsInf(cfg.MoveSpeed, 0) || cfg.MoveSpeed < 0 {
		return nil, fmt.Errorf("%w: move speed %v", ErrInvalidConfig, cfg.MoveSpeed)
	}
	jump, err := gamemath.DeriveJump(cfg.JumpHeight, cfg.JumpTimeToPeak, cfg.JumpTimeToDescend)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	size := actor.Size()
	return &Controller{
		actor:      actor,
		grid:       grid,
		moveSpeed:  cfg.MoveSpeed,
		jump:       jump,
		candidates: make([]gamemath.AABB, 0, tilegrid.Capacity(size.X, size.Y, grid.CellSize())),
	}, nil
}

// Jump returns the derived jump constants.
func (c *Controller) Jump() gamemath.JumpConstants {
	return c.jump
}

// Grid returns the grid the actor collides with.
func (c *Controller) Grid() *tilegrid.Grid {
	return c.grid
}

// Update advances the actor by dt seconds under intent. The only error is
// tilegrid.ErrCapacity, which means the buffer was sized for a smaller actor.
func (c *Controller) Update(intent Intent, dt float64) error {
	a := c.actor

	// --- Gravity ---
	c.applyGravity(intent, dt)

	// --- Horizontal input ---
	a.Velocity.X = intent.Direction() * c.moveSpeed

	// --- Jump (edge-triggered, released early cuts the ascent) ---
	wasHeld := c.jumpHeld
	c.jumpHeld = intent.Jump

	if intent.Jump && !wasHeld && a.Grounded {
		a.Velocity.Y = c.jump.LaunchVelocity
		a.Grounded = false
	}
	if wasHeld && !intent.Jump && a.Velocity.Y < 0 {
		a.Velocity.Y = 0
	}

	// --- Integrate ---
	a.Move(a.Velocity.MulScalar(dt))

	if err := c.resolveCollisions(); err != nil {
		return err
	}

	if a.Grounded {
		a.JumpTimer = 0
	} else {
		a.JumpTimer += dt
	}
	return nil
}

func (c *Controller) applyGravity(intent Intent, dt float64) {
	a := c.actor
	if a.Grounded {
		return
	}

	gravity := c.jump.DescendGravity
	if a.Velocity.Y < 0 && intent.Jump {
		gravity = c.jump.AscendGravity
	}
	a.Velocity.Y += gravity * dt
}

// resolveCollisions pushes the actor out of each candidate tile in the grid's
// emission order. Every push changes the box the next candidate is tested
// against.
func (c *Controller) resolveCollisions() error {
	a := c.actor

	candidates, err := c.grid.Query(a.Bounds(), c.candidates)
	if err != nil {
		return fmt.Errorf("resolve collisions: %w", err)
	}

	a.Grounded = false

	for _, tile := range candidates {
		if colliding, penetration := gamemath.Overlap(a.Bounds(), tile); colliding {
			a.Move(penetration.MulScalar(-1))
		}

		// Resting contact counts even without interpenetration.
		if standsOn(a.Bounds(), tile) {
			a.Grounded = true
			a.Velocity.Y = 0
		}
	}

	return nil
}

// standsOn reports whether box's bottom edge lies exactly on tile's top edge.
// Horizontal extent is not compared: any candidate in the query window counts,
// so the actor stays grounded up to one column past a ledge.
func standsOn(box, tile gamemath.AABB) bool {
	return tile.Min.Y == box.Max.Y
}

// Snapshot copies the actor state for readers outside the tick.
func (c *Controller) Snapshot() Snapshot {
	a := c.actor
	return Snapshot{
		Position:  a.Position,
		Velocity:  a.Velocity,
		Bounds:    a.Bounds(),
		Grounded:  a.Grounded,
		JumpTimer: a.JumpTimer,
		State:     Classify(a.Grounded, a.Velocity),
	}
}
