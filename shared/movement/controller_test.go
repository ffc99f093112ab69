package movement

import (
	"testing"

	"github.com/automoto/metroidvania/shared/gamemath"
	"github.com/automoto/metroidvania/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

const (
	tileSize = 32.0
	floorTop = 224.0 // row 7
	standY   = floorTop - 32
)

var testConfig = Config{
	MoveSpeed:         300,
	JumpHeight:        128,
	JumpTimeToPeak:    0.5,
	JumpTimeToDescend: 0.4,
}

// newGrid returns a 20x12 grid with solid rows 7..11. edit may carve or add
// cells before the grid is built.
func newGrid(t *testing.T, edit func(cells [][]int)) *tilegrid.Grid {
	t.Helper()
	cells := make([][]int, 12)
	for r := range cells {
		cells[r] = make([]int, 20)
		if r >= 7 {
			for c := range cells[r] {
				cells[r][c] = tilegrid.Solid
			}
		}
	}
	if edit != nil {
		edit(cells)
	}
	g, err := tilegrid.New(cells, tileSize)
	require.NoError(t, err)
	return g
}

func newController(t *testing.T, grid *tilegrid.Grid, x, y float64) (*Controller, *Actor) {
	t.Helper()
	actor, err := NewActor(math.NewVec2(x, y), math.Vec2{}, 16, 32)
	require.NoError(t, err)
	c, err := NewController(testConfig, actor, grid)
	require.NoError(t, err)
	return c, actor
}

func TestNewControllerDerivesJump(t *testing.T) {
	c, _ := newController(t, newGrid(t, nil), 320, 0)

	jump := c.Jump()
	assert.InDelta(t, -512.0, jump.LaunchVelocity, 1e-9)
	assert.InDelta(t, 1024.0, jump.AscendGravity, 1e-9)
	assert.InDelta(t, 1600.0, jump.DescendGravity, 1e-9)
	assert.Equal(t, 16, cap(c.candidates))
}

func TestNewControllerRejectsBadTuning(t *testing.T) {
	grid := newGrid(t, nil)
	actor, err := NewActor(math.Vec2{}, math.Vec2{}, 16, 32)
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(c *Config)
		jumpErr bool
	}{
		{"negative speed", func(c *Config) { c.MoveSpeed = -1 }, false},
		{"zero height", func(c *Config) { c.JumpHeight = 0 }, true},
		{"zero time to peak", func(c *Config) { c.JumpTimeToPeak = 0 }, true},
		{"negative time to descend", func(c *Config) { c.JumpTimeToDescend = -0.4 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig
			tt.mutate(&cfg)

			_, err := NewController(cfg, actor, grid)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			if tt.jumpErr {
				assert.ErrorIs(t, err, gamemath.ErrInvalidJump)
			}
		})
	}
}

func TestRestingActorStaysGrounded(t *testing.T) {
	c, actor := newController(t, newGrid(t, nil), 320, standY)
	actor.Grounded = true

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Update(Intent{}, 1.0/60))

		assert.True(t, actor.Grounded, "tick %d", i)
		assert.Equal(t, standY, actor.Position.Y, "tick %d", i)
		assert.Equal(t, 0.0, actor.Velocity.Y, "tick %d", i)
	}
	assert.Equal(t, Idle, c.Snapshot().State)
}

func TestFallingActorLandsOnTileTop(t *testing.T) {
	c, actor := newController(t, newGrid(t, nil), 320, standY-1)

	// Descend gravity 1600 over 1/16s drops the actor 6.25px into the floor.
	require.NoError(t, c.Update(Intent{}, 0.0625))

	assert.True(t, actor.Grounded)
	assert.Equal(t, 0.0, actor.Velocity.Y)
	assert.Equal(t, standY, actor.Position.Y)
	assert.Equal(t, floorTop, actor.Bounds().Max.Y)
	assert.Equal(t, 0.0, actor.JumpTimer)
}

func TestFallingActorAccumulatesDescendGravity(t *testing.T) {
	c, actor := newController(t, newGrid(t, nil), 320, 0)

	require.NoError(t, c.Update(Intent{}, 0.01))

	assert.False(t, actor.Grounded)
	assert.InDelta(t, 16.0, actor.Velocity.Y, 1e-9)
	assert.InDelta(t, 0.16, actor.Position.Y, 1e-9)
	assert.InDelta(t, 0.01, actor.JumpTimer, 1e-12)
	assert.Equal(t, Fall, c.Snapshot().State)
}

func TestJumpLaunchesFromGround(t *testing.T) {
	c, actor := newController(t, newGrid(t, nil), 320, standY)
	actor.Grounded = true

	require.NoError(t, c.Update(Intent{Jump: true}, 1.0/64))

	assert.False(t, actor.Grounded)
	assert.Equal(t, -512.0, actor.Velocity.Y)
	assert.Equal(t, standY-8, actor.Position.Y)
	assert.Equal(t, Jump, c.Snapshot().State)
}

func TestHeldJumpUsesAscendGravity(t *testing.T) {
	c, actor := newController(t, newGrid(t, nil), 320, standY)
	actor.Grounded = true

	require.NoError(t, c.Update(Intent{Jump: true}, 1.0/64))
	require.NoError(t, c.Update(Intent{Jump: true}, 1.0/64))

	assert.Equal(t, -512.0+1024.0/64, actor.Velocity.Y)
}

func TestEarlyReleaseCutsAscent(t *testing.T) {
	c, actor := newController(t, newGrid(t, nil), 320, standY)
	actor.Grounded = true

	require.NoError(t, c.Update(Intent{Jump: true}, 1.0/64))
	require.Less(t, actor.Velocity.Y, 0.0)
	heightAfterLaunch := actor.Position.Y

	require.NoError(t, c.Update(Intent{}, 1.0/64))
	assert.Equal(t, 0.0, actor.Velocity.Y)
	assert.Equal(t, heightAfterLaunch, actor.Position.Y)

	require.NoError(t, c.Update(Intent{}, 1.0/64))
	assert.Equal(t, 1600.0/64, actor.Velocity.Y)
}

func TestReleaseWhileFallingKeepsVelocity(t *testing.T) {
	c, actor := newController(t, newGrid(t, nil), 320, 0)
	actor.Velocity.Y = 100

	require.NoError(t, c.Update(Intent{Jump: true}, 1.0/64))
	require.NoError(t, c.Update(Intent{}, 1.0/64))

	assert.Equal(t, 100.0+2*1600.0/64, actor.Velocity.Y)
}

func TestJumpNeedsFreshPress(t *testing.T) {
	c, actor := newController(t, newGrid(t, nil), 320, standY)
	actor.Grounded = true

	require.NoError(t, c.Update(Intent{Jump: true}, 1.0/64))
	require.False(t, actor.Grounded)

	landed := false
	for i := 0; i < 300 && !landed; i++ {
		require.NoError(t, c.Update(Intent{Jump: true}, 1.0/64))
		landed = actor.Grounded
	}
	require.True(t, landed, "actor never landed")
	assert.Equal(t, floorTop, actor.Bounds().Max.Y)

	require.NoError(t, c.Update(Intent{Jump: true}, 1.0/64))
	assert.True(t, actor.Grounded)
	assert.Equal(t, 0.0, actor.Velocity.Y)

	require.NoError(t, c.Update(Intent{}, 1.0/64))
	require.NoError(t, c.Update(Intent{Jump: true}, 1.0/64))
	assert.False(t, actor.Grounded)
	assert.Equal(t, -512.0, actor.Velocity.Y)
}

func TestJumpReachesTunedHeight(t *testing.T) {
	c, actor := newController(t, newGrid(t, nil), 320, standY)
	actor.Grounded = true

	const dt = 1.0 / 1024
	highest := actor.Position.Y
	require.NoError(t, c.Update(Intent{Jump: true}, dt))
	for !actor.Grounded {
		require.NoError(t, c.Update(Intent{Jump: true}, dt))
		if actor.Position.Y < highest {
			highest = actor.Position.Y
		}
	}

	assert.InDelta(t, 128.0, standY-highest, 1.0)
}

func TestHorizontalIntent(t *testing.T) {
	tests := []struct {
		name   string
		intent Intent
		want   float64
	}{
		{"none", Intent{}, 0},
		{"left", Intent{Left: true}, -300},
		{"right", Intent{Right: true}, 300},
		{"left wins over right", Intent{Left: true, Right: true}, -300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, actor := newController(t, newGrid(t, nil), 320, standY)
			actor.Grounded = true
			actor.Velocity.X = 1000

			require.NoError(t, c.Update(tt.intent, 1.0/64))

			assert.Equal(t, tt.want, actor.Velocity.X)
			assert.Equal(t, 320+tt.want/64, actor.Position.X)
		})
	}
}

func TestWallStopsRunning(t *testing.T) {
	grid := newGrid(t, func(cells [][]int) {
		cells[5][12] = tilegrid.Solid
		cells[6][12] = tilegrid.Solid
	})
	c, actor := newController(t, grid, 360, standY)
	actor.Grounded = true

	for i := 0; i < 10; i++ {
		require.NoError(t, c.Update(Intent{Right: true}, 1.0/64))
	}

	assert.Equal(t, 368.0, actor.Position.X)
	assert.Equal(t, 12*tileSize, actor.Bounds().Max.X)
	assert.Equal(t, standY, actor.Position.Y)
	assert.True(t, actor.Grounded)
	assert.Equal(t, Run, c.Snapshot().State)
}

func TestResolutionIsSequential(t *testing.T) {
	c, actor := newController(t, newGrid(t, nil), 310, standY+5)

	// The box sinks 5px into two floor tiles. The first push clears both.
	require.NoError(t, c.Update(Intent{}, 0))

	assert.Equal(t, standY, actor.Position.Y)
	assert.Equal(t, 310.0, actor.Position.X)
	assert.True(t, actor.Grounded)
}

func TestInsideCornerResolvesInRowOrder(t *testing.T) {
	grid := newGrid(t, func(cells [][]int) {
		cells[5][12] = tilegrid.Solid
		cells[6][12] = tilegrid.Solid
	})
	c, actor := newController(t, grid, 380, standY+4)

	// The wall tile in row 6 is visited before the floor in row 7: it pushes
	// the box left by 12, then the floor pushes it up by 4.
	require.NoError(t, c.Update(Intent{}, 0))

	assert.Equal(t, math.NewVec2(368, standY), actor.Position)
	assert.True(t, actor.Grounded)
}

func TestWalkingOffLedgeFalls(t *testing.T) {
	grid := newGrid(t, func(cells [][]int) {
		for r := 7; r < 12; r++ {
			for col := 10; col < 20; col++ {
				cells[r][col] = tilegrid.Empty
			}
		}
	})
	c, actor := newController(t, grid, 330, standY)
	actor.Grounded = true

	// Past the ledge but the col 9 floor tile is still in the query window.
	require.NoError(t, c.Update(Intent{}, 1.0/64))
	assert.True(t, actor.Grounded)
	assert.Equal(t, standY, actor.Position.Y)
	assert.Equal(t, 0.0, actor.Velocity.Y)

	// The window starts at col 10 once x reaches 352.
	for i := 0; i < 20 && actor.Grounded; i++ {
		require.True(t, actor.Position.X < 352)
		require.NoError(t, c.Update(Intent{Right: true}, 1.0/64))
	}
	require.False(t, actor.Grounded)
	assert.GreaterOrEqual(t, actor.Position.X, 352.0)
	assert.Equal(t, standY, actor.Position.Y)

	require.NoError(t, c.Update(Intent{}, 1.0/64))
	assert.Greater(t, actor.Velocity.Y, 0.0)
	assert.Greater(t, actor.Position.Y, standY)
}

func TestUpdateReportsCapacity(t *testing.T) {
	c, _ := newController(t, newGrid(t, nil), 320, standY)
	c.candidates = make([]gamemath.AABB, 0, 1)

	err := c.Update(Intent{}, 1.0/64)
	assert.ErrorIs(t, err, tilegrid.ErrCapacity)
}

func TestSnapshot(t *testing.T) {
	c, actor := newController(t, newGrid(t, nil), 320, standY)
	actor.Grounded = true
	actor.Velocity = math.NewVec2(300, 0)

	s := c.Snapshot()

	assert.Equal(t, math.NewVec2(320, standY), s.Position)
	assert.Equal(t, gamemath.Rect(320, standY, 16, 32), s.Bounds)
	assert.True(t, s.Grounded)
	assert.Equal(t, Run, s.State)
}
