package movement

import (
	"testing"

	"github.com/automoto/metroidvania/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestNewActorRejectsDegenerateBox(t *testing.T) {
	_, err := NewActor(math.Vec2{}, math.Vec2{}, 0, 32)
	assert.ErrorIs(t, err, gamemath.ErrDegenerateBox)

	_, err = NewActor(math.Vec2{}, math.Vec2{}, 16, -1)
	assert.ErrorIs(t, err, gamemath.ErrDegenerateBox)
}

func TestBoundsFollowPosition(t *testing.T) {
	a, err := NewActor(math.NewVec2(100, 50), math.NewVec2(8, 0), 16, 32)
	require.NoError(t, err)

	assert.Equal(t, gamemath.Rect(108, 50, 16, 32), a.Bounds())

	a.Move(math.NewVec2(-10, 4))
	assert.Equal(t, math.NewVec2(90, 54), a.Position)
	assert.Equal(t, gamemath.Rect(98, 54, 16, 32), a.Bounds())

	a.Position = math.NewVec2(0, 0)
	assert.Equal(t, gamemath.Rect(8, 0, 16, 32), a.Bounds())
	assert.Equal(t, math.NewVec2(16, 32), a.Size())
}
