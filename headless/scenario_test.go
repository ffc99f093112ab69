package headless

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/metroidvania/shared/movement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walkJump = `
level: levels/ledges.tmx
dt: 0.01
spawn: {x: 100, y: 50}
tuning:
  jump_height: 96
steps:
  - frames: 10
    right: true
  - frames: 5
    right: true
    jump: true
  - frames: 20
`

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(walkJump))
	require.NoError(t, err)

	assert.Equal(t, "levels/ledges.tmx", s.Level)
	assert.Equal(t, 0.01, s.DT)
	require.NotNil(t, s.Spawn)
	assert.Equal(t, Point{X: 100, Y: 50}, *s.Spawn)
	assert.Equal(t, 96.0, s.Tuning.JumpHeight)
	assert.Equal(t, []Step{
		{Frames: 10, Right: true},
		{Frames: 5, Right: true, Jump: true},
		{Frames: 20},
	}, s.Steps)
	assert.Equal(t, 35, s.Frames())
}

func TestParseScenarioDefaults(t *testing.T) {
	s, err := ParseScenario([]byte("steps: [{frames: 1}]"))
	require.NoError(t, err)

	assert.Empty(t, s.Level)
	assert.Equal(t, DefaultDT, s.DT)
	assert.Nil(t, s.Spawn)
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "steps: [frames: {"},
		{"no steps", "dt: 0.1"},
		{"zero frames", "steps: [{frames: 0}]"},
		{"negative dt", "dt: -1\nsteps: [{frames: 1}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(walkJump), 0o644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 3)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTuningApply(t *testing.T) {
	base := movement.Config{MoveSpeed: 300, JumpHeight: 128, JumpTimeToPeak: 0.5, JumpTimeToDescend: 0.4}

	assert.Equal(t, base, Tuning{}.Apply(base))
	assert.Equal(t,
		movement.Config{MoveSpeed: 150, JumpHeight: 128, JumpTimeToPeak: 0.25, JumpTimeToDescend: 0.4},
		Tuning{MoveSpeed: 150, JumpTimeToPeak: 0.25}.Apply(base),
	)
}
