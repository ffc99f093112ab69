package headless

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/metroidvania/shared/leveldata"
	"github.com/automoto/metroidvania/shared/movement"
	"github.com/yohamta/donburi/features/math"
)

// ErrNoLevels is returned when a scenario names a level but no level
// filesystem was given.
var ErrNoLevels = errors.New("no level filesystem")

// Options are the defaults a scenario builds on.
type Options struct {
	Tuning  movement.Config
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	Levels  fs.FS // may be nil when only the built-in level is used
}

// Result summarises a finished run.
type Result struct {
	Ticks    int
	Final    movement.Snapshot
	Landings int     // ticks on which the actor became grounded
	Apex     float64 // smallest y reached
}

// Simulation advances one controller through a scenario tick by tick. It is
// not safe for concurrent use.
type Simulation struct {
	scenario   *Scenario
	level      *leveldata.Level
	controller *movement.Controller

	step  int
	frame int

	result      Result
	wasGrounded bool
	onTick      func(tick int, snapshot movement.Snapshot)
}

func NewSimulation(s *Scenario, opts Options) (*Simulation, error) {
	level, err := resolveLevel(s.Level, opts.Levels)
	if err != nil {
		return nil, err
	}
	grid, err := level.Grid()
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", level.Name, err)
	}

	spawn := level.Spawn
	if s.Spawn != nil {
		spawn = math.NewVec2(s.Spawn.X, s.Spawn.Y)
	}
	actor, err := movement.NewActor(spawn, math.NewVec2(opts.OffsetX, opts.OffsetY), opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("actor: %w", err)
	}
	ctrl, err := movement.NewController(s.Tuning.Apply(opts.Tuning), actor, grid)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		scenario:   s,
		level:      level,
		controller: ctrl,
		result: Result{
			Final: ctrl.Snapshot(),
			Apex:  spawn.Y,
		},
	}, nil
}

func resolveLevel(path string, levels fs.FS) (*leveldata.Level, error) {
	if path == "" {
		return leveldata.Default(), nil
	}
	if levels == nil {
		return nil, fmt.Errorf("level %s: %w", path, ErrNoLevels)
	}
	return leveldata.LoadLevel(levels, path)
}

// OnTick registers fn to be called after every tick.
func (s *Simulation) OnTick(fn func(tick int, snapshot movement.Snapshot)) {
	s.onTick = fn
}

func (s *Simulation) Level() *leveldata.Level {
	return s.level
}

// Done reports whether every step has been played.
func (s *Simulation) Done() bool {
	return s.step >= len(s.scenario.Steps)
}

// Tick plays one frame of the current step. It is a no-op once Done.
func (s *Simulation) Tick() error {
	if s.Done() {
		return nil
	}

	step := s.scenario.Steps[s.step]
	if err := s.controller.Update(step.Intent(), s.scenario.DT); err != nil {
		return fmt.Errorf("tick %d: %w", s.result.Ticks, err)
	}

	s.frame++
	if s.frame >= step.Frames {
		s.step++
		s.frame = 0
	}

	snapshot := s.controller.Snapshot()
	s.record(snapshot)
	if s.onTick != nil {
		s.onTick(s.result.Ticks, snapshot)
	}
	return nil
}

func (s *Simulation) record(snapshot movement.Snapshot) {
	s.result.Ticks++
	s.result.Final = snapshot
	if snapshot.Grounded && !s.wasGrounded {
		s.result.Landings++
	}
	s.wasGrounded = snapshot.Grounded
	if snapshot.Position.Y < s.result.Apex {
		s.result.Apex = snapshot.Position.Y
	}
}

// Run plays the remaining steps synchronously.
func (s *Simulation) Run() (Result, error) {
	for !s.Done() {
		if err := s.Tick(); err != nil {
			return s.result, err
		}
	}
	return s.result, nil
}

// Result returns the summary so far.
func (s *Simulation) Result() Result {
	return s.result
}
