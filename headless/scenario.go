// Package headless replays scripted input against the movement controller
// without a window, for deterministic checks and tuning.
package headless

import (
	"errors"
	"fmt"
	gomath "math"
	"os"

	"github.com/automoto/metroidvania/shared/movement"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario is returned for scenarios that cannot be replayed.
var ErrInvalidScenario = errors.New("invalid scenario")

// DefaultDT is used when a scenario does not set dt.
const DefaultDT = 1.0 / 60

type Scenario struct {
	Level  string  `yaml:"level"` // .tmx path inside the levels filesystem; empty for the built-in level
	DT     float64 `yaml:"dt"`
	Spawn  *Point  `yaml:"spawn"`
	Tuning Tuning  `yaml:"tuning"`
	Steps  []Step  `yaml:"steps"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Tuning overrides movement settings. Zero fields keep the base value.
type Tuning struct {
	MoveSpeed         float64 `yaml:"move_speed"`
	JumpHeight        float64 `yaml:"jump_height"`
	JumpTimeToPeak    float64 `yaml:"jump_time_to_peak"`
	JumpTimeToDescend float64 `yaml:"jump_time_to_descend"`
}

// Apply returns base with the non-zero fields of t replaced.
func (t Tuning) Apply(base movement.Config) movement.Config {
	if t.MoveSpeed != 0 {
		base.MoveSpeed = t.MoveSpeed
	}
	if t.JumpHeight != 0 {
		base.JumpHeight = t.JumpHeight
	}
	if t.JumpTimeToPeak != 0 {
		base.JumpTimeToPeak = t.JumpTimeToPeak
	}
	if t.JumpTimeToDescend != 0 {
		base.JumpTimeToDescend = t.JumpTimeToDescend
	}
	return base
}

// Step holds one input snapshot for a number of ticks.
type Step struct {
	Frames int  `yaml:"frames"`
	Left   bool `yaml:"left"`
	Right  bool `yaml:"right"`
	Jump   bool `yaml:"jump"`
}

func (s Step) Intent() movement.Intent {
	return movement.Intent{Left: s.Left, Right: s.Right, Jump: s.Jump}
}

// Frames is the total tick count of the scenario.
func (s *Scenario) Frames() int {
	total := 0
	for _, step := range s.Steps {
		total += step.Frames
	}
	return total
}

// ParseScenario decodes a YAML scenario and fills defaults.
func ParseScenario(data []byte) (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if s.DT == 0 {
		s.DT = DefaultDT
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

func (s *Scenario) validate() error {
	if s.DT < 0 || gomath.IsNaN(s.DT) || gomath.IsInf(s.DT, 0) {
		return fmt.Errorf("%w: dt %v", ErrInvalidScenario, s.DT)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidScenario)
	}
	for i, step := range s.Steps {
		if step.Frames <= 0 {
			return fmt.Errorf("%w: step %d has %d frames", ErrInvalidScenario, i, step.Frames)
		}
	}
	return nil
}
