package movement

import "github.com/yohamta/donburi/features/math"

// State is the actor's coarse appearance classification.
type State int

const (
	Idle State = iota
	Run
	Jump
	Fall
)

var stateNames = map[State]string{
	Idle: "idle",
	Run:  "run",
	Jump: "jump",
	Fall: "fall",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Classify derives the state from physical quantities. It holds no memory,
// call it whenever the state is needed.
func Classify(grounded bool, velocity math.Vec2) State {
	if !grounded {
		if velocity.Y < 0 {
			return Jump
		}
		return Fall
	}
	if velocity.X != 0 {
		return Run
	}
	return Idle
}
