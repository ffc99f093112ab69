package gamemath

import (
	"errors"
	"fmt"
)

// ErrInvalidJump is returned when jump tuning cannot produce finite constants.
var ErrInvalidJump = errors.New("invalid jump tuning")

// JumpConstants are the physical constants derived from designer-facing jump
// tuning. Gravities are positive (downward); LaunchVelocity is negative (up).
type JumpConstants struct {
	LaunchVelocity float64
	AscendGravity  float64
	DescendGravity float64
}

// DeriveJump converts a peak height and the times to reach and fall from it
// into launch velocity and the two gravities.
func DeriveJump(height, timeToPeak, timeToDescend float64) (JumpConstants, error) {
	if !isFinite(height) || height <= 0 {
		return JumpConstants{}, fmt.Errorf("%w: height %v", ErrInvalidJump, height)
	}
	if !isFinite(timeToPeak) || timeToPeak <= 0 {
		return JumpConstants{}, fmt.Errorf("%w: time to peak %v", ErrInvalidJump, timeToPeak)
	}
	if !isFinite(timeToDescend) || timeToDescend <= 0 {
		return JumpConstants{}, fmt.Errorf("%w: time to descend %v", ErrInvalidJump, timeToDescend)
	}

	c := JumpConstants{
		LaunchVelocity: -2 * height / timeToPeak,
		AscendGravity:  2 * height / (timeToPeak * timeToPeak),
		DescendGravity: 2 * height / (timeToDescend * timeToDescend),
	}
	if !isFinite(c.LaunchVelocity) || !isFinite(c.AscendGravity) || !isFinite(c.DescendGravity) {
		return JumpConstants{}, fmt.Errorf("%w: derived constants overflow (%+v)", ErrInvalidJump, c)
	}
	return c, nil
}

// PeakHeight returns the apex height reached from a launch velocity under a
// constant gravity.
func PeakHeight(launchVelocity, gravity float64) float64 {
	return launchVelocity * launchVelocity / (2 * gravity)
}
