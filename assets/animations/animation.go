package animations

import "math"

// Animation loops through Frames frames, each shown for FrameDuration
// seconds.
type Animation struct {
	Frames        int
	FrameDuration float64
	elapsed       float64
	Looped        bool
}

// Update advances the animation clock by dt seconds.
func (a *Animation) Update(dt float64) {
	a.elapsed += dt
	if a.elapsed >= a.length() {
		a.Looped = true
	}
}

// Frame is the index of the frame to show.
func (a *Animation) Frame() int {
	if a.Frames <= 1 || a.FrameDuration <= 0 {
		return 0
	}
	frame := int(math.Mod(a.elapsed, a.length()) / a.FrameDuration)
	if frame >= a.Frames {
		frame = a.Frames - 1
	}
	return frame
}

func (a *Animation) Restart() {
	a.elapsed = 0
	a.Looped = false
}

func (a *Animation) length() float64 {
	return float64(a.Frames) * a.FrameDuration
}

func NewAnimation(frames int, frameDuration float64) *Animation {
	return &Animation{
		Frames:        frames,
		FrameDuration: frameDuration,
	}
}
