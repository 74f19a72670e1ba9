// Package animation turns keyboard lifecycle transitions into smoothly
// interpolated height values for components that want motion rather than a
// step function. The interpolator is frame-driven: the hosting UI calls Tick
// once per animation frame with the current time, so tests can feed synthetic
// clocks and the TUI can feed its own tick messages.
package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FrameInterval is the per-frame scheduling period the UI should use.
const FrameInterval = time.Second / 60

// Easing selects the interpolation curve.
type Easing string

const (
	// EaseOut is the default cubic ease-out: 1 - (1-t)^3.
	EaseOut Easing = "ease-out"
	// Spring is a damped-spring curve integrated per frame.
	Spring Easing = "spring"
)

// ParseEasing maps a configuration identifier to an Easing, defaulting to
// EaseOut for anything unrecognized.
func ParseEasing(s string) Easing {
	if Easing(s) == Spring {
		return Spring
	}
	return EaseOut
}

// State is one interpolated frame. Progress is normalized so 0 is the fully
// hidden baseline and 1 is fully at the target height; hide animations run it
// from 1 back toward 0 against the height they are hiding from.
type State struct {
	Height   float64
	Progress float64
	Done     bool
}

// Interpolator produces a time-bounded sequence of intermediate heights. A
// new Start cancels any in-flight animation and resumes from the current,
// possibly partial, height rather than snapping.
type Interpolator struct {
	easing Easing

	height   float64 // current interpolated height
	start    float64 // height at animation start
	target   float64
	baseline float64 // reference height for progress normalization
	startAt  time.Time
	duration time.Duration
	active   bool

	// spring integrator state
	spring   harmonica.Spring
	velocity float64
}

// New creates an interpolator starting at height 0 (keyboard hidden).
func New(easing Easing) *Interpolator {
	return &Interpolator{
		easing: easing,
		spring: harmonica.NewSpring(harmonica.FPS(60), 8.0, 0.85),
	}
}

// Start begins an animation toward target over duration. The baseline for
// progress normalization is the target for show animations; for hide
// animations (target 0) it is the height the keyboard is hiding from.
func (in *Interpolator) Start(target float64, duration time.Duration, now time.Time) {
	in.start = in.height
	in.target = target
	in.startAt = now
	in.duration = duration
	in.active = true

	if target > 0 {
		in.baseline = target
	} else if in.baseline == 0 {
		in.baseline = in.height
	}
	// else: keep the previous show baseline so progress runs 1 -> 0.
}

// Active reports whether an animation is in flight.
func (in *Interpolator) Active() bool { return in.active }

// Cancel stops the animation, freezing the height where it is.
func (in *Interpolator) Cancel() { in.active = false }

// Tick advances the animation to now and returns the frame. Once the curve
// reaches its target the animation deactivates and Done is reported.
func (in *Interpolator) Tick(now time.Time) State {
	if !in.active {
		return in.Current()
	}

	switch in.easing {
	case Spring:
		in.height, in.velocity = in.spring.Update(in.height, in.velocity, in.target)
		if math.Abs(in.height-in.target) < 0.5 && math.Abs(in.velocity) < 0.5 {
			in.height = in.target
			in.velocity = 0
			in.active = false
		}
	default:
		t := clamp01(float64(now.Sub(in.startAt)) / float64(in.duration))
		eased := easeOutCubic(t)
		in.height = in.start + (in.target-in.start)*eased
		if t >= 1 {
			in.height = in.target
			in.active = false
		}
	}

	return in.Current()
}

// Current returns the frame for the current height without advancing time.
func (in *Interpolator) Current() State {
	return State{
		Height:   in.height,
		Progress: in.progress(),
		Done:     !in.active,
	}
}

// Height returns the current interpolated height.
func (in *Interpolator) Height() float64 { return in.height }

func (in *Interpolator) progress() float64 {
	if in.baseline <= 0 {
		return 0
	}
	return clamp01(in.height / in.baseline)
}

// easeOutCubic is 1 - (1-t)^3.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
