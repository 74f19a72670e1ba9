package keyboard

import (
	"time"

	"pocketchat/internal/platform"
	"pocketchat/internal/sample"
)

// Phase classifies a keyboard-state transition.
type Phase string

const (
	PhaseOpening Phase = "opening"
	PhaseClosing Phase = "closing"
	PhaseStable  Phase = "stable"
)

// KeyboardState is one immutable emission of the state machine. Consumers
// receive copies; the controller never hands out a mutable reference.
type KeyboardState struct {
	IsVisible          bool
	Height             float64 // px, non-negative; 0 whenever hidden
	TransitionDuration time.Duration
	Timestamp          time.Time // monotonic creation time
	FocusedElementID   uint32    // hash of the element that triggered the change, 0 if none
	Phase              Phase
	Platform           platform.Platform
}

// sameIdentity reports whether two states are equal for transition-detection
// purposes. Duration, timestamp, and phase are deliberately excluded.
func (s KeyboardState) sameIdentity(o KeyboardState) bool {
	return s.IsVisible == o.IsVisible &&
		s.Height == o.Height &&
		s.FocusedElementID == o.FocusedElementID
}

// ControllerState is the composite snapshot consumers read.
type ControllerState struct {
	Keyboard        KeyboardState
	SafeArea        sample.SafeAreaInsets
	AvailableHeight float64 // px, never negative
}

// LayoutVars is the versioned layout snapshot published back to the
// environment so non-controller-aware styling can still react. It is a
// best-effort convenience output, not part of the state contract.
type LayoutVars struct {
	Version         uint64
	KeyboardHeight  float64
	KeyboardVisible bool
	AvailableHeight float64
	SafeArea        sample.SafeAreaInsets
}

// EventKind is one of the four lifecycle event types.
type EventKind int

const (
	EventWillShow EventKind = iota
	EventDidShow
	EventWillHide
	EventDidHide
)

func (k EventKind) String() string {
	switch k {
	case EventWillShow:
		return "keyboardWillShow"
	case EventDidShow:
		return "keyboardDidShow"
	case EventWillHide:
		return "keyboardWillHide"
	case EventDidHide:
		return "keyboardDidHide"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers. State is the committed keyboard state at
// the moment the event was produced.
type Event struct {
	Kind      EventKind
	State     KeyboardState
	Timestamp time.Time
}
