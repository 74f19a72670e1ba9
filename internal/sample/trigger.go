package sample

// Trigger identifies which environment event prompted a resample. The
// controller treats all triggers the same way (debounced recompute); the kind
// exists for logging and for the orientation recapture path.
type Trigger int

const (
	TriggerFocusIn Trigger = iota
	TriggerFocusOut
	TriggerViewportResize
	TriggerViewportScroll
	TriggerWindowResize
	TriggerOrientationChange
	TriggerKeyboardGeometry
)

func (t Trigger) String() string {
	switch t {
	case TriggerFocusIn:
		return "focus-in"
	case TriggerFocusOut:
		return "focus-out"
	case TriggerViewportResize:
		return "viewport-resize"
	case TriggerViewportScroll:
		return "viewport-scroll"
	case TriggerWindowResize:
		return "window-resize"
	case TriggerOrientationChange:
		return "orientation-change"
	case TriggerKeyboardGeometry:
		return "keyboard-geometry"
	default:
		return "unknown"
	}
}
