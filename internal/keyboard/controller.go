// Package keyboard normalizes raw viewport and focus signals into a single
// coherent keyboard state machine. It is the one source of truth for
// on-screen-keyboard visibility, height, and transition phase; every layout
// consumer reads its snapshots or subscribes to its lifecycle events instead
// of interpreting platform geometry on its own.
package keyboard

import (
	"log/slog"
	"sync"
	"time"

	"pocketchat/internal/errors"
	"pocketchat/internal/logger"
	"pocketchat/internal/platform"
	"pocketchat/internal/sample"
)

// Environment is the controller's write side of the device: it attaches
// trigger listeners, requests focus drops, and receives layout write-backs.
type Environment interface {
	Attach(fn func(sample.Trigger)) (detach func())
	Blur() error
	PublishLayout(LayoutVars)
}

// KeyboardAPIActivator is optionally implemented by environments whose native
// virtual-keyboard API must be switched on before it reports geometry.
// Activation failure is not fatal; the controller degrades to fallback height
// computation.
type KeyboardAPIActivator interface {
	ActivateKeyboardAPI() error
}

// Defaults for the tunable heuristics. These are empirical, not physical
// constants; Options and config platform overrides replace them per session.
const (
	DefaultDebounce           = 100 * time.Millisecond
	DefaultTransitionDuration = 250 * time.Millisecond
	DefaultOrientationSettle  = 500 * time.Millisecond

	// smallHeightCorrection is the iOS plausibility floor: a focused editable
	// with a computed height below this is assumed to be Safari under-reporting
	// the visual-viewport shrink.
	smallHeightCorrection = 50
)

// DefaultThreshold returns the minimum keyboard height, in px, that counts as
// visible on a platform.
func DefaultThreshold(p platform.Platform) float64 {
	if p == platform.Android {
		return 100
	}
	return 50
}

// Options configures a Controller. Platform, Capabilities, Sampler, and Env
// are required; zero values elsewhere take the defaults above.
type Options struct {
	Platform     platform.Platform
	Capabilities platform.Capabilities
	Sampler      sample.Sampler
	Env          Environment

	Clock              Clock         // defaults to RealClock()
	Debounce           time.Duration // trigger coalescing window
	TransitionDuration time.Duration // keyboard animation duration
	OrientationSettle  time.Duration // delay before height recapture after rotation
	Threshold          float64       // visibility threshold, px; 0 means platform default
	DebugLogging       bool
}

func (o *Options) applyDefaults() {
	if o.Clock == nil {
		o.Clock = RealClock()
	}
	if o.Debounce <= 0 {
		o.Debounce = DefaultDebounce
	}
	if o.TransitionDuration <= 0 {
		o.TransitionDuration = DefaultTransitionDuration
	}
	if o.OrientationSettle <= 0 {
		o.OrientationSettle = DefaultOrientationSettle
	}
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold(o.Platform)
	}
}

// Controller owns the composite keyboard/layout state. It is created once per
// UI session and torn down with Destroy; all mutation happens inside its
// debounced recompute, so consumers only ever observe committed snapshots.
type Controller struct {
	mu sync.Mutex

	opts     Options
	log      *slog.Logger
	registry *Registry

	caps          platform.Capabilities // may be degraded from opts.Capabilities
	initialHeight float64
	state         ControllerState
	version       uint64

	debounce    Timer
	didTimer    Timer
	orientTimer Timer
	detach      func()
	destroyed   bool

	dispatching bool
	queue       []Event
}

// New constructs and initializes a controller. The returned controller is
// immediately queryable: before the first recompute it reports the hidden
// initial state, never a nil or partial one.
func New(opts Options) *Controller {
	opts.applyDefaults()

	c := &Controller{
		opts:     opts,
		log:      logger.ComponentLogger("Keyboard"),
		registry: NewRegistry(),
		caps:     opts.Capabilities,
	}

	if opts.DebugLogging {
		logger.SetDebug(true)
	}

	sig := opts.Sampler.Sample()
	c.initialHeight = captureHeight(sig)

	safeArea := opts.Sampler.SafeArea()
	c.state = ControllerState{
		Keyboard: KeyboardState{
			IsVisible:          false,
			Height:             0,
			TransitionDuration: opts.TransitionDuration,
			Timestamp:          opts.Clock.Now(),
			Phase:              PhaseStable,
			Platform:           opts.Platform,
		},
		SafeArea:        safeArea,
		AvailableHeight: clampNonNegative(c.initialHeight - safeArea.Top - safeArea.Bottom),
	}

	c.activateKeyboardAPI()
	c.detach = opts.Env.Attach(c.Notify)

	c.log.Info("controller created",
		"platform", opts.Platform,
		"threshold", opts.Threshold,
		"debounce", opts.Debounce,
		"initialHeight", c.initialHeight)
	return c
}

// activateKeyboardAPI switches on the native keyboard API when the platform
// claims it. Failure degrades to fallback computation, never propagates.
func (c *Controller) activateKeyboardAPI() {
	if !c.caps.KeyboardAPI {
		return
	}
	activator, ok := c.opts.Env.(KeyboardAPIActivator)
	if !ok {
		return
	}
	if err := activator.ActivateKeyboardAPI(); err != nil {
		c.log.Warn("native keyboard API activation failed, using fallback heights",
			"err", errors.CapabilityActivationFailed("virtual-keyboard", err))
		c.caps.KeyboardAPI = false
	}
}

// captureHeight derives the unoccluded reference height from a signal.
func captureHeight(sig sample.RawSignal) float64 {
	if sig.WindowHeight > sig.VisualHeight {
		return sig.WindowHeight
	}
	return sig.VisualHeight
}

// Notify schedules a debounced recompute. Repeated triggers inside one
// debounce window collapse into a single recompute using the latest sample;
// earlier scheduled recomputes are cancelled, not run.
func (c *Controller) Notify(trig sample.Trigger) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return
	}

	c.log.Debug("trigger", "kind", trig.String())

	if trig == sample.TriggerOrientationChange {
		if c.orientTimer != nil {
			c.orientTimer.Stop()
		}
		c.orientTimer = c.opts.Clock.AfterFunc(c.opts.OrientationSettle, c.recaptureInitialHeight)
	}

	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.debounce = c.opts.Clock.AfterFunc(c.opts.Debounce, c.recompute)
}

// recaptureInitialHeight refreshes the reference height once rotation reflow
// has settled, then recomputes against it.
func (c *Controller) recaptureInitialHeight() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	sig := c.opts.Sampler.Sample()
	c.initialHeight = captureHeight(sig)
	c.log.Debug("initial height recaptured", "height", c.initialHeight)
	c.mu.Unlock()

	c.recompute()
}

// recompute samples the environment, classifies the result, and commits a new
// state if the identity (visible/height/element) changed. Unchanged samples
// are discarded with no event and no mutation.
func (c *Controller) recompute() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return
	}

	sig := c.opts.Sampler.Sample()
	height := c.computeHeight(sig)
	visible := height > c.opts.Threshold && sig.EditableFocused
	if !visible {
		// Hidden states carry no height: this keeps address-bar wobble from
		// registering as a sequence of distinct hidden states.
		height = 0
	}

	next := KeyboardState{
		IsVisible:          visible,
		Height:             height,
		TransitionDuration: c.opts.TransitionDuration,
		Timestamp:          c.opts.Clock.Now(),
		FocusedElementID:   sig.FocusedElementID,
		Platform:           c.opts.Platform,
	}

	prev := c.state.Keyboard
	if next.sameIdentity(prev) {
		c.log.Debug("recompute unchanged", "visible", visible, "height", height)
		return
	}

	switch {
	case !prev.IsVisible && next.IsVisible:
		next.Phase = PhaseOpening
	case prev.IsVisible && !next.IsVisible:
		next.Phase = PhaseClosing
	default:
		// Height-only adjustment while visible (e.g. suggestion bar toggle).
		next.Phase = PhaseStable
	}

	safeArea := c.opts.Sampler.SafeArea()
	c.state = ControllerState{
		Keyboard:        next,
		SafeArea:        safeArea,
		AvailableHeight: c.availableHeight(next, safeArea),
	}

	c.log.Debug("state committed",
		"visible", next.IsVisible,
		"height", next.Height,
		"phase", next.Phase,
		"element", next.FocusedElementID)

	c.publishLayoutLocked()

	willKind, didKind := EventWillShow, EventDidShow
	if !next.IsVisible {
		willKind, didKind = EventWillHide, EventDidHide
	}

	// A superseding transition cancels the previous completion marker.
	if c.didTimer != nil {
		c.didTimer.Stop()
	}
	c.enqueueLocked(Event{Kind: willKind, State: next, Timestamp: next.Timestamp})
	c.didTimer = c.opts.Clock.AfterFunc(next.TransitionDuration, func() {
		c.completeTransition(didKind, next)
	})
}

// completeTransition fires the did* event after the animation duration and
// settles the phase, provided no newer state superseded this transition.
func (c *Controller) completeTransition(kind EventKind, committed KeyboardState) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	if !c.state.Keyboard.sameIdentity(committed) {
		c.mu.Unlock()
		return
	}
	c.state.Keyboard.Phase = PhaseStable
	settled := c.state.Keyboard
	c.enqueueLocked(Event{Kind: kind, State: settled, Timestamp: c.opts.Clock.Now()})
	c.mu.Unlock()
}

// computeHeight applies the per-platform height policy against the captured
// reference height.
func (c *Controller) computeHeight(sig sample.RawSignal) float64 {
	visualDelta := clampNonNegative(c.initialHeight - sig.VisualHeight)
	windowDelta := clampNonNegative(c.initialHeight - sig.WindowHeight)

	switch c.opts.Platform {
	case platform.Android:
		if c.caps.KeyboardAPI && sig.EnvInsetHeight > 0 {
			return sig.EnvInsetHeight
		}
		if sig.VisualHeight > 0 {
			return visualDelta
		}
		return windowDelta

	case platform.IOS:
		h := visualDelta
		// Safari sometimes under-reports the visual-viewport shrink; when a
		// focused editable yields an implausibly small height but the window
		// delta is credible, trust the window delta.
		if sig.EditableFocused && h < smallHeightCorrection && windowDelta > smallHeightCorrection {
			h = windowDelta
		}
		return h

	default:
		if sig.VisualHeight > 0 {
			return visualDelta
		}
		return windowDelta
	}
}

// availableHeight computes the layout height left for content, clamped at 0.
func (c *Controller) availableHeight(kb KeyboardState, safeArea sample.SafeAreaInsets) float64 {
	h := c.initialHeight - safeArea.Top - safeArea.Bottom
	if kb.IsVisible {
		h -= kb.Height
	}
	return clampNonNegative(h)
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// publishLayoutLocked writes the best-effort layout variables back to the
// environment. Callers hold c.mu.
func (c *Controller) publishLayoutLocked() {
	c.version++
	c.opts.Env.PublishLayout(LayoutVars{
		Version:         c.version,
		KeyboardHeight:  c.state.Keyboard.Height,
		KeyboardVisible: c.state.Keyboard.IsVisible,
		AvailableHeight: c.state.AvailableHeight,
		SafeArea:        c.state.SafeArea,
	})
}

// enqueueLocked hands an event to subscribers while preserving ordering:
// events produced during a dispatch are queued and delivered only after the
// current dispatch finishes, so listener re-entrancy cannot interleave state
// mutations. Callers hold c.mu.
func (c *Controller) enqueueLocked(ev Event) {
	c.queue = append(c.queue, ev)
	if c.dispatching {
		return
	}

	c.dispatching = true
	for len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		c.mu.Unlock()
		c.registry.Dispatch(next)
		c.mu.Lock()
	}
	c.dispatching = false
}

// State returns a snapshot of the composite controller state. It never
// triggers a recompute and is well-defined before the first one.
func (c *Controller) State() ControllerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Keyboard returns the current keyboard state.
func (c *Controller) Keyboard() KeyboardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Keyboard
}

// IsVisible reports whether the keyboard is currently visible.
func (c *Controller) IsVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Keyboard.IsVisible
}

// LayoutVersion returns the version of the last published layout snapshot.
func (c *Controller) LayoutVersion() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// AddListener subscribes to a lifecycle event kind. The returned unsubscribe
// function is idempotent.
func (c *Controller) AddListener(kind EventKind, fn Listener) func() {
	return c.registry.AddListener(kind, fn)
}

// RemoveAllListeners drops subscribers for the given kinds (all when empty).
func (c *Controller) RemoveAllListeners(kinds ...EventKind) {
	c.registry.RemoveAllListeners(kinds...)
}

// Dismiss asks the environment to drop editable focus. Best-effort: the
// platform may decline, and the state machine only reacts to the resulting
// focus-out trigger, never to the request itself.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	env := c.opts.Env
	c.mu.Unlock()

	if err := env.Blur(); err != nil {
		c.log.Warn("dismiss request failed", "err", err)
	}
}

// Destroy tears the controller down: the debounce timer, the pending
// completion timer, the orientation recapture, and the environment listeners
// are all cancelled together. Signals arriving afterwards are ignored.
func (c *Controller) Destroy() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.destroyed = true
	if c.debounce != nil {
		c.debounce.Stop()
	}
	if c.didTimer != nil {
		c.didTimer.Stop()
	}
	if c.orientTimer != nil {
		c.orientTimer.Stop()
	}
	detach := c.detach
	c.detach = nil
	c.mu.Unlock()

	if detach != nil {
		detach()
	}
	c.registry.RemoveAllListeners()
	c.log.Info("controller destroyed")
}
