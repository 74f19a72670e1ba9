// Package device simulates a mobile environment for the chat UI: a viewport
// with safe areas, an on-screen keyboard that occludes content when an
// editable element is focused, orientation changes, and the event triggers a
// real environment would fire. The keyboard controller consumes it through
// narrow interfaces, so tests and scenarios can script it deterministically.
package device

import (
	"sync"

	"pocketchat/internal/keyboard"
	"pocketchat/internal/logger"
	"pocketchat/internal/sample"
)

// Device is a scriptable simulated device. All state transitions are applied
// synchronously; triggers are emitted to attached listeners after the state
// change, outside the device lock.
type Device struct {
	mu sync.Mutex

	profile   Profile
	landscape bool

	focusedID  string
	keyboardUp bool
	accessory  bool
	addressBar float64 // px of visual-viewport shrink from address-bar collapse
	layout     keyboard.LayoutVars
	hasLayout  bool

	listeners map[int]func(sample.Trigger)
	order     []int
	nextID    int
}

// New creates a device from a profile.
func New(p Profile) *Device {
	return &Device{
		profile:   p,
		listeners: make(map[int]func(sample.Trigger)),
	}
}

// Profile returns the device's profile.
func (d *Device) Profile() Profile {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.profile
}

// UserAgent returns the environment identification string.
func (d *Device) UserAgent() string { return d.profile.UserAgent }

// EngineVersion returns the host engine version.
func (d *Device) EngineVersion() int { return d.profile.EngineVersion }

// dims returns the current window dimensions for the active orientation.
func (d *Device) dims() (w, h float64) {
	if d.landscape {
		return d.profile.Height, d.profile.Width
	}
	return d.profile.Width, d.profile.Height
}

// keyboardHeight returns the current keyboard occlusion in px.
func (d *Device) keyboardHeight() float64 {
	if !d.keyboardUp {
		return 0
	}
	h := d.profile.KeyboardHeight
	if d.landscape {
		h = d.profile.LandscapeKeyboardHeight
	}
	if d.accessory {
		h += d.profile.AccessoryHeight
	}
	return h
}

// Geometry implements sample.Source. The readout mirrors real engines:
// Android resizes both viewports and reports the native inset, iOS shrinks
// only the visual viewport (or under-reports it on quirky builds, where the
// window height carries the real occlusion), web shrinks the visual viewport.
func (d *Device) Geometry() sample.Geometry {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, h := d.dims()
	kb := d.keyboardHeight()

	geo := sample.Geometry{
		VisualWidth:  w,
		VisualHeight: h - d.addressBar,
		WindowHeight: h,
	}

	switch {
	case d.profile.UnderReportVisual:
		if kb > 0 {
			geo.VisualHeight -= 24 // visual viewport barely moves
			geo.WindowHeight -= kb
		}
	case isAndroid(d.profile):
		geo.VisualHeight -= kb
		geo.WindowHeight -= kb
		geo.KeyboardInset = kb
	default:
		geo.VisualHeight -= kb
	}
	return geo
}

func isAndroid(p Profile) bool {
	return p.Name == "android" || p.Name == "android-legacy"
}

// Focus implements sample.Source.
func (d *Device) Focus() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.focusedID, d.focusedID != ""
}

// SafeArea implements sample.Source. Landscape moves the notch inset to the
// sides; the home indicator stays at the bottom.
func (d *Device) SafeArea() sample.SafeAreaInsets {
	d.mu.Lock()
	defer d.mu.Unlock()

	in := d.profile.Insets
	if d.landscape {
		return sample.SafeAreaInsets{Top: 0, Right: in.Top, Bottom: in.Bottom, Left: in.Top}
	}
	return in
}

// FocusEditable focuses an editable element and raises the keyboard.
func (d *Device) FocusEditable(id string) {
	d.mu.Lock()
	already := d.focusedID == id && d.keyboardUp
	d.focusedID = id
	d.keyboardUp = true
	d.mu.Unlock()

	if already {
		return
	}
	logger.Debug("Device: focus %q, keyboard up", id)
	d.emit(sample.TriggerFocusIn, sample.TriggerKeyboardGeometry, sample.TriggerViewportResize)
}

// Blur drops editable focus and lowers the keyboard. It is the device half of
// the controller's Dismiss command and is a no-op when nothing is focused.
func (d *Device) Blur() error {
	d.mu.Lock()
	if d.focusedID == "" {
		d.mu.Unlock()
		return nil
	}
	d.focusedID = ""
	d.keyboardUp = false
	d.mu.Unlock()

	logger.Debug("Device: blur, keyboard down")
	d.emit(sample.TriggerFocusOut, sample.TriggerKeyboardGeometry, sample.TriggerViewportResize)
	return nil
}

// Rotate toggles between portrait and landscape.
func (d *Device) Rotate() {
	d.mu.Lock()
	d.landscape = !d.landscape
	landscape := d.landscape
	d.mu.Unlock()

	logger.Debug("Device: rotate, landscape=%v", landscape)
	d.emit(sample.TriggerOrientationChange, sample.TriggerWindowResize, sample.TriggerViewportResize)
}

// Landscape reports the current orientation.
func (d *Device) Landscape() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.landscape
}

// SetAccessory toggles the keyboard suggestion bar, producing a height-only
// geometry change while the keyboard stays visible.
func (d *Device) SetAccessory(on bool) {
	d.mu.Lock()
	changed := d.accessory != on
	d.accessory = on
	up := d.keyboardUp
	d.mu.Unlock()

	if !changed || !up {
		return
	}
	d.emit(sample.TriggerKeyboardGeometry, sample.TriggerViewportResize)
}

// CollapseAddressBar shrinks the visual viewport without any keyboard, the
// way a scrolling address bar does. px <= 0 restores the full viewport.
func (d *Device) CollapseAddressBar(px float64) {
	d.mu.Lock()
	if px < 0 {
		px = 0
	}
	d.addressBar = px
	d.mu.Unlock()

	d.emit(sample.TriggerViewportScroll, sample.TriggerViewportResize)
}

// Attach registers a trigger listener and returns an idempotent detach
// function. Listeners are invoked in attach order.
func (d *Device) Attach(fn func(sample.Trigger)) func() {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	d.order = append(d.order, id)
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.listeners, id)
			for i, v := range d.order {
				if v == id {
					d.order = append(d.order[:i], d.order[i+1:]...)
					break
				}
			}
			d.mu.Unlock()
		})
	}
}

// emit delivers triggers to listeners in attach order, outside the lock so a
// listener may read device state re-entrantly.
func (d *Device) emit(triggers ...sample.Trigger) {
	d.mu.Lock()
	fns := make([]func(sample.Trigger), 0, len(d.order))
	for _, id := range d.order {
		fns = append(fns, d.listeners[id])
	}
	d.mu.Unlock()

	for _, trig := range triggers {
		for _, fn := range fns {
			fn(trig)
		}
	}
}

// PublishLayout implements the controller's layout write-back: the device
// stores the latest versioned snapshot for non-controller-aware consumers.
func (d *Device) PublishLayout(vars keyboard.LayoutVars) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.layout = vars
	d.hasLayout = true
}

// Layout returns the last published layout snapshot, if any.
func (d *Device) Layout() (keyboard.LayoutVars, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.layout, d.hasLayout
}
