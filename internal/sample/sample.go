// Package sample reads instantaneous viewport geometry and focus state from a
// device. A sample is a pure snapshot: taking one has no side effects and
// holds no state between calls.
package sample

import (
	"hash/fnv"

	"pocketchat/internal/platform"
)

// RawSignal is one instantaneous reading of the environment.
type RawSignal struct {
	VisualHeight     float64 // visible viewport height, px
	VisualWidth      float64 // visible viewport width, px
	WindowHeight     float64 // full layout viewport height, px
	EnvInsetHeight   float64 // keyboard inset reported by the native API, 0 if unavailable
	EditableFocused  bool    // an editable element currently has focus
	FocusedElementID uint32  // opaque hash of the focused element, 0 if none
}

// SafeAreaInsets is the device-reported padding needed to clear notches,
// rounded corners, and home indicators. All values are non-negative.
type SafeAreaInsets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Geometry is the raw viewport readout a Source exposes.
type Geometry struct {
	VisualHeight  float64
	VisualWidth   float64
	WindowHeight  float64
	KeyboardInset float64 // native keyboard geometry, 0 when the API is absent
}

// Source is the device side of sampling. Implementations must be safe to read
// at any time; sampling never mutates them.
type Source interface {
	Geometry() Geometry
	Focus() (id string, focused bool)
	SafeArea() SafeAreaInsets
}

// Sampler produces RawSignal snapshots for the keyboard controller.
type Sampler interface {
	Sample() RawSignal
	SafeArea() SafeAreaInsets
}

// EnvSampler reads from a Source, gated by platform capabilities: the native
// keyboard inset is only surfaced when the platform actually exposes the API,
// so the controller's fallback paths see 0 everywhere else.
type EnvSampler struct {
	src  Source
	caps platform.Capabilities
}

// NewEnvSampler creates a sampler over src with the given capability set.
func NewEnvSampler(src Source, caps platform.Capabilities) *EnvSampler {
	return &EnvSampler{src: src, caps: caps}
}

// Sample takes one snapshot of geometry and focus.
func (s *EnvSampler) Sample() RawSignal {
	geo := s.src.Geometry()
	id, focused := s.src.Focus()

	sig := RawSignal{
		VisualHeight: geo.VisualHeight,
		VisualWidth:  geo.VisualWidth,
		WindowHeight: geo.WindowHeight,
	}
	if s.caps.KeyboardAPI {
		sig.EnvInsetHeight = geo.KeyboardInset
	}
	if focused {
		sig.EditableFocused = true
		sig.FocusedElementID = HashElementID(id)
	}
	return sig
}

// SafeArea reads the current safe-area insets.
func (s *EnvSampler) SafeArea() SafeAreaInsets {
	return s.src.SafeArea()
}

// HashElementID maps a device element identifier to the opaque numeric form
// carried in keyboard state. The empty identifier maps to 0 (no element).
func HashElementID(id string) uint32 {
	if id == "" {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(id))
	v := h.Sum32()
	if v == 0 {
		// 0 is reserved for "no element"
		v = 1
	}
	return v
}
