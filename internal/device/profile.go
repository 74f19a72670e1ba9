package device

import (
	"sort"

	"pocketchat/internal/errors"
	"pocketchat/internal/sample"
)

// Profile describes the fixed characteristics of a simulated device.
type Profile struct {
	Name          string
	UserAgent     string
	EngineVersion int

	// Portrait logical dimensions, px
	Width  float64
	Height float64

	// Keyboard geometry, px
	KeyboardHeight          float64 // portrait
	LandscapeKeyboardHeight float64
	AccessoryHeight         float64 // suggestion/accessory bar on top of the keyboard

	// Safe-area insets in portrait. Landscape moves the notch inset to the
	// sides and keeps the home-indicator inset at the bottom.
	Insets sample.SafeAreaInsets

	// UnderReportVisual reproduces the Safari quirk where the visual viewport
	// shrinks far less than the keyboard actually covers, while the window
	// height reflects the real occlusion.
	UnderReportVisual bool
}

// profiles are the built-in simulated devices.
var profiles = map[string]Profile{
	"iphone": {
		Name:                    "iphone",
		UserAgent:               "Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15",
		EngineVersion:           605,
		Width:                   375,
		Height:                  812,
		KeyboardHeight:          336,
		LandscapeKeyboardHeight: 209,
		AccessoryHeight:         44,
		Insets:                  sample.SafeAreaInsets{Top: 47, Bottom: 34},
	},
	"iphone-quirky": {
		Name:                    "iphone-quirky",
		UserAgent:               "Mozilla/5.0 (iPhone; CPU iPhone OS 15_8 like Mac OS X) AppleWebKit/605.1.15",
		EngineVersion:           605,
		Width:                   375,
		Height:                  812,
		KeyboardHeight:          336,
		LandscapeKeyboardHeight: 209,
		AccessoryHeight:         44,
		Insets:                  sample.SafeAreaInsets{Top: 47, Bottom: 34},
		UnderReportVisual:       true,
	},
	"android": {
		Name:                    "android",
		UserAgent:               "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Chrome/121.0",
		EngineVersion:           121,
		Width:                   412,
		Height:                  915,
		KeyboardHeight:          310,
		LandscapeKeyboardHeight: 200,
		AccessoryHeight:         48,
		Insets:                  sample.SafeAreaInsets{Top: 24},
	},
	"android-legacy": {
		Name:                    "android-legacy",
		UserAgent:               "Mozilla/5.0 (Linux; Android 9; SM-G960F) AppleWebKit/537.36 Chrome/96.0",
		EngineVersion:           96,
		Width:                   360,
		Height:                  740,
		KeyboardHeight:          280,
		LandscapeKeyboardHeight: 180,
		AccessoryHeight:         40,
		Insets:                  sample.SafeAreaInsets{Top: 24},
	},
	"web": {
		Name:          "web",
		UserAgent:     "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 Chrome/121.0",
		EngineVersion: 121,
		Width:         1280,
		Height:        800,
		// Desktop has no on-screen keyboard; a small overlay stands in for
		// one so the controller paths stay exercisable.
		KeyboardHeight:          120,
		LandscapeKeyboardHeight: 120,
	},
}

// DefaultProfile is used when no profile is configured.
const DefaultProfile = "iphone"

// ProfileByName looks up a built-in profile.
func ProfileByName(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, errors.DeviceProfileUnknown(name)
	}
	return p, nil
}

// ProfileNames returns the built-in profile names, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
