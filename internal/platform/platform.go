// Package platform classifies the host environment of a chat session and
// reports which viewport and keyboard facilities it supports. Classification
// is a pure function of the environment's identification string; it never
// fails and never changes for the lifetime of a session.
package platform

import "strings"

// Platform identifies the environment family a session runs on.
type Platform string

const (
	IOS     Platform = "ios"
	Android Platform = "android"
	Web     Platform = "web"
)

// String returns the platform name.
func (p Platform) String() string { return string(p) }

// iosTokens are the device-family markers found in iOS identification strings.
var iosTokens = []string{"iPhone", "iPad", "iPod"}

// Detect classifies an environment identification string. iOS device-family
// tokens win over the Android token because iPadOS identification strings can
// carry both in desktop-site mode.
func Detect(userAgent string) Platform {
	for _, tok := range iosTokens {
		if strings.Contains(userAgent, tok) {
			return IOS
		}
	}
	if strings.Contains(userAgent, "Android") {
		return Android
	}
	return Web
}

// Capabilities reports which native facilities a platform exposes.
type Capabilities struct {
	ViewportResize    bool // native visual-viewport resize notifications
	KeyboardAPI       bool // native virtual-keyboard geometry API
	InteractiveResize bool // interactive-resize layout support
}

// androidKeyboardAPIMinEngine is the first engine version with the native
// virtual-keyboard geometry API on Android.
const androidKeyboardAPIMinEngine = 108

// Caps returns the capability set for a platform. engineVersion only matters
// on Android, where the keyboard API and interactive resize arrived together.
func Caps(p Platform, engineVersion int) Capabilities {
	switch p {
	case IOS:
		return Capabilities{ViewportResize: true}
	case Android:
		if engineVersion >= androidKeyboardAPIMinEngine {
			return Capabilities{ViewportResize: true, KeyboardAPI: true, InteractiveResize: true}
		}
		return Capabilities{ViewportResize: true}
	default:
		return Capabilities{ViewportResize: true, KeyboardAPI: true, InteractiveResize: true}
	}
}
