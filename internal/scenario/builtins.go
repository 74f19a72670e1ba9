package scenario

import "time"

func boolPtr(b bool) *bool           { return &b }
func floatPtr(f float64) *float64    { return &f }
func wait(d time.Duration) *Duration { return &Duration{d} }

// builtins ship with the binary so the demo command works out of the box.
var builtins = map[string]*Scenario{
	"conversation": {
		Name:        "conversation",
		Description: "A short chat exchange with the keyboard coming and going",
		Steps: []Step{
			{Focus: "composer"},
			{Wait: wait(300 * time.Millisecond)},
			{Say: "hey, are you around?"},
			{Wait: wait(500 * time.Millisecond)},
			{Say: "I need a hand with the deploy"},
			{Wait: wait(500 * time.Millisecond)},
			{Blur: true},
			{Wait: wait(300 * time.Millisecond)},
		},
	},
	"rotation": {
		Name:        "rotation",
		Description: "Keyboard height recalibration across an orientation change",
		Steps: []Step{
			{Focus: "composer"},
			{Wait: wait(300 * time.Millisecond)},
			{Rotate: true},
			{Wait: wait(700 * time.Millisecond)},
			{Rotate: true},
			{Wait: wait(700 * time.Millisecond)},
			{Dismiss: true},
			{Wait: wait(300 * time.Millisecond)},
		},
	},
	"accessory-bar": {
		Name:        "accessory-bar",
		Description: "Height-only geometry changes from the suggestion bar",
		Steps: []Step{
			{Focus: "composer"},
			{Wait: wait(300 * time.Millisecond)},
			{Accessory: boolPtr(true)},
			{Wait: wait(300 * time.Millisecond)},
			{Accessory: boolPtr(false)},
			{Wait: wait(300 * time.Millisecond)},
			{Blur: true},
		},
	},
	"address-bar": {
		Name:        "address-bar",
		Description: "Viewport wobble from a collapsing address bar, no keyboard",
		Steps: []Step{
			{CollapseAddressBar: floatPtr(60)},
			{Wait: wait(300 * time.Millisecond)},
			{CollapseAddressBar: floatPtr(0)},
			{Wait: wait(300 * time.Millisecond)},
			{Focus: "composer"},
			{Wait: wait(300 * time.Millisecond)},
			{Dismiss: true},
		},
	},
}
