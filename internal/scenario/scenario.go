// Package scenario provides scripted device sessions for demos and tests.
// Scenarios are defined in YAML and drive the simulated device through focus,
// rotation, and typing sequences.
package scenario

import (
	"fmt"
	"time"
)

// Scenario is a named sequence of device steps.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Device      string `yaml:"device"` // device profile, defaults to the configured one
	Steps       []Step `yaml:"steps"`
}

// Step is a single scripted action. Exactly one action field must be set.
type Step struct {
	Focus              string    `yaml:"focus,omitempty"`                // focus an editable element by id
	Blur               bool      `yaml:"blur,omitempty"`                 // drop focus
	Say                string    `yaml:"say,omitempty"`                  // send a chat message
	Rotate             bool      `yaml:"rotate,omitempty"`               // toggle orientation
	Accessory          *bool     `yaml:"accessory,omitempty"`            // toggle the keyboard accessory bar
	CollapseAddressBar *float64  `yaml:"collapse_address_bar,omitempty"` // shrink the visual viewport by px
	Dismiss            bool      `yaml:"dismiss,omitempty"`              // programmatic keyboard dismissal
	Wait               *Duration `yaml:"wait,omitempty"`                 // let signals settle
}

// actionCount returns how many action fields are set on the step.
func (s Step) actionCount() int {
	n := 0
	if s.Focus != "" {
		n++
	}
	if s.Blur {
		n++
	}
	if s.Say != "" {
		n++
	}
	if s.Rotate {
		n++
	}
	if s.Accessory != nil {
		n++
	}
	if s.CollapseAddressBar != nil {
		n++
	}
	if s.Dismiss {
		n++
	}
	if s.Wait != nil {
		n++
	}
	return n
}

// Duration is a wrapper around time.Duration that implements YAML
// unmarshaling from human-readable strings like "150ms", "2s".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}
