package scenario

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pocketchat/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		scenario *Scenario
		wantErrs int
	}{
		{
			name: "valid",
			scenario: &Scenario{
				Name:  "ok",
				Steps: []Step{{Focus: "composer"}, {Blur: true}},
			},
			wantErrs: 0,
		},
		{
			name:     "missing name and steps",
			scenario: &Scenario{},
			wantErrs: 2,
		},
		{
			name: "empty step",
			scenario: &Scenario{
				Name:  "bad",
				Steps: []Step{{}},
			},
			wantErrs: 1,
		},
		{
			name: "two actions in one step",
			scenario: &Scenario{
				Name:  "bad",
				Steps: []Step{{Focus: "composer", Blur: true}},
			},
			wantErrs: 1,
		},
		{
			name: "negative wait",
			scenario: &Scenario{
				Name:  "bad",
				Steps: []Step{{Wait: wait(-time.Second)}},
			},
			wantErrs: 1,
		},
		{
			name: "negative collapse",
			scenario: &Scenario{
				Name:  "bad",
				Steps: []Step{{CollapseAddressBar: floatPtr(-10)}},
			},
			wantErrs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.scenario)
			if len(errs) != tt.wantErrs {
				t.Errorf("Validate() = %v, want %d errors", errs, tt.wantErrs)
			}
		})
	}
}

func TestBuiltinsAreValid(t *testing.T) {
	for _, name := range Names() {
		sc, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if errs := Validate(sc); len(errs) > 0 {
			t.Errorf("builtin %q invalid: %v", name, errs)
		}
		if sc.Name != name {
			t.Errorf("builtin %q has mismatched name %q", name, sc.Name)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("nope")
	if err == nil {
		t.Fatal("expected error for unknown scenario")
	}
	if !errors.Is(err, errors.KindNotFound) {
		t.Errorf("error kind = %v, want not found", errors.GetKind(err))
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "demo.yaml")

	data := `
name: demo
description: focus then rotate
device: android
steps:
  - focus: composer
  - wait: 150ms
  - rotate: true
  - accessory: true
  - collapse_address_bar: 60
  - say: "hello"
  - dismiss: true
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if sc.Name != "demo" || sc.Device != "android" {
		t.Errorf("scenario header = %q/%q", sc.Name, sc.Device)
	}
	if len(sc.Steps) != 7 {
		t.Fatalf("steps = %d, want 7", len(sc.Steps))
	}
	if sc.Steps[1].Wait == nil || sc.Steps[1].Wait.Duration != 150*time.Millisecond {
		t.Errorf("wait step = %+v", sc.Steps[1])
	}
	if sc.Steps[3].Accessory == nil || !*sc.Steps[3].Accessory {
		t.Errorf("accessory step = %+v", sc.Steps[3])
	}
	if sc.Steps[4].CollapseAddressBar == nil || *sc.Steps[4].CollapseAddressBar != 60 {
		t.Errorf("collapse step = %+v", sc.Steps[4])
	}
}

func TestLoadInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	// Unparseable YAML
	bad := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("steps: ["), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load should fail on malformed YAML")
	}

	// Parseable but invalid
	invalid := filepath.Join(tmpDir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("name: x\nsteps:\n  - {}\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load should fail validation for an empty step")
	}

	// Missing file
	if _, err := Load(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

// recordingHost captures the actions a scenario performs.
type recordingHost struct {
	actions []string
}

func (h *recordingHost) Focus(id string)               { h.actions = append(h.actions, "focus:"+id) }
func (h *recordingHost) Blur()                         { h.actions = append(h.actions, "blur") }
func (h *recordingHost) Say(text string)               { h.actions = append(h.actions, "say:"+text) }
func (h *recordingHost) Rotate()                       { h.actions = append(h.actions, "rotate") }
func (h *recordingHost) SetAccessory(on bool)          { h.actions = append(h.actions, "accessory") }
func (h *recordingHost) CollapseAddressBar(px float64) { h.actions = append(h.actions, "collapse") }
func (h *recordingHost) Dismiss()                      { h.actions = append(h.actions, "dismiss") }

func TestRun(t *testing.T) {
	sc := &Scenario{
		Name: "run-test",
		Steps: []Step{
			{Focus: "composer"},
			{Wait: wait(time.Millisecond)},
			{Say: "hi"},
			{Dismiss: true},
		},
	}

	host := &recordingHost{}
	if err := Run(context.Background(), sc, host); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"focus:composer", "say:hi", "dismiss"}
	if len(host.actions) != len(want) {
		t.Fatalf("actions = %v, want %v", host.actions, want)
	}
	for i := range want {
		if host.actions[i] != want[i] {
			t.Errorf("action[%d] = %q, want %q", i, host.actions[i], want[i])
		}
	}
}

func TestRunCancelled(t *testing.T) {
	sc := &Scenario{
		Name: "cancel-test",
		Steps: []Step{
			{Wait: wait(10 * time.Second)},
			{Dismiss: true},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	host := &recordingHost{}
	if err := Run(ctx, sc, host); err == nil {
		t.Fatal("Run should return the context error when cancelled")
	}
	if len(host.actions) != 0 {
		t.Errorf("cancelled run performed %v", host.actions)
	}
}
