package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "empty config",
			config:  &Config{},
			wantErr: false,
		},
		{
			name: "valid animation",
			config: &Config{
				Animation: AnimationConfig{DurationMS: 250, Easing: "ease-out"},
			},
			wantErr: false,
		},
		{
			name: "spring easing",
			config: &Config{
				Animation: AnimationConfig{Easing: "spring"},
			},
			wantErr: false,
		},
		{
			name: "negative duration",
			config: &Config{
				Animation: AnimationConfig{DurationMS: -1},
			},
			wantErr: true,
		},
		{
			name: "unknown easing",
			config: &Config{
				Animation: AnimationConfig{Easing: "bounce"},
			},
			wantErr: true,
		},
		{
			name: "valid platform override",
			config: &Config{
				PlatformOverrides: map[string]PlatformOverride{
					"android": {ThresholdPx: 120, DebounceMS: 80},
				},
			},
			wantErr: false,
		},
		{
			name: "unknown platform",
			config: &Config{
				PlatformOverrides: map[string]PlatformOverride{
					"blackberry": {ThresholdPx: 50},
				},
			},
			wantErr: true,
		},
		{
			name: "negative threshold",
			config: &Config{
				PlatformOverrides: map[string]PlatformOverride{
					"ios": {ThresholdPx: -10},
				},
			},
			wantErr: true,
		},
		{
			name: "negative debounce",
			config: &Config{
				PlatformOverrides: map[string]PlatformOverride{
					"web": {DebounceMS: -5},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_AnimationDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetAnimationDuration(); got != 250*time.Millisecond {
		t.Errorf("GetAnimationDuration() = %v, want 250ms default", got)
	}
	if got := cfg.GetAnimationEasing(); got != "ease-out" {
		t.Errorf("GetAnimationEasing() = %q, want ease-out default", got)
	}

	cfg.SetAnimation(AnimationConfig{DurationMS: 400, Easing: "spring"})

	if got := cfg.GetAnimationDuration(); got != 400*time.Millisecond {
		t.Errorf("GetAnimationDuration() = %v, want 400ms", got)
	}
	if got := cfg.GetAnimationEasing(); got != "spring" {
		t.Errorf("GetAnimationEasing() = %q, want spring", got)
	}
}

func TestConfig_PlatformOverrides(t *testing.T) {
	cfg := &Config{} // nil map: setters must initialize it

	if _, ok := cfg.GetPlatformOverride("android"); ok {
		t.Error("GetPlatformOverride should report absent for empty config")
	}

	cfg.SetPlatformOverride("android", PlatformOverride{ThresholdPx: 120})

	ov, ok := cfg.GetPlatformOverride("android")
	if !ok {
		t.Fatal("override missing after set")
	}
	if ov.ThresholdPx != 120 {
		t.Errorf("ThresholdPx = %v, want 120", ov.ThresholdPx)
	}

	// Other platforms are unaffected.
	if _, ok := cfg.GetPlatformOverride("ios"); ok {
		t.Error("ios override should be absent")
	}

	// A zero override clears the entry.
	cfg.SetPlatformOverride("android", PlatformOverride{})
	if _, ok := cfg.GetPlatformOverride("android"); ok {
		t.Error("zero override should remove the entry")
	}
	if _, exists := cfg.PlatformOverrides["android"]; exists {
		t.Error("PlatformOverrides entry should be removed when cleared")
	}
}

func TestConfig_Accessors(t *testing.T) {
	cfg := &Config{}

	cfg.SetDebug(true)
	if !cfg.GetDebug() {
		t.Error("GetDebug should return true after SetDebug(true)")
	}

	cfg.SetTheme("light")
	if cfg.GetTheme() != "light" {
		t.Errorf("GetTheme() = %q, want light", cfg.GetTheme())
	}

	cfg.SetDeviceProfile("android")
	if cfg.GetDeviceProfile() != "android" {
		t.Errorf("GetDeviceProfile() = %q, want android", cfg.GetDeviceProfile())
	}

	cfg.SetNotificationsEnabled(true)
	if !cfg.GetNotificationsEnabled() {
		t.Error("GetNotificationsEnabled should return true after enabling")
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pocketchat-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.json")

	cfg := &Config{
		Debug:         true,
		Theme:         "dark",
		DeviceProfile: "android",
		Animation:     AnimationConfig{DurationMS: 300, Easing: "spring"},
		PlatformOverrides: map[string]PlatformOverride{
			"android": {ThresholdPx: 120, DebounceMS: 80},
		},
		filePath: configPath,
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Failed to unmarshal config: %v", err)
	}

	if !loaded.Debug {
		t.Error("Debug not persisted")
	}
	if loaded.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", loaded.Theme)
	}
	if loaded.DeviceProfile != "android" {
		t.Errorf("DeviceProfile = %q, want android", loaded.DeviceProfile)
	}
	if loaded.Animation.DurationMS != 300 || loaded.Animation.Easing != "spring" {
		t.Errorf("Animation = %+v", loaded.Animation)
	}
	if loaded.PlatformOverrides["android"].ThresholdPx != 120 {
		t.Errorf("override ThresholdPx = %v, want 120", loaded.PlatformOverrides["android"].ThresholdPx)
	}
}

func TestLoad_NewConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pocketchat-load-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", origHome)

	// Load should create a new config when none exists
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.PlatformOverrides == nil {
		t.Error("PlatformOverrides should be initialized")
	}
	if cfg.GetDeviceProfile() != "" {
		t.Errorf("fresh config device profile = %q, want empty", cfg.GetDeviceProfile())
	}
}

func TestLoad_ExistingConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pocketchat-load-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", origHome)

	dir := filepath.Join(tmpDir, ".pocketchat")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configData := `{
		"theme": "light",
		"device_profile": "iphone-quirky",
		"animation": {"duration_ms": 180, "easing": "ease-out"},
		"platform_overrides": {"ios": {"threshold_px": 60}}
	}`

	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(configData), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.GetTheme() != "light" {
		t.Errorf("Theme = %q, want light", cfg.GetTheme())
	}
	if cfg.GetDeviceProfile() != "iphone-quirky" {
		t.Errorf("DeviceProfile = %q, want iphone-quirky", cfg.GetDeviceProfile())
	}
	if cfg.GetAnimationDuration() != 180*time.Millisecond {
		t.Errorf("duration = %v, want 180ms", cfg.GetAnimationDuration())
	}
	ov, ok := cfg.GetPlatformOverride("ios")
	if !ok || ov.ThresholdPx != 60 {
		t.Errorf("ios override = (%+v, %v), want threshold 60", ov, ok)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pocketchat-load-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", origHome)

	dir := filepath.Join(tmpDir, ".pocketchat")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("invalid json"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should fail with invalid JSON")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pocketchat-load-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", origHome)

	dir := filepath.Join(tmpDir, ".pocketchat")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configData := `{"platform_overrides": {"blackberry": {"threshold_px": 50}}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(configData), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should fail validation for an unknown platform")
	}
}

func TestConfig_EnsureInitialized(t *testing.T) {
	cfg := &Config{}

	if cfg.PlatformOverrides != nil {
		t.Error("Expected nil map initially")
	}

	cfg.ensureInitialized()

	if cfg.PlatformOverrides == nil {
		t.Error("PlatformOverrides should be initialized")
	}
}
