package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"pocketchat/internal/errors"
)

// AnimationConfig controls how the keyboard transition is rendered.
type AnimationConfig struct {
	DurationMS int    `json:"duration_ms,omitempty"` // transition length, defaults to 250
	Easing     string `json:"easing,omitempty"`      // "ease-out" or "spring"
}

// PlatformOverride tunes the keyboard controller's heuristics for one
// platform. Zero values mean "use the built-in default".
type PlatformOverride struct {
	ThresholdPx float64 `json:"threshold_px,omitempty"` // minimum occlusion treated as a keyboard
	DebounceMS  int     `json:"debounce_ms,omitempty"`  // signal-settling window
}

// Config holds the application configuration
type Config struct {
	Debug                bool                        `json:"debug,omitempty"`                 // Verbose debug logging
	Theme                string                      `json:"theme,omitempty"`                 // UI theme name (e.g., "dark", "light")
	DeviceProfile        string                      `json:"device_profile,omitempty"`        // Simulated device (e.g., "iphone", "android")
	NotificationsEnabled bool                        `json:"notifications_enabled,omitempty"` // Desktop notifications for incoming replies
	Animation            AnimationConfig             `json:"animation,omitempty"`
	PlatformOverrides    map[string]PlatformOverride `json:"platform_overrides,omitempty"` // Per-platform controller tuning

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pocketchat"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		PlatformOverrides: make(map[string]PlatformOverride),
		filePath:          path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// Ensure maps are initialized (not nil) after unmarshaling.
	// This must happen before Validate() since Validate() only reads.
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized ensures all maps are initialized (not nil). Only safe
// during single-threaded initialization, before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.PlatformOverrides == nil {
		c.PlatformOverrides = make(map[string]PlatformOverride)
	}
}

// Validate checks that the config is internally consistent.
// This is a read-only operation - call ensureInitialized() first if needed.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Animation.DurationMS < 0 {
		return errors.ConfigInvalid("animation duration_ms must not be negative")
	}
	switch c.Animation.Easing {
	case "", "ease-out", "spring":
	default:
		return errors.ConfigInvalid("animation easing must be \"ease-out\" or \"spring\"")
	}

	for name, ov := range c.PlatformOverrides {
		switch name {
		case "ios", "android", "web":
		default:
			return errors.ConfigInvalid("unknown platform in overrides: " + name)
		}
		if ov.ThresholdPx < 0 {
			return errors.ConfigInvalid("threshold_px must not be negative for " + name)
		}
		if ov.DebounceMS < 0 {
			return errors.ConfigInvalid("debounce_ms must not be negative for " + name)
		}
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir, err := configDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetDebug returns whether debug logging is enabled
func (c *Config) GetDebug() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Debug
}

// SetDebug sets whether debug logging is enabled
func (c *Config) SetDebug(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Debug = enabled
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetDeviceProfile returns the configured device profile name
func (c *Config) GetDeviceProfile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DeviceProfile
}

// SetDeviceProfile sets the device profile name
func (c *Config) SetDeviceProfile(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DeviceProfile = name
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetAnimationDuration returns the configured transition duration,
// defaulting to 250ms.
func (c *Config) GetAnimationDuration() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Animation.DurationMS <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(c.Animation.DurationMS) * time.Millisecond
}

// GetAnimationEasing returns the configured easing name, defaulting to
// "ease-out".
func (c *Config) GetAnimationEasing() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Animation.Easing == "" {
		return "ease-out"
	}
	return c.Animation.Easing
}

// SetAnimation sets the animation configuration
func (c *Config) SetAnimation(a AnimationConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Animation = a
}

// GetPlatformOverride returns the controller tuning for a platform, and
// whether one is configured.
func (c *Config) GetPlatformOverride(platform string) (PlatformOverride, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.PlatformOverrides == nil {
		return PlatformOverride{}, false
	}
	ov, ok := c.PlatformOverrides[platform]
	return ov, ok
}

// SetPlatformOverride sets the controller tuning for a platform. A zero
// override removes the entry.
func (c *Config) SetPlatformOverride(platform string, ov PlatformOverride) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.PlatformOverrides == nil {
		c.PlatformOverrides = make(map[string]PlatformOverride)
	}
	if ov == (PlatformOverride{}) {
		delete(c.PlatformOverrides, platform)
	} else {
		c.PlatformOverrides[platform] = ov
	}
}
