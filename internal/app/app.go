// Package app wires the simulated device, the keyboard controller, the
// animation interpolator, and the chat panel into one Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"pocketchat/internal/animation"
	"pocketchat/internal/chat"
	"pocketchat/internal/config"
	"pocketchat/internal/device"
	"pocketchat/internal/keyboard"
	"pocketchat/internal/logger"
	"pocketchat/internal/platform"
	"pocketchat/internal/sample"
	"pocketchat/internal/ui"
)

// composerElementID identifies the chat composer to the simulated device.
const composerElementID = "composer-input"

// addressBarCollapsePx is the visual-viewport shrink a collapsed address bar
// produces on the simulated device.
const addressBarCollapsePx = 60

// keyboardEventBuffer bounds the listener-to-Update channel. Bursts beyond it
// drop the oldest event; the UI only ever needs the latest state anyway.
const keyboardEventBuffer = 16

// KeyboardEventMsg carries one keyboard lifecycle event into Update.
type KeyboardEventMsg struct {
	Event keyboard.Event
}

// ChatChunkMsg is sent when the peer streams a response chunk.
type ChatChunkMsg struct {
	Chunk chat.ResponseChunk
}

// FrameMsg drives the keyboard animation while the interpolator is active.
type FrameMsg time.Time

// Model is the main Bubble Tea model.
type Model struct {
	config  *config.Config
	version string

	phone *ui.Phone
	chat  *ui.Chat

	device     *device.Device
	controller *keyboard.Controller
	interp     *animation.Interpolator

	store *chat.Store
	peer  chat.Peer

	width  int
	height int

	accessory  bool
	addressBar bool
	statusLine string

	keyboardEvents chan keyboard.Event
	responseCh     <-chan chat.ResponseChunk
	streamCancel   context.CancelFunc
	streamBuf      string
	animating      bool
}

// New creates the app model: it builds the device from the configured
// profile, detects the platform, and brings up the keyboard controller with
// any per-platform tuning from config.
func New(cfg *config.Config, version string) (*Model, error) {
	name := cfg.GetDeviceProfile()
	if name == "" {
		name = device.DefaultProfile
	}
	profile, err := device.ProfileByName(name)
	if err != nil {
		return nil, err
	}

	dev := device.New(profile)
	plat := platform.Detect(dev.UserAgent())
	caps := platform.Caps(plat, dev.EngineVersion())

	opts := keyboard.Options{
		Platform:           plat,
		Capabilities:       caps,
		Sampler:            sample.NewEnvSampler(dev, caps),
		Env:                dev,
		TransitionDuration: cfg.GetAnimationDuration(),
		DebugLogging:       cfg.GetDebug(),
	}
	if ov, ok := cfg.GetPlatformOverride(plat.String()); ok {
		opts.Threshold = ov.ThresholdPx
		opts.Debounce = time.Duration(ov.DebounceMS) * time.Millisecond
	}

	m := &Model{
		config:         cfg,
		version:        version,
		phone:          ui.NewPhone(),
		chat:           ui.NewChat(),
		device:         dev,
		controller:     keyboard.New(opts),
		interp:         animation.New(animation.ParseEasing(cfg.GetAnimationEasing())),
		store:          chat.NewStore(),
		peer:           chat.NewScriptedPeer(40 * time.Millisecond),
		keyboardEvents: make(chan keyboard.Event, keyboardEventBuffer),
	}

	m.subscribeKeyboard()

	logger.Log("App: created, profile=%s platform=%s", profile.Name, plat)
	return m, nil
}

// Controller exposes the keyboard controller, mainly for tests and the
// headless demo.
func (m *Model) Controller() *keyboard.Controller {
	return m.controller
}

// Device exposes the simulated device.
func (m *Model) Device() *device.Device {
	return m.device
}

// Store exposes the chat transcript.
func (m *Model) Store() *chat.Store {
	return m.store
}

// Close tears down everything the model owns: the controller's timers and
// listeners, any in-flight stream, and the peer.
func (m *Model) Close() {
	if m.streamCancel != nil {
		m.streamCancel()
		m.streamCancel = nil
	}
	m.peer.Stop()
	m.controller.Destroy()
	logger.Log("App: closed")
}

// Init starts the keyboard event listener.
func (m *Model) Init() tea.Cmd {
	return m.listenForKeyboardEvent()
}

// statusFor renders the one-line controller summary shown under the phone.
func statusFor(st keyboard.ControllerState) string {
	kb := st.Keyboard
	if !kb.IsVisible && kb.Phase == keyboard.PhaseStable {
		return fmt.Sprintf("keyboard hidden · available %.0fpx", st.AvailableHeight)
	}
	return fmt.Sprintf("keyboard %s · %.0fpx · available %.0fpx", kb.Phase, kb.Height, st.AvailableHeight)
}
