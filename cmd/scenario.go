package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pocketchat/internal/chat"
	"pocketchat/internal/config"
	"pocketchat/internal/device"
	"pocketchat/internal/keyboard"
	"pocketchat/internal/platform"
	"pocketchat/internal/sample"
	"pocketchat/internal/scenario"
)

var scenarioFile string

var scenarioCmd = &cobra.Command{
	Use:     "scenario",
	Aliases: []string{"demo"},
	Short:   "Run scripted device scenarios headlessly",
	Long: `Run scripted device scenarios against the keyboard controller without the
TUI, printing every lifecycle event. Useful for inspecting how a device
profile behaves and for reproducing layout bugs.

Available subcommands:
  list  - List built-in scenarios
  run   - Run a scenario and print keyboard lifecycle events`,
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Built-in scenarios:")
		fmt.Println()
		for _, name := range scenario.Names() {
			sc, err := scenario.Get(name)
			if err != nil {
				continue
			}
			fmt.Printf("  %-15s %s\n", sc.Name, sc.Description)
		}
	},
}

var scenarioRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and print keyboard lifecycle events",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScenario,
}

func init() {
	scenarioRunCmd.Flags().StringVarP(&scenarioFile, "file", "f", "", "Run a scenario from a YAML file instead of a built-in")
	scenarioCmd.AddCommand(scenarioListCmd)
	scenarioCmd.AddCommand(scenarioRunCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := resolveScenario(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	return executeScenario(sc, cfg, os.Stdout)
}

func resolveScenario(args []string) (*scenario.Scenario, error) {
	if scenarioFile != "" {
		return scenario.Load(scenarioFile)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("a scenario name or --file is required\nRun 'pocketchat scenario list' to see built-ins")
	}
	return scenario.Get(args[0])
}

// executeScenario brings up a device and controller for the scenario's
// profile, subscribes to all lifecycle events, and drives the steps.
func executeScenario(sc *scenario.Scenario, cfg *config.Config, out io.Writer) error {
	name := sc.Device
	if name == "" {
		name = device.DefaultProfile
	}
	profile, err := device.ProfileByName(name)
	if err != nil {
		return err
	}

	dev := device.New(profile)
	plat := platform.Detect(dev.UserAgent())
	caps := platform.Caps(plat, dev.EngineVersion())

	opts := keyboard.Options{
		Platform:     plat,
		Capabilities: caps,
		Sampler:      sample.NewEnvSampler(dev, caps),
		Env:          dev,
		DebugLogging: cfg.GetDebug(),
	}
	if ov, ok := cfg.GetPlatformOverride(plat.String()); ok {
		opts.Threshold = ov.ThresholdPx
		opts.Debounce = time.Duration(ov.DebounceMS) * time.Millisecond
	}

	ctrl := keyboard.New(opts)
	defer ctrl.Destroy()

	for _, kind := range []keyboard.EventKind{
		keyboard.EventWillShow,
		keyboard.EventDidShow,
		keyboard.EventWillHide,
		keyboard.EventDidHide,
	} {
		ctrl.AddListener(kind, func(ev keyboard.Event) {
			fmt.Fprintf(out, "%-17s height=%-6.0f phase=%-8s visible=%v\n",
				ev.Kind, ev.State.Height, ev.State.Phase, ev.State.IsVisible)
		})
	}

	fmt.Fprintf(out, "scenario %q on %s (%s)\n\n", sc.Name, profile.Name, plat)

	host := &consoleHost{dev: dev, ctrl: ctrl, peer: chat.NewScriptedPeer(5 * time.Millisecond), out: out}
	if err := scenario.Run(context.Background(), sc, host); err != nil {
		return err
	}

	// Let the last transition's did* marker fire before reading the snapshot.
	time.Sleep(keyboard.DefaultTransitionDuration + keyboard.DefaultDebounce)

	st := ctrl.State()
	fmt.Fprintf(out, "\nfinal: visible=%v height=%.0f available=%.0f layoutVersion=%d\n",
		st.Keyboard.IsVisible, st.Keyboard.Height, st.AvailableHeight, ctrl.LayoutVersion())
	return nil
}

// consoleHost drives the simulated device from scenario steps and prints the
// chat exchange to the output stream.
type consoleHost struct {
	dev  *device.Device
	ctrl *keyboard.Controller
	peer *chat.ScriptedPeer
	out  io.Writer
}

func (h *consoleHost) Focus(id string) { h.dev.FocusEditable(id) }
func (h *consoleHost) Rotate()         { h.dev.Rotate() }
func (h *consoleHost) Dismiss()        { h.ctrl.Dismiss() }

func (h *consoleHost) Blur() {
	if err := h.dev.Blur(); err != nil {
		fmt.Fprintf(h.out, "blur failed: %v\n", err)
	}
}

func (h *consoleHost) SetAccessory(on bool) {
	h.dev.SetAccessory(on)
}

func (h *consoleHost) CollapseAddressBar(px float64) {
	h.dev.CollapseAddressBar(px)
}

// Say streams the peer's reply synchronously; scenarios are sequential.
func (h *consoleHost) Say(text string) {
	fmt.Fprintf(h.out, "you:  %s\n", text)

	var reply string
	for chunk := range h.peer.Send(context.Background(), text) {
		if chunk.Type == chat.ChunkTypeText {
			reply += chunk.Content
		}
	}
	fmt.Fprintf(h.out, "peer: %s\n", reply)
}
