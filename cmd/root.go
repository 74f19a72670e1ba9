package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"pocketchat/internal/app"
	"pocketchat/internal/config"
	"pocketchat/internal/logger"
)

var (
	debugMode             bool
	deviceProfile         string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "pocketchat",
	Short: "Terminal chat client with a simulated mobile keyboard",
	Long: `PocketChat is a terminal chat client that behaves like a mobile app:
an on-screen keyboard slides over the viewport when the composer is focused,
and the layout adapts the way a mobile browser would - per-platform height
heuristics, safe areas, rotation, and all.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&deviceProfile, "device", "", "Device profile to simulate (iphone, android, web, ...)")
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("pocketchat %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("pocketchat %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if debugMode {
		cfg.SetDebug(true)
		logger.SetDebug(true)
	}
	if deviceProfile != "" {
		cfg.SetDeviceProfile(deviceProfile)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	m, err := app.New(cfg, version)
	if err != nil {
		return err
	}
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
