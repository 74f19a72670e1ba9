package cmd

import (
	"fmt"
	"time"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"

	"pocketchat/internal/config"
	"pocketchat/internal/device"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Interactively edit PocketChat settings",
	Long: `Opens a form to edit the device profile, keyboard animation, and
notification settings, then saves them to ~/.pocketchat/config.json.`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	profile := cfg.GetDeviceProfile()
	if profile == "" {
		profile = device.DefaultProfile
	}
	easing := cfg.GetAnimationEasing()
	notifications := cfg.GetNotificationsEnabled()
	debug := cfg.GetDebug()

	names := device.ProfileNames()
	profileOptions := make([]huh.Option[string], len(names))
	for i, name := range names {
		profileOptions[i] = huh.NewOption(name, name)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Device profile").
				Options(profileOptions...).
				Value(&profile),
			huh.NewSelect[string]().
				Title("Keyboard animation").
				Options(
					huh.NewOption("Ease-out cubic", "ease-out"),
					huh.NewOption("Spring", "spring"),
				).
				Value(&easing),
			huh.NewConfirm().
				Title("Desktop notifications for replies").
				Value(&notifications),
			huh.NewConfirm().
				Title("Debug logging").
				Value(&debug),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SetDeviceProfile(profile)
	cfg.SetAnimation(config.AnimationConfig{
		DurationMS: int(cfg.GetAnimationDuration() / time.Millisecond),
		Easing:     easing,
	})
	cfg.SetNotificationsEnabled(notifications)
	cfg.SetDebug(debug)

	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Println("Saved.")
	return nil
}
