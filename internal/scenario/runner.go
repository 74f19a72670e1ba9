package scenario

import (
	"context"
	"time"

	"pocketchat/internal/logger"
)

// Host is the surface a scenario drives. The app and the headless demo both
// implement it over the simulated device and keyboard controller.
type Host interface {
	Focus(id string)
	Blur()
	Say(text string)
	Rotate()
	SetAccessory(on bool)
	CollapseAddressBar(px float64)
	Dismiss()
}

// Run executes a scenario against the host. Wait steps sleep real time so
// debounce and transition timers can fire; the context cancels a run early.
func Run(ctx context.Context, sc *Scenario, host Host) error {
	logger.Info("Scenario: running %q (%d steps)", sc.Name, len(sc.Steps))

	for i, step := range sc.Steps {
		select {
		case <-ctx.Done():
			logger.Info("Scenario: %q cancelled at step %d", sc.Name, i)
			return ctx.Err()
		default:
		}

		switch {
		case step.Focus != "":
			host.Focus(step.Focus)
		case step.Blur:
			host.Blur()
		case step.Say != "":
			host.Say(step.Say)
		case step.Rotate:
			host.Rotate()
		case step.Accessory != nil:
			host.SetAccessory(*step.Accessory)
		case step.CollapseAddressBar != nil:
			host.CollapseAddressBar(*step.CollapseAddressBar)
		case step.Dismiss:
			host.Dismiss()
		case step.Wait != nil:
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(step.Wait.Duration):
			}
		}
	}

	logger.Info("Scenario: %q finished", sc.Name)
	return nil
}
