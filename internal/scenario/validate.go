package scenario

import "fmt"

// ValidationError describes a single validation problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a Scenario for errors and returns all problems found.
func Validate(sc *Scenario) []ValidationError {
	var errs []ValidationError

	if sc.Name == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(sc.Steps) == 0 {
		errs = append(errs, ValidationError{
			Field:   "steps",
			Message: "at least one step is required",
		})
	}

	for i, step := range sc.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		switch n := step.actionCount(); {
		case n == 0:
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "step has no action",
			})
		case n > 1:
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "step must have exactly one action",
			})
		}
		if step.Wait != nil && step.Wait.Duration < 0 {
			errs = append(errs, ValidationError{
				Field:   field + ".wait",
				Message: "wait must not be negative",
			})
		}
		if step.CollapseAddressBar != nil && *step.CollapseAddressBar < 0 {
			errs = append(errs, ValidationError{
				Field:   field + ".collapse_address_bar",
				Message: "collapse must not be negative",
			})
		}
	}

	return errs
}
