package scenario

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"pocketchat/internal/errors"
)

// Load reads and parses a scenario YAML file. The scenario is validated
// before being returned.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ScenarioParseFailed(path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.ScenarioParseFailed(path, err)
	}

	if errs := Validate(&sc); len(errs) > 0 {
		return nil, errors.ScenarioParseFailed(path, errs[0])
	}

	return &sc, nil
}

// Get returns a built-in scenario by name.
func Get(name string) (*Scenario, error) {
	sc, ok := builtins[name]
	if !ok {
		return nil, errors.ScenarioNotFound(name)
	}
	return sc, nil
}

// Names returns the built-in scenario names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
