package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig supplies defaults for the run command from a YAML file. Command
// line arguments take precedence over the file.
type RunConfig struct {
	// Scenarios to run when none are named on the command line.
	Scenarios []string `yaml:"scenarios"`

	// List passed and skipped cases in the summary.
	VerboseReport bool `yaml:"verboseReport"`

	// Path to write the JSON run report to.
	Report string `yaml:"report"`
}

// LoadRunConfig decodes a run configuration file. Decoding is strict: unknown
// fields are rejected so that typos do not silently drop settings.
func LoadRunConfig(path string) (*RunConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run config '%s': %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var config RunConfig
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode run config '%s': %w", path, err)
	}

	return &config, nil
}
