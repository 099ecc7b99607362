package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level verification configuration stored in
// common.yaml. The execution engine consumes the same file as its global
// variable set, so the layout here must stay in sync with what the engine
// expects.
type Config struct {
	Variables Variables `yaml:"variables"`
}

// Variables holds the API connection variables shared by every test.
type Variables struct {
	Host       string `yaml:"host"`
	UserID     int    `yaml:"user_id"`
	SolutionID int    `yaml:"solution_id"`
	Username   string `yaml:"username,omitempty"`
	Password   string `yaml:"password,omitempty"`
}

// HasAuth reports whether both credentials are present. The "auth" and
// "all" test categories require them.
func (v Variables) HasAuth() bool {
	return v.Username != "" && v.Password != ""
}

// LoadConfig loads and validates a configuration file.
func LoadConfig(path string) (*Config, error) {
	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Validate the raw document against the schema before decoding into
	// the typed struct, so type mismatches are reported with their path.
	if err := ValidateDocument(data); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return &config, nil
}
