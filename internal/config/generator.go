package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GenerateOptions carries the values written into a new configuration file.
type GenerateOptions struct {
	Host       string
	UserID     int
	SolutionID int
	Username   string
	Password   string
}

// WritePath returns the path a generated configuration is written to:
// the explicit directory when one is given, otherwise the current working
// directory.
func WritePath(configDir string) (string, error) {
	if configDir != "" {
		return filepath.Join(configDir, FileName), nil
	}

	wd, err := osGetwd()
	if err != nil {
		return "", fmt.Errorf("error resolving working directory: %w", err)
	}
	return filepath.Join(wd, FileName), nil
}

// Generate builds the configuration from opts and writes it to path,
// creating parent directories as needed. Any existing file at path is
// overwritten. Username and password are included only when both are set.
func Generate(opts GenerateOptions, path string) error {
	if opts.Host == "" {
		return fmt.Errorf("host is required")
	}

	cfg := Config{
		Variables: Variables{
			Host:       opts.Host,
			UserID:     opts.UserID,
			SolutionID: opts.SolutionID,
		},
	}

	// Credentials are written only as a pair; a lone username or password
	// would produce a config the auth gate can never accept.
	if opts.Username != "" && opts.Password != "" {
		cfg.Variables.Username = opts.Username
		cfg.Variables.Password = opts.Password
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Struct encoding keeps key order stable and never emits YAML
	// anchors/aliases, so the output stays flat and human-diffable.
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
