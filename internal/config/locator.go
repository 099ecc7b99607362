package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the well-known name of the configuration file.
const FileName = "common.yaml"

// appDirName is the subdirectory of the platform user config directory
// where the configuration may live.
const appDirName = "nbsverify"

// For mocking in tests
var osGetwd = os.Getwd
var osUserConfigDir = os.UserConfigDir

// SearchLocations returns the candidate configuration paths in priority
// order for the given working directory and user config directory. It is a
// pure function; callers resolve the directories themselves.
func SearchLocations(workDir, userConfigDir string) []string {
	locations := []string{filepath.Join(workDir, FileName)}
	if userConfigDir != "" {
		locations = append(locations, filepath.Join(userConfigDir, appDirName, FileName))
	}
	return locations
}

// NotFoundError reports that no configuration file exists in any searched
// location.
type NotFoundError struct {
	Searched []string
}

// Error returns the error message with remediation text.
func (e *NotFoundError) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration file not found in any of these locations:\n")
	for _, loc := range e.Searched {
		sb.WriteString("  " + loc + "\n")
	}
	sb.WriteString("\nPlease run with --generate flag first to create configuration.")
	return sb.String()
}

// FindConfig resolves the configuration file to use for a run.
//
// When configDir is non-empty only that directory is consulted; a missing
// file there is an error naming the exact path, with no fallback. Otherwise
// the search order is the current working directory followed by the
// platform user config directory.
func FindConfig(configDir string) (string, error) {
	if configDir != "" {
		path := filepath.Join(configDir, FileName)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("configuration file not found at %s", path)
		}
		return path, nil
	}

	wd, err := osGetwd()
	if err != nil {
		return "", fmt.Errorf("error resolving working directory: %w", err)
	}

	// The user config dir is best effort; some environments have no HOME.
	userDir, err := osUserConfigDir()
	if err != nil {
		userDir = ""
	}

	locations := SearchLocations(wd, userDir)
	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc, nil
		}
	}

	return "", &NotFoundError{Searched: locations}
}
