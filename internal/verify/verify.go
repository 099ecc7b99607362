// Package verify implements the pre-run gate: it cross-checks the requested
// test category against the loaded configuration and the discovered test
// files before anything is handed to the execution engine.
package verify

import (
	"fmt"
	"strings"

	"github.com/nbsapi/nbsapi-verify/internal/config"
	"github.com/nbsapi/nbsapi-verify/internal/testfile"
)

// Category selects which subset of tests to execute.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryAuth   Category = "auth"
	CategoryPublic Category = "public"
)

// ParseCategory validates a --test-type flag value.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryAll, CategoryAuth, CategoryPublic:
		return Category(s), nil
	}
	return "", fmt.Errorf("invalid test type %q, must be one of: all, auth, public", s)
}

// CheckRun verifies that the requested category can actually run against
// the given configuration and test files. Every failure is terminal for
// the run and carries its remediation in the message.
func CheckRun(category Category, cfg *config.Config, files []testfile.File) error {
	// Auth-dependent categories need credentials before anything else.
	if (category == CategoryAuth || category == CategoryAll) && !cfg.Variables.HasAuth() {
		return fmt.Errorf("test type '%s' requested but auth configuration is missing.\n"+
			"Auth tests require 'username' and 'password' in the configuration.\n"+
			"Please regenerate the configuration with --username and --password parameters.",
			category)
	}

	hasAuthTests := testfile.AnyHasMark(files, string(CategoryAuth))
	hasPublicTests := testfile.AnyHasMark(files, string(CategoryPublic))

	switch category {
	case CategoryAuth:
		if !hasAuthTests {
			return fmt.Errorf("test type '%s' requested but no auth test files found.\n"+
				"Make sure auth test files are generated and properly marked.", category)
		}
	case CategoryPublic:
		if !hasPublicTests {
			return fmt.Errorf("test type '%s' requested but no public test files found.\n"+
				"Make sure public test files are generated and properly marked.", category)
		}
	case CategoryAll:
		var missing []string
		if !hasAuthTests {
			missing = append(missing, "auth")
		}
		if !hasPublicTests {
			missing = append(missing, "public")
		}
		if len(missing) > 0 {
			return fmt.Errorf("test type '%s' requested but some test types are missing: %s.\n"+
				"Make sure all test types are generated before running 'all' tests.",
				category, strings.Join(missing, ", "))
		}
	}

	return nil
}
