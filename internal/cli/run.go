package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/nbsapi/nbsapi-verify/internal/config"
	"github.com/nbsapi/nbsapi-verify/internal/output"
	"github.com/nbsapi/nbsapi-verify/internal/runner"
	"github.com/nbsapi/nbsapi-verify/internal/testfile"
	"github.com/nbsapi/nbsapi-verify/internal/verify"
)

// runTests locates and loads the configuration, gates the requested test
// category against it and the discovered test files, and only then hands
// off to the execution engine. All validation failures are terminal and
// happen before the engine runs.
func runTests(opts options, engine runner.Engine, stdout, stderr io.Writer) int {
	category, err := verify.ParseCategory(opts.testType)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Locate configuration
	configPath, err := config.FindConfig(opts.configDir)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	// Discover test files and their category marks
	files, err := testfile.Discover(opts.testDir)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Gate the run: requested category must be supported by both the
	// configuration and the available test files.
	if err := verify.CheckRun(category, cfg, files); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx := context.Background()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	capture := runner.NewCapture()
	code, err := engine.Run(ctx, runner.Options{
		TestDir:    opts.testDir,
		ConfigPath: configPath,
		Category:   category,
		EngineBin:  opts.engineBin,
	}, capture)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if code == 0 {
			code = 1
		}
		return code
	}

	// Print formatted results; the exit code is the engine's own.
	fmt.Fprint(stdout, output.FormatSummary(capture, opts.noColor))

	return code
}
