package cli

import (
	"fmt"
	"io"

	"github.com/nbsapi/nbsapi-verify/internal/config"
)

// runGenerate writes a fresh common.yaml from the flag values. Any existing
// file at the target path is overwritten without confirmation.
func runGenerate(opts options, stdout, stderr io.Writer) int {
	if opts.host == "" {
		fmt.Fprintln(stderr, "Error: --host is required when using --generate")
		return 1
	}

	path, err := config.WritePath(opts.configDir)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	genOpts := config.GenerateOptions{
		Host:       opts.host,
		UserID:     opts.testID,
		SolutionID: opts.solution,
		Username:   opts.username,
		Password:   opts.password,
	}
	if err := config.Generate(genOpts, path); err != nil {
		fmt.Fprintf(stderr, "Error generating configuration: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Generated configuration file at: %s\n", path)
	return 0
}
