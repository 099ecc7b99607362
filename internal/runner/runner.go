// Package runner invokes the external test-execution engine and captures
// per-test outcome events from its report log.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/nbsapi/nbsapi-verify/internal/verify"
)

// DefaultEngineBin is the execution engine invoked when no --engine flag
// is given. tavern-ci is the engine's pytest entry point.
const DefaultEngineBin = "tavern-ci"

// Outcome classifies a single test result.
type Outcome string

const (
	OutcomePassed  Outcome = "passed"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
	OutcomeError   Outcome = "error"
)

// Event is one per-test outcome reported by the engine.
type Event struct {
	NodeID   string
	Outcome  Outcome
	Duration float64 // seconds, call phase only
}

// Observer receives outcome events as they are read from the report log.
type Observer interface {
	Observe(Event)
}

// Options describes one engine invocation.
type Options struct {
	TestDir    string
	ConfigPath string
	Category   verify.Category
	EngineBin  string
}

// Engine runs the external test-execution engine. It is an interface so
// the CLI can be exercised without a real engine installed.
type Engine interface {
	Run(ctx context.Context, opts Options, obs Observer) (int, error)
}

// ExecEngine runs the engine as a subprocess, with outcome events obtained
// through the engine's report-log facility (one JSON object per line).
type ExecEngine struct {
	// Stdout and Stderr receive the engine's own output. They default to
	// the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Run invokes the engine synchronously and feeds every outcome event to
// obs. The engine's exit code is returned verbatim; err is non-nil only
// when the engine could not be started or its report log could not be read.
func (e *ExecEngine) Run(ctx context.Context, opts Options, obs Observer) (int, error) {
	bin := opts.EngineBin
	if bin == "" {
		bin = DefaultEngineBin
	}

	reportFile, err := os.CreateTemp("", "nbsverify-report-*.jsonl")
	if err != nil {
		return 1, fmt.Errorf("error creating report log: %w", err)
	}
	reportPath := reportFile.Name()
	reportFile.Close()
	defer os.Remove(reportPath)

	cmd := exec.CommandContext(ctx, bin, buildArgs(opts, reportPath)...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return 1, fmt.Errorf("error running engine %s: %w", bin, err)
		}
	}

	f, err := os.Open(reportPath)
	if err != nil {
		return exitCode, fmt.Errorf("error opening report log: %w", err)
	}
	defer f.Close()

	if err := ParseReportLog(f, obs); err != nil {
		return exitCode, fmt.Errorf("error reading report log: %w", err)
	}

	return exitCode, nil
}

// buildArgs constructs the engine argument set: target directory, quiet
// presentation flags, the config reference, the report log destination,
// and a mark filter when a single category is requested.
func buildArgs(opts Options, reportPath string) []string {
	args := []string{
		opts.TestDir,
		"-q",
		"--tb=no",
		"--no-header",
		"--no-summary",
		fmt.Sprintf("--tavern-global-cfg=%s", opts.ConfigPath),
		fmt.Sprintf("--report-log=%s", reportPath),
	}

	if opts.Category != verify.CategoryAll {
		args = append(args, "-m", string(opts.Category))
	}

	return args
}
