package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nbsapi/nbsapi-verify/internal/runner"
)

var version = "0.1.0"

// exitCode is set by the root command's Run and returned by Execute, so
// the engine's exit code propagates verbatim to the process exit status.
var exitCode int

// RootCmd is the single command of the tool; there are no subcommands.
var RootCmd = &cobra.Command{
	Use:     "nbsverify",
	Short:   "Configuration generator and runner for the API verification suite",
	Version: version,
	Long: `nbsverify generates the common.yaml configuration consumed by the
declarative API verification suite and invokes the external test-execution
engine against it, summarizing the results.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := optionsFromFlags(cmd)
		exitCode = run(opts, &runner.ExecEngine{}, os.Stdout, os.Stderr)
	},
}

// options carries all flag values for one invocation.
type options struct {
	generate  bool
	configDir string
	host      string
	testID    int
	username  string
	password  string
	solution  int
	testType  string
	testDir   string
	engineBin string
	timeout   time.Duration
	noColor   bool
}

// optionsFromFlags reads the parsed flag set into an options struct.
func optionsFromFlags(cmd *cobra.Command) options {
	var opts options
	opts.generate, _ = cmd.Flags().GetBool("generate")
	opts.configDir, _ = cmd.Flags().GetString("config-dir")
	opts.host, _ = cmd.Flags().GetString("host")
	opts.testID, _ = cmd.Flags().GetInt("testid")
	opts.username, _ = cmd.Flags().GetString("username")
	opts.password, _ = cmd.Flags().GetString("password")
	opts.solution, _ = cmd.Flags().GetInt("solution")
	opts.testType, _ = cmd.Flags().GetString("test-type")
	opts.testDir, _ = cmd.Flags().GetString("test-dir")
	opts.engineBin, _ = cmd.Flags().GetString("engine")
	opts.timeout, _ = cmd.Flags().GetDuration("timeout")
	opts.noColor, _ = cmd.Flags().GetBool("no-color")
	return opts
}

// run dispatches between the two entry paths: configuration generation and
// test execution. It returns the process exit code.
func run(opts options, engine runner.Engine, stdout, stderr io.Writer) int {
	if opts.generate {
		return runGenerate(opts, stdout, stderr)
	}
	return runTests(opts, engine, stdout, stderr)
}

// Execute runs the root command and returns the process exit code.
// This is called by main.main().
func Execute() int {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

func init() {
	RootCmd.Flags().Bool("generate", false, "Generate common.yaml configuration file")
	RootCmd.Flags().String("config-dir", "", "Custom directory for common.yaml (defaults to current directory)")
	RootCmd.Flags().String("host", "", "API host (e.g., http://localhost:8000)")
	RootCmd.Flags().Int("testid", 1, "Existing test user ID")
	RootCmd.Flags().String("username", "", "Existing test username for auth tests")
	RootCmd.Flags().String("password", "", "Existing test password for auth tests")
	RootCmd.Flags().Int("solution", 1, "Existing test solution ID")
	RootCmd.Flags().String("test-type", "all", "Type of tests to run (all, auth, public)")
	RootCmd.Flags().String("test-dir", "tests", "Directory containing the declarative test files")
	RootCmd.Flags().String("engine", runner.DefaultEngineBin, "Path to the test-execution engine binary")
	RootCmd.Flags().Duration("timeout", 0, "Overall deadline for the engine invocation (0 for none)")
	RootCmd.Flags().Bool("no-color", false, "Disable colored output")
}
