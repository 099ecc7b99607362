// Package output renders captured test results as a terminal summary.
package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/nbsapi/nbsapi-verify/internal/runner"
)

// FormatSummary renders the capture as a fixed multi-line summary. It has
// no side effects; the caller writes the result to stdout.
func FormatSummary(capture *runner.Capture, noColor bool) string {
	scheme := DefaultColorScheme()
	if !ColorEnabled(noColor) {
		scheme = NoColorScheme()
	}

	var buf strings.Builder

	buf.WriteString(scheme.Header.Sprint("▶ TEST RESULTS"))
	buf.WriteString("\n")
	buf.WriteString(fmt.Sprintf("  %s %d\n", scheme.Passed.Sprint("✓ Passed: "), capture.Passed))
	buf.WriteString(fmt.Sprintf("  %s %d\n", scheme.Failed.Sprint("✗ Failed: "), capture.Failed))
	buf.WriteString(fmt.Sprintf("  %s %d\n", scheme.Skipped.Sprint("- Skipped:"), capture.Skipped))
	buf.WriteString(fmt.Sprintf("  %s %d\n", scheme.Errored.Sprint("! Errors: "), capture.Errors))
	buf.WriteString(fmt.Sprintf("  %s %d\n", scheme.Total.Sprint("Total:    "), capture.Total()))

	if capture.HasDurations() {
		buf.WriteString(fmt.Sprintf("  Timing:    min %s / median %s / p95 %s / max %s\n",
			formatDuration(capture.MinDuration()),
			formatDuration(capture.DurationAtPercentile(50)),
			formatDuration(capture.DurationAtPercentile(95)),
			formatDuration(capture.MaxDuration())))
	}

	return buf.String()
}

// formatDuration renders a duration at millisecond precision, which is
// plenty for HTTP round trips.
func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
