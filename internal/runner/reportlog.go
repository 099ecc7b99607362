package runner

import (
	"bufio"
	"io"

	"github.com/tidwall/gjson"
)

// ParseReportLog reads an engine report log (JSON Lines, one event per
// line) and forwards test outcomes to obs.
//
// The engine emits a TestReport event per test phase (setup, call,
// teardown). The call phase carries the real outcome; a skip is reported
// during setup, and a setup or teardown failure is a test error rather
// than a test failure.
func ParseReportLog(r io.Reader, obs Observer) error {
	scanner := bufio.NewScanner(r)
	// Report lines for tests with long parametrized IDs can exceed the
	// default token size.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if !gjson.ValidBytes(line) {
			continue
		}

		result := gjson.ParseBytes(line)
		if result.Get("$report_type").String() != "TestReport" {
			continue
		}

		when := result.Get("when").String()
		outcome := result.Get("outcome").String()

		ev, ok := classify(when, outcome)
		if !ok {
			continue
		}
		ev.NodeID = result.Get("nodeid").String()
		if when == "call" {
			ev.Duration = result.Get("duration").Float()
		}
		obs.Observe(ev)
	}

	return scanner.Err()
}

// classify maps a phase/outcome pair to an Event, or reports that the pair
// carries no test-level outcome (e.g. a passed setup phase).
func classify(when, outcome string) (Event, bool) {
	switch when {
	case "call":
		switch outcome {
		case "passed":
			return Event{Outcome: OutcomePassed}, true
		case "failed":
			return Event{Outcome: OutcomeFailed}, true
		case "skipped":
			return Event{Outcome: OutcomeSkipped}, true
		}
	case "setup":
		switch outcome {
		case "skipped":
			return Event{Outcome: OutcomeSkipped}, true
		case "failed":
			return Event{Outcome: OutcomeError}, true
		}
	case "teardown":
		if outcome == "failed" {
			return Event{Outcome: OutcomeError}, true
		}
	}
	return Event{}, false
}
