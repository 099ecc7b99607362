package runner

import (
	"strings"
	"testing"
)

const sampleReportLog = `{"pytest_version": "8.3.2", "$report_type": "SessionStart"}
{"$report_type": "CollectReport", "outcome": "passed", "nodeid": ""}
{"$report_type": "TestReport", "nodeid": "tests/test_health.tavern.yaml::Health check", "when": "setup", "outcome": "passed", "duration": 0.001}
{"$report_type": "TestReport", "nodeid": "tests/test_health.tavern.yaml::Health check", "when": "call", "outcome": "passed", "duration": 0.042}
{"$report_type": "TestReport", "nodeid": "tests/test_health.tavern.yaml::Health check", "when": "teardown", "outcome": "passed", "duration": 0.0005}
{"$report_type": "TestReport", "nodeid": "tests/test_login.tavern.yaml::Login works", "when": "setup", "outcome": "passed", "duration": 0.001}
{"$report_type": "TestReport", "nodeid": "tests/test_login.tavern.yaml::Login works", "when": "call", "outcome": "failed", "duration": 0.118}
{"$report_type": "TestReport", "nodeid": "tests/test_login.tavern.yaml::Login works", "when": "teardown", "outcome": "passed", "duration": 0.0004}
{"$report_type": "TestReport", "nodeid": "tests/test_slow.tavern.yaml::Skipped one", "when": "setup", "outcome": "skipped", "duration": 0.0002}
{"$report_type": "TestReport", "nodeid": "tests/test_slow.tavern.yaml::Skipped one", "when": "teardown", "outcome": "passed", "duration": 0.0001}
{"$report_type": "TestReport", "nodeid": "tests/test_broken.tavern.yaml::Broken fixture", "when": "setup", "outcome": "failed", "duration": 0.003}
{"$report_type": "SessionFinish", "exitstatus": 1}
`

func TestParseReportLog(t *testing.T) {
	capture := NewCapture()
	if err := ParseReportLog(strings.NewReader(sampleReportLog), capture); err != nil {
		t.Fatalf("Error parsing report log: %v", err)
	}

	if capture.Passed != 1 {
		t.Errorf("Expected 1 passed, got %d", capture.Passed)
	}
	if capture.Failed != 1 {
		t.Errorf("Expected 1 failed, got %d", capture.Failed)
	}
	if capture.Skipped != 1 {
		t.Errorf("Expected 1 skipped, got %d", capture.Skipped)
	}
	if capture.Errors != 1 {
		t.Errorf("Expected 1 error, got %d", capture.Errors)
	}
	if capture.Total() != 4 {
		t.Errorf("Expected total 4, got %d", capture.Total())
	}
}

func TestParseReportLogDurations(t *testing.T) {
	capture := NewCapture()
	if err := ParseReportLog(strings.NewReader(sampleReportLog), capture); err != nil {
		t.Fatalf("Error parsing report log: %v", err)
	}

	if !capture.HasDurations() {
		t.Fatal("Expected call durations to be recorded")
	}
	// Only call-phase durations count: 42ms and 118ms.
	if min := capture.MinDuration().Milliseconds(); min < 40 || min > 45 {
		t.Errorf("Expected min around 42ms, got %v", capture.MinDuration())
	}
	if max := capture.MaxDuration().Milliseconds(); max < 115 || max > 121 {
		t.Errorf("Expected max around 118ms, got %v", capture.MaxDuration())
	}
}

func TestParseReportLogIgnoresGarbage(t *testing.T) {
	log := `not json at all
{"$report_type": "Unknown"}
{"$report_type": "TestReport", "nodeid": "t::x", "when": "call", "outcome": "passed", "duration": 0.01}
`
	capture := NewCapture()
	if err := ParseReportLog(strings.NewReader(log), capture); err != nil {
		t.Fatalf("Error parsing report log: %v", err)
	}
	if capture.Total() != 1 || capture.Passed != 1 {
		t.Errorf("Expected exactly 1 passed outcome, got %+v", capture)
	}
}

func TestParseReportLogEmpty(t *testing.T) {
	capture := NewCapture()
	if err := ParseReportLog(strings.NewReader(""), capture); err != nil {
		t.Fatalf("Error parsing empty report log: %v", err)
	}
	if capture.Total() != 0 {
		t.Errorf("Expected no outcomes, got %d", capture.Total())
	}
	if capture.HasDurations() {
		t.Error("Expected no durations recorded")
	}
}
