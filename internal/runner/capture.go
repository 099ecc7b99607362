package runner

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Capture accumulates outcome counts and call durations from one engine
// invocation. It belongs to that invocation alone and is discarded after
// the summary is printed; it is not safe for concurrent use and does not
// need to be.
type Capture struct {
	Passed  int
	Failed  int
	Skipped int
	Errors  int

	// Call durations, 1µs to 1h, 3 significant figures.
	latencyHist *hdrhistogram.Histogram
}

// NewCapture returns an empty capture.
func NewCapture() *Capture {
	return &Capture{
		latencyHist: hdrhistogram.New(1, int64(time.Hour/time.Microsecond), 3),
	}
}

// Observe implements Observer.
func (c *Capture) Observe(ev Event) {
	switch ev.Outcome {
	case OutcomePassed:
		c.Passed++
	case OutcomeFailed:
		c.Failed++
	case OutcomeSkipped:
		c.Skipped++
	case OutcomeError:
		c.Errors++
	}

	if ev.Duration > 0 {
		// RecordValue only fails when the value is out of histogram
		// range; durations beyond an hour are simply not recorded.
		_ = c.latencyHist.RecordValue(int64(ev.Duration * float64(time.Second/time.Microsecond)))
	}
}

// Total returns the number of observed test outcomes.
func (c *Capture) Total() int {
	return c.Passed + c.Failed + c.Skipped + c.Errors
}

// HasDurations reports whether any call durations were recorded.
func (c *Capture) HasDurations() bool {
	return c.latencyHist.TotalCount() > 0
}

// MinDuration returns the fastest recorded call.
func (c *Capture) MinDuration() time.Duration {
	return time.Duration(c.latencyHist.Min()) * time.Microsecond
}

// MaxDuration returns the slowest recorded call.
func (c *Capture) MaxDuration() time.Duration {
	return time.Duration(c.latencyHist.Max()) * time.Microsecond
}

// DurationAtPercentile returns the call duration at the given percentile.
func (c *Capture) DurationAtPercentile(p float64) time.Duration {
	return time.Duration(c.latencyHist.ValueAtQuantile(p)) * time.Microsecond
}
