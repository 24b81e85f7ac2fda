package harness

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// TestID identifies a test or subtest as a path of names, outermost first.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// TestResult is the outcome of a single test or subtest.
type TestResult struct {
	TestID     TestID
	Errors     []error
	Skipped    bool
	SkipReason string
}

// Results accumulates the outcomes of an entire run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skips    []TestResult
	Elapsed  time.Duration
}

// OK returns true if no test in the run failed. Skipped tests do not count
// as failures.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Passed returns the number of tests that ran and did not fail.
func (r Results) Passed() int {
	return len(r.Tests) - len(r.Failures)
}

// Merge combines the results of several sequentially executed suites into
// one report. Elapsed times are summed since the suites never overlap.
func Merge(all ...Results) Results {
	var merged Results
	for _, r := range all {
		merged.Tests = append(merged.Tests, r.Tests...)
		merged.Failures = append(merged.Failures, r.Failures...)
		merged.Skips = append(merged.Skips, r.Skips...)
		merged.Elapsed += r.Elapsed
	}
	return merged
}

// PrintResults writes the human-readable summary that ends every run:
// pass/fail/skip counts, elapsed wall-clock time, and one line per failure.
func PrintResults(w io.Writer, results Results) {
	passedColor := color.New(color.FgGreen)
	failedColor := color.New(color.FgRed)
	skippedColor := color.New(color.FgYellow)

	if results.OK() {
		_, _ = passedColor.Fprintf(w, "All tests passed")
	} else {
		_, _ = failedColor.Fprintf(w, "%d tests failed", len(results.Failures))
	}
	fmt.Fprintf(w, " (%d passed", results.Passed())
	if len(results.Skips) > 0 {
		fmt.Fprintf(w, ", ")
		_, _ = skippedColor.Fprintf(w, "%d skipped", len(results.Skips))
	}
	fmt.Fprintf(w, ", %.2fs elapsed)\n", results.Elapsed.Seconds())

	if !results.OK() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "FAILED TESTS:")
		for _, f := range results.Failures {
			fmt.Fprintf(w, "* %s\n", f.TestID)
			for _, err := range f.Errors {
				for _, line := range strings.Split(err.Error(), "\n") {
					fmt.Fprintf(w, "    %s\n", line)
				}
			}
		}
	}
}
