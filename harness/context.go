package harness

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context tracks the state of a single test or subtest: its identifier, any
// errors reported against it, and captured debug output. It provides the
// subset of testing.T behavior that the assert and require packages need.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run executes a suite of tests within a new root Context and returns the
// accumulated results. The filter, if non-nil, selects which subtests run.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	startTime := time.Now()
	c := &Context{env: env}
	c.run(action)
	env.results.Elapsed = time.Since(startTime)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				// Deliberate exit via FailNow; the error was already recorded
				// unless an assertion failed without a message.
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		if len(c.id.Path) == 0 {
			return // the root context is a container, not a test
		}
		result := TestResult{TestID: c.id, Errors: c.errors}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

// ID returns the full path identifier of this test.
func (c *Context) ID() TestID {
	return c.id
}

// Run executes a subtest. A failure or skip inside the subtest never
// propagates to the parent; the parent always proceeds to its next step.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.recordSkip(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.recordSkip(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

func (c *Context) recordSkip(id TestID, reason string) {
	c.env.results.Skips = append(c.env.results.Skips,
		TestResult{TestID: id, Skipped: true, SkipReason: reason})
	c.env.testLogger.TestSkipped(id, reason)
}

// Errorf records a test failure without stopping the test. Assertions from
// the assert package call this.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// FailNow stops the current test immediately. Assertions from the require
// package call this after Errorf.
func (c *Context) FailNow() {
	panic(c)
}

// Skip stops the current test immediately without marking it failed.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

// SkipWithReason is Skip with an explanation that appears in the log and in
// the results.
func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Debug records debug output for the test. Depending on the test logger
// configuration it is shown after a failure, always, or never.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

// DebugLogger exposes the captured debug log so lower-level components (the
// API client, the browser session) can write into the same buffer.
func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
