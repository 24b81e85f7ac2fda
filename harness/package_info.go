// Package harness contains the generic test-runner machinery used by the
// CLMS suites: a test context similar to Go's *testing.T, result
// accumulation, pluggable test loggers, and regex-based test filters.
//
// Nothing in this package knows anything about CLMS. The domain-specific
// packages (clmstests, uitests) build their own test APIs on top of the
// Context type defined here, and the command-line entry point folds the
// Results from each suite into a final report and exit code.
package harness
