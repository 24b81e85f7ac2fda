// Package clmstests contains the CLMS API test suite: a fixed sequence of
// workflow tests (students, books, checkouts, equipment, automation,
// self-service, analytics, error probes, cleanup) executed in order against
// a live CLMS deployment through the api package.
//
// Failure semantics follow the suite's single hard rule: nothing except a
// failed login stops the run. A failed step fails its own subtest; steps
// that depend on a fixture the run failed to create are skipped with a
// reason; everything else proceeds.
package clmstests
