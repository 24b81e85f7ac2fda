package clmstests

import (
	"strings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/clms-qa/clms-contract-tests/api"
	"github.com/clms-qa/clms-contract-tests/harness"
)

// T represents a test or subtest in the CLMS API suite.
//
// It implements the same basic functionality as Go's testing.T, but outside
// of the Go test runner, so the assert and require packages can be used
// against it directly. Every T shares the run's API client and fixture set;
// the client's request trace is routed into the captured debug output of
// whichever subtest is currently executing.
type T struct {
	context  *harness.Context
	client   *api.Client
	fixtures *fixtures
}

// fixture is one record created by this run, remembered so later steps can
// read, update, and finally delete it. The identifier is kept exactly as the
// server returned it (see api.BorrowParams for why).
type fixture struct {
	id      ldvalue.Value
	key     string // the unique business key submitted at creation
	barcode string
}

// fixtures holds at most one in-flight record per entity kind. A nil entry
// means the creating step failed (or has not run), and dependent steps skip.
type fixtures struct {
	student   *fixture
	book      *fixture
	equipment *fixture
	checkout  *fixture
}

// uniqueKey builds a run-unique business key. The original CLMS scripts used
// wall-clock timestamps and fixed IDs, which collide when runs overlap or
// cleanup fails; a random suffix does not.
func uniqueKey(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run executes a subtest with the same client and fixture set.
func (t *T) Run(name string, action func(*T)) {
	parentLogger := t.context.DebugLogger()
	t.context.Run(name, func(c *harness.Context) {
		t1 := &T{context: c, client: t.client, fixtures: t.fixtures}
		t.client.SetLogger(c.DebugLogger())
		defer t.client.SetLogger(parentLogger)
		action(t1)
	})
}

// Debug logs debug output for the test, shown by the console logger after a
// failure (or always, with -debug-all).
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// SkipWithReason stops the current test without failing it.
func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

// Client returns the run's API client.
func (t *T) Client() *api.Client {
	return t.client
}

// RequireStatus fails and exits the current test unless the request
// succeeded at the transport level and returned the expected status. The
// response body is included in the failure message for diagnosis.
func (t *T) RequireStatus(resp *api.Response, err error, expected int) *api.Response {
	require.NoError(t, err)
	if resp.Status != expected {
		require.Failf(t, "unexpected response status",
			"expected %d, got %d: %s", expected, resp.Status, resp.BodyExcerpt())
	}
	return resp
}

// RequireStatusIn is RequireStatus for operations where the contract allows
// more than one status, such as the expected-error probes (400 or 409 for a
// duplicate key).
func (t *T) RequireStatusIn(resp *api.Response, err error, expected ...int) *api.Response {
	require.NoError(t, err)
	for _, status := range expected {
		if resp.Status == status {
			return resp
		}
	}
	require.Failf(t, "unexpected response status",
		"expected one of %v, got %d: %s", expected, resp.Status, resp.BodyExcerpt())
	return resp
}

// requireStudentFixture skips the current test when the student workflow
// failed to create its record.
func (t *T) requireStudentFixture() *fixture {
	if t.fixtures.student == nil {
		t.SkipWithReason("no student fixture; the create step did not succeed")
	}
	return t.fixtures.student
}

func (t *T) requireBookFixture() *fixture {
	if t.fixtures.book == nil {
		t.SkipWithReason("no book fixture; the create step did not succeed")
	}
	return t.fixtures.book
}

func (t *T) requireEquipmentFixture() *fixture {
	if t.fixtures.equipment == nil {
		t.SkipWithReason("no equipment fixture; the create step did not succeed")
	}
	return t.fixtures.equipment
}

func (t *T) requireCheckoutFixture() *fixture {
	if t.fixtures.checkout == nil {
		t.SkipWithReason("no checkout fixture; the checkout step did not succeed")
	}
	return t.fixtures.checkout
}
