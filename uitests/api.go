package uitests

import (
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/stretchr/testify/require"

	"github.com/clms-qa/clms-contract-tests/api"
	"github.com/clms-qa/clms-contract-tests/browser"
	"github.com/clms-qa/clms-contract-tests/harness"
)

// state is shared by every test in one UI run: the browser session and what
// the run has achieved so far. Tests run in order; later ones skip when the
// step they depend on did not succeed.
type state struct {
	session  *browser.Session
	baseURL  string
	creds    api.Credentials
	loggedIn bool
}

// T represents a test or subtest in the UI suite. Like its API counterpart it
// implements enough of testing.T for the assert and require packages.
type T struct {
	context *harness.Context
	state   *state
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

func (t *T) FailNow() {
	t.context.FailNow()
}

// Run executes a subtest. The browser's console trace is routed into the
// subtest's captured debug output while it runs.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *harness.Context) {
		t1 := &T{context: c, state: t.state}
		if s := t.state.session; s != nil {
			parentLogger := s.Logger()
			s.SetLogger(c.DebugLogger())
			defer s.SetLogger(parentLogger)
		}
		action(t1)
	})
}

func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

func (t *T) requireSession() *browser.Session {
	if t.state.session == nil {
		t.SkipWithReason("no browser session; startup did not succeed")
	}
	return t.state.session
}

func (t *T) requirePage() *rod.Page {
	s := t.requireSession()
	if s.Page() == nil {
		t.SkipWithReason("no page is open; an earlier navigation did not succeed")
	}
	return s.Page()
}

func (t *T) requireLoggedIn() {
	t.requireSession()
	if !t.state.loggedIn {
		t.SkipWithReason("not logged in; the sign-in step did not succeed")
	}
}

// RequireElement waits for the selector to match, failing the test if it does
// not appear within the session's navigation timeout.
func (t *T) RequireElement(selector string) *rod.Element {
	el, err := t.requirePage().Element(selector)
	require.NoError(t, err, "no element matching %q", selector)
	return el
}

// RequireClick left-clicks an element, failing the test on error.
func (t *T) RequireClick(el *rod.Element) {
	require.NoError(t, el.Click(proto.InputMouseButtonLeft, 1))
}

// RequireInput types text into an element, failing the test on error.
func (t *T) RequireInput(el *rod.Element, text string) {
	require.NoError(t, el.Input(text))
}
