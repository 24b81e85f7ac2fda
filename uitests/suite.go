package uitests

import (
	"strings"

	"github.com/stretchr/testify/require"

	"github.com/clms-qa/clms-contract-tests/api"
	"github.com/clms-qa/clms-contract-tests/browser"
	"github.com/clms-qa/clms-contract-tests/harness"
)

// RunTestSuite launches a browser and executes the UI workflow sequence
// against the CLMS web interface at uiURL. The browser is always shut down
// before the results are returned.
func RunTestSuite(
	uiURL string,
	creds api.Credentials,
	opts browser.Options,
	filter harness.Filter,
	testLogger harness.TestLogger,
) harness.Results {
	return harness.Run(filter, testLogger, func(c *harness.Context) {
		st := &state{baseURL: strings.TrimSuffix(uiURL, "/"), creds: creds}
		t := &T{context: c, state: st}

		t.Run("startup", func(t *T) {
			session, err := browser.NewSession(opts, t.context.DebugLogger())
			require.NoError(t, err, "could not launch the browser")
			st.session = session
		})
		if st.session != nil {
			defer st.session.Close()
		}

		t.Run("login", DoLoginTests)
		t.Run("dashboard", DoDashboardTests)
		t.Run("console", DoConsoleTests)
	})
}
