package uitests

import (
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clms-qa/clms-contract-tests/browser"
)

const consoleSettleDelay = time.Second

// DoConsoleTests reloads the application and fails on any error-level console
// output. Warnings are recorded in the debug log but do not fail the test.
func DoConsoleTests(t *T) {
	t.Run("no errors after reload", func(t *T) {
		s := t.requireSession()
		page := t.requirePage()

		s.ClearConsole()
		require.NoError(t, page.Reload())
		require.NoError(t, page.WaitLoad())
		time.Sleep(consoleSettleDelay)

		messages := s.ConsoleMessages()
		for _, m := range messages {
			if m.IsWarning() {
				t.Debug("console warning: %s", m.Text)
			}
		}
		for _, m := range browser.FilterErrors(messages) {
			t.Errorf("console error: %s", m.Text)
		}
	})
}
