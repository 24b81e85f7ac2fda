package uitests

import (
	"time"
)

// dashboardTabs lists the navigation tab markers in the order they appear in
// the application's navigation bar.
var dashboardTabs = []string{
	"dashboard-tab",
	"students-tab",
	"books-tab",
	"equipment-tab",
	"scan-workspace-tab",
	"import-data-tab",
	"reports-tab",
	"analytics-tab",
}

const tabSettleDelay = time.Millisecond * 500

func tabSelector(marker string) string {
	return `[data-testid="` + marker + `"]`
}

// DoDashboardTests clicks through every navigation tab. A tab passes when its
// marker is present and clickable; crashes while a tab renders surface in the
// console tests that follow.
func DoDashboardTests(t *T) {
	for _, marker := range dashboardTabs {
		t.Run(marker, func(t *T) {
			t.requireLoggedIn()
			tab := t.RequireElement(tabSelector(marker))
			t.RequireClick(tab)
			// Let the tab's content render before moving to the next one.
			time.Sleep(tabSettleDelay)
		})
	}
}
