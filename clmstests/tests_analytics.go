package clmstests

const analyticsPeriodDays = 30

// DoAnalyticsTests reads every analytics endpoint. These are pure reads over
// whatever data the deployment holds, so a 200 with an envelope is the whole
// contract; the figures are printed to the debug log only.
func DoAnalyticsTests(t *T) {
	t.Run("dashboard", func(t *T) {
		resp, err := t.client.DashboardAnalytics()
		t.RequireStatus(resp, err, 200)
		t.Debug("total students: %d",
			resp.DataField("overview").GetByKey("total_students").IntValue())
	})

	t.Run("students", func(t *T) {
		resp, err := t.client.StudentAnalytics(analyticsPeriodDays)
		t.RequireStatus(resp, err, 200)
	})

	t.Run("books", func(t *T) {
		resp, err := t.client.BookAnalytics(analyticsPeriodDays)
		t.RequireStatus(resp, err, 200)
	})

	t.Run("borrows", func(t *T) {
		resp, err := t.client.BorrowAnalytics(analyticsPeriodDays)
		t.RequireStatus(resp, err, 200)
	})

	t.Run("equipment", func(t *T) {
		resp, err := t.client.EquipmentAnalytics(analyticsPeriodDays)
		t.RequireStatus(resp, err, 200)
	})

	t.Run("export", func(t *T) {
		resp, err := t.client.ExportAnalytics("students")
		t.RequireStatus(resp, err, 200)
	})
}
