package clmstests

import (
	"github.com/clms-qa/clms-contract-tests/api"
	"github.com/clms-qa/clms-contract-tests/harness"
)

// RunTestSuite executes the full CLMS API workflow sequence against an
// already-authenticated client. Workflows run strictly in order because
// later ones consume fixtures created by earlier ones; cleanup always runs
// last and is best-effort.
func RunTestSuite(
	client *api.Client,
	filter harness.Filter,
	testLogger harness.TestLogger,
) harness.Results {
	return harness.Run(filter, testLogger, func(c *harness.Context) {
		t := &T{context: c, client: client, fixtures: &fixtures{}}

		t.Run("students", DoStudentWorkflowTests)
		t.Run("books", DoBookWorkflowTests)
		t.Run("checkouts", DoCheckoutWorkflowTests)
		t.Run("equipment", DoEquipmentWorkflowTests)
		t.Run("equipment automation", DoEquipmentAutomationTests)
		t.Run("self-service", DoSelfServiceTests)
		t.Run("analytics", DoAnalyticsTests)
		t.Run("error handling", DoErrorProbeTests)
		t.Run("cleanup", DoCleanupTests)
	})
}
