package clmstests

import (
	"github.com/stretchr/testify/assert"
)

// DoSelfServiceTests exercises the barcode-driven self-service subsystem
// using the barcode generated during the student workflow. The scan
// endpoints report refusals via success=false with a 200 status, so a false
// flag is recorded for diagnosis but is not a protocol failure.
func DoSelfServiceTests(t *T) {
	barcode := func(t *T) string {
		f := t.requireStudentFixture()
		if f.barcode == "" {
			t.SkipWithReason("no barcode; the generate step did not succeed")
		}
		return f.barcode
	}

	t.Run("status", func(t *T) {
		resp, err := t.client.SelfServiceStatus(barcode(t))
		t.RequireStatus(resp, err, 200)
		t.Debug("status: %s", resp.BodyExcerpt())
	})

	t.Run("check-in", func(t *T) {
		resp, err := t.client.SelfServiceCheckIn(barcode(t))
		t.RequireStatus(resp, err, 200)
		if !resp.Envelope.Success {
			t.Debug("check-in refused: %s", resp.Envelope.Message)
		}
	})

	t.Run("check-out", func(t *T) {
		resp, err := t.client.SelfServiceCheckOut(barcode(t))
		t.RequireStatus(resp, err, 200)
		if !resp.Envelope.Success {
			t.Debug("check-out refused: %s", resp.Envelope.Message)
		}
	})

	t.Run("scan auto-detect", func(t *T) {
		resp, err := t.client.SelfServiceScan(barcode(t))
		t.RequireStatus(resp, err, 200)
		if !resp.Envelope.Success {
			t.Debug("scan refused: %s", resp.Envelope.Message)
		}
	})

	t.Run("statistics", func(t *T) {
		resp, err := t.client.SelfServiceStatistics()
		t.RequireStatus(resp, err, 200)
		assert.True(t, resp.Envelope.Success, "statistics endpoint reported success=false")
		t.Debug("check-ins=%d uniqueStudents=%d",
			resp.DataField("totalCheckIns").IntValue(),
			resp.DataField("uniqueStudents").IntValue())
	})
}
