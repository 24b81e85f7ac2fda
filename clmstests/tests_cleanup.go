package clmstests

import (
	"github.com/clms-qa/clms-contract-tests/api"
)

// DoCleanupTests deletes every fixture this run created. Each delete is its
// own subtest so one failure never prevents the remaining deletes from being
// attempted. Fixtures that were never created are skipped, not failed.
func DoCleanupTests(t *T) {
	t.Run("delete student", func(t *T) {
		f := t.requireStudentFixture()
		id := api.IDString(f.id)
		resp, err := t.client.DeleteStudent(id)
		t.RequireStatus(resp, err, 200)

		// A deleted record must be gone, not soft-hidden.
		resp, err = t.client.GetStudent(id)
		t.RequireStatus(resp, err, 404)
		t.fixtures.student = nil
	})

	t.Run("delete book", func(t *T) {
		f := t.requireBookFixture()
		id := api.IDString(f.id)
		resp, err := t.client.DeleteBook(id)
		t.RequireStatus(resp, err, 200)

		resp, err = t.client.GetBook(id)
		t.RequireStatus(resp, err, 404)
		t.fixtures.book = nil
	})

	t.Run("delete equipment", func(t *T) {
		f := t.requireEquipmentFixture()
		id := api.IDString(f.id)
		resp, err := t.client.DeleteEquipment(id)
		t.RequireStatus(resp, err, 200)

		resp, err = t.client.GetEquipment(id)
		t.RequireStatus(resp, err, 404)
		t.fixtures.equipment = nil
	})
}
