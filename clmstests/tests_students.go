package clmstests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clms-qa/clms-contract-tests/api"
)

func DoStudentWorkflowTests(t *T) {
	t.Run("create", func(t *T) {
		key := uniqueKey("QA-STU")
		resp, err := t.client.CreateStudent(api.StudentParams{
			StudentID:     key,
			FirstName:     "Quality",
			LastName:      "Assurance",
			GradeLevel:    10,
			GradeCategory: "GENERAL",
			Section:       "A",
		})
		t.RequireStatus(resp, err, 201)
		require.NotEmpty(t, resp.ID(), "created student had no data.id")
		t.fixtures.student = &fixture{id: resp.IDValue(), key: key}
		t.Debug("created student %s with id %s", key, resp.ID())
	})

	t.Run("read", func(t *T) {
		f := t.requireStudentFixture()
		resp, err := t.client.GetStudent(api.IDString(f.id))
		t.RequireStatus(resp, err, 200)
		assert.Equal(t, f.key, resp.DataField("student_id").StringValue(),
			"student_id did not round-trip")
		assert.Equal(t, "Quality", resp.DataField("first_name").StringValue())
	})

	t.Run("update", func(t *T) {
		f := t.requireStudentFixture()
		resp, err := t.client.UpdateStudent(api.IDString(f.id),
			map[string]interface{}{"grade_level": 11})
		t.RequireStatus(resp, err, 200)

		resp, err = t.client.GetStudent(api.IDString(f.id))
		t.RequireStatus(resp, err, 200)
		assert.Equal(t, 11, resp.DataField("grade_level").IntValue(),
			"grade_level update was not persisted")
	})

	t.Run("list", func(t *T) {
		resp, err := t.client.ListStudents()
		t.RequireStatus(resp, err, 200)
		assert.True(t, resp.Data().Count() > 0 || resp.Envelope.Count > 0,
			"student list was empty even though this run created a student")
		t.Debug("list returned %d students", resp.Envelope.Count)
	})

	t.Run("search", func(t *T) {
		resp, err := t.client.SearchStudents("Quality")
		t.RequireStatus(resp, err, 200)
		t.Debug("search found %d students", resp.Data().Count())
	})

	t.Run("generate barcode", func(t *T) {
		f := t.requireStudentFixture()
		resp, err := t.client.GenerateStudentBarcode(api.IDString(f.id))
		t.RequireStatus(resp, err, 200)
		barcode := resp.DataField("barcode").StringValue()
		require.NotEmpty(t, barcode, "barcode generation returned no data.barcode")
		f.barcode = barcode
		t.Debug("generated barcode %s", barcode)
	})

	t.Run("lookup by barcode", func(t *T) {
		f := t.requireStudentFixture()
		if f.barcode == "" {
			t.SkipWithReason("no barcode; the generate step did not succeed")
		}
		resp, err := t.client.GetStudentByBarcode(f.barcode)
		t.RequireStatus(resp, err, 200)
		assert.Equal(t, f.key, resp.DataField("student_id").StringValue(),
			"barcode lookup returned a different student")
	})
}
