package clmstests

// DoErrorProbeTests deliberately sends bad input. These are the only tests
// where an error response is the passing outcome; a success status here
// means the server accepted data it should have rejected.
func DoErrorProbeTests(t *T) {
	t.Run("unknown id yields 404", func(t *T) {
		resp, err := t.client.GetStudent("invalid-id")
		t.RequireStatus(resp, err, 404)
	})

	t.Run("unmatched barcode yields 404", func(t *T) {
		resp, err := t.client.GetStudentByBarcode("00000000000")
		t.RequireStatus(resp, err, 404)
	})

	t.Run("duplicate unique key is rejected", func(t *T) {
		f := t.requireStudentFixture()
		resp, err := t.client.CreateStudentRaw(map[string]interface{}{
			"student_id":  f.key,
			"first_name":  "Duplicate",
			"last_name":   "Probe",
			"grade_level": 10,
		})
		t.RequireStatusIn(resp, err, 400, 409)
	})

	t.Run("missing required fields are rejected", func(t *T) {
		resp, err := t.client.CreateStudentRaw(map[string]interface{}{
			"first_name": "Incomplete",
		})
		t.RequireStatusIn(resp, err, 400, 422)
	})
}
