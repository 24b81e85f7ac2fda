package api

// StudentParams is the creation payload for a student record. student_id is
// a unique key; creating a duplicate is rejected by the server.
type StudentParams struct {
	StudentID     string `json:"student_id,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	GradeLevel    int    `json:"grade_level,omitempty"`
	GradeCategory string `json:"grade_category,omitempty"`
	Section       string `json:"section,omitempty"`
}

func (c *Client) CreateStudent(params StudentParams) (*Response, error) {
	return c.Post("/students", params)
}

// CreateStudentRaw sends an arbitrary payload to the student creation
// endpoint. The error-probe tests use it to submit deliberately incomplete
// input that StudentParams could not express.
func (c *Client) CreateStudentRaw(params map[string]interface{}) (*Response, error) {
	return c.Post("/students", params)
}

func (c *Client) GetStudent(id string) (*Response, error) {
	return c.Get("/students/" + pathEscape(id))
}

// UpdateStudent sends a partial update; only the listed fields change.
func (c *Client) UpdateStudent(id string, fields map[string]interface{}) (*Response, error) {
	return c.Put("/students/"+pathEscape(id), fields)
}

func (c *Client) DeleteStudent(id string) (*Response, error) {
	return c.Delete("/students/" + pathEscape(id))
}

func (c *Client) ListStudents() (*Response, error) {
	return c.Get("/students")
}

func (c *Client) SearchStudents(query string) (*Response, error) {
	return c.Get("/students/search?q=" + queryEscape(query))
}

// GenerateStudentBarcode asks the server to assign a barcode to a student.
// The new barcode comes back under data.barcode.
func (c *Client) GenerateStudentBarcode(id string) (*Response, error) {
	return c.Post("/students/generate-barcode/"+pathEscape(id), nil)
}

// GetStudentByBarcode looks a student up by barcode; an unmatched barcode
// yields 404.
func (c *Client) GetStudentByBarcode(barcode string) (*Response, error) {
	return c.Get("/students/barcode/" + pathEscape(barcode))
}
