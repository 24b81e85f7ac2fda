package api

import (
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// BorrowParams is the checkout payload. The book and student identifiers are
// kept as dynamic values because CLMS echoes identifiers back inconsistently
// typed, and the server expects them in whatever form it issued them.
type BorrowParams struct {
	BookID    ldvalue.Value `json:"book_id"`
	StudentID ldvalue.Value `json:"student_id"`
	DueDate   string        `json:"due_date"`
}

// CheckoutBook creates a borrow record tying a book to a student.
func (c *Client) CheckoutBook(params BorrowParams) (*Response, error) {
	return c.Post("/borrows", params)
}

// ListBorrows lists borrow records, optionally filtered by status
// (for example "ACTIVE").
func (c *Client) ListBorrows(status string) (*Response, error) {
	path := "/borrows"
	if status != "" {
		path += "?status=" + queryEscape(status)
	}
	return c.Get(path)
}

func (c *Client) OverdueBorrows() (*Response, error) {
	return c.Get("/borrows/overdue")
}

func (c *Client) StudentBorrows(studentID string) (*Response, error) {
	return c.Get("/borrows/student/" + pathEscape(studentID))
}

// ReturnBook transitions a borrow record to returned and sets its return
// timestamp.
func (c *Client) ReturnBook(borrowID string) (*Response, error) {
	return c.Put("/borrows/"+pathEscape(borrowID)+"/return", nil)
}

// UpdateFine sets a manual fine on a borrow record. Not every CLMS
// deployment exposes this endpoint.
func (c *Client) UpdateFine(borrowID string, amount float64, reason string) (*Response, error) {
	return c.Put("/borrows/"+pathEscape(borrowID)+"/fine", map[string]interface{}{
		"fine_amount": amount,
		"fine_reason": reason,
	})
}

// Deadline formats a due date n days in the future the way the borrow
// endpoints expect it.
func Deadline(daysFromNow int) string {
	return time.Now().AddDate(0, 0, daysFromNow).Format("2006-01-02")
}
