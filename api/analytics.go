package api

import "strconv"

func (c *Client) DashboardAnalytics() (*Response, error) {
	return c.Get("/analytics/dashboard")
}

func (c *Client) StudentAnalytics(periodDays int) (*Response, error) {
	return c.Get("/analytics/students?period=" + strconv.Itoa(periodDays))
}

func (c *Client) BookAnalytics(periodDays int) (*Response, error) {
	return c.Get("/analytics/books?period=" + strconv.Itoa(periodDays))
}

func (c *Client) BorrowAnalytics(periodDays int) (*Response, error) {
	return c.Get("/analytics/borrows?period=" + strconv.Itoa(periodDays))
}

func (c *Client) EquipmentAnalytics(periodDays int) (*Response, error) {
	return c.Get("/analytics/equipment?period=" + strconv.Itoa(periodDays))
}

// ExportAnalytics pulls a bulk export of the named record type
// (students, books, ...).
func (c *Client) ExportAnalytics(recordType string) (*Response, error) {
	return c.Get("/analytics/export?type=" + queryEscape(recordType))
}
