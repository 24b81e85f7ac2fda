package api

import "strconv"

// The equipment automation subsystem lives under /equipment/automation. The
// GET endpoints report state; the POST endpoints trigger actions whose
// results come back as counts inside data (sent, failed, returned, ...).

func (c *Client) EquipmentStatistics() (*Response, error) {
	return c.Get("/equipment/automation/statistics")
}

func (c *Client) OverdueEquipment() (*Response, error) {
	return c.Get("/equipment/automation/overdue")
}

func (c *Client) MaintenanceSchedule() (*Response, error) {
	return c.Get("/equipment/automation/maintenance")
}

func (c *Client) EquipmentUsageAnalytics(days int) (*Response, error) {
	return c.Get("/equipment/automation/analytics?days=" + strconv.Itoa(days))
}

func (c *Client) SendOverdueNotifications() (*Response, error) {
	return c.Post("/equipment/automation/notifications/overdue", nil)
}

func (c *Client) ScheduleMaintenanceReminders() (*Response, error) {
	return c.Post("/equipment/automation/maintenance/schedule", nil)
}

func (c *Client) AutoReturnOverdueEquipment() (*Response, error) {
	return c.Post("/equipment/automation/auto-return", nil)
}

func (c *Client) RunAutomationCycle() (*Response, error) {
	return c.Post("/equipment/automation/run-cycle", nil)
}
