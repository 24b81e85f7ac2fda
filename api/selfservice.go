package api

// The self-service subsystem handles student check-in/check-out by barcode
// without staff intervention. All scan endpoints take the scanned data in a
// {"scanData": "..."} body and answer with a success flag and a message even
// when the scan is refused, so callers must look at the envelope rather than
// just the status code.

type scanRequest struct {
	ScanData string `json:"scanData"`
}

func (c *Client) SelfServiceStatus(barcode string) (*Response, error) {
	return c.Get("/self-service/status/" + pathEscape(barcode))
}

func (c *Client) SelfServiceCheckIn(scanData string) (*Response, error) {
	return c.Post("/self-service/check-in", scanRequest{ScanData: scanData})
}

func (c *Client) SelfServiceCheckOut(scanData string) (*Response, error) {
	return c.Post("/self-service/check-out", scanRequest{ScanData: scanData})
}

// SelfServiceScan is the combined endpoint that decides between check-in and
// check-out based on the student's current state.
func (c *Client) SelfServiceScan(scanData string) (*Response, error) {
	return c.Post("/self-service/scan", scanRequest{ScanData: scanData})
}

func (c *Client) SelfServiceStatistics() (*Response, error) {
	return c.Get("/self-service/statistics")
}
