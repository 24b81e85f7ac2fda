package api

// EquipmentParams is the creation payload for an equipment item.
// serial_number is a unique key.
type EquipmentParams struct {
	Name         string `json:"name,omitempty"`
	Category     string `json:"category,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	Status       string `json:"status,omitempty"`
	PurchaseDate string `json:"purchase_date,omitempty"`
}

func (c *Client) CreateEquipment(params EquipmentParams) (*Response, error) {
	return c.Post("/equipment", params)
}

func (c *Client) GetEquipment(id string) (*Response, error) {
	return c.Get("/equipment/" + pathEscape(id))
}

func (c *Client) UpdateEquipment(id string, fields map[string]interface{}) (*Response, error) {
	return c.Put("/equipment/"+pathEscape(id), fields)
}

func (c *Client) DeleteEquipment(id string) (*Response, error) {
	return c.Delete("/equipment/" + pathEscape(id))
}

func (c *Client) ListEquipment() (*Response, error) {
	return c.Get("/equipment")
}
