package api

// BookParams is the creation payload for a book record. Both isbn and
// accession_no are unique keys.
type BookParams struct {
	Title       string `json:"title,omitempty"`
	Author      string `json:"author,omitempty"`
	ISBN        string `json:"isbn,omitempty"`
	AccessionNo string `json:"accession_no,omitempty"`
	Category    string `json:"category,omitempty"`
	Year        int    `json:"year,omitempty"`
}

func (c *Client) CreateBook(params BookParams) (*Response, error) {
	return c.Post("/books", params)
}

func (c *Client) GetBook(id string) (*Response, error) {
	return c.Get("/books/" + pathEscape(id))
}

func (c *Client) UpdateBook(id string, fields map[string]interface{}) (*Response, error) {
	return c.Put("/books/"+pathEscape(id), fields)
}

func (c *Client) DeleteBook(id string) (*Response, error) {
	return c.Delete("/books/" + pathEscape(id))
}

func (c *Client) ListBooks() (*Response, error) {
	return c.Get("/books")
}

func (c *Client) SearchBooks(query string) (*Response, error) {
	return c.Get("/books/search?q=" + queryEscape(query))
}

// GetBookAvailability reports how many copies of a book can be checked out.
func (c *Client) GetBookAvailability(id string) (*Response, error) {
	return c.Get("/books/" + pathEscape(id) + "/availability")
}
