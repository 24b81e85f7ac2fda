package clmstests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clms-qa/clms-contract-tests/api"
)

func DoBookWorkflowTests(t *T) {
	t.Run("create", func(t *T) {
		key := uniqueKey("QA-ACC")
		resp, err := t.client.CreateBook(api.BookParams{
			Title:       "Contract Test Handbook",
			Author:      "Test Author",
			ISBN:        uniqueKey("978"),
			AccessionNo: key,
			Category:    "FICTION",
			Year:        2024,
		})
		t.RequireStatus(resp, err, 201)
		require.NotEmpty(t, resp.ID(), "created book had no data.id")
		t.fixtures.book = &fixture{id: resp.IDValue(), key: key}
		t.Debug("created book %s with id %s", key, resp.ID())
	})

	t.Run("read", func(t *T) {
		f := t.requireBookFixture()
		resp, err := t.client.GetBook(api.IDString(f.id))
		t.RequireStatus(resp, err, 200)
		assert.Equal(t, "Contract Test Handbook", resp.DataField("title").StringValue(),
			"title did not round-trip")
		assert.Equal(t, f.key, resp.DataField("accession_no").StringValue())
	})

	t.Run("update", func(t *T) {
		f := t.requireBookFixture()
		resp, err := t.client.UpdateBook(api.IDString(f.id),
			map[string]interface{}{"edition": "2nd Edition"})
		t.RequireStatus(resp, err, 200)
	})

	t.Run("search", func(t *T) {
		resp, err := t.client.SearchBooks("Contract Test")
		t.RequireStatus(resp, err, 200)
		t.Debug("search found %d books", resp.Data().Count())
	})

	t.Run("availability", func(t *T) {
		f := t.requireBookFixture()
		resp, err := t.client.GetBookAvailability(api.IDString(f.id))
		t.RequireStatus(resp, err, 200)
		t.Debug("availability: %s", resp.Data().JSONString())
	})
}
