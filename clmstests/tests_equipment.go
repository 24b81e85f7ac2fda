package clmstests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clms-qa/clms-contract-tests/api"
)

func DoEquipmentWorkflowTests(t *T) {
	t.Run("create", func(t *T) {
		key := uniqueKey("QA-EQP")
		resp, err := t.client.CreateEquipment(api.EquipmentParams{
			Name:         "Contract Test Laptop",
			Category:     "COMPUTER",
			SerialNumber: key,
			Status:       "AVAILABLE",
			PurchaseDate: "2024-01-01",
		})
		t.RequireStatus(resp, err, 201)
		require.NotEmpty(t, resp.ID(), "created equipment had no data.id")
		t.fixtures.equipment = &fixture{id: resp.IDValue(), key: key}
		t.Debug("created equipment %s with id %s", key, resp.ID())
	})

	t.Run("read", func(t *T) {
		f := t.requireEquipmentFixture()
		resp, err := t.client.GetEquipment(api.IDString(f.id))
		t.RequireStatus(resp, err, 200)
		assert.Equal(t, f.key, resp.DataField("serial_number").StringValue(),
			"serial_number did not round-trip")
	})

	t.Run("update", func(t *T) {
		f := t.requireEquipmentFixture()
		resp, err := t.client.UpdateEquipment(api.IDString(f.id),
			map[string]interface{}{"status": "IN_USE"})
		t.RequireStatus(resp, err, 200)
	})

	t.Run("list", func(t *T) {
		resp, err := t.client.ListEquipment()
		t.RequireStatus(resp, err, 200)
		t.Debug("list returned %d equipment items", resp.Data().Count())
	})
}
