package tests

import (
	"encoding/json"
	"testing"

	"github.com/alanalzi/jalin-alam-project/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The dashboard forms historically sent quantities as strings; both forms
// must decode to the same integer.
func TestIntStringCoercion(t *testing.T) {
	var req dto.CreateInquiryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"order_quantity": 250}`), &req))
	assert.Equal(t, 250, req.OrderQuantity.Int())

	require.NoError(t, json.Unmarshal([]byte(`{"order_quantity": "250"}`), &req))
	assert.Equal(t, 250, req.OrderQuantity.Int())

	require.NoError(t, json.Unmarshal([]byte(`{"order_quantity": null}`), &req))
	assert.Equal(t, 0, req.OrderQuantity.Int())

	err := json.Unmarshal([]byte(`{"order_quantity": "lots"}`), &req)
	assert.Error(t, err)
}
