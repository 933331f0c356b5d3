package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseProjection(t *testing.T) {
	resp := Response{ID: 1, Name: "Mouse", Price: 99.90}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Mouse","price":99.90}`, string(data))
}

func TestResponseProjectionHasNoExtraFields(t *testing.T) {
	data, err := json.Marshal(Response{ID: 2, Name: "Teclado", Price: 299.99})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 3)
	assert.Contains(t, decoded, "id")
	assert.Contains(t, decoded, "name")
	assert.Contains(t, decoded, "price")
}

func TestUpdateRequestOmittedFieldsStayNil(t *testing.T) {
	var req UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price":150.50}`), &req))

	assert.Nil(t, req.Name)
	require.NotNil(t, req.Price)
	assert.Equal(t, 150.50, *req.Price)
}
