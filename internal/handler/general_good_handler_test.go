package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralGoodLifecycle(t *testing.T) {
	s := newTestServer(t)
	productID := s.createProduct(t, "GG", "Safeguard")

	code, body := s.do(t, http.MethodPost, "/api/general-goods", map[string]any{
		"product_id": productID,
		"type":       "Toiletries",
		"notes":      "Bar soap",
	})
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, "-", body["unit"])
	assert.Equal(t, "Safeguard", body["product"].(map[string]any)["name"])

	path := fmt.Sprintf("/api/general-goods/%d", uint(body["id"].(float64)))
	code, body = s.do(t, http.MethodPut, path, map[string]any{"unit": "bar"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "bar", body["unit"])

	code, body = s.do(t, http.MethodGet, "/api/general-goods?type=Toiletries", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["general_goods"], 1)

	code, _ = s.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = s.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateGeneralGood_MedicineProduct(t *testing.T) {
	s := newTestServer(t)
	productID := s.createProduct(t, "MEDICINE", "Tempra")

	code, body := s.do(t, http.MethodPost, "/api/general-goods", map[string]any{
		"product_id": productID,
		"type":       "Misc",
		"notes":      "n/a",
	})
	assert.Equal(t, http.StatusConflict, code, body)
}

func TestCreateGeneralGood_UnknownProduct(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, http.MethodPost, "/api/general-goods", map[string]any{
		"product_id": 4242,
		"type":       "Misc",
		"notes":      "n/a",
	})
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, []any{"does_not_exist"}, fieldErrors(t, body)["product_id"])
}
