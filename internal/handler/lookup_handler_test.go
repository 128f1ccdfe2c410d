package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicineFormLifecycle(t *testing.T) {
	s := newTestServer(t)
	id := s.createForm(t, "Tablet")
	path := fmt.Sprintf("/api/medicine-forms/%d", id)

	code, body := s.do(t, http.MethodPut, path, map[string]any{"description": "Compressed solid dose"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Tablet", body["name"])
	assert.Equal(t, "Compressed solid dose", body["description"])

	code, body = s.do(t, http.MethodGet, "/api/medicine-forms", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["medicine_forms"], 1)

	code, _ = s.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = s.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDosageUnitLifecycle(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, http.MethodPost, "/api/dosage-units", map[string]any{"name": "milliliters", "description": "Volume"})
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, []any{"max_length"}, fieldErrors(t, body)["name"])

	id := s.create(t, "/api/dosage-units", map[string]any{"name": "ml", "description": "Volume"})
	path := fmt.Sprintf("/api/dosage-units/%d", id)

	code, body = s.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ml", body["name"])

	code, body = s.do(t, http.MethodPut, path, map[string]any{"description": ""})
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, []any{"required"}, fieldErrors(t, body)["description"])

	code, body = s.do(t, http.MethodGet, "/api/dosage-units", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["dosage_units"], 1)

	code, _ = s.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, code)
}
