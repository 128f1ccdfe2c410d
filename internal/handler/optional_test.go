package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	var req struct {
		Brand  Optional[string] `json:"brand"`
		Status Optional[string] `json:"status"`
		FormID Optional[uint]   `json:"form_id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"brand":"Nike","status":null}`), &req))

	assert.True(t, req.Brand.Set)
	assert.Equal(t, "Nike", req.Brand.Value)
	assert.True(t, req.Status.Set, "null is present")
	assert.Empty(t, req.Status.Value)
	assert.False(t, req.FormID.Set, "omitted key is absent")
}

func TestOptional_ApplyTo(t *testing.T) {
	status := "DRAFT"

	Optional[string]{}.applyTo(&status)
	assert.Equal(t, "DRAFT", status)

	Optional[string]{Set: true}.applyTo(&status)
	assert.Empty(t, status)

	Optional[string]{Value: "PUBLISHED", Set: true}.applyTo(&status)
	assert.Equal(t, "PUBLISHED", status)
}

func TestOptional_RejectsWrongType(t *testing.T) {
	var req struct {
		FormID Optional[uint] `json:"form_id"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"form_id":"tablet"}`), &req))
}
