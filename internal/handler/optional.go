package handler

import (
	"bytes"
	"encoding/json"
)

// Optional is a request field that remembers whether its key was present in the body.
// An explicit null is present and carries the zero value, so required fields reject it.
type Optional[T any] struct {
	Value T
	Set   bool
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// applyTo overwrites dst when the key was present
func (o Optional[T]) applyTo(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}
