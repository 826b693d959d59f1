package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a patch field: either unset or set to a value.
// In JSON an absent key and an explicit null both decode to unset.
type Optional[T any] struct {
	value T
	set   bool
}

// Set returns an Optional holding v.
func Set[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool { return o.set }

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// Assign overwrites *dst when set.
func (o Optional[T]) Assign(dst *T) {
	if o.set {
		*dst = o.value
	}
}

// AssignPtr overwrites *dst with a pointer to a copy of the value when set.
func (o Optional[T]) AssignPtr(dst **T) {
	if o.set {
		v := o.value
		*dst = &v
	}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Set(v)
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
