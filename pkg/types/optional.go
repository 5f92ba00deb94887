package types

import (
	json "github.com/goccy/go-json"
)

// Optional is a patch field with three states: unset, null, and set.
// An unset field is omitted from the request body and leaves the remote
// value unchanged. A null field is serialized as JSON null and clears
// the remote value. A set field replaces the remote value.
// The zero value is unset, so optional parameters need no initialization.
type Optional[T any] struct {
	present bool
	null    bool
	value   T
}

// Some returns an Optional holding the given value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{present: true, value: v}
}

// Null returns an Optional representing an explicit JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// Specified reports whether the field was supplied at all, as a value or
// as an explicit null. Unspecified fields never reach the wire.
func (o Optional[T]) Specified() bool {
	return o.present
}

// IsNull reports whether the field was explicitly set to null.
func (o Optional[T]) IsNull() bool {
	return o.present && o.null
}

// Value returns the held value. The boolean is false when the Optional
// is unset or null.
func (o Optional[T]) Value() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// MarshalJSON encodes the held value, or null for an explicit null.
// Returns ErrUnsetField for an unset Optional: unset fields must be
// dropped from the enclosing document before encoding, never serialized.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return nil, ErrUnsetField
	}
	if o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
