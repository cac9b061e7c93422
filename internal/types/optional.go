package types

import "encoding/json"

// Optional wraps a value that may be absent from a JSON payload.
//
// encoding/json only calls UnmarshalJSON for keys that actually appear
// in the document, so after decoding:
//
//	key missing        → Set == false
//	"age": 17          → Set == true, Value == 17
//	"age": null        → Set == true, Value == zero value
//
// An explicit null therefore counts as "present" and is re-validated
// like any other value (and rejected, since the zero value violates
// every field constraint) — fields are never silently cleared.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Optional holding v. Mostly useful in tests.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON marks the field as present and decodes into Value.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON encodes the wrapped value (or null when absent).
// Request payloads are only ever decoded, but tests round-trip them.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
