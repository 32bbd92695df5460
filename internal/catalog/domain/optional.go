package domain

import "github.com/goccy/go-json"

// Optional carries a partial-update field. Set is true only when the field
// was present in the request, which keeps "absent" apart from "zero" and,
// for pointer types, apart from an explicit null.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a set Optional
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the value and whether it was set
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// UnmarshalJSON marks the field as present
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

// Apply writes the value into dst when set
func (o Optional[T]) Apply(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}
