package fp

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Option holds a value of type T or nothing.
//
// The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None returns an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// FromPtr returns None for a nil pointer, Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the held value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// GetOr returns the held value or def when o is empty.
func (o Option[T]) GetOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MapOption applies f to the value held by o.
//
// An empty o, or an f returning an error, yields None.
func MapOption[T, U any](o Option[T], f func(T) (U, error)) Option[U] {
	v, ok := o.Get()
	if !ok {
		return None[U]()
	}
	u, err := f(v)
	if err != nil {
		return None[U]()
	}
	return Some(u)
}

// BindOption chains an Option returning computation. It short-circuits on None.
func BindOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	v, ok := o.Get()
	if !ok {
		return None[U]()
	}
	return f(v)
}

// Find returns the first element of items matching pred, or None.
func Find[T any](items []T, pred func(T) bool) Option[T] {
	for _, item := range items {
		if pred(item) {
			return Some(item)
		}
	}
	return None[T]()
}

var null = []byte("null")

// MarshalJSON encodes None as null and Some(v) as v.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return null, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and anything else as Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// check that an Option pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = Option[int]{}
var _ json.Unmarshaler = (*Option[int])(nil)
