package fp

import (
	"errors"
	"fmt"
)

// errMissingFault replaces a nil error handed to Err, so that an Err is always
// distinguishable from an Ok.
var errMissingFault = errors.New("unspecified fault")

// Result is either Ok with a value of type T, or Err with a fault.
//
// Faults are ordinary error values. Callers inspect the variant with IsOk or
// Unwrap and use errors.As to recover the concrete fault type.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Err returns a failed Result carrying err.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errMissingFault
	}
	return Result[T]{err: err}
}

// Try wraps a conventional (value, error) pair.
func Try[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// IsOk reports whether r succeeded.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether r failed.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Value returns the value and true for Ok, the zero value and false for Err.
func (r Result[T]) Value() (T, bool) { return r.value, r.err == nil }

// Error returns the fault of an Err, nil for an Ok.
func (r Result[T]) Error() error { return r.err }

// Unwrap returns r as a conventional (value, error) pair.
func (r Result[T]) Unwrap() (T, error) { return r.value, r.err }

// GetOr returns the Ok value or def.
func (r Result[T]) GetOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Option drops the fault of r.
func (r Result[T]) Option() Option[T] {
	if r.err != nil {
		return None[T]()
	}
	return Some(r.value)
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// MapResult applies f to an Ok value.
//
// A failing f yields an Err whose message describes the failure and wraps its cause.
func MapResult[T, U any](r Result[T], f func(T) (U, error)) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	u, err := f(r.value)
	if err != nil {
		return Err[U](fmt.Errorf("map: %w", err))
	}
	return Ok(u)
}

// BindResult chains a Result returning computation. The first Err short-circuits the rest.
func BindResult[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return f(r.value)
}

// OkOr turns an Option into a Result, using err for None.
func OkOr[T any](o Option[T], err error) Result[T] {
	v, ok := o.Get()
	if !ok {
		return Err[T](err)
	}
	return Ok(v)
}
