package ot

import "fmt"

// Option holds a value which may be absent. Font uses it for tables a font
// may or may not contain, NameTable for data of version 1 tables only.
//
// The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome is true if a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone is true if no value is present.
func (o Option[T]) IsNone() bool { return !o.ok }

// Unwrap returns the value, if any, in "comma ok" style.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}

// MustUnwrap returns the value and panics for None.
func (o Option[T]) MustUnwrap() T {
	if !o.ok {
		var zero T
		panic(fmt.Sprintf("ot: value of type %T is absent", zero))
	}
	return o.value
}

// Or returns the value if present, def otherwise.
func (o Option[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the value of o, if present.
func Map[T any, U any](o Option[T], f func(T) U) Option[U] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[U]()
}
