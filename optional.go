// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package voidconf

// Optional represents a value that may or may not be set. This
// distinguishes between "not set" and "set to the zero value".
//
// The zero value of Optional is unset.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an unset Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Value returns the underlying value and whether or not it was set.
func (o Optional[T]) Value() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the Optional holds a value.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Or returns the underlying value if set, otherwise def.
func (o Optional[T]) Or(def T) T {
	if !o.set {
		return def
	}
	return o.value
}
