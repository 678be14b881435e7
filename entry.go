// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package voidconf

import "reflect"

// Entry declares a single configuration option whose values are of type V.
// V only exists at the type level; an Entry carries no value of it.
//
// Entry is immutable. [Entry.WithDefault] returns a modified copy.
type Entry[V Value] struct {
	name string
	def  Optional[string]
}

// NewEntry declares an option named name with no default.
func NewEntry[V Value](name string) Entry[V] {
	return Entry[V]{name: name}
}

// WithDefault returns a copy of e with the given default. The default must
// be parseable as V, though this is only checked once the default is used.
func (e Entry[V]) WithDefault(def string) Entry[V] {
	e.def = Some(def)
	return e
}

// Name implements the [AnyEntry] interface.
func (e Entry[V]) Name() string {
	return e.name
}

// Default returns the serialized default and whether one was declared.
func (e Entry[V]) Default() (string, bool) {
	return e.def.Value()
}

// ValueType implements the [AnyEntry] interface.
func (e Entry[V]) ValueType() reflect.Type {
	return reflect.TypeFor[V]()
}

// resolve looks e up in src, falling back to its default, and parses the result.
// Source errors are returned unchanged.
func (e Entry[V]) resolve(src Source) (Optional[V], origin, error) {
	raw, err := src.Get(e.name)
	if err != nil {
		return None[V](), originUnset, err
	}

	o := originSource
	s, ok := raw.Value()
	if !ok {
		s, ok = e.def.Value()
		o = originDefault
	}
	if !ok {
		return None[V](), originUnset, nil
	}

	v, err := Parse[V](s)
	if err != nil {
		return None[V](), o, ValParseError{Key: e.name, Val: s, Cause: err}
	}
	return Some(v), o, nil
}

func (e Entry[V]) resolveAny(src Source) (any, bool, error) {
	v, _, err := e.resolve(src)
	if err != nil {
		return nil, false, err
	}
	x, ok := v.Value()
	if !ok {
		return nil, false, nil
	}
	if j, isJSON := any(x).(JSON); isJSON {
		return j.V, true, nil
	}
	return x, true, nil
}

// AnyEntry is an [Entry] with its value type erased, allowing entries
// of different value types to be registered with the same [Conf].
// It is only implemented by Entry.
type AnyEntry interface {
	Name() string
	ValueType() reflect.Type

	resolveAny(Source) (any, bool, error)
}

type origin string

const (
	originSource  origin = "source"
	originDefault origin = "default"
	originUnset   origin = "unset"
)
