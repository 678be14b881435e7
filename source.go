// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package voidconf

// Source is an origin of raw configuration values, e.g. the
// environment, a file or a remote service.
//
// Get returns the raw value for key, or an unset [Optional] if the
// Source has no value for it. Absence is never an error; defaults
// are handled by the [Conf]. Errors are reserved for lookups which
// failed abnormally.
type Source interface {
	Get(key string) (Optional[string], error)
}

// NewSourceFunc constructs a [Source] scoped to the given namespace.
// Implementations must not perform I/O.
type NewSourceFunc func(namespace string) Source

// Map is an in-memory [Source]. Keys are matched exactly
// without any translation.
type Map map[string]string

// Get implements the [Source] interface.
func (m Map) Get(key string) (Optional[string], error) {
	v, ok := m[key]
	if !ok {
		return None[string](), nil
	}
	return Some(v), nil
}

// FromMap returns a [NewSourceFunc] which ignores the namespace
// and always resolves values from m.
func FromMap(m Map) NewSourceFunc {
	return func(string) Source {
		return m
	}
}
