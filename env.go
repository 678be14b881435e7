// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package voidconf

import (
	"os"
	"strings"
	"unicode/utf8"
)

// EnvSource is a [Source] where values are looked up from
// prefixed environment variables.
type EnvSource struct {
	prefix    string
	lookupEnv func(string) (string, bool)
}

// NewEnvSource returns an EnvSource whose prefix is the upper cased namespace.
// Only ASCII letters are upper cased.
func NewEnvSource(namespace string) EnvSource {
	return EnvSource{
		prefix:    asciiUpper(namespace),
		lookupEnv: os.LookupEnv,
	}
}

// Prefix returns the upper cased namespace prepended to every key.
func (src EnvSource) Prefix() string {
	return src.prefix
}

// EnvKey translates key into its environment variable name,
// {PREFIX}_{KEY} with key upper cased.
func (src EnvSource) EnvKey(key string) string {
	return src.prefix + "_" + asciiUpper(key)
}

// asciiUpper upper cases a-z only. Every other rune is left as is.
func asciiUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}

// Get implements the [Source] interface. Each call is a fresh
// lookup of the environment.
func (src EnvSource) Get(key string) (Optional[string], error) {
	envKey := src.EnvKey(key)
	v, ok := src.lookupEnv(envKey)
	if !ok {
		return None[string](), nil
	}
	if !utf8.ValidString(v) {
		return None[string](), EnvLookupError{Key: envKey, Cause: ErrNotUnicode}
	}
	return Some(v), nil
}

func newEnvSource(namespace string) Source {
	return NewEnvSource(namespace)
}
