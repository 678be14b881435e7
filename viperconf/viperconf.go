// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package viperconf provides a voidconf.Source backed by a viper.Viper instance.
//
// It lets a voidconf.Conf resolve values from whatever a viper instance has
// already been configured with, e.g. flags bound by the application or values
// read from files the application loaded itself.
package viperconf

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/z5labs/voidconf"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Source resolves values from a viper.Viper. Keys are nested
// under the namespace, i.e. key "name" in namespace "vcfg" is
// looked up as "vcfg.name".
type Source struct {
	namespace string
	v         *viper.Viper
}

// New returns a voidconf.NewSourceFunc for use with voidconf.WithSource.
func New(v *viper.Viper) voidconf.NewSourceFunc {
	return func(namespace string) voidconf.Source {
		return Source{
			namespace: namespace,
			v:         v,
		}
	}
}

// Path returns the viper key path for key.
func (src Source) Path(key string) string {
	if src.namespace == "" {
		return key
	}
	return src.namespace + "." + key
}

// LookupError occurs when a value set in viper can not be
// rendered as a string.
type LookupError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e LookupError) Error() string {
	return fmt.Sprintf("failed to render viper value as string: %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e LookupError) Unwrap() error {
	return e.Cause
}

// Get implements the voidconf.Source interface. Maps, slices and arrays
// are rendered as JSON so they can be read by voidconf.JSON entries.
// Any other value viper holds is rendered with cast.ToStringE.
func (src Source) Get(key string) (voidconf.Optional[string], error) {
	path := src.Path(key)
	if !src.v.IsSet(path) {
		return voidconf.None[string](), nil
	}

	s, err := render(src.v.Get(path))
	if err != nil {
		return voidconf.None[string](), LookupError{Path: path, Cause: err}
	}
	return voidconf.Some(s), nil
}

func render(x any) (string, error) {
	if _, ok := x.([]byte); ok {
		return cast.ToStringE(x)
	}

	switch reflect.ValueOf(x).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		b, err := json.Marshal(x)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return cast.ToStringE(x)
	}
}
