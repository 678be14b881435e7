// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package voidconf

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotUnicode is the cause of an [EnvLookupError] when an environment
// variable is set but its value is not valid UTF-8 text.
var ErrNotUnicode = errors.New("environment variable was not valid unicode")

// KeyNotFoundError occurs when an accessor references a key
// which was never registered with the [Conf].
type KeyNotFoundError struct {
	Key string
}

// Error implements the error interface.
func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("expected key not found: %s", e.Key)
}

// ValNotFoundError occurs when a required key is registered
// but resolved to no value, from neither the [Source] nor its default.
type ValNotFoundError struct {
	Key string
}

// Error implements the error interface.
func (e ValNotFoundError) Error() string {
	return fmt.Sprintf("expected val not found with key: %s", e.Key)
}

// ValParseError occurs when a resolved value could not be parsed
// into the requested type. It also occurs when the requested type
// differs from the type the entry was registered with, in which case
// Val is empty and Cause is a [TypeMismatchError].
type ValParseError struct {
	Key   string
	Val   string
	Cause error
}

// Error implements the error interface.
func (e ValParseError) Error() string {
	return fmt.Sprintf("failed to parse val as given type: %s = %s", e.Key, e.Val)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ValParseError) Unwrap() error {
	return e.Cause
}

// TypeMismatchError describes an entry being read as a
// different type than it was registered with.
type TypeMismatchError struct {
	Key  string
	Want reflect.Type
	Got  reflect.Type
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("entry %s is registered as %s but was requested as %s", e.Key, e.Got, e.Want)
}

// EnvLookupError occurs when the environment variable lookup itself
// fails for a reason other than the variable being unset.
type EnvLookupError struct {
	Key   string
	Cause error
}

// Error implements the error interface.
func (e EnvLookupError) Error() string {
	return fmt.Sprintf("failed to lookup env var: %s", e.Key)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e EnvLookupError) Unwrap() error {
	return e.Cause
}

// DecodeError occurs when resolved values can not be decoded
// into the struct given to [Conf.Unmarshal].
type DecodeError struct {
	Cause error
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode config values: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e DecodeError) Unwrap() error {
	return e.Cause
}
