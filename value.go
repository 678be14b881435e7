// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package voidconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// Value is the set of types which may be used as configuration values.
// Every Value can be rendered with [Format] and parsed back with [Parse].
//
// Custom value types conform by declaring a named type over one of the
// underlying types, e.g. type Region string.
type Value interface {
	~string |
		~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		JSON
}

// JSON is a structured configuration value. V holds whatever
// encoding/json decodes into an any, except numbers are kept
// as json.Number so integers of any size survive unchanged.
type JSON struct {
	V any
}

// ErrTrailingJSON occurs when more data follows the JSON value being parsed.
var ErrTrailingJSON = errors.New("unexpected data after json value")

// String implements the fmt.Stringer interface by rendering V as JSON.
// It returns an empty string if V can not be marshaled.
func (j JSON) String() string {
	b, err := json.Marshal(j.V)
	if err != nil {
		return ""
	}
	return string(b)
}

// MarshalJSON implements the json.Marshaler interface.
func (j JSON) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.V)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (j *JSON) UnmarshalJSON(b []byte) error {
	return decodeJSON(b, &j.V)
}

func decodeJSON(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	err := dec.Decode(v)
	if err != nil {
		return err
	}

	var extra json.RawMessage
	err = dec.Decode(&extra)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	return ErrTrailingJSON
}

// UnsupportedKindError occurs if a type satisfies [Value] by some
// means other than the listed underlying types. It should never
// be returned for types the compiler accepts as a Value.
type UnsupportedKindError struct {
	Type reflect.Type
}

// Error implements the error interface.
func (e UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported config value kind: %s", e.Type)
}

// Parse converts s into a V. Integers are parsed in base 10 at the exact
// bit width of V, so out of range values are parse failures. A single
// leading '+' is accepted for signed and unsigned integers alike.
func Parse[V Value](s string) (V, error) {
	var v V
	if j, ok := any(&v).(*JSON); ok {
		err := decodeJSON([]byte(s), &j.V)
		if err != nil {
			var zero V
			return zero, err
		}
		return v, nil
	}

	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetInt(n)
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetUint(n)
	default:
		return v, UnsupportedKindError{Type: rv.Type()}
	}
	return v, nil
}

// Format renders v in the form accepted by [Parse]. A [JSON] whose V
// can not be marshaled, e.g. one holding a channel, renders as an
// empty string.
func Format[V Value](v V) string {
	if j, ok := any(v).(JSON); ok {
		return j.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return ""
	}
}
