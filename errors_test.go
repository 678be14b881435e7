// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package voidconf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("cause")

	testCases := []struct {
		name     string
		err      error
		expected string
		cause    error
	}{
		{
			name:     "key not found",
			err:      KeyNotFoundError{Key: "testy"},
			expected: "expected key not found: testy",
		},
		{
			name:     "val not found",
			err:      ValNotFoundError{Key: "count"},
			expected: "expected val not found with key: count",
		},
		{
			name:     "val parse",
			err:      ValParseError{Key: "max_byte", Val: "lots", Cause: cause},
			expected: "failed to parse val as given type: max_byte = lots",
			cause:    cause,
		},
		{
			name:     "env lookup",
			err:      EnvLookupError{Key: "VCFG_NAME", Cause: ErrNotUnicode},
			expected: "failed to lookup env var: VCFG_NAME",
			cause:    ErrNotUnicode,
		},
		{
			name:     "decode",
			err:      DecodeError{Cause: cause},
			expected: "failed to decode config values: cause",
			cause:    cause,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.err.Error())
			if tc.cause != nil {
				require.ErrorIs(t, tc.err, tc.cause)
			}
		})
	}
}
