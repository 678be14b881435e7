// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package voidconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvSource_EnvKey(t *testing.T) {
	testCases := []struct {
		name      string
		namespace string
		key       string
		expected  string
	}{
		{
			name:      "default namespace",
			namespace: DefaultName,
			key:       "name",
			expected:  "VCFG_NAME",
		},
		{
			name:      "underscored key",
			namespace: "vcfg",
			key:       "max_byte",
			expected:  "VCFG_MAX_BYTE",
		},
		{
			name:      "mixed case namespace and key",
			namespace: "MyApp",
			key:       "dbHost",
			expected:  "MYAPP_DBHOST",
		},
		{
			name:      "non ascii letters are kept",
			namespace: "app",
			key:       "straße",
			expected:  "APP_STRAßE",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := NewEnvSource(tc.namespace)
			require.Equal(t, tc.expected, src.EnvKey(tc.key))
		})
	}
}

func TestEnvSource_Get(t *testing.T) {
	t.Run("will return an unset value", func(t *testing.T) {
		t.Run("if the env var is not set", func(t *testing.T) {
			unsetEnv(t, "VCFGENV_MISSING")

			v, err := NewEnvSource("vcfgenv").Get("missing")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.False(t, v.IsSet()) {
				return
			}
		})
	})

	t.Run("will return the raw value", func(t *testing.T) {
		t.Run("if the env var is set", func(t *testing.T) {
			t.Setenv("VCFGENV_GREETING", " Hello ")

			v, err := NewEnvSource("vcfgenv").Get("greeting")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Some(" Hello "), v) {
				return
			}
		})
	})

	t.Run("will return an EnvLookupError", func(t *testing.T) {
		t.Run("if the env var is not valid unicode", func(t *testing.T) {
			src := NewEnvSource("vcfgenv")
			src.lookupEnv = func(k string) (string, bool) {
				return "\xc3\x28", true
			}

			_, err := src.Get("bad")

			var lerr EnvLookupError
			if !assert.ErrorAs(t, err, &lerr) {
				return
			}
			if !assert.Equal(t, "VCFGENV_BAD", lerr.Key) {
				return
			}
			if !assert.ErrorIs(t, err, ErrNotUnicode) {
				return
			}
		})
	})
}

func TestMap_Get(t *testing.T) {
	m := Map{"name": "xela"}

	v, err := m.Get("name")
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, Some("xela"), v) {
		return
	}

	v, err = m.Get("NAME")
	if !assert.Nil(t, err) {
		return
	}
	if !assert.False(t, v.IsSet()) {
		return
	}
}
