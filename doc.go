// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package voidconf provides typed access to a named set of configuration options.
//
// A [Conf] is a namespace of declared options, each an [Entry] with a value type
// and an optional default, bound to exactly one [Source]. Values are always resolved
// from the Source first and only fall back to the declared default when the Source
// has nothing for the key. The resolved string is then parsed into the declared type.
//
// # Basic Usage
//
// Declare options against the default namespace, "vcfg":
//
//	conf := voidconf.Default().
//	    String("name", voidconf.Some("world")).
//	    Uint("count", voidconf.Some[uint64](3))
//
// Read them back; VCFG_NAME and VCFG_COUNT take precedence over the defaults:
//
//	name, err := conf.RequireString("name")
//	count, err := conf.RequireUint("count")
//
// Custom value types are declared with [NewEntry] and read with [Get] or [Require]:
//
//	type Region string
//
//	conf = conf.Entry(voidconf.NewEntry[Region]("region").WithDefault("us-east-1"))
//	region, err := voidconf.Require[Region](conf, "region")
//
// # Sources
//
// The environment is the default Source. Variable names are derived from the
// namespace and key as {NAMESPACE}_{KEY}, both upper cased. Any other origin
// only needs to implement [Source] and be registered with [WithSource].
//
// # Error Handling
//
// Every failure is returned as one of [KeyNotFoundError], [ValNotFoundError],
// [ValParseError] or [EnvLookupError] and can be inspected with errors.As.
package voidconf
