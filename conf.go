// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package voidconf

import (
	"log/slog"
	"maps"
	"reflect"
	"slices"
)

// DefaultName is the namespace used by [Default]. Environment
// variables for it are prefixed with VCFG_.
const DefaultName = "vcfg"

type options struct {
	newSource  NewSourceFunc
	logHandler slog.Handler
}

// Option configures a [Conf].
type Option func(*options)

// WithSource configures how the [Source] for a [Conf] is constructed
// from its namespace.
//
// Default is [NewEnvSource].
func WithSource(f NewSourceFunc) Option {
	return func(o *options) {
		o.newSource = f
	}
}

// LogHandler configures the underlying slog.Handler.
// Resolutions are logged at debug level without their values.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		o.logHandler = h
	}
}

// Conf is a namespace of registered options bound to a single [Source].
//
// A Conf is never modified after construction. Registering an entry
// returns a new Conf, which makes a Conf safe for concurrent reads as
// long as its Source is.
type Conf struct {
	name    string
	source  Source
	options map[string]AnyEntry
	log     *slog.Logger
}

// New returns an empty Conf for the given namespace, constructing
// its [Source] from the namespace.
func New(name string, opts ...Option) *Conf {
	o := &options{
		newSource:  newEnvSource,
		logHandler: noopLogHandler{},
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Conf{
		name:    name,
		source:  o.newSource(name),
		options: make(map[string]AnyEntry),
		log:     slog.New(o.logHandler),
	}
}

// Default returns an empty Conf for [DefaultName].
func Default(opts ...Option) *Conf {
	return New(DefaultName, opts...)
}

// Name returns the namespace of c.
func (c *Conf) Name() string {
	return c.name
}

// Source returns the [Source] values are resolved from.
func (c *Conf) Source() Source {
	return c.source
}

// Keys returns the names of all registered entries in sorted order.
func (c *Conf) Keys() []string {
	return slices.Sorted(maps.Keys(c.options))
}

// Lookup returns the entry registered under key.
func (c *Conf) Lookup(key string) (AnyEntry, bool) {
	e, ok := c.options[key]
	return e, ok
}

// Entry returns a copy of c with e registered. An entry previously
// registered under the same name is replaced.
//
// Entry is the lower level registration for custom [Value] types;
// prefer the typed helpers such as [Conf.String] where possible.
func (c *Conf) Entry(e AnyEntry) *Conf {
	opts := maps.Clone(c.options)
	opts[e.Name()] = e

	return &Conf{
		name:    c.name,
		source:  c.source,
		options: opts,
		log:     c.log,
	}
}

// String registers a string entry.
func (c *Conf) String(name string, def Optional[string]) *Conf {
	return c.Entry(entryOf(name, def))
}

// Byte registers a uint8 entry.
func (c *Conf) Byte(name string, def Optional[uint8]) *Conf {
	return c.Entry(entryOf(name, def))
}

// Int registers an int64 entry.
func (c *Conf) Int(name string, def Optional[int64]) *Conf {
	return c.Entry(entryOf(name, def))
}

// Uint registers a uint64 entry.
func (c *Conf) Uint(name string, def Optional[uint64]) *Conf {
	return c.Entry(entryOf(name, def))
}

// JSON registers a structured [JSON] entry. The default is given in its
// serialized JSON form and, like [Entry.WithDefault], is only parsed once used.
func (c *Conf) JSON(name string, def Optional[string]) *Conf {
	e := NewEntry[JSON](name)
	if s, ok := def.Value(); ok {
		e = e.WithDefault(s)
	}
	return c.Entry(e)
}

func entryOf[V Value](name string, def Optional[V]) Entry[V] {
	e := NewEntry[V](name)
	if v, ok := def.Value(); ok {
		e = e.WithDefault(Format(v))
	}
	return e
}

// Get resolves the value of key as a V. The [Source] value always
// takes precedence over the entry default. An unset [Optional] is
// returned when neither is available.
//
// Reading an entry as a different type than it was registered with
// returns a [ValParseError] with an empty Val.
func Get[V Value](c *Conf, key string) (Optional[V], error) {
	ae, ok := c.options[key]
	if !ok {
		return None[V](), KeyNotFoundError{Key: key}
	}

	e, ok := ae.(Entry[V])
	if !ok {
		return None[V](), ValParseError{
			Key: key,
			Cause: TypeMismatchError{
				Key:  key,
				Want: reflect.TypeFor[V](),
				Got:  ae.ValueType(),
			},
		}
	}

	v, o, err := e.resolve(c.source)
	if err != nil {
		return None[V](), err
	}
	c.log.Debug(
		"resolved config value",
		slog.String("namespace", c.name),
		slog.String("key", key),
		slog.String("origin", string(o)),
	)
	return v, nil
}

// Require is like [Get] except an unresolved value is
// reported as a [ValNotFoundError].
func Require[V Value](c *Conf, key string) (V, error) {
	v, err := Get[V](c, key)
	if err != nil {
		var zero V
		return zero, err
	}

	x, ok := v.Value()
	if !ok {
		return x, ValNotFoundError{Key: key}
	}
	return x, nil
}

// GetString gets a string value.
func (c *Conf) GetString(key string) (Optional[string], error) {
	return Get[string](c, key)
}

// GetByte gets a uint8 value.
func (c *Conf) GetByte(key string) (Optional[uint8], error) {
	return Get[uint8](c, key)
}

// GetInt gets an int64 value.
func (c *Conf) GetInt(key string) (Optional[int64], error) {
	return Get[int64](c, key)
}

// GetUint gets a uint64 value.
func (c *Conf) GetUint(key string) (Optional[uint64], error) {
	return Get[uint64](c, key)
}

// GetJSON gets a [JSON] value.
func (c *Conf) GetJSON(key string) (Optional[JSON], error) {
	return Get[JSON](c, key)
}

// RequireString requires a string value.
func (c *Conf) RequireString(key string) (string, error) {
	return Require[string](c, key)
}

// RequireByte requires a uint8 value.
func (c *Conf) RequireByte(key string) (uint8, error) {
	return Require[uint8](c, key)
}

// RequireInt requires an int64 value.
func (c *Conf) RequireInt(key string) (int64, error) {
	return Require[int64](c, key)
}

// RequireUint requires a uint64 value.
func (c *Conf) RequireUint(key string) (uint64, error) {
	return Require[uint64](c, key)
}

// RequireJSON requires a [JSON] value.
func (c *Conf) RequireJSON(key string) (JSON, error) {
	return Require[JSON](c, key)
}
