// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package voidconf

import (
	"errors"
	"fmt"
)

func Example() {
	conf := New(DefaultName, WithSource(FromMap(Map{
		"name": "xela",
	}))).
		String("greeting", Some("Hello")).
		String("name", Some("world")).
		Uint("count", Some[uint64](3))

	greeting, _ := conf.RequireString("greeting")
	name, _ := conf.RequireString("name")
	count, _ := conf.RequireUint("count")

	fmt.Printf("%s, %s! x%d\n", greeting, name, count)
	// Output: Hello, xela! x3
}

func ExampleGet() {
	type region string

	conf := New("app", WithSource(FromMap(nil))).
		Entry(NewEntry[region]("region").WithDefault("us-east-1"))

	r, err := Get[region](conf, "region")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r.Or("unknown"))

	_, err = Get[region](conf, "zone")
	var kerr KeyNotFoundError
	fmt.Println(errors.As(err, &kerr), kerr.Key)
	// Output:
	// us-east-1
	// true zone
}

func ExampleEnvSource_EnvKey() {
	src := NewEnvSource(DefaultName)

	fmt.Println(src.EnvKey("name"))
	fmt.Println(src.EnvKey("max_byte"))
	// Output:
	// VCFG_NAME
	// VCFG_MAX_BYTE
}

func ExampleConf_Unmarshal() {
	conf := New("app", WithSource(FromMap(Map{
		"port": "8080",
	}))).
		String("host", Some("localhost")).
		Uint("port", Some[uint64](80))

	var cfg struct {
		Host string `config:"host"`
		Port uint64 `config:"port"`
	}
	err := conf.Unmarshal(&cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s:%d\n", cfg.Host, cfg.Port)
	// Output: localhost:8080
}
