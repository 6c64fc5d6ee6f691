// Package keyvalue converts a go-simpler/env struct tagged configuration
// struct into a sortable slice of key/values, and renders them as a shell
// script that sets the variables.
package keyvalue

import (
	"fmt"
	"io"
	"reflect"
	"sort"
)

// KV is a key/value pair.
type KV struct{ Key, Value string }

// KVSlice is a collection of key/value pairs.
type KVSlice []KV

func (kv KVSlice) Len() int           { return len(kv) }
func (kv KVSlice) Less(i, j int) bool { return kv[i].Key < kv[j].Key }
func (kv KVSlice) Swap(i, j int)      { kv[i], kv[j] = kv[j], kv[i] }

// EnvKV turns a struct with `env` tags into an environment variable key/value
// list. Note you must dereference a pointer type to use this.
func EnvKV(cfg any) (m KVSlice) {
	t := reflect.TypeOf(cfg)
	for i := 0; i < t.NumField(); i++ {
		k := t.Field(i).Tag.Get("env")
		// embedded structs carry no env tag
		if k == "" {
			continue
		}
		v := reflect.ValueOf(cfg).Field(i).Interface()
		m = append(m, KV{k, fmt.Sprint(v)})
	}
	return
}

// PrintEnv renders the key/values of a config struct to the provided
// io.Writer.
func PrintEnv(cfg any, w io.Writer) {
	_, _ = fmt.Fprintln(w, "#!/usr/bin/env bash")
	kvs := EnvKV(cfg)
	sort.Sort(kvs)
	for _, kv := range kvs {
		_, _ = fmt.Fprintf(w, "export %s=%s\n", kv.Key, kv.Value)
	}
}
