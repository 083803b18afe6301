package view

import (
	"fmt"
	"maps"
	"slices"
)

// ViewKey is the Data key that holds the running view.
const ViewKey = "view"

// Data is the template context of one invocation. It is not safe for
// concurrent use; each request gets its own.
type Data struct {
	values map[string]any
}

// NewData returns an empty Data.
func NewData() *Data {
	return &Data{values: make(map[string]any)}
}

// Set stores v under key. The key must be non-empty and must not be ViewKey.
func (d *Data) Set(key string, v any) error {
	if key == "" {
		return ErrEmptyKey
	}
	if key == ViewKey {
		return fmt.Errorf("%w: %q", ErrReservedKey, key)
	}
	d.values[key] = v
	return nil
}

// Get returns the value stored under key.
func (d *Data) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns all keys in sorted order.
func (d *Data) Keys() []string {
	return slices.Sorted(maps.Keys(d.values))
}

// Len returns the number of entries, the view included.
func (d *Data) Len() int {
	return len(d.values)
}

// Map returns a copy of the entries.
func (d *Data) Map() map[string]any {
	return maps.Clone(d.values)
}

func (d *Data) setView(v View) {
	d.values[ViewKey] = v
}

// Value returns the value under key if it has type T.
func Value[T any](d *Data, key string) (T, bool) {
	v, ok := d.values[key].(T)
	return v, ok
}
