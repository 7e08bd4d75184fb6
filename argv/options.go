package argv

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/dzonerzy/go-argv/internal/fuzzy"
)

// suggestDistance is the edit distance Suggest accepts.
const suggestDistance = 2

// Options maps option tokens ("-l", "--name") to their values in order of
// first appearance.
type Options struct {
	keys   []string
	values map[string]Value
}

func newOptions(capacity int) Options {
	return Options{
		keys:   make([]string, 0, capacity),
		values: make(map[string]Value, capacity),
	}
}

// Len returns the number of distinct options.
func (o Options) Len() int { return len(o.keys) }

// Keys returns the option tokens in first-appearance order.
func (o Options) Keys() []string { return slices.Clone(o.keys) }

// Get returns the value stored for key.
func (o Options) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key appeared at all.
func (o Options) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Flag reports whether key appeared as a bare flag (present, null value).
func (o Options) Flag(key string) bool {
	v, ok := o.values[key]
	return ok && v.IsNull()
}

// All iterates over options in first-appearance order.
func (o Options) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// Suggest returns the stored key closest to key, or "" when nothing is
// close enough. Dash prefixes are ignored, so "-name" suggests "--name".
func (o Options) Suggest(key string) string {
	return fuzzy.FindBestOption(key, o.keys, suggestDistance)
}

// set stores v for key, keeping the key's original position if it exists.
func (o *Options) set(key string, v Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// attach stores v for key, promoting to a list on repeats.
func (o *Options) attach(key string, v Value) {
	if old, ok := o.values[key]; ok {
		o.values[key] = old.appendTo(v)
		return
	}
	o.keys = append(o.keys, key)
	o.values[key] = v
}

// MarshalJSON encodes the options as an object with keys in order.
func (o Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := o.values[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the options as an ordered mapping.
func (o Options) MarshalYAML() (any, error) {
	return o.mapSlice(), nil
}

func (o Options) mapSlice() yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, yaml.MapItem{Key: k, Value: o.values[k].Interface()})
	}
	return out
}
