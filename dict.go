package plist

import (
	"time"

	"github.com/awslabs/smithy-plist/xml"
)

// Dict is an ordered mapping from keys to nodes, rendered as <dict>. Keys
// keep the position they were first added at; adding an existing key
// replaces its value in place. The zero value is an empty Dict ready to use.
type Dict struct {
	keys   []string
	values []Node
	index  map[string]int
}

func (d *Dict) set(key string, n Node) {
	if i, ok := d.index[key]; ok {
		d.values[i] = n
		return
	}

	if d.index == nil {
		d.index = map[string]int{}
	}
	d.index[key] = len(d.keys)
	d.keys = append(d.keys, key)
	d.values = append(d.values, n)
}

// Dict adds a new empty Dict under key and returns it.
func (d *Dict) Dict(key string) *Dict {
	dict := &Dict{}
	d.set(key, dict)
	return dict
}

// Arr adds a new empty Array under key and returns it.
func (d *Dict) Arr(key string) *Array {
	arr := &Array{}
	d.set(key, arr)
	return arr
}

// Val adds a string, integer, real or boolean under key. Any other value,
// including nil, returns an *InvalidValueError and leaves the Dict
// unchanged.
func (d *Dict) Val(key string, v interface{}) (*Dict, error) {
	s, ok := newScalar(v)
	if !ok {
		return d, &InvalidValueError{Value: v}
	}
	d.set(key, s)
	return d, nil
}

// Date adds a date under key. See NewDate for the accepted values. On error
// the Dict is unchanged.
func (d *Dict) Date(key string, v interface{}) (*Dict, error) {
	date, err := NewDate(v)
	if err != nil {
		return d, err
	}
	d.set(key, date)
	return d, nil
}

// Data adds b under key, base64 encoded.
func (d *Dict) Data(key string, b []byte) *Dict {
	d.set(key, NewData(b))
	return d
}

// Str adds a string under key.
func (d *Dict) Str(key, v string) *Dict {
	d.set(key, Scalar{v: v})
	return d
}

// Int adds an integer under key.
func (d *Dict) Int(key string, v int64) *Dict {
	d.set(key, Scalar{v: v})
	return d
}

// Real adds a real under key.
func (d *Dict) Real(key string, v float64) *Dict {
	d.set(key, Scalar{v: v})
	return d
}

// Bool adds a boolean under key.
func (d *Dict) Bool(key string, v bool) *Dict {
	d.set(key, Scalar{v: v})
	return d
}

// Time adds t under key as a date.
func (d *Dict) Time(key string, t time.Time) *Dict {
	d.set(key, dateFromTime(t))
	return d
}

// Len returns the number of keys.
func (d *Dict) Len() int {
	return len(d.keys)
}

// Keys returns the keys in rendering order.
func (d *Dict) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Get returns the node stored under key.
func (d *Dict) Get(key string) (Node, bool) {
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.values[i], true
}

func (d *Dict) renderInto(parent *xml.Element) error {
	dict := parent.AddChild("dict")
	for i, key := range d.keys {
		dict.AddTextChild("key", key)
		if err := d.values[i].renderInto(dict); err != nil {
			return err
		}
	}
	return nil
}
