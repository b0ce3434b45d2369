package plist

import (
	"time"

	"github.com/awslabs/smithy-plist/xml"
)

// Array is an ordered sequence of nodes, rendered as <array>. Nodes are only
// ever appended. The zero value is an empty Array ready to use.
type Array struct {
	values []Node
}

// Dict appends a new empty Dict and returns it.
func (a *Array) Dict() *Dict {
	dict := &Dict{}
	a.values = append(a.values, dict)
	return dict
}

// Arr appends a new empty Array and returns it.
func (a *Array) Arr() *Array {
	arr := &Array{}
	a.values = append(a.values, arr)
	return arr
}

// Val appends a string, integer, real or boolean. Any other value, including
// nil, returns an *InvalidValueError and leaves the Array unchanged.
func (a *Array) Val(v interface{}) (*Array, error) {
	s, ok := newScalar(v)
	if !ok {
		return a, &InvalidValueError{Value: v}
	}
	a.values = append(a.values, s)
	return a, nil
}

// Date appends a date. See NewDate for the accepted values. On error the
// Array is unchanged.
func (a *Array) Date(v interface{}) (*Array, error) {
	date, err := NewDate(v)
	if err != nil {
		return a, err
	}
	a.values = append(a.values, date)
	return a, nil
}

// Data appends b, base64 encoded.
func (a *Array) Data(b []byte) *Array {
	a.values = append(a.values, NewData(b))
	return a
}

// Str appends a string.
func (a *Array) Str(v string) *Array {
	a.values = append(a.values, Scalar{v: v})
	return a
}

// Int appends an integer.
func (a *Array) Int(v int64) *Array {
	a.values = append(a.values, Scalar{v: v})
	return a
}

// Real appends a real.
func (a *Array) Real(v float64) *Array {
	a.values = append(a.values, Scalar{v: v})
	return a
}

// Bool appends a boolean.
func (a *Array) Bool(v bool) *Array {
	a.values = append(a.values, Scalar{v: v})
	return a
}

// Time appends t as a date.
func (a *Array) Time(t time.Time) *Array {
	a.values = append(a.values, dateFromTime(t))
	return a
}

// Len returns the number of nodes.
func (a *Array) Len() int {
	return len(a.values)
}

// Index returns the node at position i. It panics if i is out of range.
func (a *Array) Index(i int) Node {
	return a.values[i]
}

func (a *Array) renderInto(parent *xml.Element) error {
	arr := parent.AddChild("array")
	for _, v := range a.values {
		if err := v.renderInto(arr); err != nil {
			return err
		}
	}
	return nil
}
