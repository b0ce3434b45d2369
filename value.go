package plist

import (
	"fmt"

	"github.com/jmespath/go-jmespath"
)

// Value returns the Dict as plain Go values. Nested dicts become
// map[string]interface{}, arrays []interface{}, dates time.Time (or their
// text when it is not an RFC 3339 date-time), data []byte, and scalars
// their canonical types.
func (d *Dict) Value() map[string]interface{} {
	m := make(map[string]interface{}, len(d.keys))
	for i, key := range d.keys {
		m[key] = d.values[i].plainValue()
	}
	return m
}

func (d *Dict) plainValue() interface{} {
	return d.Value()
}

// Value returns the Array as plain Go values, see Dict.Value.
func (a *Array) Value() []interface{} {
	vs := make([]interface{}, len(a.values))
	for i, v := range a.values {
		vs[i] = v.plainValue()
	}
	return vs
}

func (a *Array) plainValue() interface{} {
	return a.Value()
}

// Search evaluates a JMESPath expression against the Dict's Value. Keys that
// are not plain identifiers must be quoted, e.g. `"Key One".Count`. A path
// that matches nothing returns nil.
//
// JMESPath numbers are float64, so integers and reals are searched, and
// returned, as float64.
func (d *Dict) Search(expression string) (interface{}, error) {
	v, err := jmespath.Search(expression, searchValue(d.Value()))
	if err != nil {
		return nil, fmt.Errorf("failed to search plist with %q, %w", expression, err)
	}
	return v, nil
}

// searchValue returns v with every number converted to float64.
func searchValue(v interface{}) interface{} {
	switch tv := v.(type) {
	case map[string]interface{}:
		for k, e := range tv {
			tv[k] = searchValue(e)
		}
		return tv
	case []interface{}:
		for i, e := range tv {
			tv[i] = searchValue(e)
		}
		return tv
	case int64:
		return float64(tv)
	case uint64:
		return float64(tv)
	case float32:
		return float64(tv)
	default:
		return v
	}
}
