package plist

import (
	"reflect"
	"strconv"

	"github.com/awslabs/smithy-plist/xml"
)

// Scalar is a string, integer, real or boolean leaf added with Val or one of
// the typed setters.
type Scalar struct {
	v interface{}
}

// newScalar returns v as a Scalar holding its canonical Go type: string,
// bool, int64, uint64, float32 or float64. Named types are converted to
// their underlying kind. Returns false for any other value.
func newScalar(v interface{}) (Scalar, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return Scalar{v: rv.String()}, true
	case reflect.Bool:
		return Scalar{v: rv.Bool()}, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Scalar{v: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Scalar{v: rv.Uint()}, true
	case reflect.Float32:
		return Scalar{v: float32(rv.Float())}, true
	case reflect.Float64:
		return Scalar{v: rv.Float()}, true
	default:
		return Scalar{}, false
	}
}

// Value returns the scalar as a string, bool, int64, uint64, float32 or
// float64.
func (s Scalar) Value() interface{} {
	return s.v
}

func (s Scalar) renderInto(parent *xml.Element) error {
	return renderScalar(parent, s.v)
}

func (s Scalar) plainValue() interface{} {
	return s.v
}

// renderScalar appends the element for a primitive value to parent:
// <string>, <integer>, <real>, or an empty <true/> or <false/>.
func renderScalar(parent *xml.Element, v interface{}) error {
	switch tv := v.(type) {
	case string:
		parent.AddTextChild("string", tv)
	case bool:
		if tv {
			parent.AddChild("true")
		} else {
			parent.AddChild("false")
		}
	case int64:
		parent.AddTextChild("integer", strconv.FormatInt(tv, 10))
	case int:
		parent.AddTextChild("integer", strconv.FormatInt(int64(tv), 10))
	case int32:
		parent.AddTextChild("integer", strconv.FormatInt(int64(tv), 10))
	case uint64:
		parent.AddTextChild("integer", strconv.FormatUint(tv, 10))
	case uint:
		parent.AddTextChild("integer", strconv.FormatUint(uint64(tv), 10))
	case uint32:
		parent.AddTextChild("integer", strconv.FormatUint(uint64(tv), 10))
	case float64:
		parent.AddTextChild("real", xml.FormatFloat(tv, 64))
	case float32:
		parent.AddTextChild("real", xml.FormatFloat(float64(tv), 32))
	default:
		return &UnhandledValueError{Value: v}
	}
	return nil
}
