package plist

import (
	"reflect"
	"time"

	smithytime "github.com/awslabs/smithy-plist/time"
	"github.com/awslabs/smithy-plist/xml"
)

// Timestamps outside the four-digit years 0000 through 9999 have no
// ISO-8601 text plist readers accept.
const (
	minEpochSeconds = -62167219200 // 0000-01-01T00:00:00+00:00
	maxEpochSeconds = 253402300799 // 9999-12-31T23:59:59+00:00
)

// Date is a date leaf. It holds the ISO-8601 text written in its <date>
// element and cannot be changed once created.
type Date struct {
	iso string
}

// NewDate returns a Date for v.
//
// Integers and floats are Unix timestamps in seconds and are formatted as
// ISO-8601 in UTC, e.g. 1970-01-01T00:00:00+00:00. Timestamps before the
// year 0000 or after the year 9999 are rejected. Strings are assumed to be
// ISO-8601 already and are kept unchanged without validation. A time.Time or
// non-nil *time.Time is formatted in UTC. Any other value returns an
// *UnrecognizedDateFormatError.
func NewDate(v interface{}) (Date, error) {
	switch tv := v.(type) {
	case time.Time:
		return dateFromTime(tv), nil
	case *time.Time:
		if tv != nil {
			return dateFromTime(*tv), nil
		}
		return Date{}, &UnrecognizedDateFormatError{Value: v}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i := rv.Int(); i >= minEpochSeconds && i <= maxEpochSeconds {
			return Date{iso: smithytime.FormatEpochSeconds(i)}, nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := rv.Uint(); u <= maxEpochSeconds {
			return Date{iso: smithytime.FormatEpochSeconds(int64(u))}, nil
		}
	case reflect.Float32, reflect.Float64:
		// NaN fails both comparisons. Fractional seconds are dropped, so
		// anything below maxEpochSeconds+1 still lands in 9999.
		if f := rv.Float(); f >= minEpochSeconds && f < maxEpochSeconds+1 {
			return Date{iso: smithytime.FormatISO8601(smithytime.ParseEpochSeconds(f))}, nil
		}
	case reflect.String:
		return Date{iso: rv.String()}, nil
	}

	return Date{}, &UnrecognizedDateFormatError{Value: v}
}

// dateFromTime formats t in UTC. Unlike timestamps, a time.Time is never
// rejected.
func dateFromTime(t time.Time) Date {
	return Date{iso: smithytime.FormatISO8601(t)}
}

// String returns the date's ISO-8601 text.
func (d Date) String() string {
	return d.iso
}

// Time parses the date's text. It fails for dates created from strings that
// are not RFC 3339 date-times.
func (d Date) Time() (time.Time, error) {
	return smithytime.ParseISO8601(d.iso)
}

func (d Date) renderInto(parent *xml.Element) error {
	parent.AddTextChild("date", d.iso)
	return nil
}

func (d Date) plainValue() interface{} {
	if t, err := d.Time(); err == nil {
		return t
	}
	return d.iso
}
