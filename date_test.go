package plist

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNewDate(t *testing.T) {
	ref := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := map[string]struct {
		value    interface{}
		expected string
	}{
		"timestamp zero": {
			value:    0,
			expected: "1970-01-01T00:00:00+00:00",
		},
		"timestamp int64": {
			value:    int64(1704067200),
			expected: "2024-01-01T00:00:00+00:00",
		},
		"timestamp uint32": {
			value:    uint32(1704067200),
			expected: "2024-01-01T00:00:00+00:00",
		},
		"timestamp negative": {
			value:    -86400,
			expected: "1969-12-31T00:00:00+00:00",
		},
		"timestamp float": {
			value:    1704067200.75,
			expected: "2024-01-01T00:00:00+00:00",
		},
		"first second of year 0000": {
			value:    int64(-62167219200),
			expected: "0000-01-01T00:00:00+00:00",
		},
		"last second of year 9999": {
			value:    uint64(253402300799),
			expected: "9999-12-31T23:59:59+00:00",
		},
		"float within last second of year 9999": {
			value:    253402300799.5,
			expected: "9999-12-31T23:59:59+00:00",
		},
		"iso string unchanged": {
			value:    "2024-01-01T00:00:00+00:00",
			expected: "2024-01-01T00:00:00+00:00",
		},
		"any string unchanged": {
			value:    "not a date",
			expected: "not a date",
		},
		"numeric string unchanged": {
			value:    "1704067200",
			expected: "1704067200",
		},
		"time": {
			value:    ref,
			expected: "2024-01-01T00:00:00+00:00",
		},
		"time pointer": {
			value:    &ref,
			expected: "2024-01-01T00:00:00+00:00",
		},
		"time with offset": {
			value:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.FixedZone("JST", 9*60*60)),
			expected: "2024-01-01T00:00:00+00:00",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			d, err := NewDate(c.value)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if e, a := c.expected, d.String(); e != a {
				t.Errorf("expected %v, got %v", e, a)
			}
			if e, a := "<date>"+c.expected+"</date>", renderNode(t, d); e != a {
				t.Errorf("expected %v, got %v", e, a)
			}
		})
	}
}

func TestNewDateUnrecognized(t *testing.T) {
	var nilTime *time.Time

	cases := map[string]interface{}{
		"nil":                    nil,
		"nil time":               nilTime,
		"struct":                 struct{ When string }{When: "now"},
		"slice":                  []int{0},
		"bool":                   true,
		"nan":                    math.NaN(),
		"infinity":               math.Inf(1),
		"huge uint":              uint64(math.MaxUint64),
		"float overflows int64":  1e20,
		"float underflows int64": -1e19,
		"float after year 9999":  253402300800.0,
		"float before year 0000": -62167219200.5,
		"int after year 9999":    int64(1) << 40,
		"int before year 0000":   int64(-62167219201),
		"uint after year 9999":   uint64(253402300800),
		"min int64":              int64(math.MinInt64),
		"dict":                   &Dict{},
		"duration ptr":           new(time.Duration),
	}

	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewDate(v)

			var unrecognized *UnrecognizedDateFormatError
			if !errors.As(err, &unrecognized) {
				t.Fatalf("expected UnrecognizedDateFormatError, got %v", err)
			}
		})
	}
}

func TestDateTime(t *testing.T) {
	d, err := NewDate(0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	tm, err := d.Time()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e, a := time.Unix(0, 0), tm; !e.Equal(a) {
		t.Errorf("expected %v, got %v", e, a)
	}

	garbage, err := NewDate("garbage")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := garbage.Time(); err == nil {
		t.Errorf("expected error, got none")
	}
}
