package time

import (
	"math"
	"time"
)

const (
	// iso8601Format is an ISO-8601 extended date-time with a numeric UTC
	// offset, e.g. 2004-02-12T15:19:21+00:00.
	iso8601Format = "2006-01-02T15:04:05-07:00"
)

// FormatISO8601 formats value in UTC as an ISO-8601 date-time with a
// numeric offset. Sub-second precision is dropped.
func FormatISO8601(value time.Time) string {
	return value.UTC().Format(iso8601Format)
}

// ParseISO8601 parses an ISO-8601 date-time as produced by FormatISO8601.
// Any RFC 3339 date-time is accepted, including a `Z` offset and fractional
// seconds.
func ParseISO8601(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

// FormatEpochSeconds formats a Unix time in seconds as an ISO-8601
// date-time in UTC.
func FormatEpochSeconds(value int64) string {
	return FormatISO8601(time.Unix(value, 0))
}

// ParseEpochSeconds returns value as a Unix time in seconds with decimal
// precision.
func ParseEpochSeconds(value float64) time.Time {
	sec, frac := math.Modf(value)
	if frac < 0 {
		sec--
		frac++
	}
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}
