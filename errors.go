package plist

import "fmt"

// InvalidValueError is returned by Val when the value is not a string,
// integer, real or boolean. Containers, dates and data must be added with
// Dict, Arr, Date and Data instead.
type InvalidValueError struct {
	Value interface{}
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("plist: cannot add non-scalar value of type %T using Val", e.Value)
}

// UnrecognizedDateFormatError is returned when a date is created from a value
// that is not a number, a string or a time.Time.
type UnrecognizedDateFormatError struct {
	Value interface{}
}

func (e *UnrecognizedDateFormatError) Error() string {
	return fmt.Sprintf("plist: unrecognized date format %T", e.Value)
}

// UnhandledValueError is returned when rendering finds a scalar of a type
// that has no property list element. Val rejects such values, so this error
// indicates a bug.
type UnhandledValueError struct {
	Value interface{}
}

func (e *UnhandledValueError) Error() string {
	return fmt.Sprintf("plist: unhandled value of type %T", e.Value)
}
