package testing

import (
	"fmt"

	goplist "github.com/DHowett/go-plist"
	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"
)

// DecodePlist decodes a property list document into plain Go values: dicts
// as map[string]interface{}, arrays as []interface{}, dates as time.Time and
// data as []byte.
func DecodePlist(b []byte) (interface{}, error) {
	var v interface{}
	if _, err := goplist.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode plist, %w", err)
	}
	return v, nil
}

// PlistEqual decodes two property list documents and identifies if they
// contain the same values. Returns an error if either document fails to
// decode or the documents are not equal.
func PlistEqual(expectBytes, actualBytes []byte) error {
	expect, err := DecodePlist(expectBytes)
	if err != nil {
		return fmt.Errorf("expected document, %v", err)
	}

	actual, err := DecodePlist(actualBytes)
	if err != nil {
		return fmt.Errorf("actual document, %v", err)
	}

	if diff := cmp.Diff(expect, actual); len(diff) != 0 {
		return fmt.Errorf("plist mismatch (-expect +actual):\n%s", diff)
	}

	return nil
}

// AssertPlistEqual compares two property list documents and identifies if
// the documents contain the same values. Emits a testing error including the
// decoded actual document, and returns false if the documents are not equal.
func AssertPlistEqual(t T, expect, actual []byte) bool {
	t.Helper()

	if err := PlistEqual(expect, actual); err != nil {
		decoded, _ := DecodePlist(actual)
		t.Errorf("expect plist documents to be equal, %v\nactual:\n%# v", err, pretty.Formatter(decoded))
		return false
	}

	return true
}
