package plist

import (
	"github.com/awslabs/smithy-plist/xml"
)

// Node is a value held by a Dict or an Array: *Dict, *Array, Date, Data or
// Scalar.
type Node interface {
	renderInto(parent *xml.Element) error
	plainValue() interface{}
}

var (
	_ Node = (*Dict)(nil)
	_ Node = (*Array)(nil)
	_ Node = Date{}
	_ Node = Data{}
	_ Node = Scalar{}
)
