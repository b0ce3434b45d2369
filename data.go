package plist

import (
	"encoding/base64"

	"github.com/awslabs/smithy-plist/xml"
)

// Data is a binary leaf. The bytes are base64 encoded once, when the Data is
// created.
type Data struct {
	raw     []byte
	encoded string
}

// NewData returns a Data holding a copy of b and its standard base64
// encoding.
func NewData(b []byte) Data {
	return Data{
		raw:     append([]byte{}, b...),
		encoded: base64.StdEncoding.EncodeToString(b),
	}
}

// String returns the base64 text written in the <data> element.
func (d Data) String() string {
	return d.encoded
}

// Bytes returns a new copy of the bytes.
func (d Data) Bytes() []byte {
	return append([]byte{}, d.raw...)
}

func (d Data) renderInto(parent *xml.Element) error {
	parent.AddTextChild("data", d.encoded)
	return nil
}

func (d Data) plainValue() interface{} {
	return d.Bytes()
}
