package xml

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	leftAngleBracket  = '<'
	rightAngleBracket = '>'
	forwardSlash      = '/'
	colon             = ':'
	equals            = '='
	quote             = '"'
)

// EncoderOptions configures how an Encoder writes a document.
type EncoderOptions struct {
	// Indent, when non-empty, places every element on its own line indented
	// by one copy of Indent per nesting level. Elements holding only
	// character data stay on a single line.
	Indent string

	// Encoding is written as the encoding pseudo-attribute of the XML
	// declaration when not empty.
	Encoding string

	// OmitDeclaration disables the leading `<?xml version="1.0"?>` line.
	OmitDeclaration bool

	// Doctype is the body of a `<!DOCTYPE ...>` line written after the
	// declaration, e.g. `plist PUBLIC "..." "..."`. Nothing is written when
	// empty.
	Doctype string
}

// Encoder serializes element trees to XML text.
type Encoder struct {
	w       *bytes.Buffer
	options EncoderOptions
}

// NewEncoder returns an XML encoder
func NewEncoder(optFns ...func(*EncoderOptions)) *Encoder {
	var options EncoderOptions
	for _, fn := range optFns {
		fn(&options)
	}

	return &Encoder{w: bytes.NewBuffer(nil), options: options}
}

// Encode writes the document rooted at root to the encoder's buffer. A
// trailing newline follows the root element.
func (e *Encoder) Encode(root *Element) error {
	if root == nil {
		return fmt.Errorf("xml root element cannot be nil")
	}

	if !e.options.OmitDeclaration {
		e.w.WriteString(`<?xml version="1.0"`)
		if len(e.options.Encoding) != 0 {
			e.w.WriteString(` encoding="`)
			escapeString(e.w, e.options.Encoding, true)
			e.w.WriteRune(quote)
		}
		e.w.WriteString("?>\n")
	}

	if len(e.options.Doctype) != 0 {
		e.w.WriteString("<!DOCTYPE ")
		e.w.WriteString(e.options.Doctype)
		e.w.WriteString(">\n")
	}

	if err := e.writeElement(root, 0); err != nil {
		return err
	}
	e.w.WriteRune('\n')

	return nil
}

func (e *Encoder) writeElement(el *Element, depth int) error {
	if el == nil {
		return fmt.Errorf("xml element cannot be nil")
	}
	if depth > 0 {
		e.writeIndent(depth)
	}

	if err := writeStartElement(e.w, el.start); err != nil {
		return err
	}

	if el.isEmpty() {
		e.w.WriteRune(forwardSlash)
		e.w.WriteRune(rightAngleBracket)
		return nil
	}
	e.w.WriteRune(rightAngleBracket)

	escapeString(e.w, el.text, false)
	for _, child := range el.children {
		if err := e.writeElement(child, depth+1); err != nil {
			return err
		}
	}
	if len(el.children) != 0 {
		e.writeIndent(depth)
	}

	return writeEndElement(e.w, el.start.End())
}

func (e *Encoder) writeIndent(depth int) {
	if len(e.options.Indent) == 0 {
		return
	}
	e.w.WriteRune('\n')
	e.w.WriteString(strings.Repeat(e.options.Indent, depth))
}

// String returns the string output of the XML encoder
func (e Encoder) String() string {
	return e.w.String()
}

// Bytes returns the []byte slice of the XML encoder
func (e Encoder) Bytes() []byte {
	return e.w.Bytes()
}

// writeStartElement writes the opening part of a start tag, `<name attr="v"`,
// leaving the closing bracket to the caller.
func writeStartElement(w *bytes.Buffer, el StartElement) error {
	if el.isZero() {
		return fmt.Errorf("xml start element cannot be nil")
	}

	w.WriteRune(leftAngleBracket)
	writeName(w, el.Name)

	for _, attr := range el.Attr {
		w.WriteRune(' ')
		writeAttribute(w, attr)
	}

	return nil
}

// writeAttribute writes an attribute from a provided Attribute. An attribute
// with only a Space is written as that name, e.g. a default `xmlns`.
func writeAttribute(w *bytes.Buffer, attr Attr) {
	if len(attr.Name.Local) == 0 {
		attr.Name.Local = attr.Name.Space
		attr.Name.Space = ""
	}

	writeName(w, attr.Name)
	w.WriteRune(equals)
	w.WriteRune(quote)
	escapeString(w, attr.Value, true)
	w.WriteRune(quote)
}

// writeEndElement takes in a end element and writes it.
func writeEndElement(w *bytes.Buffer, el EndElement) error {
	if el.isZero() {
		return fmt.Errorf("xml end element cannot be nil")
	}

	w.WriteRune(leftAngleBracket)
	w.WriteRune(forwardSlash)
	writeName(w, el.Name)
	w.WriteRune(rightAngleBracket)

	return nil
}

func writeName(w *bytes.Buffer, name Name) {
	if len(name.Space) != 0 {
		w.WriteString(name.Space)
		w.WriteRune(colon)
	}
	w.WriteString(name.Local)
}
