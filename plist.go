package plist

import (
	"fmt"
	"io"
	"time"

	"github.com/awslabs/smithy-plist/logging"
	"github.com/awslabs/smithy-plist/xml"
)

// AppleDoctype is the DOCTYPE body of Apple's property list DTD.
const AppleDoctype = `plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`

// Options configures how a Document is serialized.
type Options struct {
	// Indent places every element on its own line, indented by one copy of
	// Indent per level. The default writes the whole plist on one line.
	Indent string

	// Doctype adds Apple's property list DOCTYPE after the XML declaration.
	Doctype bool

	// Encoding, when set, is written in the XML declaration, e.g. "UTF-8".
	Encoding string

	// Logger receives debug entries for the operations selected by LogMode.
	// Defaults to logging.Noop.
	Logger logging.Logger

	// LogMode selects which operations are logged.
	LogMode logging.Mode
}

// Document is a property list: a root Dict rendered inside a
// <plist version="1.0"> element.
type Document struct {
	root    *Dict
	options Options
}

// New returns an empty Document configured by optFns.
func New(optFns ...func(*Options)) *Document {
	options := Options{
		Logger: logging.Noop{},
	}
	for _, fn := range optFns {
		fn(&options)
	}
	if options.Logger == nil {
		options.Logger = logging.Noop{}
	}

	return &Document{
		root:    &Dict{},
		options: options,
	}
}

// Options returns a copy of the Document's options.
func (p *Document) Options() Options {
	return p.options
}

// Root returns the Document's root Dict.
func (p *Document) Root() *Dict {
	return p.root
}

// Dict adds a new empty Dict under key in the root Dict and returns it.
func (p *Document) Dict(key string) *Dict {
	return p.root.Dict(key)
}

// Arr adds a new empty Array under key in the root Dict and returns it.
func (p *Document) Arr(key string) *Array {
	return p.root.Arr(key)
}

// Val adds a scalar under key in the root Dict, see Dict.Val.
func (p *Document) Val(key string, v interface{}) (*Dict, error) {
	return p.root.Val(key, v)
}

// Date adds a date under key in the root Dict, see Dict.Date.
func (p *Document) Date(key string, v interface{}) (*Dict, error) {
	return p.root.Date(key, v)
}

// Data adds b under key in the root Dict, base64 encoded.
func (p *Document) Data(key string, b []byte) *Dict {
	return p.root.Data(key, b)
}

// Str adds a string under key in the root Dict.
func (p *Document) Str(key, v string) *Dict {
	return p.root.Str(key, v)
}

// Int adds an integer under key in the root Dict.
func (p *Document) Int(key string, v int64) *Dict {
	return p.root.Int(key, v)
}

// Real adds a real under key in the root Dict.
func (p *Document) Real(key string, v float64) *Dict {
	return p.root.Real(key, v)
}

// Bool adds a boolean under key in the root Dict.
func (p *Document) Bool(key string, v bool) *Dict {
	return p.root.Bool(key, v)
}

// Time adds t as a date under key in the root Dict.
func (p *Document) Time(key string, t time.Time) *Dict {
	return p.root.Time(key, t)
}

// Value returns the root Dict as plain Go values, see Dict.Value.
func (p *Document) Value() map[string]interface{} {
	return p.root.Value()
}

// Search evaluates a JMESPath expression against the root Dict, see
// Dict.Search.
func (p *Document) Search(expression string) (interface{}, error) {
	return p.root.Search(expression)
}

// Render returns the Document as an XML element tree rooted at
// <plist version="1.0">. The Document is not modified.
func (p *Document) Render() (*xml.Element, error) {
	root := xml.NewElement("plist", xml.Attr{
		Name:  xml.Name{Local: "version"},
		Value: "1.0",
	})
	if err := p.root.renderInto(root); err != nil {
		return nil, fmt.Errorf("failed to render plist document, %w", err)
	}

	if p.options.LogMode.IsRender() {
		p.options.Logger.Logf(logging.Debug, "rendered plist document with %d root keys", p.root.Len())
	}

	return root, nil
}

// Bytes renders the Document and returns its XML text.
func (p *Document) Bytes() ([]byte, error) {
	root, err := p.Render()
	if err != nil {
		return nil, err
	}

	encoder := xml.NewEncoder(func(o *xml.EncoderOptions) {
		o.Indent = p.options.Indent
		o.Encoding = p.options.Encoding
		if p.options.Doctype {
			o.Doctype = AppleDoctype
		}
	})
	if err := encoder.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to serialize plist document, %w", err)
	}

	b := encoder.Bytes()
	if p.options.LogMode.IsSerialize() {
		p.options.Logger.Logf(logging.Debug, "serialized plist document, %d bytes", len(b))
	}

	return b, nil
}

// Serialize renders the Document and returns its XML text. It can be called
// any number of times and returns the same text while the tree is unchanged.
func (p *Document) Serialize() (string, error) {
	b, err := p.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteTo writes the Document's XML text to w.
func (p *Document) WriteTo(w io.Writer) (int64, error) {
	b, err := p.Bytes()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(b)
	return int64(n), err
}
