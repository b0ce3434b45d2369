package xml

// A Name represents an XML name (Local) annotated with a name space
// prefix (Space).
type Name struct {
	Space, Local string
}

// An Attr represents an attribute in an XML element (Name=Value).
type Attr struct {
	Name  Name
	Value string
}

// A StartElement represents an XML start element.
type StartElement struct {
	Name Name
	Attr []Attr
}

// Copy creates a new copy of StartElement.
func (e StartElement) Copy() StartElement {
	attrs := make([]Attr, len(e.Attr))
	copy(attrs, e.Attr)
	e.Attr = attrs
	return e
}

// End returns the corresponding XML end element.
func (e StartElement) End() EndElement {
	return EndElement{e.Name}
}

func (e StartElement) isZero() bool {
	return len(e.Name.Local) == 0
}

// An EndElement represents an XML end element.
type EndElement struct {
	Name Name
}

func (e EndElement) isZero() bool {
	return len(e.Name.Local) == 0
}

// Element is a node of an XML element tree. An element carries character
// data, child elements, or both. An element with neither is written as an
// empty element tag, e.g. `<true/>`.
type Element struct {
	start    StartElement
	text     string
	children []*Element
}

// NewElement returns a new element with the given local name and
// attributes. It is typically used to create the root of a tree.
func NewElement(name string, attrs ...Attr) *Element {
	return &Element{
		start: StartElement{
			Name: Name{Local: name},
			Attr: attrs,
		}.Copy(),
	}
}

// AddChild appends a new empty child element with the given local name and
// returns it.
func (e *Element) AddChild(name string) *Element {
	child := NewElement(name)
	e.children = append(e.children, child)
	return child
}

// AddTextChild appends a new child element holding the character data text
// and returns it.
func (e *Element) AddTextChild(name, text string) *Element {
	child := e.AddChild(name)
	child.text = text
	return child
}

// Start returns a copy of the element's start tag.
func (e *Element) Start() StartElement {
	return e.start.Copy()
}

// LocalName returns the local part of the element's name.
func (e *Element) LocalName() string {
	return e.start.Name.Local
}

// Attribute returns the value of the attribute with the given local name.
func (e *Element) Attribute(local string) (string, bool) {
	for _, attr := range e.start.Attr {
		if attr.Name.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}

// Text returns the element's character data, unescaped.
func (e *Element) Text() string {
	return e.text
}

// Children returns the element's child elements in document order.
func (e *Element) Children() []*Element {
	children := make([]*Element, len(e.children))
	copy(children, e.children)
	return children
}

func (e *Element) isEmpty() bool {
	return len(e.text) == 0 && len(e.children) == 0
}
