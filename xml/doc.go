// Package xml is the XML writer used to render property lists.
//
// Element builds an in-memory element tree: a root is created with
// NewElement, children are attached with AddChild and AddTextChild. An
// Encoder serializes a finished tree to text, optionally preceded by an XML
// declaration and a DOCTYPE line, and optionally indented.
//
// Character data and attribute values are escaped so the output is always
// well-formed XML. Element names are written as given and must be valid XML
// names.
package xml
