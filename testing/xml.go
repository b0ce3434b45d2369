package testing

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// WellFormedXML returns an error if b is not a well-formed XML document with
// exactly one root element.
func WellFormedXML(b []byte) error {
	_, err := xmlTokens(b)
	return err
}

// AssertWellFormedXML emits a testing error, and returns false if b is not a
// well-formed XML document.
func AssertWellFormedXML(t T, b []byte) bool {
	t.Helper()

	if err := WellFormedXML(b); err != nil {
		t.Errorf("expect well-formed XML, %v", err)
		return false
	}

	return true
}

// XMLEqual compares two XML documents token by token. Attribute order,
// empty element form, and whitespace-only character data are ignored.
// Returns an error in case of mismatch or malformed XML, with the diff
// between the documents.
func XMLEqual(expectBytes, actualBytes []byte) error {
	expect, err := xmlTokens(expectBytes)
	if err != nil {
		return fmt.Errorf("failed to read expected XML, %v", err)
	}

	actual, err := xmlTokens(actualBytes)
	if err != nil {
		return fmt.Errorf("failed to read actual XML, %v", err)
	}

	if diff := cmp.Diff(expect, actual); len(diff) != 0 {
		return fmt.Errorf("XML mismatch (-expect +actual):\n%s", diff)
	}

	return nil
}

// AssertXMLEqual compares two XML documents and identifies if the documents
// contain the same values. Emits a testing error, and returns false if the
// documents are not equal.
func AssertXMLEqual(t T, expect, actual []byte) bool {
	t.Helper()

	if err := XMLEqual(expect, actual); err != nil {
		t.Errorf("expect XML documents to be equal, %v", err)
		return false
	}

	return true
}

type xmlAttrSlice []xml.Attr

func (x xmlAttrSlice) Len() int {
	return len(x)
}

func (x xmlAttrSlice) Less(i, j int) bool {
	if c := strings.Compare(x[i].Name.Space, x[j].Name.Space); c != 0 {
		return c < 0
	}
	if c := strings.Compare(x[i].Name.Local, x[j].Name.Local); c != 0 {
		return c < 0
	}
	return x[i].Value < x[j].Value
}

func (x xmlAttrSlice) Swap(i, j int) {
	x[i], x[j] = x[j], x[i]
}

// xmlTokens reads the document into a comparable list of token strings.
func xmlTokens(b []byte) ([]string, error) {
	d := xml.NewDecoder(bytes.NewReader(b))

	var tokens []string
	var depth, roots int
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch tt := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
			}
			depth++

			attrs := make(xmlAttrSlice, len(tt.Attr))
			copy(attrs, tt.Attr)
			sort.Sort(attrs)

			var sb strings.Builder
			sb.WriteString("<" + tt.Name.Local)
			for _, attr := range attrs {
				fmt.Fprintf(&sb, " %s=%q", attr.Name.Local, attr.Value)
			}
			sb.WriteString(">")
			tokens = append(tokens, sb.String())
		case xml.EndElement:
			depth--
			tokens = append(tokens, "</"+tt.Name.Local+">")
		case xml.CharData:
			if len(bytes.TrimSpace(tt)) == 0 {
				continue
			}
			if depth == 0 {
				return nil, fmt.Errorf("character data outside of root element")
			}
			tokens = append(tokens, string(tt))
		case xml.ProcInst:
			tokens = append(tokens, "<?"+tt.Target+" "+string(tt.Inst)+"?>")
		case xml.Directive:
			tokens = append(tokens, "<!"+string(tt)+">")
		}
	}

	if roots != 1 {
		return nil, fmt.Errorf("expected one root element, found %d", roots)
	}

	return tokens, nil
}
