package plist

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDictKeyOrder(t *testing.T) {
	d := &Dict{}
	d.Str("b", "1")
	d.Int("a", 2)
	d.Bool("c", true)

	if diff := cmp.Diff([]string{"b", "a", "c"}, d.Keys()); len(diff) != 0 {
		t.Errorf("unexpected keys (-expect +actual):\n%s", diff)
	}

	e := `<dict><key>b</key><string>1</string><key>a</key><integer>2</integer><key>c</key><true/></dict>`
	if a := renderNode(t, d); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}

func TestDictRepeatedKey(t *testing.T) {
	d := &Dict{}
	d.Str("first", "x")
	d.Str("second", "y")
	d.Int("first", 1)

	if e, a := 2, d.Len(); e != a {
		t.Fatalf("expected %v keys, got %v", e, a)
	}

	e := `<dict><key>first</key><integer>1</integer><key>second</key><string>y</string></dict>`
	if a := renderNode(t, d); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}

	// replacing a scalar with a container keeps its position
	d.Dict("second").Str("inner", "z")
	e = `<dict><key>first</key><integer>1</integer><key>second</key><dict><key>inner</key><string>z</string></dict></dict>`
	if a := renderNode(t, d); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}

func TestDictVal(t *testing.T) {
	d := &Dict{}

	r, err := d.Val("Name", "Demo")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if r != d {
		t.Errorf("expected Val to return the receiver")
	}

	if _, err := d.Val("Count", namedInt(3)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	e := `<dict><key>Name</key><string>Demo</string><key>Count</key><integer>3</integer></dict>`
	if a := renderNode(t, d); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}

func TestDictValInvalid(t *testing.T) {
	cases := map[string]interface{}{
		"nil":       nil,
		"dict":      &Dict{},
		"array":     &Array{},
		"slice":     []interface{}{1, 2},
		"map":       map[string]interface{}{"a": 1},
		"date":      time.Unix(0, 0),
		"bytes":     []byte{0x00},
		"pointer":   new(string),
		"struct":    struct{ A int }{A: 1},
		"func":      func() {},
		"plist doc": New(),
	}

	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			d := &Dict{}
			d.Str("kept", "value")

			r, err := d.Val("bad", v)
			var invalid *InvalidValueError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidValueError, got %v", err)
			}
			if r != d {
				t.Errorf("expected Val to return the receiver")
			}

			if diff := cmp.Diff([]string{"kept"}, d.Keys()); len(diff) != 0 {
				t.Errorf("expected dict unchanged (-expect +actual):\n%s", diff)
			}
			if _, ok := d.Get("bad"); ok {
				t.Errorf("expected no bad key")
			}
		})
	}
}

func TestDictValInvalidKeepsExistingKey(t *testing.T) {
	d := &Dict{}
	d.Str("a", "before")

	if _, err := d.Val("a", nil); err == nil {
		t.Fatalf("expected error, got none")
	}

	n, ok := d.Get("a")
	if !ok {
		t.Fatalf("expected key a")
	}
	if e, a := "before", n.(Scalar).Value(); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}

func TestDictDate(t *testing.T) {
	d := &Dict{}

	if _, err := d.Date("epoch", 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	d.Time("when", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	if _, err := d.Date("bad", struct{}{}); err == nil {
		t.Fatalf("expected error, got none")
	} else {
		var unrecognized *UnrecognizedDateFormatError
		if !errors.As(err, &unrecognized) {
			t.Fatalf("expected UnrecognizedDateFormatError, got %v", err)
		}
	}

	e := `<dict><key>epoch</key><date>1970-01-01T00:00:00+00:00</date><key>when</key><date>2024-01-01T00:00:00+00:00</date></dict>`
	if a := renderNode(t, d); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}

func TestDictData(t *testing.T) {
	d := &Dict{}
	if r := d.Data("blob", []byte{0x00, 0x01, 0x02}); r != d {
		t.Errorf("expected Data to return the receiver")
	}
	d.Data("empty", nil)

	e := `<dict><key>blob</key><data>AAEC</data><key>empty</key><data/></dict>`
	if a := renderNode(t, d); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}

func TestDictNested(t *testing.T) {
	d := &Dict{}
	inner := d.Dict("inner")
	inner.Real("pi", 3.5)
	list := d.Arr("list")
	list.Str("x")
	d.Dict("empty")
	d.Arr("none")

	e := `<dict>` +
		`<key>inner</key><dict><key>pi</key><real>3.5</real></dict>` +
		`<key>list</key><array><string>x</string></array>` +
		`<key>empty</key><dict/>` +
		`<key>none</key><array/>` +
		`</dict>`
	if a := renderNode(t, d); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}

	n, ok := d.Get("inner")
	if !ok {
		t.Fatalf("expected inner key")
	}
	if n.(*Dict) != inner {
		t.Errorf("expected Get to return the nested dict")
	}
}

func TestDictZeroValue(t *testing.T) {
	var d Dict
	if e, a := `<dict/>`, renderNode(t, &d); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}

	d.Str("a", "b")
	if e, a := 1, d.Len(); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}
