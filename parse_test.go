package headers

import (
	"errors"
	"net/http"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"NoSpaces", "x-a:a\nx-b:b\nc:c", "x-a: a\nx-b: b\nc: c"},
		{"PaddedName", "  Host : example.com", "Host: example.com"},
		{"PaddedValue", "a:   b  \nc:\td", "a:   b  \nc: \td"},
		{"CRLF", "a: 1\r\nb: 2\r\n", "a: 1\nb: 2"},
		{"EmptyLines", "\n\na: 1\n\n\nb: 2\n", "a: 1\nb: 2"},
		{"ColonInValue", "Location: http://example.com:8080/", "Location: http://example.com:8080/"},
		{"Merged", "Accept: a\naccept: b\nACCEPT: c", "Accept: a,b,c"},
		{"Malformed", "HTTP/1.1 200 OK\na: 1", "a: 1"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input).String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSplitKeyValue(t *testing.T) {
	name, value := splitKeyValue("a: b: c")
	if name != "a" || value != "b: c" {
		t.Errorf("expected (a, b: c), got (%q, %q)", name, value)
	}

	name, value = splitKeyValue("a:  b ")
	if name != "a" || value != " b " {
		t.Errorf("expected (a,  b ), got (%q, %q)", name, value)
	}

	name, value = splitKeyValue("no colon")
	if name != "" || value != "" {
		t.Errorf("expected empty result, got (%q, %q)", name, value)
	}
}

func TestFromMapOrder(t *testing.T) {
	c := FromMap(map[string]string{"b": "2", "a": "1", "C": "3"})
	if got := c.String(); got != "C: 3\na: 1\nb: 2" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestFromHeader(t *testing.T) {
	h := http.Header{}
	h.Add("Accept", "text/html")
	h.Add("Accept", "application/json")
	h.Set("X-Test", "1")

	c := FromHeader(h)
	if v, _ := c.Get("accept"); v != "text/html,application/json" {
		t.Errorf("unexpected Accept value %q", v)
	}
	if got := c.String(); got != "Accept: text/html,application/json\nX-Test: 1" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestFrom(t *testing.T) {
	want := "x-a: a\nx-b: b"

	inputs := []any{
		"x-a:a\nx-b:b",
		[]byte("x-a:a\nx-b:b"),
		map[string]string{"x-a": "a", "x-b": "b"},
		[][2]string{{"x-a", "a"}, {"x-b", "b"}},
		[][]string{{"x-a", "a"}, {"x-b", "b"}},
		Parse("x-a: a\nx-b: b"),
	}

	for _, input := range inputs {
		c, err := From(input)
		if err != nil {
			t.Errorf("From(%T) failed: %v", input, err)
			continue
		}
		if c.String() != want {
			t.Errorf("From(%T): expected %q, got %q", input, want, c.String())
		}
	}

	c, err := From(nil)
	if err != nil || c.Len() != 0 {
		t.Errorf("From(nil): expected empty collection, got %v, %v", c, err)
	}

	var nilCollection *Collection
	c, err = From(nilCollection)
	if err != nil || c.Len() != 0 {
		t.Errorf("From(nil *Collection): expected empty collection, got %v, %v", c, err)
	}
}

func TestFromClonesCollection(t *testing.T) {
	src := Parse("a: 1")
	c, err := From(src)
	if err != nil {
		t.Fatal(err)
	}
	c.Append("a", "2")
	if v, _ := src.Get("a"); v != "1" {
		t.Errorf("source was modified: %q", v)
	}
}

func TestFromInvalidInputKind(t *testing.T) {
	for _, input := range []any{42, 3.14, struct{}{}, [][]string{{"only-name"}}} {
		c, err := From(input)
		if !errors.Is(err, ErrInvalidInputKind) {
			t.Errorf("From(%T): expected ErrInvalidInputKind, got %v", input, err)
		}
		if c != nil {
			t.Errorf("From(%T): expected nil collection", input)
		}
	}
}
