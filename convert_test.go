package headers

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestHeader(t *testing.T) {
	c := Parse("content-type: text/html\naccept: a\naccept: b")

	h := c.Header()
	if got := h.Get("Content-Type"); got != "text/html" {
		t.Errorf("expected text/html, got %q", got)
	}
	if got := h.Values("Accept"); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", got)
	}
}

func TestMarshalJSON(t *testing.T) {
	c := Parse("Zeta: 1\nAlpha: \"quoted\"\nzeta: 2")

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"Zeta":"1,2","Alpha":"\"quoted\""}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}

	empty, err := json.Marshal(New())
	if err != nil || string(empty) != "{}" {
		t.Errorf("expected {}, got %s, %v", empty, err)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var c Collection
	if err := json.Unmarshal([]byte(`{"Zeta":"1","Alpha":"2","zeta":"3"}`), &c); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if got := c.String(); got != "Zeta: 1,3\nAlpha: 2" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestUnmarshalJSONErrors(t *testing.T) {
	for _, input := range []string{`[]`, `{"a":1}`, `"a"`} {
		c := New()
		if err := json.Unmarshal([]byte(input), c); err == nil {
			t.Errorf("expected an error for %s", input)
		}
	}
}

func TestUnmarshalJSONNull(t *testing.T) {
	c := Parse("a: 1")
	if err := json.Unmarshal([]byte(" null "), c); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got := c.String(); got != "a: 1" {
		t.Errorf("expected collection to be unchanged, got %q", got)
	}

	var v struct {
		Headers *Collection `json:"headers"`
	}
	if err := json.Unmarshal([]byte(`{"headers":null}`), &v); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if v.Headers != nil {
		t.Errorf("expected nil headers, got %v", v.Headers)
	}
}
