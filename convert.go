package headers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Header converts c into a net/http header. Merged values are split back on
// commas and names are canonicalized by net/http.
func (c *Collection) Header() http.Header {
	h := make(http.Header, c.Len())
	for name, value := range c.All() {
		for _, v := range strings.Split(value, ",") {
			h.Add(name, strings.TrimSpace(v))
		}
	}
	return h
}

// MarshalJSON encodes c as a JSON object whose members follow insertion order,
// using the stored names as member names.
func (c *Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, value := range c.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++

		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON appends every member of a JSON object to c, in document
// order. Member values must be strings.
func (c *Collection) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode headers: %w", err)
	}
	if tok == nil {
		// null leaves c untouched, like json.Unmarshal does for other types
		return nil
	}
	c.init()

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode headers: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode headers: %w", err)
		}
		name := tok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode header %q: %w", name, err)
		}
		c.Append(name, value)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode headers: %w", err)
	}
	return nil
}
