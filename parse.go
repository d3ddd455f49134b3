package headers

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// ErrInvalidInputKind is returned by From when the input is not one of the
// supported header representations.
var ErrInvalidInputKind = errors.New("invalid header input kind")

// splitKeyValue parses a single header line. The name is trimmed, the value
// only loses the one space String writes after the colon, so values with
// surrounding whitespace survive a round trip. It returns an empty name when
// the line has no colon.
func splitKeyValue(line string) (string, string) {
	name, value, found := strings.Cut(line, ":")
	if !found {
		return "", ""
	}
	return strings.TrimSpace(name), strings.TrimPrefix(value, " ")
}

// Parse creates a collection from a raw header block. Lines are separated by
// "\n" (a trailing "\r" is dropped) and split at their first colon. The name
// is trimmed of surrounding whitespace and a single space after the colon is
// dropped from the value; the rest of the value is kept as-is. Empty lines
// are ignored, and lines without a colon or with an empty name are skipped.
// Repeated names are merged as with Append.
func Parse(block string, opts ...Option) *Collection {
	c := New(opts...)
	c.parseBlock(block)
	return c
}

func (c *Collection) parseBlock(block string) {
	for i, line := range strings.Split(block, "\n") {
		c.parseLine(i+1, line)
	}
}

// parseLine applies one header line to c and reports whether it was used.
func (c *Collection) parseLine(n int, line string) bool {
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return false
	}

	name, value := splitKeyValue(line)
	if name == "" {
		c.opts.logger.Debug("skipping malformed header line", "line", n, "content", line)
		return false
	}

	c.Append(name, value)
	return true
}

// FromMap creates a collection from a mapping of names to values. Since Go
// maps are unordered, the fields are added in lexical order of their names.
// Names that differ only in case are merged as with Append.
func FromMap(m map[string]string, opts ...Option) *Collection {
	c := New(opts...)
	for _, name := range slices.Sorted(maps.Keys(m)) {
		c.Append(name, m[name])
	}
	return c
}

// FromPairs creates a collection from a list of (name, value) pairs, added in
// order with Append.
func FromPairs(pairs [][2]string, opts ...Option) *Collection {
	c := New(opts...)
	for _, p := range pairs {
		c.Append(p[0], p[1])
	}
	return c
}

// FromHeader creates a collection from a net/http header. Every value of a
// field is appended, so multiple values end up comma-joined. Fields are added
// in lexical order of their canonical names.
func FromHeader(h http.Header, opts ...Option) *Collection {
	c := New(opts...)
	for _, name := range slices.Sorted(maps.Keys(h)) {
		for _, v := range h[name] {
			c.Append(name, v)
		}
	}
	return c
}

// From creates a collection from any of the supported representations: nil,
// a raw header block (string or []byte), a map[string]string, a list of pairs
// ([][2]string or [][]string with two elements each), an http.Header or
// another *Collection, which is cloned. Any other input yields
// ErrInvalidInputKind.
func From(input any, opts ...Option) (*Collection, error) {
	switch v := input.(type) {
	case nil:
		return New(opts...), nil
	case string:
		return Parse(v, opts...), nil
	case []byte:
		return Parse(string(v), opts...), nil
	case map[string]string:
		return FromMap(v, opts...), nil
	case [][2]string:
		return FromPairs(v, opts...), nil
	case [][]string:
		pairs := make([][2]string, 0, len(v))
		for i, p := range v {
			if len(p) != 2 {
				return nil, fmt.Errorf("%w: pair %d has %d elements", ErrInvalidInputKind, i, len(p))
			}
			pairs = append(pairs, [2]string{p[0], p[1]})
		}
		return FromPairs(pairs, opts...), nil
	case http.Header:
		return FromHeader(v, opts...), nil
	case *Collection:
		if v == nil {
			return New(opts...), nil
		}
		clone := v.Clone()
		if len(opts) > 0 {
			clone.opts = newOptions(opts)
		}
		return clone, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidInputKind, input)
	}
}
