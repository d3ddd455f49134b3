package headers

import (
	"iter"
	"slices"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// entry is the stored form of one header field. name keeps the casing the
// field was first appended with (or last set with), value holds every
// appended value joined with a comma.
type entry struct {
	name  string
	value string
}

// Collection stores header fields and their values. Since header field names
// are case-insensitive, the Collection methods are case-insensitive as well,
// while the name casing is preserved for output.
//
// Fields keep the order in which they were first added. A Collection is not
// safe for concurrent use; callers sharing one across goroutines must
// serialize access themselves. Its sequences and ForEach may modify the
// Collection as they go: fields deleted on the way are not visited, fields
// added on the way are not visited either.
type Collection struct {
	entries map[string]*entry
	order   []string
	opts    options
}

// New creates a new, empty header collection.
func New(opts ...Option) *Collection {
	return &Collection{
		entries: make(map[string]*entry),
		opts:    newOptions(opts),
	}
}

// init makes the zero Collection usable.
func (c *Collection) init() {
	if c.entries == nil {
		c.entries = make(map[string]*entry)
		c.opts = newOptions(nil)
	}
}

func normalize(name string) string {
	return strings.ToLower(name)
}

// Append adds value to the field associated with name. If the field already
// exists, value is joined to the existing one with a comma and the stored name
// keeps its original casing.
func (c *Collection) Append(name, value string) {
	c.init()
	key := normalize(name)
	if e, ok := c.entries[key]; ok {
		e.value = e.value + "," + value
		return
	}
	c.entries[key] = &entry{name: name, value: value}
	c.order = append(c.order, key)
}

// Set sets the field associated with name to value, replacing any existing
// value. The name is stored as-is, preserving its case. An existing field keeps
// its position.
func (c *Collection) Set(name, value string) {
	c.init()
	key := normalize(name)
	if e, ok := c.entries[key]; ok {
		e.name = name
		e.value = value
		return
	}
	c.entries[key] = &entry{name: name, value: value}
	c.order = append(c.order, key)
}

// Delete removes the field associated with name. It is a no-op if there is no
// such field.
func (c *Collection) Delete(name string) {
	key := normalize(name)
	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Get returns the value associated with the given name. The boolean reports
// whether the field is present, so an empty value can be told apart from a
// missing field.
func (c *Collection) Get(name string) (string, bool) {
	e, ok := c.entries[normalize(name)]
	if !ok {
		return "", false
	}
	return e.value, true
}

// Has reports whether a field with the given name exists.
func (c *Collection) Has(name string) bool {
	_, ok := c.entries[normalize(name)]
	return ok
}

// Len returns the number of fields.
func (c *Collection) Len() int {
	return len(c.order)
}

// ForEach calls fn once per field in insertion order with the stored value,
// the stored name and the collection itself. fn may modify the collection:
// fields deleted by fn are not visited, fields added by fn are not visited
// during this call.
func (c *Collection) ForEach(fn func(value, name string, c *Collection)) {
	for _, key := range slices.Clone(c.order) {
		e, ok := c.entries[key]
		if !ok {
			// deleted by an earlier callback
			continue
		}
		fn(e.value, e.name, c)
	}
}

// Keys returns a sequence of the stored field names in insertion order.
func (c *Collection) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, key := range slices.Clone(c.order) {
			e, ok := c.entries[key]
			if !ok {
				continue
			}
			if !yield(e.name) {
				return
			}
		}
	}
}

// Values returns a sequence of the stored values in insertion order.
func (c *Collection) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, key := range slices.Clone(c.order) {
			e, ok := c.entries[key]
			if !ok {
				continue
			}
			if !yield(e.value) {
				return
			}
		}
	}
}

// Entries returns a sequence of (name, value) pairs in insertion order.
func (c *Collection) Entries() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, key := range slices.Clone(c.order) {
			e, ok := c.entries[key]
			if !ok {
				continue
			}
			if !yield(e.name, e.value) {
				return
			}
		}
	}
}

// All is the default iteration over c and is equivalent to Entries.
func (c *Collection) All() iter.Seq2[string, string] {
	return c.Entries()
}

// Clone returns a deep copy of c sharing its options.
func (c *Collection) Clone() *Collection {
	clone := &Collection{
		entries: make(map[string]*entry, len(c.entries)),
		order:   make([]string, len(c.order)),
		opts:    c.opts,
	}
	copy(clone.order, c.order)
	for key, e := range c.entries {
		clone.entries[key] = &entry{name: e.name, value: e.value}
	}
	return clone
}

// String renders the collection as "name: value" lines joined by a newline,
// without a trailing newline. Parse reads this form back.
func (c *Collection) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	c.render(buf)
	return buf.String()
}

func (c *Collection) render(buf *bytebufferpool.ByteBuffer) {
	for i, key := range c.order {
		if i > 0 {
			buf.WriteByte('\n')
		}
		e := c.entries[key]
		buf.WriteString(e.name)
		buf.WriteString(": ")
		buf.WriteString(e.value)
	}
}
