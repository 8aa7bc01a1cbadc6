package request

// Field is a single header (name, value) pair. Names are
// case-insensitive tokens, values are opaque strings.
type Field struct {
	Name  string
	Value string
}

// Headers is an ordered header list. Duplicate names are permitted and
// preserved in insertion order; how duplicates merge is decided by the
// native header container, not here.
//
// Reference: https://fetch.spec.whatwg.org/#concept-header-list
type Headers []Field

// Add appends a pair to the list.
func (h *Headers) Add(name, value string) {
	*h = append(*h, Field{Name: name, Value: value})
}

// Clone returns an independent copy of the list.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}

// Appender is the append operation of a native header container.
type Appender interface {
	Append(name, value string)
}

// MaterializeInto issues exactly one Append per pair, in insertion
// order. Merging and final representation are left to the container.
func (h Headers) MaterializeInto(app Appender) {
	for _, f := range h {
		app.Append(f.Name, f.Value)
	}
}
