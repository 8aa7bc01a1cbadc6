package request

import "strings"

type Method string

const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
	MethodPatch   Method = "PATCH"
)

// Canonical returns the upper-cased wire token for m.
// The zero value canonicalizes to GET.
func (m Method) Canonical() Method {
	if m == "" {
		return MethodGet
	}
	return Method(strings.ToUpper(string(m)))
}
