// Package request models fetch requests and their translation into the
// shape the native fetch call expects.
//
// Reference:
//
// - https://fetch.spec.whatwg.org/#requests
//
// - https://developer.mozilla.org/en-US/docs/Web/API/RequestInit
package request

// Request pairs a target URL with a fully specified option set.
// It is meant to be constructed once, passed into the fetch call once,
// and discarded.
type Request struct {
	URL     string
	Options Options
}

// New creates a Request. The header list is cloned so later mutation of
// opts by the caller cannot leak into an already-built request.
func New(url string, opts Options) Request {
	opts.Headers = opts.Headers.Clone()
	return Request{URL: url, Options: opts}
}

// Resolve flattens the request's options into the native argument shape.
func (r Request) Resolve() Init {
	return r.Options.Resolve()
}
