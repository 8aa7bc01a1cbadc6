//go:build js && wasm

package response

import (
	"syscall/js"

	"jsfetch/lib/jsconv"
	"jsfetch/promise"

	"github.com/pkg/errors"
)

// ErrBodyConsumed reports a second read of a response body. The native
// body is a one-shot stream; reading it twice is undefined there, so it
// is refused here instead.
var ErrBodyConsumed = errors.New("response body already consumed")

// Response wraps a native response handle. It is not inspectable beyond
// the accessors below; each body read is its own asynchronous native
// call, and exactly one of JSON, Text or Bytes may run per response.
type Response struct {
	native   js.Value
	consumed bool
}

// From wraps a settled native response handle.
func From(v js.Value) *Response {
	return &Response{native: v}
}

func (r *Response) StatusCode() int { return r.native.Get("status").Int() }
func (r *Response) Status() string  { return r.native.Get("statusText").String() }
func (r *Response) URL() string     { return r.native.Get("url").String() }

// OK reports whether the status is in the 2xx range.
func (r *Response) OK() bool { return r.native.Get("ok").Bool() }

// Header returns the named header through the native container, which
// has already merged duplicates per its own rules.
func (r *Response) Header(name string) (value string, ok bool) {
	v := r.native.Get("headers").Call("get", name)
	if v.Type() != js.TypeString {
		// null when absent.
		return "", false
	}
	return v.String(), true
}

// Native exposes the underlying handle for calls this layer does not
// model.
func (r *Response) Native() js.Value { return r.native }

func (r *Response) consume() error {
	if r.consumed {
		return ErrBodyConsumed
	}
	r.consumed = true
	return nil
}

// JSON parses the body as structured data and interprets the settled
// value in the generic Go value model. ok is false when the value has
// no representation there; err reports a failed native read.
func (r *Response) JSON() (value any, ok bool, err error) {
	if err := r.consume(); err != nil {
		return nil, false, err
	}

	v, err := promise.AwaitJS(r.native.Call("json"))
	if err != nil {
		return nil, false, errors.Wrap(err, "awaiting json read")
	}

	value, ok = jsconv.Decode(v)
	return value, ok, nil
}

// Text reads the body as text, trusting the native decode.
func (r *Response) Text() (string, error) {
	if err := r.consume(); err != nil {
		return "", err
	}

	v, err := promise.AwaitJS(r.native.Call("text"))
	if err != nil {
		return "", errors.Wrap(err, "awaiting text read")
	}
	return v.String(), nil
}

// Bytes reads the raw body.
func (r *Response) Bytes() ([]byte, error) {
	if err := r.consume(); err != nil {
		return nil, err
	}

	buf, err := promise.AwaitJS(r.native.Call("arrayBuffer"))
	if err != nil {
		return nil, errors.Wrap(err, "awaiting arrayBuffer read")
	}
	return jsconv.Bytes(buf), nil
}
