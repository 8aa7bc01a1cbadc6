//go:build js && wasm

package fetch

import (
	"syscall/js"

	"jsfetch/lib/jsconv"
	"jsfetch/request"

	"github.com/pkg/errors"
)

// nativeHeaders adapts the native Headers container to request.Appender.
type nativeHeaders struct {
	v js.Value
}

func (h nativeHeaders) Append(name, value string) {
	h.v.Call("append", name, value)
}

// buildNative translates req into a single native request handle. No
// network I/O happens here; the handle is purely descriptive.
func buildNative(req request.Request) (js.Value, error) {
	init := req.Resolve()

	headers := js.Global().Get("Headers").New()
	init.Headers.MaterializeInto(nativeHeaders{v: headers})

	body, err := jsconv.ToJS(init.Body)
	if err != nil {
		return js.Value{}, errors.Wrap(err, "converting body payload")
	}

	initObj := js.ValueOf(map[string]any{
		"method":      init.Method,
		"headers":     headers,
		"mode":        init.Mode,
		"credentials": init.Credentials,
		"cache":       init.Cache,
		"redirect":    init.Redirect,
		"referrer":    init.Referrer,
	})
	if !body.IsUndefined() {
		initObj.Set("body", body)
	}

	return js.Global().Get("Request").New(req.URL, initObj), nil
}
