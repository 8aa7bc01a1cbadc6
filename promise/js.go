//go:build js && wasm

package promise

import "syscall/js"

// jsThenable adapts a native promise-like value.
type jsThenable struct {
	v js.Value
}

// JS wraps a native promise-like value so it can be awaited.
func JS(v js.Value) Thenable[js.Value] {
	return jsThenable{v: v}
}

// Then registers both branches through the native two-argument then.
// The callback funcs are released after the first settle; the promise
// contract guarantees the other one never fires afterwards.
func (t jsThenable) Then(onFulfilled func(value js.Value), onRejected func(reason any)) {
	var fulfilled, rejected js.Func
	release := func() {
		fulfilled.Release()
		rejected.Release()
	}

	fulfilled = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer release()
		v := js.Undefined()
		if len(args) > 0 {
			v = args[0]
		}
		onFulfilled(v)
		return nil
	})
	rejected = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer release()
		reason := js.Undefined()
		if len(args) > 0 {
			reason = args[0]
		}
		onRejected(reason)
		return nil
	})

	t.v.Call("then", fulfilled, rejected)
}

// AwaitJS awaits a native promise-like value.
func AwaitJS(v js.Value) (js.Value, error) {
	return Await(JS(v))
}
