//go:build js && wasm

// Package jsconv converts between native js values and the generic Go
// value model (nil, bool, float64, string, []any, map[string]any).
package jsconv

import (
	"syscall/js"

	"github.com/pkg/errors"
)

var (
	jsObject     = js.Global().Get("Object")
	jsArray      = js.Global().Get("Array")
	jsUint8Array = js.Global().Get("Uint8Array")
)

// Decode interprets v in the generic value model. ok is false when v,
// or anything nested inside it, has no representation there (undefined,
// functions, symbols).
func Decode(v js.Value) (value any, ok bool) {
	switch v.Type() {
	case js.TypeNull:
		return nil, true
	case js.TypeBoolean:
		return v.Bool(), true
	case js.TypeNumber:
		return v.Float(), true
	case js.TypeString:
		return v.String(), true
	case js.TypeObject:
		return decodeObject(v)
	}

	return nil, false
}

func decodeObject(v js.Value) (any, bool) {
	if jsArray.Call("isArray", v).Bool() {
		arr := make([]any, v.Length())
		for i := range arr {
			elem, ok := Decode(v.Index(i))
			if !ok {
				return nil, false
			}
			arr[i] = elem
		}
		return arr, true
	}

	keys := jsObject.Call("keys", v)
	m := make(map[string]any, keys.Length())
	for i := 0; i < keys.Length(); i++ {
		key := keys.Index(i).String()
		val, ok := Decode(v.Get(key))
		if !ok {
			return nil, false
		}
		m[key] = val
	}
	return m, true
}

// ToJS converts an opaque payload into a native value. Only shapes the
// native call accepts directly are supported; anything fancier must be
// supplied by the caller as a ready-made js.Value.
func ToJS(v any) (js.Value, error) {
	switch payload := v.(type) {
	case nil:
		return js.Undefined(), nil
	case js.Value:
		return payload, nil
	case string:
		return js.ValueOf(payload), nil
	case []byte:
		arr := jsUint8Array.New(len(payload))
		js.CopyBytesToJS(arr, payload)
		return arr, nil
	}

	return js.Value{}, errors.Errorf("unsupported payload type %T", v)
}

// Bytes copies an ArrayBuffer (or anything a Uint8Array accepts) into a
// Go byte slice.
func Bytes(buf js.Value) []byte {
	arr := jsUint8Array.New(buf)
	out := make([]byte, arr.Get("length").Int())
	js.CopyBytesToGo(out, arr)
	return out
}
