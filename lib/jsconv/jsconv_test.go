//go:build js && wasm

package jsconv

import (
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	testcases := []struct {
		desc     string
		input    js.Value
		expected any
		wantFail bool
	}{
		{desc: "null", input: js.Null(), expected: nil},
		{desc: "bool", input: js.ValueOf(true), expected: true},
		{desc: "number", input: js.ValueOf(1), expected: float64(1)},
		{desc: "string", input: js.ValueOf("hello"), expected: "hello"},
		{
			desc:     "object",
			input:    js.ValueOf(map[string]any{"a": 1}),
			expected: map[string]any{"a": float64(1)},
		},
		{
			desc:     "array",
			input:    js.ValueOf([]any{"a", 2, nil}),
			expected: []any{"a", float64(2), nil},
		},
		{
			desc:  "nested",
			input: js.ValueOf(map[string]any{"list": []any{map[string]any{"ok": true}}}),
			expected: map[string]any{
				"list": []any{map[string]any{"ok": true}},
			},
		},
		{desc: "undefined", input: js.Undefined(), wantFail: true},
		{desc: "function", input: js.Global().Get("parseInt"), wantFail: true},
		{
			desc:     "function nested in object",
			input:    js.ValueOf(map[string]any{"fn": js.Global().Get("parseInt")}),
			wantFail: true,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			v, ok := Decode(tc.input)
			if tc.wantFail {
				assert.False(t, ok)
				assert.Nil(t, v)
				return
			}

			assert.True(t, ok)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestToJS(t *testing.T) {
	t.Run("nil passes through as undefined", func(t *testing.T) {
		v, err := ToJS(nil)
		assert.NoError(t, err)
		assert.True(t, v.IsUndefined())
	})

	t.Run("js value passes through unchanged", func(t *testing.T) {
		in := js.ValueOf("native")
		v, err := ToJS(in)
		assert.NoError(t, err)
		assert.True(t, in.Equal(v))
	})

	t.Run("string", func(t *testing.T) {
		v, err := ToJS("payload")
		assert.NoError(t, err)
		assert.Equal(t, js.TypeString, v.Type())
		assert.Equal(t, "payload", v.String())
	})

	t.Run("bytes round-trip", func(t *testing.T) {
		v, err := ToJS([]byte{1, 2, 3})
		assert.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, Bytes(v.Get("buffer")))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := ToJS(struct{}{})
		assert.Error(t, err)
	})
}
