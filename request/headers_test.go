package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingAppender struct {
	appended []Field
}

func (r *recordingAppender) Append(name, value string) {
	r.appended = append(r.appended, Field{Name: name, Value: value})
}

func TestMaterializeInto(t *testing.T) {
	testcases := []struct {
		desc   string
		fields []Field
	}{
		{
			desc: "empty list appends nothing",
		},
		{
			desc:   "single pair",
			fields: []Field{{Name: "Accept", Value: "text/html"}},
		},
		{
			desc: "duplicates preserved in order",
			fields: []Field{
				{Name: "Set-Cookie", Value: "a=1"},
				{Name: "Accept", Value: "text/html"},
				{Name: "Set-Cookie", Value: "b=2"},
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			var h Headers
			for _, f := range tc.fields {
				h.Add(f.Name, f.Value)
			}

			app := &recordingAppender{}
			h.MaterializeInto(app)

			assert.Len(t, app.appended, len(tc.fields))
			assert.Equal(t, tc.fields, app.appended)
		})
	}
}

func TestHeadersClone(t *testing.T) {
	assert.Nil(t, Headers(nil).Clone())

	var h Headers
	h.Add("X-A", "1")

	clone := h.Clone()
	h[0].Value = "changed"

	assert.Equal(t, Headers{{Name: "X-A", Value: "1"}}, clone)
}
