package imagegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractImage(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		data  string
		shape string
		ok    bool
	}{
		{
			name:  "candidate image",
			body:  `{"candidates":[{"image":{"base64":"AAA"}}]}`,
			data:  "AAA",
			shape: "candidates.image.base64",
			ok:    true,
		},
		{
			name:  "nested inline data",
			body:  `{"candidates":[{"content":{"parts":[{"text":"here you go"},{"inline_data":{"mime_type":"image/png","data":"XYZ"}}]}}]}`,
			data:  "XYZ",
			shape: "candidates.content.parts.inline_data",
			ok:    true,
		},
		{
			name:  "b64 json",
			body:  `{"data":[{"b64_json":"QkJC"}]}`,
			data:  "QkJC",
			shape: "data.b64_json",
			ok:    true,
		},
		{
			name:  "first shape wins",
			body:  `{"candidates":[{"image":{"base64":"FIRST"}}],"data":[{"b64_json":"LAST"}]}`,
			data:  "FIRST",
			shape: "candidates.image.base64",
			ok:    true,
		},
		{name: "no image", body: `{"candidates":[{"content":{"parts":[{"text":"sorry"}]}}]}`},
		{name: "empty object", body: `{}`},
		{name: "invalid json", body: `<html>oops</html>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, shape, ok := extractImage([]byte(tc.body))
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.data, data)
			assert.Equal(t, tc.shape, shape)
		})
	}
}
