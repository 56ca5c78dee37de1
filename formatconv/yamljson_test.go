package formatconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/xutil/xuerrors"
)

func TestYAMLToJSON(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "scalars keep source order",
			yaml: "name: xutil\nversion: 1.2\ncount: 3\nenabled: true\nnothing: null\ntags: [a, b]\n",
			want: `{
  "name": "xutil",
  "version": 1.2,
  "count": 3,
  "enabled": true,
  "nothing": null,
  "tags": [
    "a",
    "b"
  ]
}`,
		},
		{
			name: "order is not sorted",
			yaml: "b: 1\na: 2\n",
			want: "{\n  \"b\": 1,\n  \"a\": 2\n}",
		},
		{
			name: "timestamps become ISO strings",
			yaml: "day: 2024-01-15\nat: 2024-01-15T10:30:00Z\n",
			want: "{\n  \"day\": \"2024-01-15\",\n  \"at\": \"2024-01-15T10:30:00+00:00\"\n}",
		},
		{
			name: "application tags keep their text",
			yaml: "password: !secret hunter2\n",
			want: "{\n  \"password\": \"hunter2\"\n}",
		},
		{
			name: "unicode and html characters are not escaped",
			yaml: "greeting: héllo <b>\n",
			want: "{\n  \"greeting\": \"héllo <b>\"\n}",
		},
		{
			name: "merge keys",
			yaml: "base: &b\n  x: 1\n  y: 2\nchild:\n  <<: *b\n  y: 3\n",
			want: `{
  "base": {
    "x": 1,
    "y": 2
  },
  "child": {
    "x": 1,
    "y": 3
  }
}`,
		},
		{
			name: "top-level sequence",
			yaml: "- 1\n- two\n",
			want: "[\n  1,\n  \"two\"\n]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YAMLToJSON(tt.yaml)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYAMLToJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "empty", yaml: "", wantErr: "empty or invalid content"},
		{name: "null document", yaml: "~\n", wantErr: "empty or invalid content"},
		{name: "syntax error", yaml: "key: [unclosed\n", wantErr: "error parsing YAML"},
		{name: "nan", yaml: "v: .nan\n", wantErr: "cannot be represented in JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := YAMLToJSON(tt.yaml)
			require.Error(t, err)
			assert.ErrorIs(t, err, xuerrors.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestJSONToYAML(t *testing.T) {
	got, err := JSONToYAML(`{"name":"x","list":[1,2],"nested":{"a":true,"b":null}}`)
	require.NoError(t, err)
	assert.Equal(t, "name: x\nlist:\n- 1\n- 2\nnested:\n  a: true\n  b: null\n", got)
}

func TestJSONToYAMLRoundTrip(t *testing.T) {
	in := "{\n  \"z\": \"last letter\",\n  \"a\": [\n    1.5,\n    \"multi\\nline\"\n  ]\n}"
	y, err := JSONToYAML(in)
	require.NoError(t, err)
	back, err := YAMLToJSON(y)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestJSONToYAMLErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "{", `{"a":1} trailing`} {
		_, err := JSONToYAML(in)
		assert.ErrorIs(t, err, xuerrors.ErrInvalidInput, "input %q", in)
	}
}

func TestFileConversionsRequireUTF8(t *testing.T) {
	bad := []byte{0xff, 0xfe, 'a'}
	for name, fn := range map[string]func([]byte) (string, error){
		"yaml": YAMLFileToJSON,
		"json": JSONFileToYAML,
		"xml":  XMLFileToJSON,
		"xml2": JSONFileToXML,
	} {
		_, err := fn(bad)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "UTF-8", name)
	}

	got, err := YAMLFileToJSON([]byte("a: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", got)
}
