package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFormatTool(t *testing.T) {
	tests := []struct {
		name     string
		input    convertFormatInput
		contains []string
	}{
		{
			name:     "yaml to json",
			input:    convertFormatInput{Kind: "yaml-to-json", Input: documentInput{Content: "a: 1\nb: [x, y]\n"}},
			contains: []string{`"a": 1`, `"x"`},
		},
		{
			name:     "json to yaml",
			input:    convertFormatInput{Kind: "JSON-to-YAML", Input: documentInput{Content: `{"a":{"b":true}}`}},
			contains: []string{"a:", "b: true"},
		},
		{
			name:     "xml to json",
			input:    convertFormatInput{Kind: "xml-to-json", Input: documentInput{Content: `<a id="1">hi</a>`}},
			contains: []string{`"@id"`, `"#text"`},
		},
		{
			name:     "json to xml",
			input:    convertFormatInput{Kind: "json-to-xml", Input: documentInput{Content: `{"a":"hi"}`}},
			contains: []string{"<a>hi</a>"},
		},
		{
			name:     "csv to json with separator",
			input:    convertFormatInput{Kind: "csv-to-json", Separator: ".", Input: documentInput{Content: "a.b,c\n1,x\n"}},
			contains: []string{`"b": 1`, `"c": "x"`},
		},
		{
			name:     "json to csv",
			input:    convertFormatInput{Kind: "json-to-csv", Input: documentInput{Content: `[{"a":{"b":1}}]`}},
			contains: []string{"a_b", "1"},
		},
		{
			name:     "typescript",
			input:    convertFormatInput{Kind: "json-to-typescript", Name: "User", Input: documentInput{Content: `{"id":1}`}},
			contains: []string{"interface User", "id: number"},
		},
		{
			name:     "python dataclass",
			input:    convertFormatInput{Kind: "json-to-python", Input: documentInput{Content: `{"id":1}`}},
			contains: []string{"@dataclass", "class Root", "id: int"},
		},
		{
			name:     "pydantic",
			input:    convertFormatInput{Kind: "json-to-pydantic", Input: documentInput{Content: `{"id":1}`}},
			contains: []string{"BaseModel"},
		},
		{
			name: "go",
			input: convertFormatInput{
				Kind: "json-to-go", Name: "User", Package: "api", OmitEmpty: true,
				Input: documentInput{Content: `{"user_id":1}`},
			},
			contains: []string{"package api", "type User struct", `json:"user_id,omitempty"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, output, err := handleConvertFormat(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.Nil(t, res, "unexpected error result: %v", res)
			for _, want := range tt.contains {
				assert.Contains(t, output.Result, want)
			}
		})
	}
}

func TestConvertFormatTool_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: xutil\n"), 0o644))

	_, output, err := handleConvertFormat(context.Background(), &mcp.CallToolRequest{}, convertFormatInput{
		Kind:  "yaml-to-json",
		Input: documentInput{File: path},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"xutil"}`, output.Result)
}

func TestConvertFormatTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input convertFormatInput
		want  string
	}{
		{"unknown kind", convertFormatInput{Kind: "toml-to-json", Input: documentInput{Content: "a = 1"}}, "unsupported kind"},
		{"no input", convertFormatInput{Kind: "yaml-to-json"}, "exactly one of file, url, or content"},
		{"invalid utf8", convertFormatInput{Kind: "json-to-go", Input: documentInput{Content: "\xff\xfe"}}, "UTF-8"},
		{"invalid json", convertFormatInput{Kind: "json-to-typescript", Input: documentInput{Content: "{"}}, "invalid input"},
		{"missing file", convertFormatInput{Kind: "yaml-to-json", Input: documentInput{File: "/tmp/xutil-missing/doc.yaml"}}, "<path>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, err := handleConvertFormat(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
			assert.Contains(t, res.Content[0].(*mcp.TextContent).Text, tt.want)
		})
	}
}
