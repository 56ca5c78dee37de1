package mcpserver

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/xutil/formatconv"
	"github.com/erraggy/xutil/internal/maputil"
	"github.com/erraggy/xutil/xuerrors"
)

type convertFormatInput struct {
	Kind      string        `json:"kind"                 jsonschema:"Conversion to run\\, e.g. yaml-to-json or json-to-go"`
	Input     documentInput `json:"input"                jsonschema:"The source document"`
	Name      string        `json:"name,omitempty"       jsonschema:"Top-level type name for code generators"`
	Separator string        `json:"separator,omitempty"  jsonschema:"Key separator for CSV conversions (default _)"`
	Package   string        `json:"package,omitempty"    jsonschema:"Package clause for json-to-go"`
	OmitEmpty bool          `json:"omit_empty,omitempty" jsonschema:"Add omitempty to json-to-go tags"`
}

type convertFormatOutput struct {
	Kind   string `json:"kind"`
	Result string `json:"result"`
}

type formatFunc func(data []byte, input convertFormatInput) (string, error)

// utf8Only adapts a string converter, rejecting documents that are not UTF-8.
func utf8Only(fn func(string, convertFormatInput) (string, error)) formatFunc {
	return func(data []byte, input convertFormatInput) (string, error) {
		if !utf8.Valid(data) {
			return "", xuerrors.Input("input", "document encoding must be UTF-8")
		}
		return fn(string(data), input)
	}
}

var formatKinds = map[string]formatFunc{
	"yaml-to-json": func(data []byte, _ convertFormatInput) (string, error) {
		return formatconv.YAMLFileToJSON(data)
	},
	"json-to-yaml": func(data []byte, _ convertFormatInput) (string, error) {
		return formatconv.JSONFileToYAML(data)
	},
	"xml-to-json": func(data []byte, _ convertFormatInput) (string, error) {
		return formatconv.XMLFileToJSON(data)
	},
	"json-to-xml": func(data []byte, _ convertFormatInput) (string, error) {
		return formatconv.JSONFileToXML(data)
	},
	"csv-to-json": func(data []byte, input convertFormatInput) (string, error) {
		return formatconv.CSVToJSON(data, input.Separator)
	},
	"json-to-csv": utf8Only(func(s string, input convertFormatInput) (string, error) {
		return formatconv.JSONToCSV(s, input.Separator)
	}),
	"json-to-typescript": utf8Only(func(s string, input convertFormatInput) (string, error) {
		return formatconv.JSONToTypeScript(s, input.Name)
	}),
	"json-to-python": utf8Only(func(s string, input convertFormatInput) (string, error) {
		return formatconv.JSONToPython(s, input.Name, formatconv.Dataclass)
	}),
	"json-to-pydantic": utf8Only(func(s string, input convertFormatInput) (string, error) {
		return formatconv.JSONToPython(s, input.Name, formatconv.Pydantic)
	}),
	"json-to-go": utf8Only(func(s string, input convertFormatInput) (string, error) {
		return formatconv.JSONToGo(s, formatconv.GoOptions{
			TypeName:  input.Name,
			Package:   input.Package,
			OmitEmpty: input.OmitEmpty,
		})
	}),
}

func formatKindNames() []string {
	return maputil.SortedKeys(formatKinds)
}

func handleConvertFormat(ctx context.Context, _ *mcp.CallToolRequest, input convertFormatInput) (*mcp.CallToolResult, convertFormatOutput, error) {
	kind := strings.ToLower(strings.TrimSpace(input.Kind))
	convert, ok := formatKinds[kind]
	if !ok {
		err := xuerrors.Input("kind", "unsupported kind %q, expected one of %v", input.Kind, formatKindNames())
		return errResult(err), convertFormatOutput{}, nil
	}

	data, err := input.Input.resolve(ctx)
	if err != nil {
		return errResult(err), convertFormatOutput{}, nil
	}

	result, err := convert(data, input)
	if err != nil {
		return errResult(err), convertFormatOutput{}, nil
	}
	return nil, convertFormatOutput{Kind: kind, Result: result}, nil
}
