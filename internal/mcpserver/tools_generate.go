package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/xutil/generate"
	"github.com/erraggy/xutil/xuerrors"
)

type generateIDsInput struct {
	Kind  string `json:"kind,omitempty"  jsonschema:"uuid (default) or ulid"`
	Count int    `json:"count,omitempty" jsonschema:"Number of IDs (default 1)"`
}

type generateIDsOutput struct {
	Kind string   `json:"kind"`
	IDs  []string `json:"ids"`
}

func handleGenerateIDs(_ context.Context, _ *mcp.CallToolRequest, input generateIDsInput) (*mcp.CallToolResult, generateIDsOutput, error) {
	count := input.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || count > cfg.MaxIDs {
		err := xuerrors.Input("count", "count must be between 1 and %d; set XUTIL_MCP_MAX_IDS to increase", cfg.MaxIDs)
		return errResult(err), generateIDsOutput{}, nil
	}

	kind := strings.ToLower(strings.TrimSpace(input.Kind))
	var (
		ids []string
		err error
	)
	switch kind {
	case "", "uuid":
		kind = "uuid"
		ids, err = generate.UUIDs(count)
	case "ulid":
		ids, err = generate.ULIDs(count)
	default:
		err = xuerrors.Input("kind", "kind must be uuid or ulid")
	}
	if err != nil {
		return errResult(err), generateIDsOutput{}, nil
	}
	return nil, generateIDsOutput{Kind: kind, IDs: ids}, nil
}

type generatePasswordInput struct {
	Length           int  `json:"length,omitempty"            jsonschema:"Password length (8-128)"`
	ExcludeNumbers   bool `json:"exclude_numbers,omitempty"   jsonschema:"Leave out digits"`
	ExcludeSpecial   bool `json:"exclude_special,omitempty"   jsonschema:"Leave out punctuation"`
	ExcludeUppercase bool `json:"exclude_uppercase,omitempty" jsonschema:"Leave out upper-case letters"`
	ExcludeLowercase bool `json:"exclude_lowercase,omitempty" jsonschema:"Leave out lower-case letters"`
}

type generatePasswordOutput struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

func handleGeneratePassword(_ context.Context, _ *mcp.CallToolRequest, input generatePasswordInput) (*mcp.CallToolResult, generatePasswordOutput, error) {
	length := input.Length
	if length == 0 {
		length = cfg.PasswordLength
	}
	pw, err := generate.Password(generate.PasswordOptions{
		Length:           length,
		IncludeNumbers:   !input.ExcludeNumbers,
		IncludeSpecial:   !input.ExcludeSpecial,
		IncludeUppercase: !input.ExcludeUppercase,
		IncludeLowercase: !input.ExcludeLowercase,
	})
	if err != nil {
		return errResult(err), generatePasswordOutput{}, nil
	}
	return nil, generatePasswordOutput{Password: pw, Length: length}, nil
}
