package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/xutil/textutil"
)

type slugifyInput struct {
	Text      string `json:"text"                jsonschema:"Text to slugify"`
	Separator string `json:"separator,omitempty" jsonschema:"- (default)\\, _ or ."`
	Case      string `json:"case,omitempty"      jsonschema:"lowercase (default) or uppercase"`
}

type slugifyOutput struct {
	Slug string `json:"slug"`
}

func handleSlugify(_ context.Context, _ *mcp.CallToolRequest, input slugifyInput) (*mcp.CallToolResult, slugifyOutput, error) {
	slug, err := textutil.Slugify(input.Text, textutil.SlugOptions{
		Separator: input.Separator,
		Case:      textutil.SlugCase(input.Case),
	})
	if err != nil {
		return errResult(err), slugifyOutput{}, nil
	}
	return nil, slugifyOutput{Slug: slug}, nil
}

type loremInput struct {
	Type   string `json:"type,omitempty"   jsonschema:"paragraph (default)\\, sentence or word"`
	Count  int    `json:"count,omitempty"  jsonschema:"How many units to generate (default 1)"`
	Format string `json:"format,omitempty" jsonschema:"text (default) or html"`
}

type loremOutput struct {
	Content string `json:"content"`
}

func handleLorem(_ context.Context, _ *mcp.CallToolRequest, input loremInput) (*mcp.CallToolResult, loremOutput, error) {
	count := input.Count
	if count == 0 {
		count = 1
	}
	content, err := textutil.Lorem(textutil.LoremRequest{
		Type:   textutil.LoremType(input.Type),
		Count:  count,
		Format: textutil.LoremFormat(input.Format),
	})
	if err != nil {
		return errResult(err), loremOutput{}, nil
	}
	return nil, loremOutput{Content: content}, nil
}
