package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugifyTool(t *testing.T) {
	tests := []struct {
		input slugifyInput
		want  string
	}{
		{slugifyInput{Text: "Héllo World!"}, "hello-world"},
		{slugifyInput{Text: "Héllo World!", Separator: "_", Case: "uppercase"}, "HELLO_WORLD"},
		{slugifyInput{Text: "  a   b  ", Separator: "."}, "a.b"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			res, out, err := handleSlugify(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.Nil(t, res)
			assert.Equal(t, tt.want, out.Slug)
		})
	}

	res, _, err := handleSlugify(context.Background(), &mcp.CallToolRequest{}, slugifyInput{Text: "x", Separator: "+"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestLoremTool(t *testing.T) {
	_, out, err := handleLorem(context.Background(), &mcp.CallToolRequest{}, loremInput{Type: "word", Count: 5})
	require.NoError(t, err)
	assert.Equal(t, "Lorem ipsum dolor sit amet", out.Content)

	_, out, err = handleLorem(context.Background(), &mcp.CallToolRequest{}, loremInput{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Content, "Lorem ipsum dolor sit amet"))

	_, out, err = handleLorem(context.Background(), &mcp.CallToolRequest{}, loremInput{Type: "paragraph", Count: 2, Format: "html"})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.Content, "<p>"))

	res, _, err := handleLorem(context.Background(), &mcp.CallToolRequest{}, loremInput{Type: "word", Count: 101})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
