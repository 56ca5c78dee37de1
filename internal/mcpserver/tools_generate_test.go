package mcpserver

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/xutil/generate"
)

func TestGenerateIDsTool(t *testing.T) {
	_, out, err := handleGenerateIDs(context.Background(), &mcp.CallToolRequest{}, generateIDsInput{})
	require.NoError(t, err)
	assert.Equal(t, "uuid", out.Kind)
	require.Len(t, out.IDs, 1)
	parsed, err := uuid.Parse(out.IDs[0])
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	_, out, err = handleGenerateIDs(context.Background(), &mcp.CallToolRequest{}, generateIDsInput{Kind: "ULID", Count: 20})
	require.NoError(t, err)
	assert.Equal(t, "ulid", out.Kind)
	require.Len(t, out.IDs, 20)
	assert.True(t, slices.IsSorted(out.IDs), "ULIDs from one call must be increasing")
}

func TestGenerateIDsTool_Limits(t *testing.T) {
	orig := cfg.MaxIDs
	t.Cleanup(func() { cfg.MaxIDs = orig })
	cfg.MaxIDs = 5

	res, _, err := handleGenerateIDs(context.Background(), &mcp.CallToolRequest{}, generateIDsInput{Count: 6})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Contains(t, res.Content[0].(*mcp.TextContent).Text, "XUTIL_MCP_MAX_IDS")

	res, _, err = handleGenerateIDs(context.Background(), &mcp.CallToolRequest{}, generateIDsInput{Kind: "snowflake"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestGeneratePasswordTool(t *testing.T) {
	_, out, err := handleGeneratePassword(context.Background(), &mcp.CallToolRequest{}, generatePasswordInput{})
	require.NoError(t, err)
	assert.Equal(t, cfg.PasswordLength, out.Length)
	assert.Len(t, out.Password, cfg.PasswordLength)

	_, out, err = handleGeneratePassword(context.Background(), &mcp.CallToolRequest{}, generatePasswordInput{
		Length:         12,
		ExcludeSpecial: true,
		ExcludeNumbers: true,
	})
	require.NoError(t, err)
	assert.Len(t, out.Password, 12)
	assert.False(t, strings.ContainsAny(out.Password, generate.Special+generate.Digits))

	res, _, err := handleGeneratePassword(context.Background(), &mcp.CallToolRequest{}, generatePasswordInput{
		ExcludeNumbers: true, ExcludeSpecial: true, ExcludeUppercase: true, ExcludeLowercase: true,
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, _, err = handleGeneratePassword(context.Background(), &mcp.CallToolRequest{}, generatePasswordInput{Length: 4})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
