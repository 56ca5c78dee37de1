package mcpserver

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/xutil/internal/metrics"
)

func intPtr(v int) *int { return &v }

func TestEncodeDecodeTools_RoundTrip(t *testing.T) {
	tests := []struct {
		scheme  string
		text    string
		shift   *int
		encoded string
	}{
		{scheme: "base32", text: "hello", encoded: "NBSWY3DP"},
		{scheme: "base58", text: "hello", encoded: "Cn8eVZg"},
		{scheme: "base64", text: "hello", encoded: "aGVsbG8="},
		{scheme: "url", text: "a b&c", encoded: "a%20b%26c"},
		{scheme: "html", text: "<b>", encoded: "&lt;b&gt;"},
		{scheme: "morse", text: "SOS", encoded: "... --- ..."},
		{scheme: "rot13", text: "Hello 123", encoded: "Uryyb 456"},
		{scheme: "caesar", text: "abc", shift: intPtr(3), encoded: "def"},
		{scheme: "base2", text: "A", encoded: "01000001"},
		{scheme: "base16", text: "Hi", encoded: "48 69"},
	}
	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			res, enc, err := handleEncode(context.Background(), &mcp.CallToolRequest{}, codecInput{
				Scheme: tt.scheme, Text: tt.text, Shift: tt.shift,
			})
			require.NoError(t, err)
			require.Nil(t, res, "unexpected error result: %v", res)
			assert.Equal(t, tt.encoded, enc.Result)

			res, dec, err := handleDecode(context.Background(), &mcp.CallToolRequest{}, codecInput{
				Scheme: tt.scheme, Text: enc.Result, Shift: tt.shift,
			})
			require.NoError(t, err)
			require.Nil(t, res, "unexpected error result: %v", res)
			assert.Equal(t, tt.text, dec.Result)
		})
	}
}

func TestEncodeDecodeTools_Errors(t *testing.T) {
	tests := []struct {
		name   string
		handle func(context.Context, *mcp.CallToolRequest, codecInput) (*mcp.CallToolResult, codecOutput, error)
		input  codecInput
		want   string
	}{
		{"unknown scheme", handleEncode, codecInput{Scheme: "base85", Text: "x"}, "unsupported scheme"},
		{"caesar without shift", handleEncode, codecInput{Scheme: "caesar", Text: "x"}, "shift is required"},
		{"empty base64", handleEncode, codecInput{Scheme: "base64", Text: " "}, "cannot be empty"},
		{"jwt payload not json", handleEncode, codecInput{Scheme: "jwt", Text: "nope", Secret: "secret-key"}, "JSON object"},
		{"blank morse", handleDecode, codecInput{Scheme: "morse", Text: " \t "}, "Morse code cannot be empty"},
		{"bad base64", handleDecode, codecInput{Scheme: "base64", Text: "!!!not base64"}, "invalid input"},
		{"bad ulid", handleDecode, codecInput{Scheme: "ulid", Text: "not-a-ulid"}, "invalid ULID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, err := tt.handle(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
			assert.Equal(t, metrics.OutcomeInvalid, res.Meta[outcomeMetaKey])
			assert.Contains(t, res.Content[0].(*mcp.TextContent).Text, tt.want)
		})
	}
}

func TestJWTTools(t *testing.T) {
	res, enc, err := handleEncode(context.Background(), &mcp.CallToolRequest{}, codecInput{
		Scheme:        "jwt",
		Text:          `{"sub":"42","role":"admin"}`,
		Secret:        "super-secret",
		ExpiryMinutes: 5,
	})
	require.NoError(t, err)
	require.Nil(t, res)
	require.NotEmpty(t, enc.Result)
	expires, err := time.Parse(time.RFC3339, enc.ExpiresAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), expires, time.Minute)

	res, dec, err := handleDecode(context.Background(), &mcp.CallToolRequest{}, codecInput{
		Scheme: "jwt",
		Text:   enc.Result,
		Secret: "super-secret",
	})
	require.NoError(t, err)
	require.Nil(t, res)
	assert.Equal(t, "42", dec.Payload["sub"])
	assert.Equal(t, "HS256", dec.Headers["alg"])
	assert.NotEmpty(t, dec.IssuedAt)

	res, _, err = handleDecode(context.Background(), &mcp.CallToolRequest{}, codecInput{
		Scheme: "jwt",
		Text:   enc.Result,
		Secret: "wrong-secret",
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, metrics.OutcomeUnauthorized, res.Meta[outcomeMetaKey])
}

func TestDecodeTool_ULID(t *testing.T) {
	_, out, err := handleDecode(context.Background(), &mcp.CallToolRequest{}, codecInput{
		Scheme: "ULID",
		Text:   "01ARZ3NDEKTSV4RRFFQ69G5FAV",
	})
	require.NoError(t, err)
	assert.Equal(t, "ulid", out.Scheme)
	assert.Equal(t, "2016-07-30T23:54:10.259Z", out.Result)
}

func TestConvertBaseTool(t *testing.T) {
	_, out, err := handleConvertBase(context.Background(), &mcp.CallToolRequest{}, convertBaseInput{
		Number: "255", FromBase: 10, ToBase: 16,
	})
	require.NoError(t, err)
	assert.Equal(t, "FF", out.Result)

	res, _, err := handleConvertBase(context.Background(), &mcp.CallToolRequest{}, convertBaseInput{
		Number: "12", FromBase: 2, ToBase: 10,
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHashTool(t *testing.T) {
	_, out, err := handleHash(context.Background(), &mcp.CallToolRequest{}, hashInput{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "sha256", out.Algorithm)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", out.Digest)

	_, out, err = handleHash(context.Background(), &mcp.CallToolRequest{}, hashInput{Text: "hello", Algorithm: "MD5"})
	require.NoError(t, err)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", out.Digest)

	res, _, err := handleHash(context.Background(), &mcp.CallToolRequest{}, hashInput{Text: "hello", Algorithm: "crc32"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
