package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTimeTool(t *testing.T) {
	ts := int64(1705320000)

	_, out, err := handleConvertTime(context.Background(), &mcp.CallToolRequest{}, convertTimeInput{
		Operation: "unix-to-utc",
		Timestamp: &ts,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15T12:00:00+00:00", out.DatetimeUTC)

	_, out, err = handleConvertTime(context.Background(), &mcp.CallToolRequest{}, convertTimeInput{
		Operation: "utc-to-unix",
		Datetime:  "2024-01-15 12:00:00",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Timestamp)
	assert.Equal(t, ts, *out.Timestamp)

	_, out, err = handleConvertTime(context.Background(), &mcp.CallToolRequest{}, convertTimeInput{
		Operation: "timezone",
		Datetime:  "2024-01-15 12:00:00",
		From:      "UTC",
		To:        "Asia/Tokyo",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15 21:00:00 JST", out.Result)
}

func TestConvertTimeTool_ListTimezones(t *testing.T) {
	_, out, err := handleConvertTime(context.Background(), &mcp.CallToolRequest{}, convertTimeInput{
		Operation: "list-timezones",
		Filter:    "tokyo",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, []string{"Asia/Tokyo"}, out.Timezones)

	_, out, err = handleConvertTime(context.Background(), &mcp.CallToolRequest{}, convertTimeInput{
		Operation: "list-timezones",
		Limit:     3,
		Offset:    1,
	})
	require.NoError(t, err)
	assert.Greater(t, out.Total, 3)
	assert.Len(t, out.Timezones, 3)
}

func TestConvertTimeTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input convertTimeInput
		want  string
	}{
		{"missing timestamp", convertTimeInput{Operation: "unix-to-utc"}, "timestamp is required"},
		{"bad datetime", convertTimeInput{Operation: "utc-to-unix", Datetime: "15/01/2024"}, "YYYY-MM-DD"},
		{"unknown zone", convertTimeInput{Operation: "timezone", Datetime: "2024-01-15 12:00:00", From: "UTC", To: "Mars/Olympus"}, "unknown time zone"},
		{"unknown operation", convertTimeInput{Operation: "now"}, "operation must be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, err := handleConvertTime(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
			assert.Contains(t, res.Content[0].(*mcp.TextContent).Text, tt.want)
		})
	}
}
