package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/xutil/timeconv"
	"github.com/erraggy/xutil/xuerrors"
)

type convertTimeInput struct {
	Operation string `json:"operation"           jsonschema:"unix-to-utc\\, utc-to-unix\\, timezone or list-timezones"`
	Timestamp *int64 `json:"timestamp,omitempty" jsonschema:"Unix seconds for unix-to-utc"`
	Datetime  string `json:"datetime,omitempty"  jsonschema:"YYYY-MM-DD HH:MM:SS for utc-to-unix and timezone"`
	From      string `json:"from,omitempty"      jsonschema:"Source IANA zone for timezone"`
	To        string `json:"to,omitempty"        jsonschema:"Target IANA zone for timezone"`
	Filter    string `json:"filter,omitempty"    jsonschema:"Case-insensitive substring filter for list-timezones"`
	Offset    int    `json:"offset,omitempty"    jsonschema:"Skip the first N zones of list-timezones"`
	Limit     int    `json:"limit,omitempty"     jsonschema:"Maximum zones returned by list-timezones"`
}

type convertTimeOutput struct {
	Operation   string   `json:"operation"`
	Timestamp   *int64   `json:"timestamp,omitempty"`
	DatetimeUTC string   `json:"datetime_utc,omitempty"`
	Result      string   `json:"result,omitempty"`
	Total       int      `json:"total,omitempty"`
	Timezones   []string `json:"timezones,omitempty"`
}

func handleConvertTime(_ context.Context, _ *mcp.CallToolRequest, input convertTimeInput) (*mcp.CallToolResult, convertTimeOutput, error) {
	op := strings.ToLower(strings.TrimSpace(input.Operation))
	out := convertTimeOutput{Operation: op}

	switch op {
	case "unix-to-utc":
		if input.Timestamp == nil {
			return errResult(xuerrors.Input("timestamp", "timestamp is required for unix-to-utc")), convertTimeOutput{}, nil
		}
		res, err := timeconv.UnixToUTC(*input.Timestamp)
		if err != nil {
			return errResult(err), convertTimeOutput{}, nil
		}
		out.Timestamp, out.DatetimeUTC = &res.Timestamp, res.DatetimeUTC
	case "utc-to-unix":
		res, err := timeconv.UTCToUnix(input.Datetime)
		if err != nil {
			return errResult(err), convertTimeOutput{}, nil
		}
		out.Timestamp, out.DatetimeUTC = &res.Timestamp, res.DatetimeUTC
	case "timezone":
		res, err := timeconv.ConvertTimezone(input.Datetime, input.From, input.To)
		if err != nil {
			return errResult(err), convertTimeOutput{}, nil
		}
		out.Result = res.Result
	case "list-timezones":
		zones := timeconv.Timezones()
		if f := strings.ToLower(input.Filter); f != "" {
			matched := makeSlice[string](len(zones))
			for _, z := range zones {
				if strings.Contains(strings.ToLower(z), f) {
					matched = append(matched, z)
				}
			}
			zones = matched
		}
		out.Total = len(zones)
		out.Timezones = paginate(zones, input.Offset, input.Limit)
	default:
		err := xuerrors.Input("operation", "operation must be unix-to-utc, utc-to-unix, timezone or list-timezones")
		return errResult(err), convertTimeOutput{}, nil
	}
	return nil, out, nil
}
