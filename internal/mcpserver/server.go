// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes xutil conversions and generators as MCP tools over stdio.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"runtime/debug"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/xutil"
	"github.com/erraggy/xutil/internal/metrics"
)

const serverInstructions = `xutil MCP server: unit conversion, data format conversion, encoding, hashing, ID and password generation, text and time utilities.

Configuration: defaults are configurable via XUTIL_MCP_* environment variables set in your MCP client config.

Key settings:
- XUTIL_MCP_MAX_INPUT_SIZE (default: 10485760) maximum bytes for inline, file or URL documents
- XUTIL_MCP_MAX_IDS (default: 100) maximum count for generate_ids
- XUTIL_MCP_PASSWORD_LENGTH (default: 16) default generate_password length
- XUTIL_MCP_ALLOW_PRIVATE_IPS (default: false) allow URL documents on private networks
- XUTIL_MCP_CACHE_ENABLED (default: true) cache file and URL documents
- XUTIL_MCP_CACHE_FILE_TTL (default: 15m) and XUTIL_MCP_CACHE_URL_TTL (default: 5m)
- XUTIL_MCP_LIST_LIMIT (default: 100) page size of list-timezones, capped by XUTIL_MCP_MAX_LIMIT (default: 1000)

Use list_units before convert_units to discover domain and unit names.`

// outcomeMetaKey carries the metrics outcome of a failed call in the result
// metadata.
const outcomeMetaKey = "xutil/outcome"

// Option configures Run.
type Option func(*runOptions)

type runOptions struct {
	metrics   *metrics.Metrics
	transport mcp.Transport
}

// WithMetrics records one operation per tool call.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *runOptions) {
		o.metrics = m
	}
}

// WithTransport replaces the stdio transport.
func WithTransport(t mcp.Transport) Option {
	return func(o *runOptions) {
		o.transport = t
	}
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled. XUTIL_MCP_* settings are re-read so that
// variables loaded after package initialization apply.
func Run(ctx context.Context, opts ...Option) error {
	o := runOptions{transport: &mcp.StdioTransport{}}
	for _, opt := range opts {
		opt(&o)
	}
	cfg = loadConfig()
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}
	return newServer(o.metrics).Run(ctx, o.transport)
}

func newServer(m *metrics.Metrics) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "xutil", Version: xutil.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, m)
	return server
}

func registerAllTools(server *mcp.Server, m *metrics.Metrics) {
	addTool(server, m, &mcp.Tool{
		Name:        "convert_units",
		Description: "Convert a value between units of one domain (length, weight, temperature, area, volume, speed, time, energy, power, pressure, frequency, angle, fuel-economy, bit-byte). Returns the value in every unit of the domain, or only in the unit named by to. Results are rounded to 8 decimals (temperature 4).",
	}, handleConvertUnits)

	addTool(server, m, &mcp.Tool{
		Name:        "list_units",
		Description: "List conversion domains with their units, canonical unit, precision and value constraint. Pass domain to describe a single domain.",
	}, handleListUnits)

	addTool(server, m, &mcp.Tool{
		Name:        "convert_css",
		Description: "Convert a CSS length between px, rem and em. kind is one of px-to-rem-em, rem-to-px-em, em-to-px-rem. Font sizes default to 16px.",
	}, handleConvertCSS)

	addTool(server, m, &mcp.Tool{
		Name:        "convert_format",
		Description: "Convert a document between data formats or generate code from JSON. kind is one of yaml-to-json, json-to-yaml, xml-to-json, json-to-xml, csv-to-json, json-to-csv, json-to-typescript, json-to-python, json-to-pydantic, json-to-go. Provide the document as inline content, a file path, or a URL.",
	}, handleConvertFormat)

	addTool(server, m, &mcp.Tool{
		Name:        "encode",
		Description: "Encode text. scheme is one of base32, base58, base64, url, html, morse, rot13, caesar (uses shift), base2, base8, base10, base16 (code points), jwt (text is the JSON payload; uses secret, algorithm, expiry_minutes).",
	}, handleEncode)

	addTool(server, m, &mcp.Tool{
		Name:        "decode",
		Description: "Decode text. scheme is one of base32, base58, base64, url, html, morse, rot13, caesar (uses shift), base2, base8, base10, base16, jwt (verifies the signature with secret and algorithm), ulid (returns the embedded timestamp).",
	}, handleDecode)

	addTool(server, m, &mcp.Tool{
		Name:        "convert_base",
		Description: "Convert an integer between bases 2 to 36. Arbitrary precision, upper-case digits in the result.",
	}, handleConvertBase)

	addTool(server, m, &mcp.Tool{
		Name:        "hash",
		Description: "Hash text and return the hex digest. algorithm is one of md5, sha1, sha256, sha512, sha3-256, sha3-512, blake2b-256.",
	}, handleHash)

	addTool(server, m, &mcp.Tool{
		Name:        "generate_ids",
		Description: "Generate random UUIDs (v4) or ULIDs. ULIDs in one call are strictly increasing. Maximum count is configurable via XUTIL_MCP_MAX_IDS.",
	}, handleGenerateIDs)

	addTool(server, m, &mcp.Tool{
		Name:        "generate_password",
		Description: "Generate a random password from crypto/rand with at least one character of every enabled class. Length 8 to 128; default configurable via XUTIL_MCP_PASSWORD_LENGTH.",
	}, handleGeneratePassword)

	addTool(server, m, &mcp.Tool{
		Name:        "slugify",
		Description: "Turn text into a URL slug. Accents are folded, other symbols dropped. separator is -, _ or . and case is lowercase or uppercase.",
	}, handleSlugify)

	addTool(server, m, &mcp.Tool{
		Name:        "lorem_ipsum",
		Description: "Generate placeholder text starting with \"Lorem ipsum dolor sit amet\". type is word (1-100), sentence (1-50) or paragraph (1-20); format is text or html.",
	}, handleLorem)

	addTool(server, m, &mcp.Tool{
		Name:        "convert_time",
		Description: "Time conversions. operation is unix-to-utc (timestamp), utc-to-unix (datetime as YYYY-MM-DD HH:MM:SS), timezone (datetime, from, to as IANA zone names) or list-timezones.",
	}, handleConvertTime)
}

// addTool registers h and records its outcome in m. A panicking handler is
// reported to the client as an internal error result.
func addTool[In, Out any](server *mcp.Server, m *metrics.Metrics, tool *mcp.Tool, h mcp.ToolHandlerFor[In, Out]) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, in In) (res *mcp.CallToolResult, out Out, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				var zero Out
				res, out, err = errResult(errInternal), zero, nil
				slog.Default().LogAttrs(ctx, slog.LevelError, "panic in tool handler",
					slog.String("tool", tool.Name),
					slog.String("panic", fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
				)
			}
			outcome := metrics.Outcome(err)
			if err == nil && res != nil && res.IsError {
				outcome, _ = res.Meta[outcomeMetaKey].(string)
			}
			m.ObserveOutcome(tool.Name, outcome)
		}()
		return h(ctx, req, in)
	})
}

// errInternal replaces the details of a handler panic.
var errInternal = errors.New("internal error")

// paginate returns a window of items. A non-positive limit means
// cfg.ListLimit and limits above cfg.MaxLimit are capped.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Meta:    mcp.Meta{outcomeMetaKey: metrics.Outcome(err)},
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
