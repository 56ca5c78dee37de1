package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/xutil/codec"
	"github.com/erraggy/xutil/generate"
	"github.com/erraggy/xutil/xuerrors"
)

type codecInput struct {
	Scheme        string `json:"scheme"                   jsonschema:"Encoding scheme\\, e.g. base64\\, url\\, morse\\, caesar\\, jwt"`
	Text          string `json:"text"                     jsonschema:"Text to transform. For jwt encode this is the JSON payload\\, for jwt decode the token."`
	Shift         *int   `json:"shift,omitempty"          jsonschema:"Caesar shift (-100 to 100)"`
	Secret        string `json:"secret,omitempty"         jsonschema:"JWT HMAC secret or PEM encoded RSA key"`
	Algorithm     string `json:"algorithm,omitempty"      jsonschema:"JWT algorithm (default HS256)"`
	ExpiryMinutes int    `json:"expiry_minutes,omitempty" jsonschema:"JWT expiry relative to now"`
	SkipExpiry    bool   `json:"skip_expiry,omitempty"    jsonschema:"Do not reject expired JWTs on decode"`
}

type codecOutput struct {
	Scheme    string         `json:"scheme"`
	Result    string         `json:"result"`
	Payload   map[string]any `json:"payload,omitempty"`
	Headers   map[string]any `json:"headers,omitempty"`
	IssuedAt  string         `json:"issued_at,omitempty"`
	ExpiresAt string         `json:"expires_at,omitempty"`
}

var textRadix = map[string]int{"base2": 2, "base8": 8, "base10": 10, "base16": 16}

func encodeSchemes() []string {
	return []string{"base32", "base58", "base64", "url", "html", "morse", "rot13", "caesar", "base2", "base8", "base10", "base16", "jwt"}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func caesarShift(input codecInput) (int, error) {
	if input.Shift == nil {
		return 0, xuerrors.Input("shift", "shift is required for caesar")
	}
	return *input.Shift, nil
}

func encode(input codecInput) (codecOutput, error) {
	out := codecOutput{Scheme: input.Scheme}
	var err error
	switch input.Scheme {
	case "base32", "base58", "base64":
		out.Result, err = codec.Encode(codec.Base(input.Scheme), input.Text)
	case "url":
		out.Result, err = codec.URLEncode(input.Text)
	case "html":
		out.Result = codec.HTMLEscape(input.Text)
	case "morse":
		out.Result, err = codec.ToMorse(input.Text)
	case "rot13":
		out.Result, err = codec.ROT13(input.Text)
	case "caesar":
		var shift int
		if shift, err = caesarShift(input); err == nil {
			out.Result, err = codec.Caesar(input.Text, shift)
		}
	case "base2", "base8", "base10", "base16":
		out.Result, err = codec.TextToBase(input.Text, textRadix[input.Scheme])
	case "jwt":
		var payload map[string]any
		if err := json.Unmarshal([]byte(input.Text), &payload); err != nil {
			return codecOutput{}, &xuerrors.InputError{Field: "text", Message: "JWT payload must be a JSON object", Cause: err}
		}
		res, err := codec.EncodeJWT(codec.JWTEncodeRequest{
			Payload:       payload,
			Secret:        input.Secret,
			Algorithm:     codec.JWTAlgorithm(input.Algorithm),
			ExpiryMinutes: input.ExpiryMinutes,
		})
		if err != nil {
			return codecOutput{}, err
		}
		out.Result = res.Token
		out.ExpiresAt = formatTime(res.ExpiresAt)
	default:
		return codecOutput{}, xuerrors.Input("scheme", "unsupported scheme %q, expected one of %v", input.Scheme, encodeSchemes())
	}
	return out, err
}

func decode(input codecInput) (codecOutput, error) {
	out := codecOutput{Scheme: input.Scheme}
	var err error
	switch input.Scheme {
	case "base32", "base58", "base64":
		out.Result, err = codec.Decode(codec.Base(input.Scheme), input.Text)
	case "url":
		out.Result, err = codec.URLDecode(input.Text)
	case "html":
		out.Result = codec.HTMLUnescape(input.Text)
	case "morse":
		out.Result, err = codec.FromMorse(input.Text)
	case "rot13":
		out.Result, err = codec.Caesar(input.Text, -codec.ROT13Shift)
	case "caesar":
		var shift int
		if shift, err = caesarShift(input); err == nil {
			out.Result, err = codec.Caesar(input.Text, -shift)
		}
	case "base2", "base8", "base10", "base16":
		out.Result, err = codec.BaseToText(input.Text, textRadix[input.Scheme])
	case "jwt":
		res, err := codec.DecodeJWT(codec.JWTDecodeRequest{
			Token:        input.Text,
			Secret:       input.Secret,
			Algorithm:    codec.JWTAlgorithm(input.Algorithm),
			VerifyExpiry: !input.SkipExpiry,
		})
		if err != nil {
			return codecOutput{}, err
		}
		out.Result = input.Text
		out.Payload = res.Payload
		out.Headers = res.Headers
		out.IssuedAt = formatTime(res.IssuedAt)
		out.ExpiresAt = formatTime(res.ExpiresAt)
	case "ulid":
		t, err := generate.ULIDTime(input.Text)
		if err != nil {
			return codecOutput{}, err
		}
		out.Result = t.UTC().Format(time.RFC3339Nano)
	default:
		schemes := append(encodeSchemes(), "ulid")
		return codecOutput{}, xuerrors.Input("scheme", "unsupported scheme %q, expected one of %v", input.Scheme, schemes)
	}
	return out, err
}

func handleEncode(_ context.Context, _ *mcp.CallToolRequest, input codecInput) (*mcp.CallToolResult, codecOutput, error) {
	input.Scheme = strings.ToLower(strings.TrimSpace(input.Scheme))
	out, err := encode(input)
	if err != nil {
		return errResult(err), codecOutput{}, nil
	}
	return nil, out, nil
}

func handleDecode(_ context.Context, _ *mcp.CallToolRequest, input codecInput) (*mcp.CallToolResult, codecOutput, error) {
	input.Scheme = strings.ToLower(strings.TrimSpace(input.Scheme))
	out, err := decode(input)
	if err != nil {
		return errResult(err), codecOutput{}, nil
	}
	return nil, out, nil
}

type convertBaseInput struct {
	Number   string `json:"number"    jsonschema:"Integer to convert\\, optionally signed"`
	FromBase int    `json:"from_base" jsonschema:"Radix of number (2-36)"`
	ToBase   int    `json:"to_base"   jsonschema:"Radix of the result (2-36)"`
}

type convertBaseOutput struct {
	Result string `json:"result"`
}

func handleConvertBase(_ context.Context, _ *mcp.CallToolRequest, input convertBaseInput) (*mcp.CallToolResult, convertBaseOutput, error) {
	res, err := codec.ConvertBase(input.Number, input.FromBase, input.ToBase)
	if err != nil {
		return errResult(err), convertBaseOutput{}, nil
	}
	return nil, convertBaseOutput{Result: res}, nil
}

type hashInput struct {
	Text      string `json:"text"                jsonschema:"Text to hash"`
	Algorithm string `json:"algorithm,omitempty" jsonschema:"Digest algorithm (default sha256)"`
}

type hashOutput struct {
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
}

func handleHash(_ context.Context, _ *mcp.CallToolRequest, input hashInput) (*mcp.CallToolResult, hashOutput, error) {
	alg := codec.HashAlgorithm(strings.ToLower(input.Algorithm))
	if alg == "" {
		alg = codec.SHA256
	}
	digest, err := codec.Hash(alg, input.Text)
	if err != nil {
		return errResult(err), hashOutput{}, nil
	}
	return nil, hashOutput{Algorithm: string(alg), Digest: digest}, nil
}
