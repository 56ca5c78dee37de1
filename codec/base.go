package codec

import (
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mr-tron/base58"

	"github.com/erraggy/xutil/xuerrors"
)

// Base names a binary-to-text encoding.
type Base string

const (
	Base32 Base = "base32"
	Base58 Base = "base58"
	Base64 Base = "base64"
)

// Bases lists the supported encodings.
func Bases() []Base {
	return []Base{Base32, Base58, Base64}
}

// ParseBase resolves a case-insensitive encoding name.
func ParseBase(s string) (Base, error) {
	b := Base(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Bases() {
		if b == known {
			return b, nil
		}
	}
	return "", xuerrors.Input("base_type", "unsupported base type %q, expected one of %v", s, Bases())
}

// Encode encodes the UTF-8 bytes of text.
func Encode(b Base, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", xuerrors.Input("text", "input text cannot be empty")
	}
	data := []byte(text)
	switch b {
	case Base32:
		return base32.StdEncoding.EncodeToString(data), nil
	case Base58:
		return base58.Encode(data), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(data), nil
	}
	return "", xuerrors.Input("base_type", "unsupported base type %q", b)
}

// Decode decodes text and requires the result to be valid UTF-8.
func Decode(b Base, encoded string) (string, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return "", xuerrors.Input("encoded_text", "encoded text cannot be empty")
	}

	var (
		data []byte
		err  error
	)
	switch b {
	case Base32:
		data, err = base32.StdEncoding.DecodeString(encoded)
	case Base58:
		data, err = base58.Decode(encoded)
	case Base64:
		data, err = base64.StdEncoding.DecodeString(encoded)
	default:
		return "", xuerrors.Input("base_type", "unsupported base type %q", b)
	}
	if err != nil {
		return "", &xuerrors.InputError{Field: "encoded_text", Message: fmt.Sprintf("%s decoding failed", b), Cause: err}
	}
	if !utf8.Valid(data) {
		return "", xuerrors.Input("encoded_text", "decoded %s data is not valid UTF-8 text", b)
	}
	return string(data), nil
}
