package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/xutil/xuerrors"
)

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		base    Base
		text    string
		encoded string
	}{
		{Base32, "hello", "NBSWY3DP"},
		{Base58, "hello", "Cn8eVZg"},
		{Base58, "hello world", "StV1DL6CwTryKyV"},
		{Base64, "hello", "aGVsbG8="},
		{Base64, "héllo wörld", "aMOpbGxvIHfDtnJsZA=="},
	}

	for _, tt := range tests {
		t.Run(string(tt.base)+"/"+tt.text, func(t *testing.T) {
			got, err := Encode(tt.base, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.encoded, got)

			back, err := Decode(tt.base, got)
			require.NoError(t, err)
			assert.Equal(t, tt.text, back)
		})
	}
}

func TestEncodeDecodeErrors(t *testing.T) {
	_, err := Encode(Base64, "   ")
	assert.ErrorIs(t, err, xuerrors.ErrInvalidInput)

	_, err = Encode("base16", "x")
	assert.ErrorIs(t, err, xuerrors.ErrInvalidInput)

	_, err = Decode(Base64, "")
	assert.ErrorIs(t, err, xuerrors.ErrInvalidInput)

	_, err = Decode(Base64, "!!!not base64")
	assert.ErrorIs(t, err, xuerrors.ErrInvalidInput)

	_, err = Decode(Base58, "0OIl")
	assert.ErrorIs(t, err, xuerrors.ErrInvalidInput)

	// 0xff 0xfe is not UTF-8.
	_, err = Decode(Base64, "//4=")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestParseBase(t *testing.T) {
	b, err := ParseBase(" Base58 ")
	require.NoError(t, err)
	assert.Equal(t, Base58, b)

	_, err = ParseBase("base85")
	assert.ErrorIs(t, err, xuerrors.ErrInvalidInput)
}
