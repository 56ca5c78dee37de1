package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/xutil/xuerrors"
)

func TestToMorse(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"SOS help", "... --- ... / .... . .-.. .--."},
		{"a#", ".- ?"},
		{"73", "--... ...--"},
	}
	for _, tt := range tests {
		got, err := ToMorse(tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ToMorse(" \t")
	assert.ErrorIs(t, err, xuerrors.ErrInvalidInput)
}

func TestFromMorse(t *testing.T) {
	tests := []struct {
		code, want string
	}{
		{"... --- ... / .... . .-.. .--.", "SOS HELP"},
		{"  .-   -...  ", "AB"},
		{".-  /  -...", "A B"},
		{".- /  / -...", "A B"},
		{".-/-...", "?"},
		{"...---", "?"},
	}
	for _, tt := range tests {
		got, err := FromMorse(tt.code)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := FromMorse("")
	assert.ErrorIs(t, err, xuerrors.ErrInvalidInput)
}

func TestMorseRoundTrip(t *testing.T) {
	code, err := ToMorse("The quick brown fox 1234")
	require.NoError(t, err)
	text, err := FromMorse(code)
	require.NoError(t, err)
	assert.Equal(t, "THE QUICK BROWN FOX 1234", text)
}
