package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/xutil/xuerrors"
)

func TestCaesar(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		shift int
		want  string
	}{
		{"forward", "abc XYZ 789", 3, "def ABC 012"},
		{"backward", "def ABC 012", -3, "abc XYZ 789"},
		{"wraps past z", "a", -27, "z"},
		{"large shift", "Go 1", 100, "Ck 1"},
		{"zero shift", "same!", 0, "same!"},
		{"non-ascii passes through", "café", 1, "dbgé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Caesar(tt.text, tt.shift)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCaesarErrors(t *testing.T) {
	_, err := Caesar("", 1)
	assert.ErrorIs(t, err, xuerrors.ErrInvalidInput)

	_, err = Caesar("abc", 101)
	assert.ErrorIs(t, err, xuerrors.ErrInvalidInput)
	assert.NotErrorIs(t, err, xuerrors.ErrUnprocessable)

	_, err = Caesar("?! ...", 1)
	assert.ErrorIs(t, err, xuerrors.ErrUnprocessable)
}

func TestROT13(t *testing.T) {
	got, err := ROT13("Hello, World! 123")
	require.NoError(t, err)
	assert.Equal(t, "Uryyb, Jbeyq! 456", got)

	letters, err := ROT13(got)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World! 789", letters, "letters restore, digits keep moving")
}
