package generate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/xutil/xuerrors"
)

func TestPasswordClasses(t *testing.T) {
	tests := []struct {
		name string
		opts PasswordOptions
		sets []string
	}{
		{"all", DefaultPasswordOptions(16), []string{Digits, Special, Lowercase, Uppercase}},
		{"digits only", PasswordOptions{Length: 8, IncludeNumbers: true}, []string{Digits}},
		{"letters", PasswordOptions{Length: 32, IncludeLowercase: true, IncludeUppercase: true}, []string{Lowercase, Uppercase}},
		{"max length", DefaultPasswordOptions(MaxPasswordLength), []string{Digits, Special, Lowercase, Uppercase}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := Password(tt.opts)
			require.NoError(t, err)
			assert.Len(t, pw, tt.opts.Length)

			allowed := strings.Join(tt.sets, "")
			for _, c := range pw {
				assert.True(t, strings.ContainsRune(allowed, c), "unexpected %q", c)
			}
			for _, set := range tt.sets {
				assert.True(t, strings.ContainsAny(pw, set), "missing class %q", set)
			}
		})
	}
}

func TestPasswordErrors(t *testing.T) {
	_, err := Password(DefaultPasswordOptions(MinPasswordLength - 1))
	assert.ErrorIs(t, err, xuerrors.ErrInvalidInput)

	_, err = Password(DefaultPasswordOptions(MaxPasswordLength + 1))
	assert.ErrorIs(t, err, xuerrors.ErrInvalidInput)

	_, err = Password(PasswordOptions{Length: 12})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one character type")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestPasswordRandomSourceFailure(t *testing.T) {
	_, err := password(failingReader{}, DefaultPasswordOptions(12))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy exhausted")
	assert.NotErrorIs(t, err, xuerrors.ErrInvalidInput)
}
