package generate

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/erraggy/xutil/xuerrors"
)

// Password length bounds.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// Character classes.
const (
	Digits    = "0123456789"
	Special   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// PasswordOptions selects the length and character classes of a password.
type PasswordOptions struct {
	Length           int  `json:"length"`
	IncludeNumbers   bool `json:"include_numbers"`
	IncludeSpecial   bool `json:"include_special"`
	IncludeUppercase bool `json:"include_uppercase"`
	IncludeLowercase bool `json:"include_lowercase"`
}

// DefaultPasswordOptions enables every character class.
func DefaultPasswordOptions(length int) PasswordOptions {
	return PasswordOptions{
		Length:           length,
		IncludeNumbers:   true,
		IncludeSpecial:   true,
		IncludeUppercase: true,
		IncludeLowercase: true,
	}
}

func (o PasswordOptions) classes() []string {
	var cs []string
	if o.IncludeNumbers {
		cs = append(cs, Digits)
	}
	if o.IncludeSpecial {
		cs = append(cs, Special)
	}
	if o.IncludeLowercase {
		cs = append(cs, Lowercase)
	}
	if o.IncludeUppercase {
		cs = append(cs, Uppercase)
	}
	return cs
}

// Password returns a random password holding at least one character of every
// selected class.
func Password(opts PasswordOptions) (string, error) {
	return password(rand.Reader, opts)
}

func password(r io.Reader, opts PasswordOptions) (string, error) {
	if opts.Length < MinPasswordLength || opts.Length > MaxPasswordLength {
		return "", xuerrors.Input("length", "password length must be between %d and %d characters",
			MinPasswordLength, MaxPasswordLength)
	}
	classes := opts.classes()
	if len(classes) == 0 {
		return "", xuerrors.Input("character_types", "at least one character type must be selected")
	}

	var pool string
	for _, c := range classes {
		pool += c
	}

	out := make([]byte, 0, opts.Length)
	for _, c := range classes {
		ch, err := pick(r, c)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}
	for len(out) < opts.Length {
		ch, err := pick(r, pool)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}

	// Fisher-Yates so the required characters are not always first.
	for i := len(out) - 1; i > 0; i-- {
		j, err := intn(r, i+1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

func intn(r io.Reader, n int) (int, error) {
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}

func pick(r io.Reader, set string) (byte, error) {
	i, err := intn(r, len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}
