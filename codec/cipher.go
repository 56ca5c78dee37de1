package codec

import (
	"strings"

	"github.com/erraggy/xutil/xuerrors"
)

// Shift bounds accepted by Caesar.
const (
	MinShift = -100
	MaxShift = 100
)

// ROT13Shift is the shift applied by ROT13.
const ROT13Shift = 13

func hasAlnum(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			return true
		}
	}
	return false
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

// Caesar shifts ASCII letters by shift mod 26 and digits by shift mod 10.
// Other characters pass through. Negative shifts decode.
func Caesar(text string, shift int) (string, error) {
	if text == "" {
		return "", xuerrors.Input("text", "input text cannot be empty")
	}
	if shift < MinShift || shift > MaxShift {
		return "", xuerrors.Input("shift", "shift must be between %d and %d", MinShift, MaxShift)
	}
	if !hasAlnum(text) {
		return "", &xuerrors.InputError{
			Field:         "text",
			Message:       "input text must contain at least one letter or digit",
			Unprocessable: true,
		}
	}

	letter := mod(shift, 26)
	digit := mod(shift, 10)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			r = 'a' + rune(mod(int(r-'a')+letter, 26))
		case r >= 'A' && r <= 'Z':
			r = 'A' + rune(mod(int(r-'A')+letter, 26))
		case r >= '0' && r <= '9':
			r = '0' + rune(mod(int(r-'0')+digit, 10))
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// ROT13 applies Caesar with a shift of 13. Letters are their own inverse;
// digits move by 3 and need Caesar(text, -13) to restore.
func ROT13(text string) (string, error) {
	return Caesar(text, ROT13Shift)
}
