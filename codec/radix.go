package codec

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/xutil/xuerrors"
)

// Radix bounds accepted by ConvertBase.
const (
	MinRadix = 2
	MaxRadix = 36
)

// codePointWidth is the zero-padding applied per text radix; 0 means none.
var codePointWidth = map[int]int{2: 8, 8: 3, 10: 0, 16: 2}

func textRadixError(field string) error {
	return xuerrors.Input(field, "base must be 2 (binary), 8 (octal), 10 (decimal), or 16 (hexadecimal)")
}

// TextToBase writes the code point of every rune of text in radix 2, 8, 10
// or 16, separated by spaces. Binary is padded to 8 digits, octal to 3 and
// hexadecimal to 2 upper-case digits.
func TextToBase(text string, radix int) (string, error) {
	if text == "" {
		return "", xuerrors.Input("text", "input text cannot be empty")
	}
	width, ok := codePointWidth[radix]
	if !ok {
		return "", textRadixError("target_base")
	}
	if !utf8.ValidString(text) {
		return "", xuerrors.Input("text", "input text must be valid UTF-8")
	}

	parts := make([]string, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		s := strings.ToUpper(strconv.FormatInt(int64(r), radix))
		if pad := width - len(s); pad > 0 {
			s = strings.Repeat("0", pad) + s
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " "), nil
}

// BaseToText parses whitespace-separated code points written in radix 2, 8,
// 10 or 16 and returns the text they spell.
func BaseToText(input string, radix int) (string, error) {
	if input == "" {
		return "", xuerrors.Input("input", "input string cannot be empty")
	}
	if _, ok := codePointWidth[radix]; !ok {
		return "", textRadixError("source_base")
	}
	chunks := strings.Fields(input)
	if len(chunks) == 0 {
		return "", xuerrors.Input("input", "input must contain at least one number")
	}

	var b strings.Builder
	for _, chunk := range chunks {
		if !validDigits(chunk, radix) {
			return "", xuerrors.Input("input", "invalid digits in %q for base %d", chunk, radix)
		}
		cp, err := strconv.ParseUint(chunk, radix, 32)
		if err != nil || cp > utf8.MaxRune {
			return "", xuerrors.Input("input", "code point %s is out of valid range (0-%d)", chunk, utf8.MaxRune)
		}
		if cp >= 0xD800 && cp <= 0xDFFF {
			return "", xuerrors.Input("input", "code point %s is a UTF-16 surrogate", chunk)
		}
		b.WriteRune(rune(cp))
	}
	return b.String(), nil
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return MaxRadix
}

func validDigits(s string, radix int) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if digitValue(s[i]) >= radix {
			return false
		}
	}
	return true
}

// radixPrefix holds the literal prefix ConvertBase strips for a source base.
var radixPrefix = map[int]string{2: "0b", 8: "0o", 16: "0x"}

// ConvertBase converts an integer between radixes 2 through 36. The input may
// carry a leading sign, and a 0b, 0o or 0x prefix matching the source base.
// It is not limited to 64 bits. Output digits are upper-case.
func ConvertBase(number string, from, to int) (string, error) {
	if from < MinRadix || from > MaxRadix {
		return "", xuerrors.Input("source_base", "source base %d is not supported", from)
	}
	if to < MinRadix || to > MaxRadix {
		return "", xuerrors.Input("target_base", "target base %d is not supported", to)
	}

	s := strings.ReplaceAll(strings.TrimSpace(number), "_", "")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if p, ok := radixPrefix[from]; ok && len(s) > len(p) && strings.EqualFold(s[:len(p)], p) {
		s = s[len(p):]
	}
	if !validDigits(s, from) {
		return "", xuerrors.Input("number", "invalid number %q for base %d", number, from)
	}

	n, ok := new(big.Int).SetString(s, from)
	if !ok {
		return "", xuerrors.Input("number", "invalid number %q for base %d", number, from)
	}
	if neg {
		n.Neg(n)
	}
	return strings.ToUpper(n.Text(to)), nil
}
