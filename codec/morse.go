package codec

import (
	"strings"

	"github.com/erraggy/xutil/xuerrors"
)

// MorseWordSeparator separates words in Morse output.
const MorseWordSeparator = "/"

// morseWordBreak separates words when decoding. A bare "/" without the
// surrounding spaces is treated as an unknown code.
const morseWordBreak = " " + MorseWordSeparator + " "

// unknownSymbol replaces characters and codes with no mapping.
const unknownSymbol = "?"

var charToMorse = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.", '!': "-.-.--",
	'/': "-..-.", '(': "-.--.", ')': "-.--.-", '&': ".-...", ':': "---...",
	';': "-.-.-.", '=': "-...-", '+': ".-.-.", '-': "-....-", '_': "..--.-",
	'"': ".-..-.", '$': "...-..-", '@': ".--.-.",
	' ': MorseWordSeparator,
}

var morseToChar = func() map[string]rune {
	m := make(map[string]rune, len(charToMorse))
	for r, code := range charToMorse {
		if r != ' ' {
			m[code] = r
		}
	}
	return m
}()

// ToMorse encodes text as International Morse code. Letters are upper-cased,
// codes are separated by a space and each space in the input becomes "/".
// Characters without a code become "?".
func ToMorse(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", xuerrors.Input("text", "input text cannot be empty")
	}
	codes := make([]string, 0, len(text))
	for _, r := range strings.ToUpper(text) {
		code, ok := charToMorse[r]
		if !ok {
			code = unknownSymbol
		}
		codes = append(codes, code)
	}
	return strings.Join(codes, " "), nil
}

// FromMorse decodes Morse code whose words are separated by " / " and whose
// letters are separated by whitespace. Unknown codes decode to "?".
func FromMorse(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", xuerrors.Input("text", "input Morse code cannot be empty")
	}

	words := make([]string, 0, 8)
	for _, word := range strings.Split(code, morseWordBreak) {
		symbols := strings.Fields(word)
		if len(symbols) == 0 {
			continue
		}
		var b strings.Builder
		for _, sym := range symbols {
			r, ok := morseToChar[sym]
			if !ok {
				b.WriteString(unknownSymbol)
				continue
			}
			b.WriteRune(r)
		}
		words = append(words, b.String())
	}
	return strings.Join(words, " "), nil
}
