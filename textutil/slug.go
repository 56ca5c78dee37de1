package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/erraggy/xutil/xuerrors"
)

// SlugCase selects the letter case of a slug.
type SlugCase string

const (
	Lower SlugCase = "lowercase"
	Upper SlugCase = "uppercase"
)

// SlugOptions configures Slugify. Zero values select "-" and lowercase.
type SlugOptions struct {
	Separator string   `json:"separator"`
	Case      SlugCase `json:"case"`
}

// space matches ASCII and Unicode whitespace, including NBSP and U+3000.
const space = `\s\p{Z}\x{85}`

var whitespaceRun = regexp.MustCompile(`[` + space + `]+`)

type slugPatterns struct {
	disallowed *regexp.Regexp
	repeated   *regexp.Regexp
}

var separators = func() map[string]slugPatterns {
	m := make(map[string]slugPatterns, 3)
	for _, sep := range []string{"-", "_", "."} {
		q := regexp.QuoteMeta(sep)
		m[sep] = slugPatterns{
			disallowed: regexp.MustCompile(`[^` + q + `a-zA-Z0-9` + space + `]`),
			repeated:   regexp.MustCompile(q + `+`),
		}
	}
	return m
}()

// Slugify turns text into a URL-friendly slug. Accents are folded to their
// base letters, characters other than ASCII letters, digits, whitespace and
// the separator are dropped, whitespace runs become the separator and
// repeated or edge separators are removed.
func Slugify(text string, opts SlugOptions) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", xuerrors.Input("text", "text cannot be empty or only whitespace")
	}

	sep := opts.Separator
	if sep == "" {
		sep = "-"
	}
	pat, ok := separators[sep]
	if !ok {
		return "", xuerrors.Input("separator", "separator must be one of -, _, .")
	}

	var caser cases.Caser
	switch opts.Case {
	case "", Lower:
		caser = cases.Lower(language.Und)
	case Upper:
		caser = cases.Upper(language.Und)
	default:
		return "", xuerrors.Input("case", "case must be lowercase or uppercase")
	}

	folded, _, err := transform.String(transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		caser,
	), text)
	if err != nil {
		return "", &xuerrors.InputError{Field: "text", Message: "text could not be normalized", Cause: err}
	}

	s := pat.disallowed.ReplaceAllString(folded, "")
	s = whitespaceRun.ReplaceAllString(strings.TrimSpace(s), sep)
	s = pat.repeated.ReplaceAllString(s, sep)
	return strings.Trim(s, sep), nil
}
