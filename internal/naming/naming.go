package naming

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// Words splits s into words. Digit runs stay attached to the preceding word.
// Example: "user_profileV2" -> [user profile V2]
func Words(s string) []string {
	var words []string
	for _, field := range strings.FieldsFunc(s, isSeparator) {
		start := len(words)
		for _, part := range camelcase.Split(field) {
			if part == "" {
				continue
			}
			if isDigits(part) && len(words) > start {
				words[len(words)-1] += part
				continue
			}
			words = append(words, part)
		}
	}
	return words
}

// ToPascalCase joins the words of s with their first letter upper-cased.
// The rest of each word keeps its case.
// Example: "user_profile" -> "UserProfile"
// Example: "API" -> "API"
func ToPascalCase(s string) string {
	title := cases.Title(language.English, cases.NoLower)
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// ToCamelCase is ToPascalCase with the first word lower-cased.
// Example: "UserProfile" -> "userProfile"
func ToCamelCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	title := cases.Title(language.English, cases.NoLower)
	var b strings.Builder
	b.WriteString(cases.Lower(language.English).String(words[0]))
	for _, w := range words[1:] {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// ToSnakeCase joins the lower-cased words of s with underscores.
// Example: "APIClient" -> "api_client"
func ToSnakeCase(s string) string {
	return joinLower(s, "_")
}

// ToKebabCase joins the lower-cased words of s with hyphens.
// Example: "UserProfile" -> "user-profile"
func ToKebabCase(s string) string {
	return joinLower(s, "-")
}

func joinLower(s, sep string) string {
	words := Words(s)
	lower := cases.Lower(language.English)
	for i, w := range words {
		words[i] = lower.String(w)
	}
	return strings.Join(words, sep)
}

// Singularize strips a plural suffix from an English word.
// Example: "branches" -> "branch", "categories" -> "category", "users" -> "user"
func Singularize(s string) string {
	lower := strings.ToLower(s)
	switch {
	case strings.HasSuffix(lower, "ies") && len(s) > 3:
		return s[:len(s)-3] + matchCase(s[len(s)-3:], "y")
	case strings.HasSuffix(lower, "ches"), strings.HasSuffix(lower, "shes"),
		strings.HasSuffix(lower, "sses"), strings.HasSuffix(lower, "xes"):
		return s[:len(s)-2]
	case strings.HasSuffix(lower, "ss"), strings.HasSuffix(lower, "us"), strings.HasSuffix(lower, "is"):
		return s
	case strings.HasSuffix(lower, "s") && len(s) > 1:
		return s[:len(s)-1]
	}
	return s
}

// matchCase returns repl upper-cased when ref is upper-case.
func matchCase(ref, repl string) string {
	if strings.ToUpper(ref) == ref {
		return strings.ToUpper(repl)
	}
	return repl
}

// goInitialisms are words Go style keeps fully upper-case.
var goInitialisms = map[string]bool{
	"ACL": true, "API": true, "ASCII": true, "CPU": true, "CSS": true, "DNS": true,
	"EOF": true, "GUID": true, "HTML": true, "HTTP": true, "HTTPS": true, "ID": true,
	"IP": true, "JSON": true, "JWT": true, "SQL": true, "SSH": true, "TCP": true,
	"TLS": true, "TTL": true, "UI": true, "UID": true, "ULID": true, "URI": true,
	"URL": true, "UTF8": true, "UUID": true, "VM": true, "XML": true, "YAML": true,
}

// GoName returns an exported Go identifier for s.
// Example: "user_id" -> "UserID", "2fa" -> "Field2Fa"
func GoName(s string) string {
	title := cases.Title(language.English)
	var b strings.Builder
	for _, w := range Words(s) {
		if up := strings.ToUpper(w); goInitialisms[up] {
			b.WriteString(up)
			continue
		}
		b.WriteString(title.String(w))
	}
	name := b.String()
	if name == "" || !unicode.IsLetter([]rune(name)[0]) {
		name = "Field" + name
	}
	return name
}

var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true, "assert": true,
	"async": true, "await": true, "break": true, "class": true, "continue": true,
	"def": true, "del": true, "elif": true, "else": true, "except": true, "finally": true,
	"for": true, "from": true, "global": true, "if": true, "import": true, "in": true,
	"is": true, "lambda": true, "nonlocal": true, "not": true, "or": true, "pass": true,
	"raise": true, "return": true, "try": true, "while": true, "with": true, "yield": true,
}

func isIdentifier(s string, extra func(rune) bool) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		ok := r == '_' || unicode.IsLetter(r) || extra(r) || (i > 0 && unicode.IsDigit(r))
		if !ok {
			return false
		}
	}
	return true
}

func none(rune) bool { return false }

// PythonName returns s when it is a usable Python attribute name, and a
// snake_case replacement otherwise. Leading underscores are not kept since
// pydantic treats such attributes as private.
// Example: "firstName" -> "firstName", "first-name" -> "first_name", "class" -> "class_"
func PythonName(s string) string {
	if isIdentifier(s, none) && !strings.HasPrefix(s, "_") {
		if pythonKeywords[s] {
			return s + "_"
		}
		return s
	}
	name := ToSnakeCase(s)
	switch {
	case name == "":
		return "field"
	case unicode.IsDigit([]rune(name)[0]):
		return "field_" + name
	case pythonKeywords[name]:
		return name + "_"
	}
	return name
}

// TSProperty returns s as a TypeScript property name, quoting it when it is
// not a valid identifier.
// Example: "name" -> "name", "first-name" -> "\"first-name\""
func TSProperty(s string) string {
	if isIdentifier(s, func(r rune) bool { return r == '$' }) {
		return s
	}
	return strconv.Quote(s)
}
