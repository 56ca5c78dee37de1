package formatconv

import (
	"unicode/utf8"

	"github.com/erraggy/xutil/xuerrors"
)

func utf8Text(field string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", xuerrors.Input(field, "file encoding must be UTF-8")
	}
	return string(data), nil
}

// YAMLFileToJSON is YAMLToJSON for uploaded bytes, which must be UTF-8.
func YAMLFileToJSON(data []byte) (string, error) {
	text, err := utf8Text("file", data)
	if err != nil {
		return "", err
	}
	return YAMLToJSON(text)
}

// JSONFileToYAML is JSONToYAML for uploaded bytes, which must be UTF-8.
func JSONFileToYAML(data []byte) (string, error) {
	text, err := utf8Text("file", data)
	if err != nil {
		return "", err
	}
	return JSONToYAML(text)
}
