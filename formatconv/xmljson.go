package formatconv

import (
	"fmt"
	"strings"

	"github.com/clbanning/mxj/v2"

	"github.com/erraggy/xutil/xuerrors"
)

// xmlHeader is written before converted XML documents.
const xmlHeader = `<?xml version="1.0" encoding="utf-8"?>`

func init() {
	mxj.SetAttrPrefix("@")
	mxj.XMLEscapeChars(true)
	mxj.JsonUseNumber = true
}

// XMLToJSON converts an XML document to indented JSON. Element and attribute
// values stay strings; object keys are sorted.
func XMLToJSON(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", xuerrors.Input("xml_text", "XML data cannot be empty")
	}
	m, err := mxj.NewMapXml([]byte(text))
	if err != nil {
		return "", &xuerrors.InputError{Field: "xml_text", Message: "invalid XML format", Cause: err}
	}
	out, err := m.JsonIndent("", "  ")
	if err != nil {
		return "", fmt.Errorf("conversion error: %w", err)
	}
	return string(out), nil
}

// XMLFileToJSON is XMLToJSON for uploaded bytes, which must be UTF-8.
func XMLFileToJSON(data []byte) (string, error) {
	text, err := utf8Text("file", data)
	if err != nil {
		return "", err
	}
	return XMLToJSON(text)
}

// JSONToXML converts a JSON object with exactly one key, the root element,
// to an indented XML document.
func JSONToXML(text string) (string, error) {
	v, err := parseJSON("json_text", text)
	if err != nil {
		return "", err
	}
	obj, ok := v.(Object)
	if !ok || len(obj) != 1 {
		return "", xuerrors.Input("json_text", "document must be an object with exactly one root key")
	}
	if _, isList := obj[0].Value.([]any); isList {
		return "", xuerrors.Input("json_text", "root element %q must not be an array", obj[0].Key)
	}

	m, err := mxj.NewMapJson([]byte(text))
	if err != nil {
		return "", &xuerrors.InputError{Field: "json_text", Message: "invalid JSON format", Cause: err}
	}
	out, err := m.XmlIndent("", "\t")
	if err != nil {
		return "", &xuerrors.InputError{Field: "json_text", Message: "document cannot be represented as XML", Cause: err}
	}
	return xmlHeader + "\n" + string(out), nil
}

// JSONFileToXML is JSONToXML for uploaded bytes, which must be UTF-8.
func JSONFileToXML(data []byte) (string, error) {
	text, err := utf8Text("file", data)
	if err != nil {
		return "", err
	}
	return JSONToXML(text)
}
