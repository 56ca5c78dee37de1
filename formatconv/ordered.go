package formatconv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/erraggy/xutil/xuerrors"
)

// MaxDepth bounds the nesting of objects and arrays accepted by the code
// generators.
const MaxDepth = 50

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object that remembers key order. Values are Object, []any,
// string, json.Number, bool or nil.
type Object []Member

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// set replaces the value of an existing key in place or appends a new one.
func (o Object) set(key string, v any) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = v
			return o
		}
	}
	return append(o, Member{Key: key, Value: v})
}

// MarshalJSON writes the object with keys in order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][-+]?[0-9]+)?$`)

// parseJSON decodes a single JSON value, keeping key order.
func parseJSON(field, text string) (any, error) {
	if strings.TrimSpace(text) == "" {
		return nil, xuerrors.Input(field, "JSON data cannot be empty")
	}
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, &xuerrors.InputError{Field: field, Message: "invalid JSON format", Cause: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, xuerrors.Input(field, "invalid JSON format: unexpected data after top-level value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := Object{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("object key must be a string, got %v", kt)
				}
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj = obj.set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	default:
		return t, nil
	}
}

// writeJSON writes v as compact JSON without HTML escaping.
func writeJSON(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case Object:
		buf.WriteByte('{')
		for i, m := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, m.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case json.Number:
		buf.WriteString(t.String())
	default:
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(t); err != nil {
			return err
		}
		// Encode terminates each value with a newline.
		buf.Truncate(buf.Len() - 1)
	}
	return nil
}

// indentJSON renders v as JSON indented by indent.
func indentJSON(v any, indent string) (string, error) {
	var compact bytes.Buffer
	if err := writeJSON(&compact, v); err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return "", err
	}
	return out.String(), nil
}

// depth returns the nesting depth of v; scalars have depth 0.
func depth(v any) int {
	d := 0
	switch t := v.(type) {
	case Object:
		for _, m := range t {
			d = max(d, depth(m.Value))
		}
		return d + 1
	case []any:
		for _, e := range t {
			d = max(d, depth(e))
		}
		return d + 1
	}
	return 0
}

func checkDepth(field string, v any) error {
	if depth(v) > MaxDepth {
		return xuerrors.Input(field, "maximum nesting depth of %d levels exceeded", MaxDepth)
	}
	return nil
}
