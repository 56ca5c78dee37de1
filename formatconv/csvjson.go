package formatconv

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/erraggy/xutil/xuerrors"
)

// DefaultKeySeparator joins nested keys into CSV column names.
const DefaultKeySeparator = "_"

// MaxCSVRows bounds the rows JSONToCSV may produce after array expansion.
const MaxCSVRows = 100_000

func keySeparator(sep string) (string, error) {
	if sep == "" {
		return DefaultKeySeparator, nil
	}
	if strings.ContainsAny(sep, ",\"\r\n") {
		return "", xuerrors.Input("separator", "separator must not contain commas, quotes or line breaks")
	}
	return sep, nil
}

// JSONToCSV flattens a JSON object or array of objects into CSV. Nested keys
// are joined with sep. Each array expands into additional rows, so an object
// holding two arrays of sizes n and m yields n*m rows. Columns appear in the
// order their keys are first seen. Inputs expanding past MaxCSVRows rows are
// rejected.
func JSONToCSV(text, sep string) (string, error) {
	sep, err := keySeparator(sep)
	if err != nil {
		return "", err
	}
	v, err := parseJSON("json_data", text)
	if err != nil {
		return "", err
	}

	var items []any
	switch t := v.(type) {
	case Object:
		items = []any{t}
	case []any:
		items = t
	default:
		return "", xuerrors.Input("json_data", "JSON must be an object or an array")
	}

	if rowCount(items) > MaxCSVRows {
		return "", xuerrors.Input("json_data", "array expansion exceeds %d rows", MaxCSVRows)
	}

	var rows []Object
	for _, item := range items {
		rows = append(rows, flatten(item, "", sep)...)
	}

	var header []string
	seen := make(map[string]bool)
	for _, r := range rows {
		for _, m := range r {
			if !seen[m.Key] {
				seen[m.Key] = true
				header = append(header, m.Key)
			}
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, r := range rows {
		record := make([]string, len(header))
		for i, h := range header {
			if v, ok := r.Get(h); ok {
				record[i] = csvCell(v)
			}
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rowCount returns the number of rows flatten produces for v, capped at
// MaxCSVRows+1 so the product cannot overflow.
func rowCount(v any) int {
	switch t := v.(type) {
	case Object:
		n := 1
		for _, m := range t {
			n = min(n*rowCount(m.Value), MaxCSVRows+1)
		}
		return n
	case []any:
		if len(t) == 0 {
			return 1
		}
		n := 0
		for _, e := range t {
			n = min(n+rowCount(e), MaxCSVRows+1)
		}
		return n
	}
	return 1
}

// flatten returns the rows produced by v under the column prefix parent.
func flatten(v any, parent, sep string) []Object {
	switch t := v.(type) {
	case Object:
		rows := []Object{{}}
		for _, m := range t {
			key := m.Key
			if parent != "" {
				key = parent + sep + m.Key
			}
			subs := flatten(m.Value, key, sep)
			next := make([]Object, 0, len(rows)*len(subs))
			for _, r := range rows {
				for _, s := range subs {
					combined := append(Object(nil), r...)
					for _, sm := range s {
						combined = combined.set(sm.Key, sm.Value)
					}
					next = append(next, combined)
				}
			}
			rows = next
		}
		return rows
	case []any:
		if len(t) == 0 {
			return []Object{{{Key: parent, Value: nil}}}
		}
		var rows []Object
		for _, e := range t {
			rows = append(rows, flatten(e, parent, sep)...)
		}
		return rows
	}
	return []Object{{{Key: parent, Value: v}}}
}

func csvCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	}
	return ""
}

// CSVToJSON converts CSV with a header row into an indented JSON array. Header
// keys containing sep are unflattened into nested objects. Empty cells become
// null, numeric cells numbers and true/false cells booleans.
func CSVToJSON(data []byte, sep string) (string, error) {
	sep, err := keySeparator(sep)
	if err != nil {
		return "", err
	}
	text := strings.ToValidUTF8(string(data), "")
	text = strings.TrimPrefix(text, "\ufeff")
	if strings.TrimSpace(text) == "" {
		return "", xuerrors.Input("file", "CSV data cannot be empty")
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return "", &xuerrors.InputError{Field: "file", Message: "CSV header cannot be read", Cause: err}
	}

	out := []any{}
	for line := 2; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", &xuerrors.InputError{Field: "file", Message: "malformed CSV", Cause: err}
		}
		if len(rec) > len(header) {
			return "", xuerrors.Input("file", "line %d has %d fields, expected %d", line, len(rec), len(header))
		}

		row := Object{}
		for i, col := range header {
			var cell any
			if i < len(rec) {
				cell = csvValue(rec[i])
			}
			row, err = unflatten(row, strings.Split(col, sep), cell)
			if err != nil {
				return "", err
			}
		}
		out = append(out, row)
	}
	return indentJSON(out, "  ")
}

func csvValue(s string) any {
	switch {
	case s == "":
		return nil
	case jsonNumber.MatchString(s):
		return json.Number(s)
	case strings.EqualFold(s, "true"):
		return true
	case strings.EqualFold(s, "false"):
		return false
	}
	return s
}

func unflatten(obj Object, path []string, v any) (Object, error) {
	key := path[0]
	if len(path) == 1 {
		if existing, ok := obj.Get(key); ok {
			if _, nested := existing.(Object); nested {
				return nil, xuerrors.Input("file", "column %q conflicts with nested columns", key)
			}
		}
		return obj.set(key, v), nil
	}

	child := Object{}
	if existing, ok := obj.Get(key); ok {
		nested, isObj := existing.(Object)
		if !isObj {
			return nil, xuerrors.Input("file", "column %q conflicts with nested columns", key)
		}
		child = nested
	}
	child, err := unflatten(child, path[1:], v)
	if err != nil {
		return nil, err
	}
	return obj.set(key, child), nil
}
