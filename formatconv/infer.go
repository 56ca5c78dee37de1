package formatconv

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// valueKind classifies sample values for the code generators.
type valueKind int

const (
	kindNull valueKind = iota
	kindBool
	kindInt
	kindFloat
	kindString
	kindObject
	kindArray
)

func kindOf(v any) valueKind {
	switch t := v.(type) {
	case bool:
		return kindBool
	case json.Number:
		if _, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return kindInt
		}
		return kindFloat
	case string:
		return kindString
	case Object:
		return kindObject
	case []any:
		return kindArray
	}
	return kindNull
}

// mergeObjects combines the members of every object in items, in first-seen
// key order. A null value is replaced by a later non-null one.
func mergeObjects(items []any) Object {
	var out Object
	for _, it := range items {
		obj, ok := it.(Object)
		if !ok {
			continue
		}
		for _, m := range obj {
			existing, found := out.Get(m.Key)
			switch {
			case !found:
				out = append(out, m)
			case existing == nil && m.Value != nil:
				out = out.set(m.Key, m.Value)
			}
		}
	}
	return out
}

// elementKinds returns the distinct kinds of the non-null items, in order,
// and whether any item is null.
func elementKinds(items []any) (kinds []valueKind, hasNull bool) {
	seen := make(map[valueKind]bool)
	for _, it := range items {
		k := kindOf(it)
		if k == kindNull {
			hasNull = true
			continue
		}
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds, hasNull
}

// nameSet hands out unique type names.
type nameSet map[string]int

func (s nameSet) unique(name string) string {
	n := s[name]
	s[name] = n + 1
	if n == 0 {
		return name
	}
	candidate := fmt.Sprintf("%s%d", name, n+1)
	if _, taken := s[candidate]; taken {
		return s.unique(candidate)
	}
	s[candidate] = 1
	return candidate
}
