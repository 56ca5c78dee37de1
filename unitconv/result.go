package unitconv

import (
	"bytes"
	"encoding/json"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// Result holds one rounded value per unit of a domain, in declaration order.
type Result struct {
	// Domain is the name of the domain that produced the result.
	Domain string
	// From is the resolved input unit.
	From string
	// Value is the input value.
	Value float64

	units  []string
	values []float64
}

// Get returns the value for unit. Lookup is exact on declared unit names.
func (r Result) Get(unit string) (float64, bool) {
	for i, u := range r.units {
		if u == unit {
			return r.values[i], true
		}
	}
	return 0, false
}

// Units returns the unit names in result order.
func (r Result) Units() []string {
	return append([]string(nil), r.units...)
}

// Len returns the number of units in the result.
func (r Result) Len() int { return len(r.units) }

// Map returns the result as an unordered map.
func (r Result) Map() map[string]float64 {
	m := make(map[string]float64, len(r.units))
	for i, u := range r.units {
		m[u] = r.values[i]
	}
	return m
}

// MarshalJSON encodes the result as a flat object with keys in unit order.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, u := range r.units {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(u)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the result as a mapping with keys in unit order.
func (r Result) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, u := range r.units {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: u},
			&yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(r.values[i], 'g', -1, 64)},
		)
	}
	return node, nil
}
