package formatconv

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/xutil/xuerrors"
)

// maxYAMLNodes caps alias expansion while converting YAML.
const maxYAMLNodes = 1_000_000

var (
	yamlDate = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)
	yamlZone = regexp.MustCompile(`(Z|[+-]\d{1,2}(:?\d{2})?)$`)
)

// YAMLToJSON converts the first document of a YAML stream to indented JSON.
// Timestamps become ISO 8601 strings and scalars with application tags
// such as !secret are kept as plain strings.
func YAMLToJSON(text string) (string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return "", &xuerrors.InputError{Field: "yaml_text", Message: "error parsing YAML", Cause: err}
	}
	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return "", xuerrors.Input("yaml_text", "invalid YAML: empty or invalid content")
		}
		root = doc.Content[0]
	}
	if root.Kind == 0 {
		return "", xuerrors.Input("yaml_text", "invalid YAML: empty or invalid content")
	}

	c := &yamlConverter{}
	v, err := c.value(root)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", xuerrors.Input("yaml_text", "invalid YAML: empty or invalid content")
	}
	return indentJSON(v, "  ")
}

// JSONToYAML converts JSON to block-style YAML with keys in source order.
func JSONToYAML(text string) (string, error) {
	v, err := parseJSON("json_text", text)
	if err != nil {
		return "", err
	}
	out, err := yaml.Dump(toYAMLNode(v), yaml.V4)
	if err != nil {
		return "", fmt.Errorf("error converting JSON to YAML: %w", err)
	}
	return string(out), nil
}

type yamlConverter struct {
	nodes int
}

func (c *yamlConverter) value(n *yaml.Node) (any, error) {
	c.nodes++
	if c.nodes > maxYAMLNodes {
		return nil, xuerrors.Input("yaml_text", "document expands to more than %d nodes", maxYAMLNodes)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return c.value(n.Content[0])
	case yaml.AliasNode:
		return c.value(n.Alias)
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, e := range n.Content {
			v, err := c.value(e)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.MappingNode:
		return c.mapping(n)
	case yaml.ScalarNode:
		return scalar(n)
	}
	return nil, xuerrors.Input("yaml_text", "unsupported YAML node at line %d", n.Line)
}

func (c *yamlConverter) mapping(n *yaml.Node) (Object, error) {
	obj := Object{}
	var merged Object
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
			m, err := c.merge(v)
			if err != nil {
				return nil, err
			}
			merged = append(merged, m...)
			continue
		}

		key, err := mappingKey(k)
		if err != nil {
			return nil, err
		}
		val, err := c.value(v)
		if err != nil {
			return nil, err
		}
		obj = obj.set(key, val)
	}

	if merged == nil {
		return obj, nil
	}
	// Merged keys come first; explicit keys override their values.
	out := Object{}
	for _, m := range merged {
		if _, dup := out.Get(m.Key); dup {
			continue
		}
		if v, ok := obj.Get(m.Key); ok {
			m.Value = v
		}
		out = append(out, m)
	}
	for _, m := range obj {
		if _, ok := out.Get(m.Key); !ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (c *yamlConverter) merge(n *yaml.Node) (Object, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		return c.mapping(n)
	case yaml.SequenceNode:
		var out Object
		for _, e := range n.Content {
			m, err := c.merge(e)
			if err != nil {
				return nil, err
			}
			for _, mm := range m {
				if _, ok := out.Get(mm.Key); !ok {
					out = append(out, mm)
				}
			}
		}
		return out, nil
	}
	return nil, xuerrors.Input("yaml_text", "merge value at line %d must be a mapping", n.Line)
}

func mappingKey(k *yaml.Node) (string, error) {
	if k.Kind == yaml.AliasNode {
		k = k.Alias
	}
	if k.Kind != yaml.ScalarNode {
		return "", xuerrors.Input("yaml_text", "mapping key at line %d must be a scalar", k.Line)
	}
	if k.ShortTag() == "!!null" {
		return "null", nil
	}
	return k.Value, nil
}

func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, &xuerrors.InputError{Field: "yaml_text", Message: "invalid boolean", Cause: err}
		}
		return b, nil
	case "!!int", "!!float":
		return number(n)
	case "!!timestamp":
		return timestamp(n), nil
	}
	// !!str, !!binary and application tags keep their text.
	return n.Value, nil
}

func number(n *yaml.Node) (any, error) {
	if jsonNumber.MatchString(n.Value) {
		return json.Number(n.Value), nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, &xuerrors.InputError{Field: "yaml_text", Message: "invalid number " + n.Value, Cause: err}
	}
	switch t := v.(type) {
	case int:
		return json.Number(strconv.Itoa(t)), nil
	case int64:
		return json.Number(strconv.FormatInt(t, 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(t, 10)), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, xuerrors.Input("yaml_text", "value %s at line %d cannot be represented in JSON", n.Value, n.Line)
		}
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	}
	return n.Value, nil
}

// timestamp renders a YAML timestamp the way Python's isoformat does: dates
// stay dates, times without a zone stay naive, zoned times carry an offset.
func timestamp(n *yaml.Node) string {
	raw := strings.TrimSpace(n.Value)
	var t time.Time
	if err := n.Decode(&t); err != nil {
		return raw
	}
	if yamlDate.MatchString(raw) {
		return t.Format(time.DateOnly)
	}

	s := t.Format("2006-01-02T15:04:05")
	if us := t.Nanosecond() / 1000; us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	if yamlZone.MatchString(raw) {
		s += t.Format("-07:00")
	}
	return s
}

func toYAMLNode(v any) *yaml.Node {
	switch t := v.(type) {
	case Object:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, m := range t {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key},
				toYAMLNode(m.Value))
		}
		return n
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range t {
			n.Content = append(n.Content, toYAMLNode(e))
		}
		return n
	case string:
		n := &yaml.Node{}
		n.SetString(t)
		return n
	case json.Number:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: t.String()}
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
