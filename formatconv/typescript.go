package formatconv

import (
	"fmt"
	"strings"

	"github.com/erraggy/xutil/internal/naming"
	"github.com/erraggy/xutil/xuerrors"
)

// DefaultInterfaceName names the top-level TypeScript declaration.
const DefaultInterfaceName = "Data"

func declName(field, name, fallback string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return fallback, nil
	}
	out := naming.ToPascalCase(name)
	if out == "" {
		return "", xuerrors.Input(field, "name %q has no letters or digits", name)
	}
	if r := out[0]; r >= '0' && r <= '9' {
		return "", xuerrors.Input(field, "name %q must not start with a digit", name)
	}
	return out, nil
}

// JSONToTypeScript generates TypeScript interfaces describing the sample
// JSON. Nested objects become interfaces named {Parent}Nested, objects inside
// arrays {Parent}Item; repeated names get a numeric suffix. Interfaces are
// declared before the interface that uses them.
func JSONToTypeScript(text, name string) (string, error) {
	name, err := declName("interface_name", name, DefaultInterfaceName)
	if err != nil {
		return "", err
	}
	v, err := parseJSON("json_data", text)
	if err != nil {
		return "", err
	}
	if err := checkDepth("json_data", v); err != nil {
		return "", err
	}

	g := &tsGen{names: nameSet{name: 1}}
	switch t := v.(type) {
	case Object:
		g.iface(t, name)
	case []any:
		g.decls = append(g.decls, fmt.Sprintf("type %s = %s;\n", name, g.arrayType(t, name)))
	default:
		return "", xuerrors.Input("json_data", "JSON must be an object or an array")
	}
	return strings.Join(g.decls, "\n"), nil
}

type tsGen struct {
	decls []string
	names nameSet
}

func (g *tsGen) iface(obj Object, name string) {
	var b strings.Builder
	fmt.Fprintf(&b, "interface %s {\n", name)
	for _, m := range obj {
		fmt.Fprintf(&b, "  %s: %s;\n", naming.TSProperty(m.Key), g.typeOf(m.Value, name))
	}
	b.WriteString("}\n")
	g.decls = append(g.decls, b.String())
}

func (g *tsGen) typeOf(v any, parent string) string {
	switch kindOf(v) {
	case kindString:
		return "string"
	case kindInt, kindFloat:
		return "number"
	case kindBool:
		return "boolean"
	case kindObject:
		name := g.names.unique(parent + "Nested")
		g.iface(v.(Object), name)
		return name
	case kindArray:
		return g.arrayType(v.([]any), parent)
	}
	return "null"
}

func (g *tsGen) arrayType(items []any, parent string) string {
	if len(items) == 0 {
		return "unknown[]"
	}

	var (
		members []string
		seen    = make(map[string]bool)
		objects []any
		objSlot = -1
	)
	for _, it := range items {
		if kindOf(it) == kindObject {
			if objSlot < 0 {
				objSlot = len(members)
				members = append(members, "")
			}
			objects = append(objects, it)
			continue
		}
		if t := g.typeOf(it, parent); !seen[t] {
			seen[t] = true
			members = append(members, t)
		}
	}
	if objSlot >= 0 {
		name := g.names.unique(parent + "Item")
		g.iface(mergeObjects(objects), name)
		members[objSlot] = name
	}

	if len(members) == 1 {
		return members[0] + "[]"
	}
	return "(" + strings.Join(members, " | ") + ")[]"
}
