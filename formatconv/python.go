package formatconv

import (
	"fmt"
	"strings"

	"github.com/erraggy/xutil/internal/naming"
	"github.com/erraggy/xutil/xuerrors"
)

// PythonStyle selects the kind of Python classes JSONToPython emits.
type PythonStyle string

const (
	Dataclass PythonStyle = "dataclass"
	Pydantic  PythonStyle = "pydantic"
)

// DefaultClassName names the top-level Python class.
const DefaultClassName = "Root"

var pythonPrimitives = map[string]string{
	"str":   `""`,
	"int":   "0",
	"float": "0.0",
	"bool":  "False",
}

// JSONToPython generates Python classes describing the sample JSON. A nested
// object gets a class named after its key path ("user" -> User,
// "user.address" -> UserAddress); objects inside arrays get the singular of
// the path ("branches" -> Branch). Classes are declared before use.
func JSONToPython(text, className string, style PythonStyle) (string, error) {
	if style == "" {
		style = Dataclass
	}
	if style != Dataclass && style != Pydantic {
		return "", xuerrors.Input("style", "style must be dataclass or pydantic")
	}
	className, err := declName("class_name", className, DefaultClassName)
	if err != nil {
		return "", err
	}
	v, err := parseJSON("json_data", text)
	if err != nil {
		return "", err
	}

	var root Object
	switch t := v.(type) {
	case Object:
		root = t
	case []any:
		if len(t) == 0 {
			return "", xuerrors.Input("json_data", "empty JSON data")
		}
		if kinds, hasNull := elementKinds(t); len(kinds) != 1 || kinds[0] != kindObject || hasNull {
			return "", xuerrors.Input("json_data", "top-level array must contain only objects")
		}
		root = mergeObjects(t)
	default:
		return "", xuerrors.Input("json_data", "JSON must be an object or an array of objects")
	}
	if len(root) == 0 {
		return "", xuerrors.Input("json_data", "empty JSON data")
	}
	if err := checkDepth("json_data", v); err != nil {
		return "", err
	}

	g := &pyGen{style: style, names: nameSet{className: 1}}
	g.class(root, className, "")

	imports := []string{"from dataclasses import dataclass", "from typing import List, Any"}
	if style == Pydantic {
		imports[0] = "from pydantic import BaseModel"
		if g.aliases {
			imports[0] += ", Field"
		}
	}
	return strings.Join(imports, "\n") + "\n\n" + strings.Join(g.classes, "\n\n") + "\n", nil
}

type pyField struct {
	name  string
	key   string
	typ   string
	class bool // typ is a generated class
	items bool // typ is List[generated class]
}

type pyGen struct {
	style   PythonStyle
	names   nameSet
	classes []string
	aliases bool
}

func pathOf(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "_" + key
}

func (g *pyGen) className(path string) string {
	name := naming.ToPascalCase(path)
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "Model" + name
	}
	return g.names.unique(name)
}

func (g *pyGen) class(obj Object, name, path string) {
	fields := make([]pyField, 0, len(obj))
	used := make(map[string]bool, len(obj))
	for _, m := range obj {
		f := pyField{key: m.Key, name: naming.PythonName(m.Key)}
		for base, i := f.name, 2; used[f.name]; i++ {
			f.name = fmt.Sprintf("%s_%d", base, i)
		}
		used[f.name] = true

		sub := pathOf(path, m.Key)
		switch kindOf(m.Value) {
		case kindObject:
			f.typ = g.className(sub)
			f.class = true
			g.class(m.Value.(Object), f.typ, sub)
		case kindArray:
			items := m.Value.([]any)
			if kinds, hasNull := elementKinds(items); len(kinds) == 1 && kinds[0] == kindObject && !hasNull {
				item := g.className(naming.Singularize(sub))
				g.class(mergeObjects(items), item, sub)
				f.typ = "List[" + item + "]"
				f.items = true
			} else {
				f.typ = pythonType(m.Value)
			}
		default:
			f.typ = pythonType(m.Value)
		}
		fields = append(fields, f)
	}

	if g.style == Pydantic {
		g.classes = append(g.classes, g.pydanticClass(name, fields))
		return
	}
	g.classes = append(g.classes, dataclass(name, fields))
}

// pythonType maps a sample value without generated classes to a type hint.
func pythonType(v any) string {
	switch kindOf(v) {
	case kindBool:
		return "bool"
	case kindInt:
		return "int"
	case kindFloat:
		return "float"
	case kindString:
		return "str"
	case kindArray:
		items := v.([]any)
		kinds, hasNull := elementKinds(items)
		if len(kinds) != 1 || hasNull || kinds[0] == kindObject {
			return "List[Any]"
		}
		for _, it := range items {
			return "List[" + pythonType(it) + "]"
		}
	}
	return "Any"
}

func (g *pyGen) pydanticClass(name string, fields []pyField) string {
	lines := []string{fmt.Sprintf("class %s(BaseModel):", name)}
	for _, f := range fields {
		if f.name != f.key {
			g.aliases = true
			lines = append(lines, fmt.Sprintf("    %s: %s = Field(alias=%q)", f.name, f.typ, f.key))
			continue
		}
		lines = append(lines, fmt.Sprintf("    %s: %s", f.name, f.typ))
	}
	if len(fields) == 0 {
		lines = append(lines, "    pass")
	}
	return strings.Join(lines, "\n")
}

func dataclass(name string, fields []pyField) string {
	lines := []string{"@dataclass", fmt.Sprintf("class %s:", name)}
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("    %s: %s", f.name, f.typ))
	}
	if len(fields) > 0 {
		lines = append(lines, "")
	}
	lines = append(lines,
		"    @staticmethod",
		fmt.Sprintf("    def from_dict(obj: Any) -> '%s':", name))

	args := make([]string, len(fields))
	for i, f := range fields {
		get := fmt.Sprintf("obj.get(%q)", f.key)
		var expr string
		switch {
		case f.class:
			expr = fmt.Sprintf("None if %s is None else %s.from_dict(%s)", get, f.typ, get)
		case f.items:
			item := strings.TrimSuffix(strings.TrimPrefix(f.typ, "List["), "]")
			expr = fmt.Sprintf("[%s.from_dict(y) for y in obj.get(%q, [])]", item, f.key)
		case pythonPrimitives[f.typ] != "":
			expr = fmt.Sprintf("%s(obj.get(%q, %s))", f.typ, f.key, pythonPrimitives[f.typ])
		case strings.HasPrefix(f.typ, "List["):
			inner := strings.TrimSuffix(strings.TrimPrefix(f.typ, "List["), "]")
			if pythonPrimitives[inner] != "" {
				expr = fmt.Sprintf("[%s(y) for y in obj.get(%q, [])]", inner, f.key)
			} else {
				expr = fmt.Sprintf("list(obj.get(%q, []))", f.key)
			}
		default:
			expr = get
		}
		lines = append(lines, fmt.Sprintf("        _%s = %s", f.name, expr))
		args[i] = "_" + f.name
	}
	lines = append(lines, fmt.Sprintf("        return %s(%s)", name, strings.Join(args, ", ")))
	return strings.Join(lines, "\n")
}
