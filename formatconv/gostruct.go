package formatconv

import (
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/erraggy/xutil/internal/naming"
	"github.com/erraggy/xutil/xuerrors"
)

const (
	// DefaultTypeName names the top-level Go type.
	DefaultTypeName = "AutoGenerated"
	// DefaultPackage is the package clause of generated Go source.
	DefaultPackage = "main"
)

// GoOptions configures JSONToGo.
type GoOptions struct {
	// TypeName is the top-level type name. Defaults to DefaultTypeName.
	TypeName string
	// Package is the package clause. Defaults to DefaultPackage.
	Package string
	// OmitEmpty adds ",omitempty" to every json tag.
	OmitEmpty bool
}

// JSONToGo generates Go type declarations describing the sample JSON, with
// json tags carrying the original keys. Nested objects become named types
// ({Parent}{Field}); objects inside arrays are merged into one type named
// after the singular field. The source is formatted like gofmt.
func JSONToGo(text string, opts GoOptions) (string, error) {
	name, err := declName("type_name", opts.TypeName, DefaultTypeName)
	if err != nil {
		return "", err
	}
	name = naming.GoName(name)
	pkg := strings.TrimSpace(opts.Package)
	if pkg == "" {
		pkg = DefaultPackage
	}
	if !token.IsIdentifier(pkg) || token.IsKeyword(pkg) {
		return "", xuerrors.Input("package", "%q is not a valid package name", pkg)
	}

	v, err := parseJSON("json_data", text)
	if err != nil {
		return "", err
	}
	if err := checkDepth("json_data", v); err != nil {
		return "", err
	}

	g := &goGen{names: nameSet{name: 1}, omitEmpty: opts.OmitEmpty}
	switch t := v.(type) {
	case Object:
		g.structType(t, name)
	case []any:
		slot := g.reserve()
		typ := g.sliceType(t, name+"Item")
		g.decls[slot] = fmt.Sprintf("type %s %s\n", name, typ)
	default:
		return "", xuerrors.Input("json_data", "JSON must be an object or an array")
	}

	src := fmt.Sprintf("package %s\n\n%s", pkg, strings.Join(g.decls, "\n"))
	out, err := imports.Process("types.go", []byte(src), nil)
	if err != nil {
		return "", fmt.Errorf("formatconv: formatting generated Go: %w", err)
	}
	return string(out), nil
}

type goGen struct {
	decls     []string
	names     nameSet
	omitEmpty bool
}

// reserve keeps declarations in the order their types are first used.
func (g *goGen) reserve() int {
	g.decls = append(g.decls, "")
	return len(g.decls) - 1
}

func (g *goGen) structType(obj Object, name string) {
	slot := g.reserve()
	var b strings.Builder
	fmt.Fprintf(&b, "type %s struct {\n", name)
	used := make(map[string]bool, len(obj))
	for _, m := range obj {
		field := naming.GoName(m.Key)
		for base, i := field, 2; used[field]; i++ {
			field = fmt.Sprintf("%s%d", base, i)
		}
		used[field] = true

		tag := m.Key
		if g.omitEmpty {
			tag += ",omitempty"
		}
		fmt.Fprintf(&b, "\t%s %s `json:%q`\n", field, g.typeOf(m.Value, name+field), tag)
	}
	b.WriteString("}\n")
	g.decls[slot] = b.String()
}

// typeOf returns the Go type of v; hint names a generated struct type.
func (g *goGen) typeOf(v any, hint string) string {
	switch kindOf(v) {
	case kindBool:
		return "bool"
	case kindInt:
		return "int64"
	case kindFloat:
		return "float64"
	case kindString:
		return "string"
	case kindObject:
		name := g.names.unique(hint)
		g.structType(v.(Object), name)
		return name
	case kindArray:
		return g.sliceType(v.([]any), naming.Singularize(hint))
	}
	return "any"
}

func (g *goGen) sliceType(items []any, hint string) string {
	kinds, hasNull := elementKinds(items)
	switch {
	case len(kinds) == 0:
		return "[]any"
	case len(kinds) == 2 && !hasNull && numeric(kinds[0]) && numeric(kinds[1]):
		return "[]float64"
	case len(kinds) != 1:
		return "[]any"
	case kinds[0] == kindObject:
		return "[]" + g.typeOf(mergeObjects(items), hint)
	case hasNull:
		return "[]any"
	}
	for _, it := range items {
		if it != nil {
			return "[]" + g.typeOf(it, hint)
		}
	}
	return "[]any"
}

func numeric(k valueKind) bool { return k == kindInt || k == kindFloat }
