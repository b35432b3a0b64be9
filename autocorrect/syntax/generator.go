package syntax

import (
	"fmt"
	"sort"
	"strings"
)

// Generator produces Go source snippets for fix suggestions: import
// statements, struct/interface scaffolding, function signatures, and method
// calls. Field/parameter maps are rendered in sorted key order so output is
// deterministic across runs.
type Generator struct{}

// NewGenerator returns a ready-to-use Generator; it carries no state.
func NewGenerator() Generator { return Generator{} }

// GenerateInterfaceImpl produces a stub implementation of an interface on a
// receiver type, one method per entry in methods (name -> body).
func (Generator) GenerateInterfaceImpl(interfaceName, typeName string, methods map[string]string) string {
	names := sortedKeys(methods)
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "func (%c %s) %s() {\n\t%s\n}\n\n", strings.ToLower(typeName)[0], typeName, name, methods[name])
	}
	body := strings.TrimRight(b.String(), "\n")
	return fmt.Sprintf("// %s implements %s.\n%s\n", typeName, interfaceName, body)
}

// GenerateImport produces an import declaration for path, optionally
// importing only specific names. Go imports whole packages rather than
// selected symbols, so items becomes a doc-comment hint rather than a
// brace-elided symbol list; single- vs multi-path grouping still mirrors
// the source convention of collapsing a lone entry.
func (Generator) GenerateImport(path string, items []string) string {
	if len(items) == 0 {
		return fmt.Sprintf("import %q", path)
	}
	if len(items) == 1 {
		return fmt.Sprintf("import %q // for %s", path, items[0])
	}
	return fmt.Sprintf("import %q // for %s", path, strings.Join(items, ", "))
}

// GenerateStruct produces a struct definition with exported fields,
// optionally tagged with doc comments naming the struct's purpose.
func (Generator) GenerateStruct(structName string, fields map[string]string, docComment string) string {
	var b strings.Builder
	if docComment != "" {
		fmt.Fprintf(&b, "// %s %s\n", structName, docComment)
	}
	fmt.Fprintf(&b, "type %s struct {\n", structName)
	for _, name := range sortedKeys(fields) {
		fmt.Fprintf(&b, "\t%s %s\n", exported(name), fields[name])
	}
	b.WriteString("}\n")
	return b.String()
}

// GenerateEnum produces a Go analogue of an enum: a named int type plus a
// const block of values, since Go has no native sum-type enum syntax.
func (Generator) GenerateEnum(enumName string, variants map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "type %s int\n\nconst (\n", enumName)
	names := sortedKeys(variants)
	for i, name := range names {
		suffix := ""
		if i == 0 {
			suffix = fmt.Sprintf(" %s = iota", enumName)
		}
		if payload := variants[name]; payload != "" {
			fmt.Fprintf(&b, "\t%s%s // payload: %s\n", exported(name), suffix, payload)
			continue
		}
		fmt.Fprintf(&b, "\t%s%s\n", exported(name), suffix)
	}
	b.WriteString(")\n")
	return b.String()
}

// GenerateFunction produces a function signature and body.
func (Generator) GenerateFunction(fnName string, params map[string]string, returnType, body string) string {
	var paramParts []string
	for _, name := range sortedKeys(params) {
		paramParts = append(paramParts, fmt.Sprintf("%s %s", name, params[name]))
	}
	sig := fmt.Sprintf("func %s(%s)", fnName, strings.Join(paramParts, ", "))
	if returnType != "" {
		sig += " " + returnType
	}
	return fmt.Sprintf("%s {\n\t%s\n}\n", sig, body)
}

// GenerateMethodCall produces a method-call expression.
func (Generator) GenerateMethodCall(object, methodName string, args []string) string {
	return fmt.Sprintf("%s.%s(%s)", object, methodName, strings.Join(args, ", "))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func exported(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
