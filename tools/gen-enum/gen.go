package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/constant"
	"go/format"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/scylladb/go-set/strset"
	"golang.org/x/tools/go/packages"
)

var funcMap = template.FuncMap{
	"join":  strings.Join,
	"lower": strings.ToLower,
}

type GeneratorOptions struct {
	Args         []string
	BuildTags    string
	Dir          string
	GenerateFlag bool
	Output       string
	Type         string
}

type Generator struct {
	options GeneratorOptions
	pkgDefs map[*ast.Ident]types.Object
	pkgName string
	values  []Value
	names   *strset.Set
	err     error
}

type Value struct {
	Name         string
	OriginalName string
	Value        int64
}

func NewGenerator(options GeneratorOptions) *Generator {
	if options.Dir == "" {
		options.Dir = "."
	}

	return &Generator{
		options: options,
		names:   strset.New(),
	}
}

// Run loads the package in the configured directory, collects the constants
// of the configured type and writes the generated source. The formatted source
// is returned even when writing fails.
func (g *Generator) Run() ([]byte, error) {
	var tags []string

	if g.options.BuildTags != "" {
		tags = strings.Split(g.options.BuildTags, ",")
	}

	cfg := &packages.Config{
		Mode:       packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax,
		Dir:        g.options.Dir,
		Tests:      false,
		BuildFlags: []string{fmt.Sprintf("-tags=%s", strings.Join(tags, " "))},
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%d packages found", len(pkgs))
	}

	g.pkgName = pkgs[0].Name
	g.pkgDefs = pkgs[0].TypesInfo.Defs

	for _, file := range pkgs[0].Syntax {
		ast.Inspect(file, g.findType)
	}

	if g.err != nil {
		return nil, g.err
	}

	if len(g.values) == 0 {
		return nil, fmt.Errorf("no constants of type %q in package %s", g.options.Type, g.pkgName)
	}

	data := struct {
		Args         []string
		GenerateFlag bool
		PackageName  string
		Type         string
		Values       []Value
	}{
		Args:         g.options.Args,
		GenerateFlag: g.options.GenerateFlag,
		PackageName:  g.pkgName,
		Type:         g.options.Type,
		Values:       g.values,
	}

	var buf bytes.Buffer

	if err := _tmpl.Execute(&buf, data); err != nil {
		return buf.Bytes(), err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), err
	}

	output := g.options.Output
	if output == "" {
		output = filepath.Join(g.options.Dir, fmt.Sprintf("%s_enum.go", strings.ToLower(g.options.Type)))
	}

	if err := os.WriteFile(output, src, 0o644); err != nil {
		return src, err
	}

	return src, nil
}

func (g *Generator) findType(node ast.Node) bool {
	if g.err != nil {
		return false
	}

	decl, ok := node.(*ast.GenDecl)
	if !ok || decl.Tok != token.CONST {
		// Enum declarations need to be const.
		return true
	}

	typ := "" // type of the current run of constants; carried across iota specs

	for _, spec := range decl.Specs {
		vspec := spec.(*ast.ValueSpec) // we've already determined this is a const
		if vspec.Type != nil {
			ident, ok := vspec.Type.(*ast.Ident)
			if !ok {
				continue
			}

			typ = ident.Name
		}

		if g.options.Type != typ {
			// Not the type we want.
			continue
		}

		for _, name := range vspec.Names {
			if name.Name == "_" {
				continue
			}

			if err := g.addValue(name, vspec.Comment); err != nil {
				g.err = err
				return false
			}
		}
	}

	return false
}

func (g *Generator) addValue(name *ast.Ident, comment *ast.CommentGroup) error {
	obj, ok := g.pkgDefs[name]
	if !ok {
		return fmt.Errorf("no value for constant %q", name.Name)
	}

	info, ok := obj.Type().Underlying().(*types.Basic)
	if !ok || info.Info()&types.IsInteger == 0 {
		return fmt.Errorf("%q must be an integer type", g.options.Type)
	}

	value := obj.(*types.Const).Val()
	if value.Kind() != constant.Int {
		return fmt.Errorf("%q constant is not an integer", name.Name)
	}

	v := Value{
		OriginalName: name.Name,
	}

	if info.Info()&types.IsUnsigned != 0 {
		u64, _ := constant.Uint64Val(value)
		v.Value = int64(u64)
	} else {
		v.Value, _ = constant.Int64Val(value)
	}

	if comment != nil && len(comment.List) == 1 {
		text := strings.TrimSpace(comment.Text())
		fields := strset.New(strings.Split(text, ", ")...)

		var err error

		fields.Each(func(field string) bool {
			idx := strings.Index(field, "=")
			if idx < 0 || field[:idx] != "name" {
				return true
			}

			v.Name = field[idx+1:]

			if strings.HasPrefix(v.Name, `"`) {
				v.Name, err = strconv.Unquote(v.Name)
			}

			return err == nil
		})

		if err != nil {
			return fmt.Errorf("constant %q: %w", name.Name, err)
		}
	}

	if v.Name == "" {
		v.Name = strings.ToLower(strings.TrimSpace(name.Name))
		v.Name = strings.ReplaceAll(v.Name, "_", "-")
	}

	v.Name = strings.ToLower(v.Name)

	if g.names.Has(v.Name) {
		return fmt.Errorf("duplicate name %q for constant %q", v.Name, name.Name)
	}

	g.names.Add(v.Name)
	g.values = append(g.values, v)

	return nil
}

var _tmpl = template.Must(template.New("").Funcs(funcMap).Parse(`// Code generated by "gen-enum {{ join .Args " " }}"; DO NOT EDIT.

package {{ .PackageName }}

import (
	"errors"
	"strings"
)

func _() {
	// An "invalid array index" compiler error signifies that the constant
	// values have changed. Run the generator again.
	var x [1]struct{}
	{{- range .Values }}
	_ = x[{{ .OriginalName }}-{{ .Value }}]
	{{- end }}
}

var _{{ .Type }}_string_to_type = map[string]{{ .Type }}{
	{{- range $i, $value := .Values }}
	"{{ $value.Name }}": {{ $value.OriginalName }},
	{{- end }}
}

var _{{ .Type }}_type_to_string = map[{{ .Type }}]string{
	{{- range $i, $value := .Values }}
	{{ $value.OriginalName }}: "{{ $value.Name }}",
	{{- end }}
}

var ErrInvalid{{ .Type }} = errors.New("invalid {{ .Type }}")

func (i {{ .Type }}) String() string {
	return _{{ .Type }}_type_to_string[i]
}

func (i {{ .Type }}) MarshalText() ([]byte, error) {
	if s, ok := _{{ .Type }}_type_to_string[i]; ok {
		return []byte(s), nil
	}
	return nil, ErrInvalid{{ .Type }}
}

func (i *{{ .Type }}) UnmarshalText(text []byte) error {
	if t, ok := _{{ .Type }}_string_to_type[strings.ToLower(string(text))]; ok {
		*i = t
		return nil
	}
	return ErrInvalid{{ .Type }}
}
{{ if .GenerateFlag }}
func (i *{{ .Type }}) Set(s string) error {
	return i.UnmarshalText([]byte(s))
}

func (i *{{ .Type }}) Type() string {
	return "{{ lower .Type }}"
}
{{ end }}
func StringTo{{ .Type }}(s string) {{ .Type }} {
	if t, ok := _{{ .Type }}_string_to_type[strings.ToLower(s)]; ok {
		return t
	}
	return 0
}

func Is{{ .Type }}(s string) bool {
	_, ok := _{{ .Type }}_string_to_type[strings.ToLower(s)]
	return ok
}

func {{ .Type }}List() []{{ .Type }} {
	return []{{ .Type }}{
		{{- range $i, $value := .Values }}
		{{ $value.OriginalName }},
		{{- end }}
	}
}
`))
