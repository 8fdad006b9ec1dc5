package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"text/template"
	"unicode"

	"datatype-generator/internal/analyze"
)

// RuntimeImportPath is the import path of the descriptor runtime the
// generated code depends on.
const RuntimeImportPath = analyze.RuntimePkgPath

// Config holds configuration for code generation.
type Config struct {
	// Suffix is appended to the snake-cased type name to form the
	// output file name.
	Suffix string
	// Header is the first line of every generated file.
	Header string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Suffix: "_datatype.go",
		Header: "// Code generated by datatype-generator. DO NOT EDIT.",
	}
}

// Generator generates Equivalence implementations from struct models.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.Suffix == "" {
		config.Suffix = DefaultConfig().Suffix
	}

	if config.Header == "" {
		config.Header = DefaultConfig().Header
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in (the struct's package).
	Dir string
	// Filename is the base name, e.g. "sensor_datatype.go".
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate produces one file per model, in model order.
func (g *Generator) Generate(models []*analyze.StructModel) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, m := range models {
		file, err := g.generateModel(m)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", m.ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateModel(m *analyze.StructModel) (*GeneratedFile, error) {
	imports := newImportSet()
	imports.add("unsafe")
	imports.add(RuntimeImportPath)

	expr, err := g.structExpr(m, imports)
	if err != nil {
		return nil, err
	}

	data := &templateData{
		Header:      g.config.Header,
		PackageName: m.PkgName,
		Imports:     imports.specs(),
		TypeName:    m.ID.Name,
		Expr:        expr,
	}

	var buf bytes.Buffer
	if err := datatypeTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting code: %w\n%s", err, buf.Bytes())
	}

	return &GeneratedFile{
		Dir:      m.Dir,
		Filename: toSnake(m.ID.Name) + g.config.Suffix,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the datatype template.
type templateData struct {
	Header      string
	PackageName string
	Imports     []importSpec
	TypeName    string
	Expr        string
}

var datatypeTemplate = template.Must(template.New("datatype").Parse(`{{.Header}}

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

// EquivalentDatatype returns the layout descriptor for a {{.TypeName}} value.
func ({{.TypeName}}) EquivalentDatatype() datatype.Datatype {
	var v {{.TypeName}}

	return {{.Expr}}
}
`))

// importSpec is one import line of a generated file.
type importSpec struct {
	Alias string // empty when the package name equals the path base
	Path  string
}

// importSet assigns collision-free qualifiers to import paths.
type importSet struct {
	byPath map[string]importSpec
	taken  map[string]bool
}

func newImportSet() *importSet {
	return &importSet{
		byPath: make(map[string]importSpec),
		taken:  make(map[string]bool),
	}
}

// add records the path and returns the qualifier to reference it by.
func (s *importSet) add(path string) string {
	if spec, ok := s.byPath[path]; ok {
		return qualifier(spec)
	}

	base := pathBase(path)

	name := base
	for i := 2; s.taken[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}

	spec := importSpec{Path: path}
	if name != base {
		spec.Alias = name
	}

	s.byPath[path] = spec
	s.taken[name] = true

	return name
}

func qualifier(spec importSpec) string {
	if spec.Alias != "" {
		return spec.Alias
	}

	return pathBase(spec.Path)
}

func pathBase(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[i+1:]
		}
	}

	return p
}

// specs returns the recorded imports sorted by path.
func (s *importSet) specs() []importSpec {
	var out []importSpec
	for _, spec := range s.byPath {
		out = append(out, spec)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	return out
}

// toSnake converts a Go type name to snake case for file naming, e.g.
// "HTTPHeader" -> "http_header".
func toSnake(name string) string {
	runes := []rune(name)

	var out []rune
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if i > 0 && (prevLower || nextLower) {
				out = append(out, '_')
			}

			r = unicode.ToLower(r)
		}

		out = append(out, r)
	}

	return string(out)
}
