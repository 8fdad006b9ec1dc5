package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"

	"datatype-generator/internal/diagnostic"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts models for every annotated
// struct. One Analyzer handles one generator run.
type Analyzer struct {
	fset *token.FileSet
	// annotated records every type selected in this run, so structs
	// may reference each other before any code has been generated.
	annotated map[TypeID]bool
	// include holds types selected by the manifest rather than by a
	// source annotation.
	include map[TypeID]bool
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		fset:      token.NewFileSet(),
		annotated: make(map[TypeID]bool),
		include:   make(map[TypeID]bool),
	}
}

// Include marks additional types for generation as if they carried the
// source annotation. Used for manifest-listed types the user cannot
// annotate directly.
func (a *Analyzer) Include(ids ...TypeID) {
	for _, id := range ids {
		a.include[id] = true
	}
}

// target is one annotated type declaration found during the scan pass.
type target struct {
	pkg  *packages.Package
	spec *ast.TypeSpec
}

// Load loads the given package patterns and returns a model for every
// annotated struct, in source order. Unsupported shapes are reported
// through the returned diagnostics; the error covers loader failures
// only.
func (a *Analyzer) Load(patterns ...string) ([]*StructModel, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	cfg := &packages.Config{
		Mode: LoadMode,
		Fset: a.fset,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, diags, fmt.Errorf("failed to load packages: %w", err)
	}

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			diags.Errorf(diagnostic.CodeLoadFailed, token.Position{}, "", "",
				"package %s: %s", pkg.PkgPath, e.Msg)
		}
	}

	if diags.HasErrors() {
		return nil, diags, nil
	}

	// Scan pass: record every annotated declaration before validating
	// any of them, so a field may reference a sibling struct whose
	// descriptor is generated in the same run.
	targets := a.scan(pkgs)

	// Manifest-listed types that no loaded pattern declares would
	// otherwise vanish without a trace.
	for _, id := range a.missingIncludes() {
		diags.Warnf(diagnostic.CodeUnknownType, token.Position{}, id.Name, "",
			"manifest lists %s but no loaded package declares it", id)
	}

	var models []*StructModel

	for _, t := range targets {
		if m := a.buildModel(t.pkg, t.spec, &diags); m != nil {
			models = append(models, m)
		}
	}

	return models, diags, nil
}

func (a *Analyzer) scan(pkgs []*packages.Package) []target {
	var targets []target

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				gen, ok := decl.(*ast.GenDecl)
				if !ok || gen.Tok != token.TYPE {
					continue
				}

				for _, spec := range gen.Specs {
					ts := spec.(*ast.TypeSpec)
					id := TypeID{PkgPath: pkg.PkgPath, Name: ts.Name.Name}

					if !hasAnnotation(gen.Doc) && !hasAnnotation(ts.Doc) && !a.include[id] {
						continue
					}

					targets = append(targets, target{pkg: pkg, spec: ts})
					a.annotated[id] = true
				}
			}
		}
	}

	return targets
}

// missingIncludes returns the included type IDs the scan never matched,
// sorted for stable warning order.
func (a *Analyzer) missingIncludes() []TypeID {
	var missing []TypeID

	for id := range a.include {
		if !a.annotated[id] {
			missing = append(missing, id)
		}
	}

	sort.Slice(missing, func(i, j int) bool {
		return missing[i].String() < missing[j].String()
	})

	return missing
}

// buildModel validates one annotated declaration. It returns nil after
// reporting diagnostics when the declaration or any field is
// unsupported; a partial descriptor would silently lie about layout.
func (a *Analyzer) buildModel(pkg *packages.Package, spec *ast.TypeSpec, diags *diagnostic.Diagnostics) *StructModel {
	pos := a.fset.Position(spec.Pos())
	name := spec.Name.Name

	if spec.Assign.IsValid() {
		diags.Errorf(diagnostic.CodeUnsupportedItem, pos, name, "",
			"type aliases are not supported: annotate the aliased declaration instead")
		return nil
	}

	if spec.TypeParams != nil {
		diags.Errorf(diagnostic.CodeUnsupportedItem, pos, name, "",
			"generic types are not supported")
		return nil
	}

	obj, ok := pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		diags.Errorf(diagnostic.CodeLoadFailed, pos, name, "",
			"declaration was not type-checked")
		return nil
	}

	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		diags.Errorf(diagnostic.CodeUnsupportedItem, pos, name, "",
			"only plain struct types are supported, %s is defined as %s",
			name, types.TypeString(obj.Type().Underlying(), types.RelativeTo(pkg.Types)))
		return nil
	}

	m := &StructModel{
		ID:      TypeID{PkgPath: pkg.PkgPath, Name: name},
		PkgName: pkg.Name,
		Dir:     filepath.Dir(pos.Filename),
		Pos:     pos,
	}

	errsBefore := len(diags.Errors)

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if field.Name() == "_" {
			// Blank fields are pure padding. They have no addressable
			// offset, and the descriptor's total size accounts for the
			// bytes they occupy.
			continue
		}

		fpos := a.fset.Position(field.Pos())

		shape := a.buildShape(field.Type(), name, field.Name(), fpos, diags)
		if shape == nil {
			continue
		}

		m.Fields = append(m.Fields, FieldModel{
			Name:  field.Name(),
			Index: i,
			Shape: shape,
			Pos:   fpos,
		})
	}

	if len(diags.Errors) > errsBefore {
		return nil
	}

	return m
}

// buildShape validates a field type recursively and returns its shape,
// or nil after reporting a diagnostic.
func (a *Analyzer) buildShape(t types.Type, typeName, fieldName string, fpos token.Position, diags *diagnostic.Diagnostics) *Shape {
	switch tt := t.(type) {
	case *types.Alias:
		diags.Errorf(diagnostic.CodeAliasField, fpos, typeName, fieldName,
			"type alias %s is not supported: the generator needs the literal declared type",
			tt.Obj().Name())
		return nil

	case *types.Basic:
		if !isFixedSizeBasic(tt.Kind()) {
			diags.Errorf(diagnostic.CodeNoDescriptor, fpos, typeName, fieldName,
				"%s has no fixed-size layout descriptor", tt.Name())
			return nil
		}

		return &Shape{Kind: ShapePrimitive, Primitive: tt.Name()}

	case *types.Array:
		elem := a.buildShape(tt.Elem(), typeName, fieldName, fpos, diags)
		if elem == nil {
			return nil
		}

		return &Shape{Kind: ShapeArray, Len: tt.Len(), Elem: elem}

	case *types.Struct:
		// An inline struct literal is the tuple of the descriptor
		// model: positional members, offsets relative to its start.
		shape := &Shape{Kind: ShapeTuple}

		for i := 0; i < tt.NumFields(); i++ {
			member := tt.Field(i)
			if member.Name() == "_" {
				continue
			}

			ms := a.buildShape(member.Type(), typeName, fieldName+"."+member.Name(), a.fset.Position(member.Pos()), diags)
			if ms == nil {
				return nil
			}

			shape.Fields = append(shape.Fields, TupleField{Name: member.Name(), Shape: ms})
		}

		return shape

	case *types.Named:
		id := TypeID{PkgPath: pkgPathOf(tt), Name: tt.Obj().Name()}

		if a.annotated[id] || providesDescriptor(tt) {
			return &Shape{Kind: ShapeEquivalent, Named: id}
		}

		diags.Errorf(diagnostic.CodeNoDescriptor, fpos, typeName, fieldName,
			"%s does not provide a layout descriptor: implement datatype.Equivalence or annotate it with //%s", id, Marker)
		return nil

	default:
		diags.Errorf(diagnostic.CodeNoDescriptor, fpos, typeName, fieldName,
			"%s does not provide a layout descriptor", types.TypeString(t, nil))
		return nil
	}
}

func pkgPathOf(named *types.Named) string {
	if pkg := named.Obj().Pkg(); pkg != nil {
		return pkg.Path()
	}

	return ""
}

// RuntimePkgPath is the import path of the descriptor runtime package.
const RuntimePkgPath = "datatype-generator/datatype"

// providesDescriptor reports whether the value method set of t already
// carries an EquivalentDatatype method, i.e. the type satisfies
// datatype.Equivalence without this run's help.
func providesDescriptor(t types.Type) bool {
	ms := types.NewMethodSet(t)
	for i := 0; i < ms.Len(); i++ {
		fn, ok := ms.At(i).Obj().(*types.Func)
		if !ok || fn.Name() != "EquivalentDatatype" {
			continue
		}

		sig := fn.Type().(*types.Signature)
		if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
			return false
		}

		return isDescriptorType(sig.Results().At(0).Type())
	}

	return false
}

// isDescriptorType reports whether t is the runtime package's Datatype
// type. A method with the right name but another result type does not
// satisfy datatype.Equivalence, it only shadows it.
func isDescriptorType(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Name() == "Datatype" && obj.Pkg() != nil && obj.Pkg().Path() == RuntimePkgPath
}

// isFixedSizeBasic reports whether a basic kind has a fixed in-memory
// size on every platform build. Strings and unsafe pointers do not
// describe transmittable layout.
func isFixedSizeBasic(k types.BasicKind) bool {
	switch k {
	case types.Bool,
		types.Int, types.Int8, types.Int16, types.Int32, types.Int64,
		types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64,
		types.Uintptr,
		types.Float32, types.Float64,
		types.Complex64, types.Complex128:
		return true
	default:
		return false
	}
}
