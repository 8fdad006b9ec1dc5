package analyze

import "go/token"

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "datatype-generator/example"
	Name    string // e.g., "Sensor"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// ShapeKind represents the kind of a field shape.
type ShapeKind int

const (
	ShapeInvalid    ShapeKind = iota
	ShapePrimitive            // fixed-size basic type: bool, int32, float64, ...
	ShapeArray                // fixed-length array of a supported shape
	ShapeTuple                // inline (anonymous) struct of supported shapes
	ShapeEquivalent           // named type providing its own descriptor
)

// String returns a human-readable representation of the ShapeKind.
func (k ShapeKind) String() string {
	switch k {
	case ShapePrimitive:
		return "primitive"
	case ShapeArray:
		return "array"
	case ShapeTuple:
		return "tuple"
	case ShapeEquivalent:
		return "equivalent"
	default:
		return "invalid"
	}
}

// Shape describes a field type recursively. Only the members matching
// Kind are set.
type Shape struct {
	Kind ShapeKind

	// Primitive is the Go spelling of a primitive shape (e.g. "int32").
	Primitive string

	// Len and Elem describe an array shape.
	Len  int64
	Elem *Shape

	// Fields holds the members of a tuple shape in declaration order.
	Fields []TupleField

	// Named identifies an equivalent shape's type.
	Named TypeID
}

// TupleField is one member of an inline struct shape.
type TupleField struct {
	Name  string
	Shape *Shape
}

// FieldModel describes one field of an annotated struct.
type FieldModel struct {
	// Name is the Go field name, used for offset selectors and diagnostics.
	Name string
	// Index is the field's declaration position.
	Index int
	// Shape is the validated shape tree of the field type.
	Shape *Shape
	// Pos is the field's source position.
	Pos token.Position
}

// StructModel is the validated model of one annotated struct, ready
// for the emitter.
type StructModel struct {
	// ID identifies the struct type.
	ID TypeID
	// PkgName is the package name the generated file belongs to.
	PkgName string
	// Dir is the directory of the package, where output is written.
	Dir string
	// Pos is the source position of the type declaration.
	Pos token.Position
	// Fields lists the struct fields in declaration order.
	Fields []FieldModel
}
