// Package analyze provides package loading and struct model extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// type declarations annotated with //datatype:generate and to build a
// validated model of each one: fields in declaration order, each with a
// recursive shape (primitive, fixed array, inline struct, or a named
// type that provides its own descriptor).
//
// Key types:
//   - TypeID: package import path + type name
//   - StructModel / FieldModel: what the emitter consumes
//   - Shape: the recursive field shape tree
package analyze
