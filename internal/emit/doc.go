// Package emit turns analyzed struct models into generated Go source.
//
// For every model it produces one file in the struct's own package
// implementing datatype.Equivalence. Offsets and sizes are not baked
// in as numbers: the emitted expressions use unsafe.Offsetof and
// unsafe.Sizeof, so the descriptor always matches the layout the
// compiler actually assigns, on every architecture.
package emit
