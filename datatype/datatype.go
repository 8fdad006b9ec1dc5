package datatype

import (
	"fmt"
	"strings"
)

// Class represents the class of a descriptor.
type Class int

const (
	ClassInvalid Class = iota
	ClassPredefined
	ClassContiguous
	ClassStructured
)

// String returns a human-readable representation of the Class.
func (c Class) String() string {
	switch c {
	case ClassPredefined:
		return "predefined"
	case ClassContiguous:
		return "contiguous"
	case ClassStructured:
		return "structured"
	default:
		return "invalid"
	}
}

// Datatype is an opaque layout descriptor. It records a value's total
// size and which byte ranges within it carry data, so a transport can
// move the value without knowing its Go type. Datatypes are immutable
// value types; build them with Predefined, Contiguous and Structured.
type Datatype struct {
	class  Class
	kind   Kind // set for predefined descriptors only
	size   uintptr
	count  int       // set for contiguous descriptors only
	elem   *Datatype // set for contiguous descriptors only
	blocks []Block   // set for structured descriptors only
}

// Block is one field entry of a structured descriptor: the field's
// byte offset relative to the enclosing value plus its own descriptor.
type Block struct {
	Offset uintptr
	Type   Datatype
}

// Predefined returns the descriptor for a fixed-size primitive kind.
// It panics on an invalid kind; generated code only ever passes the
// Kind constants defined in this package.
func Predefined(k Kind) Datatype {
	if !k.IsValid() {
		panic(fmt.Sprintf("datatype: Predefined called with invalid kind %d", int(k)))
	}

	return Datatype{
		class: ClassPredefined,
		kind:  k,
		size:  k.Size(),
	}
}

// Contiguous returns the descriptor for a fixed-length array of count
// elements, each described by elem. The element stride is elem.Size().
func Contiguous(count int, elem Datatype) Datatype {
	if count < 0 {
		panic(fmt.Sprintf("datatype: Contiguous called with negative count %d", count))
	}

	e := elem

	return Datatype{
		class: ClassContiguous,
		size:  uintptr(count) * elem.Size(),
		count: count,
		elem:  &e,
	}
}

// Structured returns the descriptor for a product type: blocks in field
// declaration order, each offset relative to the value's start. The size
// argument is the full extent of the value including trailing padding,
// which cannot be derived from the blocks alone.
func Structured(size uintptr, blocks ...Block) Datatype {
	return Datatype{
		class:  ClassStructured,
		size:   size,
		blocks: append([]Block(nil), blocks...),
	}
}

// Class returns the descriptor class.
func (d Datatype) Class() Class { return d.class }

// Kind returns the primitive kind for predefined descriptors, or the
// invalid Kind otherwise.
func (d Datatype) Kind() Kind { return d.kind }

// Size returns the descriptor's total extent in bytes.
func (d Datatype) Size() uintptr { return d.size }

// Count returns the element count for contiguous descriptors, or 0.
func (d Datatype) Count() int { return d.count }

// Elem returns the element descriptor for contiguous descriptors, or
// the zero Datatype.
func (d Datatype) Elem() Datatype {
	if d.elem == nil {
		return Datatype{}
	}

	return *d.elem
}

// Blocks returns the field blocks of a structured descriptor in
// declaration order. The returned slice must not be modified.
func (d Datatype) Blocks() []Block { return d.blocks }

// String returns a compact notation for diagnostics, e.g.
// "struct(16){0:bool, 4:[4]int32}".
func (d Datatype) String() string {
	switch d.class {
	case ClassPredefined:
		return d.kind.String()
	case ClassContiguous:
		return fmt.Sprintf("[%d]%s", d.count, d.Elem())
	case ClassStructured:
		var parts []string
		for _, b := range d.blocks {
			parts = append(parts, fmt.Sprintf("%d:%s", b.Offset, b.Type))
		}

		return fmt.Sprintf("struct(%d){%s}", d.size, strings.Join(parts, ", "))
	default:
		return "invalid"
	}
}
