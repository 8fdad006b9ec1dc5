// Package unsupported holds rejected declarations for analyzer tests.
package unsupported

// Status is an enum-style defined type, not a plain struct.
//
//datatype:generate
type Status int

const (
	StatusNew Status = iota
	StatusDone
)

// ID aliases a primitive, so fields typed with it must be rejected.
type ID = uint64

//datatype:generate
type Aliased struct {
	ID ID
}

//datatype:generate
type Pointy struct {
	Next *Pointy
}

//datatype:generate
type Texty struct {
	Name string
}

//datatype:generate
type Generic[T any] struct {
	V T
}

// Wrong carries a method with the right name but the wrong result
// type, so it does not satisfy the descriptor capability.
type Wrong struct {
	N int32
}

func (Wrong) EquivalentDatatype() int { return 0 }

//datatype:generate
type HasWrong struct {
	W Wrong
}
