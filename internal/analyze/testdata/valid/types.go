// Package valid holds supported declarations for analyzer tests.
package valid

import "datatype-generator/datatype"

//datatype:generate
type Inner struct {
	A int16
	B int64
}

//datatype:generate
type Outer struct {
	ID    uint32
	Inner Inner
}

//datatype:generate
type Mixed struct {
	Flag bool
	Ints [4]int32
	Pair struct {
		FS [2]float32
		U  uint8
	}
}

//datatype:generate
type Padded struct {
	A    uint8
	_    [3]byte
	N    int32
	Pair struct {
		F float32
		_ uint32
	}
}

// Handmade implements the descriptor capability by hand, without an
// annotation.
type Handmade struct {
	N int32
}

func (Handmade) EquivalentDatatype() datatype.Datatype {
	return datatype.Of[int32]()
}

//datatype:generate
type UsesHandmade struct {
	H Handmade
}

// Plain carries no annotation and must be ignored by the scanner.
type Plain struct {
	X int
}
