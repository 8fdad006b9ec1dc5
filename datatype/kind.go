package datatype

import "unsafe"

// Kind identifies a predefined fixed-size primitive datatype.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// String returns the Go spelling of the primitive kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint:
		return "uint"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindUintptr:
		return "uintptr"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindComplex64:
		return "complex64"
	case KindComplex128:
		return "complex128"
	default:
		return "invalid"
	}
}

// kindSizes maps each predefined kind to its in-memory size on the
// current architecture. int, uint and uintptr are platform dependent,
// so the table is built from unsafe.Sizeof rather than hardcoded.
var kindSizes = map[Kind]uintptr{
	KindBool:       unsafe.Sizeof(false),
	KindInt:        unsafe.Sizeof(int(0)),
	KindInt8:       unsafe.Sizeof(int8(0)),
	KindInt16:      unsafe.Sizeof(int16(0)),
	KindInt32:      unsafe.Sizeof(int32(0)),
	KindInt64:      unsafe.Sizeof(int64(0)),
	KindUint:       unsafe.Sizeof(uint(0)),
	KindUint8:      unsafe.Sizeof(uint8(0)),
	KindUint16:     unsafe.Sizeof(uint16(0)),
	KindUint32:     unsafe.Sizeof(uint32(0)),
	KindUint64:     unsafe.Sizeof(uint64(0)),
	KindUintptr:    unsafe.Sizeof(uintptr(0)),
	KindFloat32:    unsafe.Sizeof(float32(0)),
	KindFloat64:    unsafe.Sizeof(float64(0)),
	KindComplex64:  unsafe.Sizeof(complex64(0)),
	KindComplex128: unsafe.Sizeof(complex128(0)),
}

// Size returns the in-memory size of the kind in bytes, or 0 for an
// invalid kind.
func (k Kind) Size() uintptr {
	return kindSizes[k]
}

// IsValid returns true if k is one of the predefined kinds.
func (k Kind) IsValid() bool {
	_, ok := kindSizes[k]
	return ok
}
