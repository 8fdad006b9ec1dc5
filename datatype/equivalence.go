package datatype

import (
	"fmt"
	"reflect"
	"sync"
)

// Equivalence is the capability a type provides to describe its own
// memory layout. Generated code implements it for annotated structs;
// hand-written implementations are allowed for types the generator
// cannot see, as long as the descriptor matches the real layout.
type Equivalence interface {
	EquivalentDatatype() Datatype
}

// registry maps concrete Go types to descriptor constructors. It is
// populated once at init time: primitives below, plus any explicit
// Register calls from package init functions.
var (
	registryMu sync.RWMutex
	registry   = make(map[reflect.Type]func() Datatype)
)

// Register binds a descriptor constructor to the concrete type T.
// It is intended to be called from init functions for types that
// cannot carry the Equivalence method themselves. Registering the
// same type twice panics; descriptors are not meant to be swapped.
func Register[T any](ctor func() Datatype) {
	rt := reflect.TypeFor[T]()

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[rt]; ok {
		panic("datatype: duplicate registration for " + rt.String())
	}

	registry[rt] = ctor
}

// Of resolves the descriptor for type T: the Equivalence method set
// first, then the registry. It panics for unresolvable types; the
// generator statically verifies every field type it emits resolves,
// so generated code never trips this.
func Of[T any]() Datatype {
	var v T
	if eq, ok := any(v).(Equivalence); ok {
		return eq.EquivalentDatatype()
	}

	rt := reflect.TypeFor[T]()

	registryMu.RLock()
	ctor, ok := registry[rt]
	registryMu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("datatype: %s does not provide a layout descriptor", rt))
	}

	return ctor()
}

func registerPrimitive[T any](k Kind) {
	Register[T](func() Datatype { return Predefined(k) })
}

func init() {
	registerPrimitive[bool](KindBool)
	registerPrimitive[int](KindInt)
	registerPrimitive[int8](KindInt8)
	registerPrimitive[int16](KindInt16)
	registerPrimitive[int32](KindInt32)
	registerPrimitive[int64](KindInt64)
	registerPrimitive[uint](KindUint)
	registerPrimitive[uint8](KindUint8)
	registerPrimitive[uint16](KindUint16)
	registerPrimitive[uint32](KindUint32)
	registerPrimitive[uint64](KindUint64)
	registerPrimitive[uintptr](KindUintptr)
	registerPrimitive[float32](KindFloat32)
	registerPrimitive[float64](KindFloat64)
	registerPrimitive[complex64](KindComplex64)
	registerPrimitive[complex128](KindComplex128)
}
