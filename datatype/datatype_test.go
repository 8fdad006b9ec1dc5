package datatype

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Size(t *testing.T) {
	assert.Equal(t, uintptr(1), KindBool.Size())
	assert.Equal(t, uintptr(1), KindUint8.Size())
	assert.Equal(t, uintptr(2), KindInt16.Size())
	assert.Equal(t, uintptr(4), KindFloat32.Size())
	assert.Equal(t, uintptr(8), KindFloat64.Size())
	assert.Equal(t, uintptr(16), KindComplex128.Size())
	assert.Equal(t, unsafe.Sizeof(int(0)), KindInt.Size())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "int32", KindInt32.String())
	assert.Equal(t, "uintptr", KindUintptr.String())
	assert.Equal(t, "invalid", Kind(0).String())
}

func TestKind_IsValid(t *testing.T) {
	for k := Kind(1); int(k) < KindTotal; k++ {
		assert.True(t, k.IsValid(), "kind %d should be valid", int(k))
	}

	assert.False(t, Kind(0).IsValid())
	assert.False(t, Kind(KindTotal+1).IsValid())
}

func TestPredefined(t *testing.T) {
	dt := Predefined(KindInt32)

	assert.Equal(t, ClassPredefined, dt.Class())
	assert.Equal(t, KindInt32, dt.Kind())
	assert.Equal(t, uintptr(4), dt.Size())
	assert.Equal(t, "int32", dt.String())
}

func TestPredefined_InvalidKindPanics(t *testing.T) {
	assert.Panics(t, func() { Predefined(Kind(0)) })
}

func TestContiguous(t *testing.T) {
	dt := Contiguous(4, Predefined(KindInt32))

	assert.Equal(t, ClassContiguous, dt.Class())
	assert.Equal(t, 4, dt.Count())
	assert.Equal(t, uintptr(16), dt.Size())
	assert.Equal(t, KindInt32, dt.Elem().Kind())
	assert.Equal(t, "[4]int32", dt.String())
}

func TestStructured(t *testing.T) {
	dt := Structured(16,
		Block{Offset: 0, Type: Predefined(KindBool)},
		Block{Offset: 4, Type: Contiguous(2, Predefined(KindFloat32))},
	)

	require.Equal(t, ClassStructured, dt.Class())
	require.Len(t, dt.Blocks(), 2)

	assert.Equal(t, uintptr(16), dt.Size())
	assert.Equal(t, uintptr(0), dt.Blocks()[0].Offset)
	assert.Equal(t, uintptr(4), dt.Blocks()[1].Offset)
	assert.Equal(t, "struct(16){0:bool, 4:[2]float32}", dt.String())
}

func TestStructured_CopiesBlocks(t *testing.T) {
	blocks := []Block{{Offset: 0, Type: Predefined(KindUint8)}}
	dt := Structured(1, blocks...)

	blocks[0].Offset = 99
	assert.Equal(t, uintptr(0), dt.Blocks()[0].Offset)
}
