package telemetry

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datatype-generator/datatype"
	"datatype-generator/example/phys"
)

// fieldOffsets returns the compiler-assigned offsets of v's fields.
func fieldOffsets(v any) []uintptr {
	t := reflect.TypeOf(v)

	offsets := make([]uintptr, t.NumField())
	for i := range offsets {
		offsets[i] = t.Field(i).Offset
	}

	return offsets
}

func blockOffsets(dt datatype.Datatype) []uintptr {
	var offsets []uintptr
	for _, b := range dt.Blocks() {
		offsets = append(offsets, b.Offset)
	}

	return offsets
}

func TestGeneratedOffsetsMatchCompiler(t *testing.T) {
	tests := []struct {
		name string
		v    datatype.Equivalence
	}{
		{"Reading", Reading{}},
		{"Header", Header{}},
		{"Packet", Packet{}},
		{"ScalePair", ScalePair{}},
		{"PairScale", PairScale{}},
		{"Vector", phys.Vector{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := tt.v.EquivalentDatatype()

			assert.Equal(t, fieldOffsets(tt.v), blockOffsets(dt))
			assert.Equal(t, reflect.TypeOf(tt.v).Size(), dt.Size())
		})
	}
}

func TestReading_EndToEndShape(t *testing.T) {
	dt := Reading{}.EquivalentDatatype()

	require.Equal(t, datatype.ClassStructured, dt.Class())
	require.Len(t, dt.Blocks(), 3, "exactly three top-level fields")

	b := dt.Blocks()[0]
	assert.Equal(t, uintptr(0), b.Offset)
	assert.Equal(t, datatype.KindBool, b.Type.Kind())

	ints := dt.Blocks()[1]
	assert.Equal(t, uintptr(4), ints.Offset, "natural alignment of [4]int32 after a bool")
	require.Equal(t, datatype.ClassContiguous, ints.Type.Class())
	assert.Equal(t, 4, ints.Type.Count())
	assert.Equal(t, datatype.KindInt32, ints.Type.Elem().Kind())

	tuple := dt.Blocks()[2]
	require.Equal(t, datatype.ClassStructured, tuple.Type.Class(), "third field is itself a composite")
	require.Len(t, tuple.Type.Blocks(), 2, "two-element composite")

	var r Reading
	assert.Equal(t, unsafe.Offsetof(r.Tuple), tuple.Offset)
	assert.Equal(t, uintptr(0), tuple.Type.Blocks()[0].Offset, "tuple offsets are relative to the tuple")
	assert.Equal(t, unsafe.Offsetof(r.Tuple.U), tuple.Type.Blocks()[1].Offset)
	assert.Equal(t, unsafe.Sizeof(r.Tuple), tuple.Type.Size())
}

func TestReorderedFieldsReorderOffsets(t *testing.T) {
	sp := ScalePair{}.EquivalentDatatype()
	ps := PairScale{}.EquivalentDatatype()

	require.Len(t, sp.Blocks(), 2)
	require.Len(t, ps.Blocks(), 2)

	// Same members, opposite declaration order: descriptors must track
	// the declared order, not agree with each other.
	assert.Equal(t, datatype.KindFloat32, sp.Blocks()[0].Type.Kind())
	assert.Equal(t, datatype.KindInt64, ps.Blocks()[0].Type.Kind())
	assert.NotEqual(t, blockOffsets(sp), blockOffsets(ps))
}

func TestNestedDescriptorComposes(t *testing.T) {
	dt := Packet{}.EquivalentDatatype()
	require.Len(t, dt.Blocks(), 3)

	header := dt.Blocks()[0]
	require.Equal(t, datatype.ClassStructured, header.Type.Class())
	assert.Equal(t, Header{}.EquivalentDatatype(), header.Type,
		"embedding must reuse the nested type's own descriptor")

	// Nested offsets are relative; absolute position comes from the
	// embedding block.
	var p Packet
	rt := reflect.TypeOf(p.Header)
	for i, b := range header.Type.Blocks() {
		assert.Equal(t, unsafe.Offsetof(p.Header)+rt.Field(i).Offset, header.Offset+b.Offset)
	}

	pos := dt.Blocks()[1]
	assert.Equal(t, phys.Vector{}.EquivalentDatatype(), pos.Type)
}

func TestPacket_PackRoundTrip(t *testing.T) {
	in := Packet{
		Header:  Header{Version: 2, Flags: 0x0102, Seq: 900001},
		Pos:     phys.Vector{X: 1.5, Y: -2.25, Z: 1e9},
		Samples: [3]float64{0.1, 0.2, 0.3},
	}

	buf := make([]byte, in.EquivalentDatatype().PackedSize())

	n, err := datatype.Pack(&in, buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)

	var out Packet
	_, err = datatype.Unpack(&out, buf)
	require.NoError(t, err)

	assert.Equal(t, in, out)
}
