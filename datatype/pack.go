package datatype

import (
	"fmt"
	"unsafe"
)

// Segment is a contiguous byte range carrying data, relative to the
// described value's start. Padding bytes never appear in a segment.
type Segment struct {
	Offset uintptr
	Size   uintptr
}

// Flatten walks the descriptor into its ordered data segments,
// coalescing adjacent ranges. The result is what a transport actually
// copies: everything the descriptor covers, nothing it does not.
func (d Datatype) Flatten() []Segment {
	var segs []Segment
	d.appendSegments(&segs, 0)

	return coalesce(segs)
}

func (d Datatype) appendSegments(segs *[]Segment, base uintptr) {
	switch d.class {
	case ClassPredefined:
		*segs = append(*segs, Segment{Offset: base, Size: d.size})
	case ClassContiguous:
		stride := d.Elem().Size()
		for i := 0; i < d.count; i++ {
			d.Elem().appendSegments(segs, base+uintptr(i)*stride)
		}
	case ClassStructured:
		for _, b := range d.blocks {
			b.Type.appendSegments(segs, base+b.Offset)
		}
	}
}

func coalesce(segs []Segment) []Segment {
	var out []Segment
	for _, s := range segs {
		if s.Size == 0 {
			continue
		}

		if n := len(out); n > 0 && out[n-1].Offset+out[n-1].Size == s.Offset {
			out[n-1].Size += s.Size
			continue
		}

		out = append(out, s)
	}

	return out
}

// PackedSize returns the number of data bytes the descriptor covers,
// excluding padding.
func (d Datatype) PackedSize() int {
	var n uintptr
	for _, s := range d.Flatten() {
		n += s.Size
	}

	return int(n)
}

// Pack copies the described bytes of *v into buf, skipping padding,
// and returns the number of bytes written. buf must hold at least
// PackedSize bytes of the value's descriptor.
func Pack[T Equivalence](v *T, buf []byte) (int, error) {
	dt := (*v).EquivalentDatatype()
	if need := dt.PackedSize(); len(buf) < need {
		return 0, fmt.Errorf("datatype: pack buffer too small: need %d bytes, have %d", need, len(buf))
	}

	base := unsafe.Pointer(v)

	n := 0
	for _, s := range dt.Flatten() {
		src := unsafe.Slice((*byte)(unsafe.Add(base, s.Offset)), s.Size)
		n += copy(buf[n:], src)
	}

	return n, nil
}

// Unpack fills *v from bytes previously produced by Pack with the same
// descriptor, and returns the number of bytes consumed.
func Unpack[T Equivalence](v *T, buf []byte) (int, error) {
	dt := (*v).EquivalentDatatype()
	if need := dt.PackedSize(); len(buf) < need {
		return 0, fmt.Errorf("datatype: unpack buffer too small: need %d bytes, have %d", need, len(buf))
	}

	base := unsafe.Pointer(v)

	n := 0
	for _, s := range dt.Flatten() {
		dst := unsafe.Slice((*byte)(unsafe.Add(base, s.Offset)), s.Size)
		n += copy(dst, buf[n:])
	}

	return n, nil
}
