// Package telemetry holds sample wire structs described to the
// transport by generated descriptors. Regenerate with:
//
//	go run datatype-generator/cmd/datatype-generator ./example/...
package telemetry

import "datatype-generator/example/phys"

//datatype:generate
type Reading struct {
	B     bool
	Ints  [4]int32
	Tuple struct {
		FS [2]float32
		U  uint8
	}
}

//datatype:generate
type Header struct {
	Version uint16
	Flags   uint16
	Seq     uint64
}

//datatype:generate
type Packet struct {
	Header  Header
	Pos     phys.Vector
	Samples [3]float64
}

// ScalePair and PairScale declare the same fields in opposite order,
// so their descriptors must disagree on every offset.

//datatype:generate
type ScalePair struct {
	Scale  float32
	Offset int64
}

//datatype:generate
type PairScale struct {
	Offset int64
	Scale  float32
}
