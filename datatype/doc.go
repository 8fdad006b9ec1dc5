// Package datatype defines the layout descriptors consumed by the
// message-passing transport and produced by generated code.
//
// A Datatype describes the size and byte layout of a Go value so it can
// be shipped between processes as one opaque unit. Descriptors come in
// three classes:
//   - Predefined: a fixed-size primitive kind
//   - Contiguous: a fixed-length repetition of one element descriptor
//   - Structured: an ordered set of (offset, descriptor) blocks
//
// Key types:
//   - Datatype / Block: the composite descriptor value
//   - Equivalence: the capability a type provides to describe itself
//   - Of / Register: descriptor resolution through the process-wide registry
package datatype
