// Package phys holds sample value types shared across wire structs.
package phys

//datatype:generate
type Vector struct {
	X, Y, Z float64
}
