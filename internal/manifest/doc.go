// Package manifest loads the optional datatype.yaml configuration.
//
// The manifest selects which packages to scan, lists types to generate
// for that cannot carry the source annotation, and sets output options.
// CLI flags take precedence over manifest values.
package manifest
