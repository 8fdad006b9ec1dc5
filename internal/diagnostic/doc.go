// Package diagnostic provides structured, source-localized errors and
// warnings for the datatype generator.
//
// Every unsupported shape the analyzer finds becomes a Diagnostic
// attached to the offending type or field with its file position, so
// failures read like compiler errors rather than one generic failure.
package diagnostic
