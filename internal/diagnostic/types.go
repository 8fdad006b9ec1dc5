package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Stable diagnostic codes. Tests and editor tooling key off these, so
// they are part of the tool's contract.
const (
	CodeLoadFailed      = "load-failed"      // package could not be loaded or type-checked
	CodeUnsupportedItem = "unsupported-item" // annotated declaration is not a plain struct
	CodeAliasField      = "alias-field"      // field type is a type alias
	CodeNoDescriptor    = "no-descriptor"    // field type does not provide a layout descriptor
	CodeUnknownType     = "unknown-type"     // manifest lists a type no loaded package declares
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single message tied to a type, field and source position.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is one of the Code* constants above.
	Code string
	// Message is the human-readable description.
	Message string
	// TypeName identifies which annotated type this relates to (if any).
	TypeName string
	// Field identifies which field this relates to (if any).
	Field string
	// Pos is the source position of the offending declaration.
	Pos token.Position
}

// String formats the diagnostic in the familiar file:line:col style.
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.Pos.IsValid() {
		sb.WriteString(d.Pos.String())
		sb.WriteString(": ")
	}

	sb.WriteString(d.Severity.String())
	sb.WriteString(": ")

	var where []string
	if d.TypeName != "" {
		where = append(where, d.TypeName)
	}

	if d.Field != "" {
		where = append(where, "field "+d.Field)
	}

	if len(where) > 0 {
		sb.WriteString(strings.Join(where, ", "))
		sb.WriteString(": ")
	}

	sb.WriteString(d.Message)

	if d.Code != "" {
		sb.WriteString(" [" + d.Code + "]")
	}

	return sb.String()
}

// Diagnostics collects everything reported during one generator run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Errorf adds an error diagnostic with a formatted message.
func (d *Diagnostics) Errorf(code string, pos token.Position, typeName, field, format string, args ...any) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		TypeName: typeName,
		Field:    field,
		Pos:      pos,
	})
}

// Warnf adds a warning diagnostic with a formatted message.
func (d *Diagnostics) Warnf(code string, pos token.Position, typeName, field, format string, args ...any) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		TypeName: typeName,
		Field:    field,
		Pos:      pos,
	})
}

// Infof adds an info diagnostic with a formatted message.
func (d *Diagnostics) Infof(code string, pos token.Position, typeName, field, format string, args ...any) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		TypeName: typeName,
		Field:    field,
		Pos:      pos,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Err returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "\n"))
}
