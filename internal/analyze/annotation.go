package analyze

import (
	"go/ast"
	"strings"
)

// Marker is the comment directive that requests descriptor generation
// for a type declaration, written like a //go:generate directive:
//
//	//datatype:generate
//	type Sensor struct { ... }
const Marker = "datatype:generate"

// hasAnnotation reports whether a doc comment group carries the marker
// directive. Directives are matched in the compiler's style: no space
// after the slashes and nothing but the marker on the line.
func hasAnnotation(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		text := strings.TrimPrefix(c.Text, "//")
		if strings.TrimSpace(text) == Marker && !strings.HasPrefix(text, " ") {
			return true
		}
	}

	return false
}
