package analyze

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
)

func docGroup(lines ...string) *ast.CommentGroup {
	g := &ast.CommentGroup{}
	for _, l := range lines {
		g.List = append(g.List, &ast.Comment{Text: l})
	}

	return g
}

func TestHasAnnotation(t *testing.T) {
	tests := []struct {
		name string
		doc  *ast.CommentGroup
		want bool
	}{
		{"nil group", nil, false},
		{"bare marker", docGroup("//datatype:generate"), true},
		{"marker after prose", docGroup("// Sensor is a reading.", "//datatype:generate"), true},
		{"spaced marker is prose, not a directive", docGroup("// datatype:generate"), false},
		{"unrelated directive", docGroup("//go:generate stringer -type=Kind"), false},
		{"marker with trailing junk", docGroup("//datatype:generate now"), false},
		{"block comment", docGroup("/* datatype:generate */"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasAnnotation(tt.doc))
		})
	}
}
