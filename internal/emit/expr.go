package emit

import (
	"fmt"
	"strings"

	"datatype-generator/internal/analyze"
)

// structExpr builds the descriptor construction expression for a whole
// model. The receiver variable is always named v in the template.
func (g *Generator) structExpr(m *analyze.StructModel, imports *importSet) (string, error) {
	var blocks []string

	for _, f := range m.Fields {
		sel := "v." + f.Name

		e, err := g.shapeExpr(f.Shape, sel, m.ID.PkgPath, imports)
		if err != nil {
			return "", err
		}

		blocks = append(blocks, blockExpr(sel, e))
	}

	return structuredExpr("v", blocks), nil
}

// shapeExpr builds the descriptor expression for one field shape. sel
// is the selector path to a value of the shape, used for Offsetof and
// Sizeof operands; array elements descend through sel[0].
func (g *Generator) shapeExpr(s *analyze.Shape, sel, samePkg string, imports *importSet) (string, error) {
	switch s.Kind {
	case analyze.ShapePrimitive:
		return fmt.Sprintf("datatype.Of[%s]()", s.Primitive), nil

	case analyze.ShapeEquivalent:
		ref := s.Named.Name
		if s.Named.PkgPath != "" && s.Named.PkgPath != samePkg {
			ref = imports.add(s.Named.PkgPath) + "." + ref
		}

		return fmt.Sprintf("datatype.Of[%s]()", ref), nil

	case analyze.ShapeArray:
		elem, err := g.shapeExpr(s.Elem, sel+"[0]", samePkg, imports)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("datatype.Contiguous(%d, %s)", s.Len, elem), nil

	case analyze.ShapeTuple:
		var blocks []string

		for _, member := range s.Fields {
			msel := sel + "." + member.Name

			e, err := g.shapeExpr(member.Shape, msel, samePkg, imports)
			if err != nil {
				return "", err
			}

			blocks = append(blocks, blockExpr(msel, e))
		}

		return structuredExpr(sel, blocks), nil

	default:
		return "", fmt.Errorf("invalid shape at %s", sel)
	}
}

func blockExpr(sel, typeExpr string) string {
	return fmt.Sprintf("datatype.Block{Offset: unsafe.Offsetof(%s), Type: %s},", sel, typeExpr)
}

// structuredExpr renders a datatype.Structured call with one block per
// line. Indentation is rough here; go/format settles the final shape.
func structuredExpr(sizeSel string, blocks []string) string {
	if len(blocks) == 0 {
		return fmt.Sprintf("datatype.Structured(unsafe.Sizeof(%s))", sizeSel)
	}

	var sb strings.Builder

	sb.WriteString("datatype.Structured(unsafe.Sizeof(" + sizeSel + "),\n")
	for _, b := range blocks {
		sb.WriteString("\t" + b + "\n")
	}

	sb.WriteString(")")

	return sb.String()
}
