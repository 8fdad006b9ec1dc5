package manifest

import (
	"fmt"
	"strings"

	"datatype-generator/internal/analyze"
)

// File represents the root of a datatype.yaml manifest.
type File struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Packages lists the package patterns to scan for annotations.
	// Defaults to ./... when empty.
	Packages []string `yaml:"packages,omitempty"`

	// Types lists additional types to generate for, as
	// "import/path.TypeName". Use it for types whose source cannot be
	// annotated.
	Types []string `yaml:"types,omitempty"`

	// Output configures the generated files.
	Output Output `yaml:"output,omitempty"`
}

// Output holds generated-file options.
type Output struct {
	// Suffix replaces the default "_datatype.go" file name suffix.
	Suffix string `yaml:"suffix,omitempty"`

	// Header replaces the default generated-code header line.
	Header string `yaml:"header,omitempty"`
}

// Validate checks the manifest for schema-level problems.
func (f *File) Validate() error {
	if f.Version != "" && f.Version != "1" {
		return fmt.Errorf("unsupported manifest version %q (supported: 1)", f.Version)
	}

	for _, t := range f.Types {
		if _, err := parseTypeRef(t); err != nil {
			return err
		}
	}

	if f.Output.Suffix != "" && !strings.HasSuffix(f.Output.Suffix, ".go") {
		return fmt.Errorf("output suffix %q must end in .go", f.Output.Suffix)
	}

	return nil
}

// TypeIDs returns the manifest's explicit type list as analyzer IDs.
func (f *File) TypeIDs() []analyze.TypeID {
	var ids []analyze.TypeID
	for _, t := range f.Types {
		// Validate has already vetted the list.
		id, _ := parseTypeRef(t)
		ids = append(ids, id)
	}

	return ids
}

func parseTypeRef(ref string) (analyze.TypeID, error) {
	i := strings.LastIndex(ref, ".")
	if i <= 0 || i == len(ref)-1 {
		return analyze.TypeID{}, fmt.Errorf("invalid type reference %q: want \"import/path.TypeName\"", ref)
	}

	return analyze.TypeID{PkgPath: ref[:i], Name: ref[i+1:]}, nil
}
