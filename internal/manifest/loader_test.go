package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datatype-generator/internal/analyze"
)

func TestParse_Full(t *testing.T) {
	f, err := Parse([]byte(`
version: "1"
packages:
  - ./example/...
types:
  - example/phys.Vector
  - example/telemetry.Frame
output:
  suffix: _equiv.go
  header: "// Code generated by equivgen. DO NOT EDIT."
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"./example/..."}, f.Packages)
	assert.Equal(t, "_equiv.go", f.Output.Suffix)
	assert.Equal(t, []analyze.TypeID{
		{PkgPath: "example/phys", Name: "Vector"},
		{PkgPath: "example/telemetry", Name: "Frame"},
	}, f.TypeIDs())
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"./..."}, f.Packages)
	assert.Empty(t, f.TypeIDs())
}

func TestParse_UnknownKeyRejected(t *testing.T) {
	_, err := Parse([]byte("pakages: [./...]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest YAML")
}

func TestParse_BadVersion(t *testing.T) {
	_, err := Parse([]byte(`version: "2"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported manifest version")
}

func TestParse_BadTypeRef(t *testing.T) {
	for _, ref := range []string{"Vector", "example/phys.", ".Vector"} {
		_, err := Parse([]byte("types:\n  - " + ref + "\n"))
		require.Error(t, err, "ref %q must be rejected", ref)
		assert.Contains(t, err.Error(), "invalid type reference")
	}
}

func TestParse_BadSuffix(t *testing.T) {
	_, err := Parse([]byte("output:\n  suffix: _equiv.txt\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must end in .go")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}
