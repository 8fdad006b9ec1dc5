package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_DryRun(t *testing.T) {
	code := run([]string{"-dry-run", "datatype-generator/example/..."}, os.Stderr)
	assert.Equal(t, 0, code)
}

func TestRun_UnsupportedTypesFail(t *testing.T) {
	code := run([]string{"-dry-run", "datatype-generator/internal/analyze/testdata/unsupported"}, os.Stderr)
	assert.Equal(t, 1, code)
}

func TestRun_BadFlag(t *testing.T) {
	code := run([]string{"-definitely-not-a-flag"}, os.Stderr)
	assert.Equal(t, 2, code)
}

func TestRun_MissingManifest(t *testing.T) {
	code := run([]string{"-manifest", "no-such-file.yaml"}, os.Stderr)
	assert.Equal(t, 1, code)
}
