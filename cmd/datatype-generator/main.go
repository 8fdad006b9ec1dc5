// Package main provides the CLI entrypoint for datatype-generator.
//
// datatype-generator scans Go packages for structs annotated with
// //datatype:generate and writes, next to each one, a file implementing
// datatype.Equivalence: a descriptor of the struct's memory layout
// (field offsets, extents, total size) for use by a message-passing
// transport.
//
// Usage:
//
//	datatype-generator [flags] [package patterns]
//
// With no patterns, the manifest's package list (default ./...) is used.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"datatype-generator/internal/analyze"
	"datatype-generator/internal/emit"
	"datatype-generator/internal/manifest"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr *os.File) int {
	fs := flag.NewFlagSet("datatype-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		manifestPath = fs.String("manifest", "", "manifest file (default: datatype.yaml if present)")
		suffix       = fs.String("suffix", "", "generated file name suffix (overrides manifest)")
		dryRun       = fs.Bool("dry-run", false, "list target files without writing them")
		verbose      = fs.Bool("v", false, "verbose output, including a dump of analyzed models")
	)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	mf, err := loadManifest(*manifestPath)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	patterns := fs.Args()
	if len(patterns) == 0 {
		patterns = mf.Packages
	}

	analyzer := analyze.NewAnalyzer()
	analyzer.Include(mf.TypeIDs()...)

	log.Debugw("loading packages", "patterns", patterns)

	models, diags, err := analyzer.Load(patterns...)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	for _, w := range diags.Warnings {
		log.Warnf("%s", w)
	}

	if diags.HasErrors() {
		for _, e := range diags.Errors {
			fmt.Fprintln(stderr, e)
		}

		return 1
	}

	if len(models) == 0 {
		log.Infof("no annotated types found")
		return 0
	}

	if *verbose {
		spew.Fdump(stderr, models)
	}

	cfg := emit.DefaultConfig()
	if mf.Output.Suffix != "" {
		cfg.Suffix = mf.Output.Suffix
	}

	if mf.Output.Header != "" {
		cfg.Header = mf.Output.Header
	}

	if *suffix != "" {
		cfg.Suffix = *suffix
	}

	files, err := emit.NewGenerator(cfg).Generate(models)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	for _, f := range files {
		path := filepath.Join(f.Dir, f.Filename)

		if *dryRun {
			fmt.Println(path)
			continue
		}

		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			log.Errorf("writing %s: %v", path, err)
			return 1
		}

		log.Infow("wrote descriptor", "file", path)
	}

	return 0
}

// loadManifest resolves the manifest to use: an explicit -manifest path
// must exist, the default datatype.yaml is optional.
func loadManifest(path string) (*manifest.File, error) {
	if path != "" {
		return manifest.LoadFile(path)
	}

	if _, err := os.Stat(manifest.DefaultFilename); err == nil {
		return manifest.LoadFile(manifest.DefaultFilename)
	}

	return manifest.Parse(nil)
}

// newLogger builds a console logger. Library packages never log; all
// progress reporting lives here.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true

	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
