// Package cmd is the top-level "driver" package for the veric compiler: it
// contains all the functionality for parsing command-line arguments, loading
// project configuration, and running the compiler's phases in order.
package cmd

import (
	"os"
	"path/filepath"

	"veric/ast"
	"veric/emit"
	"veric/report"
	"veric/syntax"
	"veric/udp"
)

// Version is the current version of the veric compiler.
const Version = "0.2.0"

// Compiler represents the overall state and configuration of compilation.
type Compiler struct {
	// The path to the root directory or file of compilation.
	rootPath string

	// The source files to compile, in command-line or project-file order.
	sources []string

	// The path to write the lowered output to.
	outputPath string

	// Whether to dump the lowered node graph to stdout.
	dumpTree bool
}

// Compile runs all phases of compilation over the configured sources.  It
// returns whether compilation succeeded.
func (c *Compiler) Compile() bool {
	design := &ast.Design{}

	for _, src := range c.sources {
		if !c.parseFile(design, src) {
			return false
		}
	}

	// The lowering pass never aborts on a malformed primitive, so the error
	// count is checked between phases: a design that failed to parse cleanly
	// is not lowered, and a design that failed to lower cleanly is not
	// emitted.
	if !report.ShouldProceed() {
		return false
	}

	report.ReportVerbose("lowering %d primitives", len(design.Primitives))
	udp.Resolve(design)

	if !report.ShouldProceed() {
		return false
	}

	if c.dumpTree {
		ast.DumpTo(os.Stdout, design)
	}

	outFile, err := os.Create(c.outputPath)
	if err != nil {
		report.ReportFatal("error creating output file: %s", err.Error())
	}
	defer outFile.Close()

	if err := emit.WriteDesign(outFile, design); err != nil {
		report.ReportStdError(c.outputPath, err)
		return false
	}

	report.ReportVerbose("wrote %s", c.outputPath)
	return true
}

// parseFile parses one source file into the design.
func (c *Compiler) parseFile(design *ast.Design, src string) bool {
	absPath, err := filepath.Abs(src)
	if err != nil {
		report.ReportFatal("error calculating absolute path: %s", err.Error())
	}
	reprPath := filepath.Base(src)

	f, err := os.Open(absPath)
	if err != nil {
		report.ReportStdError(reprPath, err)
		return false
	}
	defer f.Close()

	p := syntax.NewParser(absPath, reprPath, f)
	p.Parse(design)
	return true
}
