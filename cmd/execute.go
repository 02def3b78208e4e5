package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"veric/report"
)

// RunCompiler is the main entry point for the veric compiler.  This should be
// called directly from main.  It returns the process exit code.
func RunCompiler() int {
	// Set up the argument parser and all its commands and arguments.
	cli := olive.NewCLI("veric", "veric compiles Verilog user-defined primitives", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false,
		[]string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile primitive source code", true)
	buildCmd.AddPrimaryArg("path", "the path to the source file or project directory", true)
	buildCmd.AddStringArg("outpath", "o", "the path to write the lowered output to", false)
	buildCmd.AddFlag("dump-tree", "dt", "dump the lowered node graph to stdout")

	cli.AddSubcommand("version", "print the veric version", false)

	// Run the argument parser.
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage error: %s\n", err.Error())
		return 1
	}

	report.InitReporter(logLevelFromName(result.Arguments["loglevel"].(string)))

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		if !execBuildCommand(subResult) {
			return 1
		}
	case "version":
		fmt.Println("veric", Version)
	}

	return 0
}

// execBuildCommand executes the build subcommand.  It returns whether the
// build succeeded.
func execBuildCommand(result *olive.ArgParseResult) bool {
	rootRelPath, _ := result.PrimaryArg()

	rootPath, err := filepath.Abs(rootRelPath)
	if err != nil {
		report.ReportFatal("error calculating absolute path: %s", err.Error())
	}

	c := &Compiler{rootPath: rootPath}

	// A directory root is a project: its veric.toml names the sources.  A
	// file root is compiled on its own.
	finfo, err := os.Stat(rootPath)
	if err != nil {
		report.ReportFatal("error loading build path: %s", err.Error())
	}

	if finfo.IsDir() {
		proj, err := LoadProject(rootPath)
		if err != nil {
			report.ReportFatal("error loading project file: %s", err.Error())
		}

		for _, src := range proj.Sources {
			c.sources = append(c.sources, filepath.Join(rootPath, src))
		}
		c.outputPath = proj.Output
		if c.outputPath != "" {
			c.outputPath = filepath.Join(rootPath, c.outputPath)
		}
		c.dumpTree = proj.DumpTree
	} else {
		c.sources = []string{rootPath}
	}

	// Command-line options override the project file.
	if outPath, ok := result.Arguments["outpath"]; ok {
		c.outputPath = outPath.(string)
	}
	if c.outputPath == "" {
		c.outputPath = "out.v"
	}

	if result.HasFlag("dump-tree") {
		c.dumpTree = true
	}

	return c.Compile()
}

// logLevelFromName converts a log level selector value into the reporter's
// log level constant.
func logLevelFromName(name string) int {
	switch name {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	default:
		return report.LogLevelVerbose
	}
}
