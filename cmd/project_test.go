package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"veric/report"
)

func TestMain(m *testing.M) {
	report.InitReporter(report.LogLevelSilent)
	os.Exit(m.Run())
}

func writeProject(t *testing.T, dir, contents string) {
	t.Helper()

	if err := ioutil.WriteFile(filepath.Join(dir, ProjectFileName), []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, `
[project]
name = "gates"
sources = ["mux.v", "and.v"]
output = "build/gates.v"
dump-tree = true
`)

	proj, err := LoadProject(dir)
	if err != nil {
		t.Fatal(err)
	}

	if proj.Name != "gates" {
		t.Errorf("expected name gates, got %s", proj.Name)
	}
	if len(proj.Sources) != 2 || proj.Sources[0] != "mux.v" {
		t.Errorf("unexpected sources: %v", proj.Sources)
	}
	if proj.Output != "build/gates.v" {
		t.Errorf("unexpected output: %s", proj.Output)
	}
	if !proj.DumpTree {
		t.Error("expected dump-tree to be set")
	}
}

func TestLoadProjectValidation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{"missing table", `answer = 42`, "missing required table"},
		{"missing name", "[project]\nsources = [\"a.v\"]", "missing required field `name`"},
		{"no sources", "[project]\nname = \"p\"", "names no sources"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeProject(t, dir, tc.contents)

			_, err := LoadProject(dir)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCompileEndToEnd(t *testing.T) {
	dir := t.TempDir()

	srcPath := filepath.Join(dir, "buf.v")
	err := ioutil.WriteFile(srcPath, []byte(`
primitive buf (q, a);
    output q;
    input a;
    table
        1 : 1 ;
        0 : 0 ;
    endtable
endprimitive
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "out.v")
	c := &Compiler{
		rootPath:   srcPath,
		sources:    []string{srcPath},
		outputPath: outPath,
	}

	if !c.Compile() {
		t.Fatal("expected compilation to succeed")
	}

	out, err := ioutil.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"module buf", "always_latch", "tableline__ifield__udptmp"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
