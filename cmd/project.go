package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// ProjectFileName is the name of the per-project configuration file.
const ProjectFileName = "veric.toml"

// Project represents a validated project configuration.
type Project struct {
	// The name of the project.
	Name string

	// The project's source files, relative to the project directory.
	Sources []string

	// The output path, relative to the project directory.  May be empty.
	Output string

	// Whether to dump the lowered node graph to stdout.
	DumpTree bool
}

// tomlProjectFile represents the project file as it is encoded in TOML.
type tomlProjectFile struct {
	Project *tomlProject `toml:"project"`
}

// tomlProject represents a veric project as it is encoded in TOML.
type tomlProject struct {
	Name     string   `toml:"name"`
	Sources  []string `toml:"sources"`
	Output   string   `toml:"output,omitempty"`
	DumpTree bool     `toml:"dump-tree,omitempty"`
}

// LoadProject loads and validates the project file of the project directory at
// `path`.
func LoadProject(path string) (*Project, error) {
	f, err := os.Open(filepath.Join(path, ProjectFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, err
	}

	if tpf.Project == nil {
		return nil, fmt.Errorf("missing required table `project`")
	}

	if tpf.Project.Name == "" {
		return nil, fmt.Errorf("project missing required field `name`")
	}

	if len(tpf.Project.Sources) == 0 {
		return nil, fmt.Errorf("project `%s` names no sources", tpf.Project.Name)
	}

	return &Project{
		Name:     tpf.Project.Name,
		Sources:  tpf.Project.Sources,
		Output:   tpf.Project.Output,
		DumpTree: tpf.Project.DumpTree,
	}, nil
}
