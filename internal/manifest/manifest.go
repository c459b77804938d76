// Package manifest loads the relations file produced by upstream
// extractors and feeds it to the graph builder. The analysis core stays
// free of I/O; this is the only place the CLI touches disk for input.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/auspexlabs/auspex/pkg/graph"
)

// Function describes a call-graph node with its source location.
type Function struct {
	Name string `json:"name" yaml:"name"`
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	Line int    `json:"line,omitempty" yaml:"line,omitempty"`
}

// Module describes a dependency-graph node.
type Module struct {
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	External bool   `json:"external,omitempty" yaml:"external,omitempty"`
}

// Class describes an inheritance-graph node.
type Class struct {
	Name  string `json:"name" yaml:"name"`
	File  string `json:"file,omitempty" yaml:"file,omitempty"`
	Depth int    `json:"depth,omitempty" yaml:"depth,omitempty"`
}

// Call is one aggregated caller→callee relation.
type Call struct {
	Caller string `json:"caller" yaml:"caller"`
	Callee string `json:"callee" yaml:"callee"`
	Count  int    `json:"count,omitempty" yaml:"count,omitempty"`
}

// Dependency is one importer→imported relation.
type Dependency struct {
	Importer string `json:"importer" yaml:"importer"`
	Imported string `json:"imported" yaml:"imported"`
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// Inheritance is one child→parent relation.
type Inheritance struct {
	Child  string `json:"child" yaml:"child"`
	Parent string `json:"parent" yaml:"parent"`
}

// Manifest is the full relations file. Node lists are optional; relations
// referencing unlisted names create bare nodes.
type Manifest struct {
	Functions []Function `json:"functions,omitempty" yaml:"functions,omitempty"`
	Modules   []Module   `json:"modules,omitempty" yaml:"modules,omitempty"`
	Classes   []Class    `json:"classes,omitempty" yaml:"classes,omitempty"`

	Calls        []Call        `json:"calls,omitempty" yaml:"calls,omitempty"`
	Dependencies []Dependency  `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Inheritance  []Inheritance `json:"inheritance,omitempty" yaml:"inheritance,omitempty"`
}

// Load reads a manifest from a JSON or YAML file, chosen by extension.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate rejects relations with missing endpoints.
func (m *Manifest) Validate() error {
	for i, c := range m.Calls {
		if c.Caller == "" || c.Callee == "" {
			return fmt.Errorf("call %d: caller and callee are required", i)
		}
	}
	for i, d := range m.Dependencies {
		if d.Importer == "" || d.Imported == "" {
			return fmt.Errorf("dependency %d: importer and imported are required", i)
		}
	}
	for i, inh := range m.Inheritance {
		if inh.Child == "" || inh.Parent == "" {
			return fmt.Errorf("inheritance %d: child and parent are required", i)
		}
	}
	return nil
}

// RelationCount is the total number of relations across all three graphs.
func (m *Manifest) RelationCount() int {
	return len(m.Calls) + len(m.Dependencies) + len(m.Inheritance)
}

// Populate feeds the manifest into a builder. Registered node detail goes
// in first so relations reuse the richer payloads.
func (m *Manifest) Populate(b *graph.Builder) {
	for _, f := range m.Functions {
		b.AddFunction(f.Name, f.File, f.Line)
	}
	for _, mod := range m.Modules {
		b.AddModule(mod.Name, mod.Path, mod.External)
	}
	for _, c := range m.Classes {
		b.AddClass(c.Name, c.File, c.Depth)
	}

	for _, c := range m.Calls {
		count := c.Count
		if count <= 0 {
			count = 1
		}
		b.AddCall(c.Caller, c.Callee, count)
	}
	for _, d := range m.Dependencies {
		kind := d.Kind
		if kind == "" {
			kind = "import"
		}
		b.AddDependency(d.Importer, d.Imported, kind)
	}
	for _, inh := range m.Inheritance {
		b.AddInheritance(inh.Child, inh.Parent)
	}
}
