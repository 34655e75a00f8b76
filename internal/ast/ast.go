package ast

import "github.com/hashicorp/hcl/v2"

// Node is one DSL construct in declaration order.
type Node interface {
	// Range returns the source range of the construct's declaration, used
	// for diagnostics.
	Range() hcl.Range
}

// File is the root of a parsed source file: at most one workspace plus any
// include directives.
type File struct {
	Workspace *Workspace
	Includes  []*Include
}

// Include is the `include "path" {}` directive. File inclusion is recognized
// but not performed; the builder reports it as an informational diagnostic.
type Include struct {
	Path     string
	DefRange hcl.Range
}

// Range implements Node.
func (i *Include) Range() hcl.Range { return i.DefRange }

// Workspace is the top-level `workspace` block.
type Workspace struct {
	Name          string
	Description   string
	Properties    map[string]string
	Configuration map[string]string

	Model       *Model
	Views       *Views
	Styles      *Styles
	Branding    *Branding
	Terminology *Terminology

	DefRange hcl.Range
}

// Range implements Node.
func (w *Workspace) Range() hcl.Range { return w.DefRange }

// Model is the `model` block: element, relationship and alias declarations
// in source order.
type Model struct {
	Nodes    []Node
	DefRange hcl.Range
}

// Range implements Node.
func (m *Model) Range() hcl.Range { return m.DefRange }

// Alias declares a variable-style name that resolves to another element's ID.
type Alias struct {
	Name     string
	Target   string
	DefRange hcl.Range
}

// Range implements Node.
func (a *Alias) Range() hcl.Range { return a.DefRange }

// Branding is the `branding` block.
type Branding struct {
	Logo     string
	Font     string
	DefRange hcl.Range
}

// Range implements Node.
func (b *Branding) Range() hcl.Range { return b.DefRange }

// Terminology is the `terminology` block.
type Terminology struct {
	Person             string
	SoftwareSystem     string
	Container          string
	Component          string
	DeploymentNode     string
	InfrastructureNode string
	Relationship       string
	DefRange           hcl.Range
}

// Range implements Node.
func (t *Terminology) Range() hcl.Range { return t.DefRange }
