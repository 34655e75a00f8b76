package ast

import "github.com/hashicorp/hcl/v2"

// Views is the `views` block: view declarations in source order.
type Views struct {
	Nodes    []Node
	DefRange hcl.Range
}

// Range implements Node.
func (v *Views) Range() hcl.Range { return v.DefRange }

// View is the shared surface of view-declaring nodes. Key is the block
// label. Reference fields are raw strings resolved by the view populator.
type View struct {
	Key         string
	Title       string
	Description string

	SoftwareSystemRef string
	ContainerRef      string
	ElementRef        string
	EnvironmentRef    string

	Include    []string
	Exclude    []string
	AutoLayout string

	// Animations are ordered groups of raw element references.
	Animations [][]string

	DefRange hcl.Range
}

// Range implements Node.
func (v *View) Range() hcl.Range { return v.DefRange }

// SystemLandscapeView is a `system_landscape` block.
type SystemLandscapeView struct{ View }

// SystemContextView is a `system_context` block scoped to a software system.
type SystemContextView struct{ View }

// ContainerViewNode is a `container` view block scoped to a software system.
type ContainerViewNode struct{ View }

// ComponentViewNode is a `component` view block scoped to a container.
type ComponentViewNode struct{ View }

// DynamicViewNode is a `dynamic` block scoped to an arbitrary element.
type DynamicViewNode struct{ View }

// DeploymentViewNode is a `deployment` block scoped to an environment and,
// optionally, a software system.
type DeploymentViewNode struct{ View }

// FilteredViewNode is a `filtered` block deriving from a base view.
type FilteredViewNode struct {
	View
	BaseViewRef string
	Mode        string
	FilterTags  []string
}

// CustomViewNode is a `custom` block with no model scope.
type CustomViewNode struct{ View }

// ImageViewNode is an `image` block referencing an external image.
type ImageViewNode struct {
	View
	Source string
}
