package ast

import "github.com/hashicorp/hcl/v2"

// Element is the shared surface of element-declaring nodes. ID is the block
// label; Name defaults to the ID when the block has no name attribute.
// Children holds nested element and relationship nodes in source order.
type Element struct {
	ID          string
	Name        string
	Description string
	Technology  string
	Location    string
	Tags        []string
	Properties  map[string]string
	Children    []Node
	DefRange    hcl.Range
}

// Range implements Node.
func (e *Element) Range() hcl.Range { return e.DefRange }

// Person is a `person` block.
type Person struct{ Element }

// SoftwareSystem is a `software_system` block.
type SoftwareSystem struct{ Element }

// Container is a `container` block, legal only inside a software system.
type Container struct{ Element }

// Component is a `component` block, legal only inside a container.
type Component struct{ Element }

// Group is a `group` block wrapping a set of sibling elements.
type Group struct{ Element }

// DeploymentEnvironment is a top-level `deployment_environment` block.
type DeploymentEnvironment struct{ Element }

// DeploymentNode is a `deployment_node` block, nesting recursively.
type DeploymentNode struct{ Element }

// InfrastructureNode is an `infrastructure_node` block inside a deployment
// node.
type InfrastructureNode struct{ Element }

// ContainerInstance is a `container_instance` block inside a deployment
// node. ContainerRef is the raw reference to the deployed container.
type ContainerInstance struct {
	Element
	ContainerRef string
}

// Relationship is a `relationship` block. Source is empty for relationships
// nested inside an element block; the builder treats those as sourced from
// the enclosing element.
type Relationship struct {
	Source      string
	Destination string
	Description string
	Technology  string
	Tags        []string
	Properties  map[string]string
	DefRange    hcl.Range
}

// Range implements Node.
func (r *Relationship) Range() hcl.Range { return r.DefRange }
